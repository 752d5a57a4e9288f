package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"jondonfit-service/internal/app/config"
	"jondonfit-service/internal/app/drivers/database"
	"jondonfit-service/internal/app/models"
	"jondonfit-service/internal/app/services/core/programs"

	"github.com/goccy/go-json"
)

// Seeds the program catalog from a JSON fixture. Seeding is idempotent:
// programs are upserted by program_id, so re-running refreshes the
// catalog without duplicating documents.
func main() {
	fixturePath := flag.String("file", "scripts/programs.json", "path to the program fixture JSON")
	flag.Parse()

	driverConfig := config.NewDriverConfig()

	mongoDB := database.NewMongoDB(driverConfig)
	programRepository := programs.NewProgramMongoRepository(mongoDB, driverConfig.MongoDB.DbName)

	data, err := os.ReadFile(*fixturePath)
	if err != nil {
		log.Fatalf("Failed to read fixture %s: %v", *fixturePath, err)
	}

	catalog, err := parsePrograms(data)
	if err != nil {
		log.Fatalf("Failed to parse fixture %s: %v", *fixturePath, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := programRepository.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	for _, program := range catalog {
		if program.ProgramID == "" {
			log.Fatalf("Fixture entry %q is missing program_id", program.Name)
		}
		if err := programRepository.UpsertByProgramID(ctx, &program); err != nil {
			log.Fatalf("Failed to upsert program %s: %v", program.ProgramID, err)
		}
		log.Printf("Upserted program %s (%s)", program.ProgramID, program.Name)
	}

	log.Printf("Seeded %d programs", len(catalog))
}

// parsePrograms accepts either a single program object or an array of
// programs, matching both fixture layouts in the wild.
func parsePrograms(data []byte) ([]models.Program, error) {
	var catalog []models.Program
	if err := json.Unmarshal(data, &catalog); err == nil {
		return catalog, nil
	}

	var single models.Program
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, err
	}
	return []models.Program{single}, nil
}
