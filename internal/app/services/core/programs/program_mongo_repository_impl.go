package programs

import (
	"context"

	"jondonfit-service/internal/app/contracts"
	"jondonfit-service/internal/app/models"
	"jondonfit-service/internal/pkg/constvars"
	"jondonfit-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProgramMongoRepository struct {
	Collection *mongo.Collection
}

func NewProgramMongoRepository(db *mongo.Client, dbName string) contracts.ProgramRepository {
	return &ProgramMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPrograms),
	}
}

func (repo *ProgramMongoRepository) EnsureIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "program_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err := repo.Collection.Indexes().CreateOne(ctx, index)
	if err != nil {
		return exceptions.ErrMongoDBCreateIndexes(err)
	}
	return nil
}

func (repo *ProgramMongoRepository) FindAll(ctx context.Context) ([]models.Program, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "program_id", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var programs []models.Program
	if err := cursor.All(ctx, &programs); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return programs, nil
}

func (repo *ProgramMongoRepository) FindByProgramID(ctx context.Context, programID string) (*models.Program, error) {
	var program models.Program
	err := repo.Collection.FindOne(ctx, bson.M{"program_id": programID}).Decode(&program)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &program, nil
}

func (repo *ProgramMongoRepository) UpsertByProgramID(ctx context.Context, program *models.Program) error {
	filter := bson.M{"program_id": program.ProgramID}
	update := bson.M{"$set": bson.M{
		"program_id":             program.ProgramID,
		"name":                   program.Name,
		"duration_weeks":         program.DurationWeeks,
		"training_days_per_week": program.TrainingDaysPerWeek,
		"goal":                   program.Goal,
		"target_user":            program.TargetUser,
		"phases":                 program.Phases,
	}}

	_, err := repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
