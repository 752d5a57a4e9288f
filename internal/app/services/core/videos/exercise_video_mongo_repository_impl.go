package videos

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

type ExerciseVideoMongoRepository struct {
	Collection *mongo.Collection
}

func NewExerciseVideoMongoRepository(db *mongo.Client, dbName string) contracts.ExerciseVideoRepository {
	return &ExerciseVideoMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionExerciseVideos),
	}
}

func (repo *ExerciseVideoMongoRepository) EnsureIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "exerciseName", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err := repo.Collection.Indexes().CreateOne(ctx, index)
	if err != nil {
		return exceptions.ErrMongoDBCreateIndexes(err)
	}
	return nil
}

func (repo *ExerciseVideoMongoRepository) FindAll(ctx context.Context) ([]models.ExerciseVideo, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var exerciseVideos []models.ExerciseVideo
	if err := cursor.All(ctx, &exerciseVideos); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return exerciseVideos, nil
}

func (repo *ExerciseVideoMongoRepository) UpsertByExerciseName(ctx context.Context, video *models.ExerciseVideo) error {
	filter := bson.M{"exerciseName": video.ExerciseName}
	update := bson.M{"$set": bson.M{
		"exerciseName": video.ExerciseName,
		"videoUrl":     video.VideoURL,
		"thumbnailUrl": video.ThumbnailURL,
		"updatedAt":    video.UpdatedAt,
	}, "$setOnInsert": bson.M{
		"createdAt": video.CreatedAt,
	}}

	_, err := repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
