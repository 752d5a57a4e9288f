package progress

import (
	"context"

	"jondonfit-service/internal/app/contracts"
	"jondonfit-service/internal/app/models"
	"jondonfit-service/internal/pkg/constvars"
	"jondonfit-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type WeightEntryMongoRepository struct {
	Collection *mongo.Collection
}

func NewWeightEntryMongoRepository(db *mongo.Client, dbName string) contracts.WeightEntryRepository {
	return &WeightEntryMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionWeightEntries),
	}
}

func (repo *WeightEntryMongoRepository) EnsureIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "entryDate", Value: -1}},
	}
	_, err := repo.Collection.Indexes().CreateOne(ctx, index)
	if err != nil {
		return exceptions.ErrMongoDBCreateIndexes(err)
	}
	return nil
}

func (repo *WeightEntryMongoRepository) Insert(ctx context.Context, entry *models.WeightEntry) (*models.WeightEntry, error) {
	result, err := repo.Collection.InsertOne(ctx, entry)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	entry.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return entry, nil
}

func (repo *WeightEntryMongoRepository) FindByUserID(ctx context.Context, userID string, skip, limit int64) ([]models.WeightEntry, error) {
	filter := bson.M{"userId": userID}
	opts := options.Find().SetSort(bson.D{{Key: "entryDate", Value: -1}})
	if skip > 0 {
		opts.SetSkip(skip)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := repo.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var entries []models.WeightEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return entries, nil
}

func (repo *WeightEntryMongoRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	count, err := repo.Collection.CountDocuments(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return count, nil
}

func (repo *WeightEntryMongoRepository) FindLatestByUserID(ctx context.Context, userID string) (*models.WeightEntry, error) {
	filter := bson.M{"userId": userID}
	opts := options.FindOne().SetSort(bson.D{{Key: "entryDate", Value: -1}})

	var entry models.WeightEntry
	err := repo.Collection.FindOne(ctx, filter, opts).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &entry, nil
}
