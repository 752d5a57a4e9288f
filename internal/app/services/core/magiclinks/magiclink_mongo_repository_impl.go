package magiclinks

import (
	"context"
	"time"

	"jondonfit-service/internal/app/contracts"
	"jondonfit-service/internal/app/models"
	"jondonfit-service/internal/pkg/constvars"
	"jondonfit-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MagicLinkMongoRepository struct {
	Collection *mongo.Collection
}

func NewMagicLinkMongoRepository(db *mongo.Client, dbName string) contracts.MagicLinkRepository {
	return &MagicLinkMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMagicLinks),
	}
}

func (repo *MagicLinkMongoRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "token", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "email", Value: 1}, {Key: "used", Value: 1}},
		},
		{
			// Mongo reaps expired documents lazily. Correctness never
			// depends on this index: redemption checks expiresAt itself.
			Keys:    bson.D{{Key: "expiresAt", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	}
	_, err := repo.Collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return exceptions.ErrMongoDBCreateIndexes(err)
	}
	return nil
}

func (repo *MagicLinkMongoRepository) InvalidateAllForEmail(ctx context.Context, email string) (int64, error) {
	filter := bson.M{"email": email, "used": false}
	update := bson.M{"$set": bson.M{"used": true, "updatedAt": time.Now()}}

	result, err := repo.Collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount, nil
}

func (repo *MagicLinkMongoRepository) Insert(ctx context.Context, link *models.MagicLink) (*models.MagicLink, error) {
	result, err := repo.Collection.InsertOne(ctx, link)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	link.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return link, nil
}

// FindAndConsumeByToken claims the link in a single conditional update so
// concurrent redemptions of the same token cannot both succeed. Returns
// (nil, nil) when no unused, unexpired link matches.
func (repo *MagicLinkMongoRepository) FindAndConsumeByToken(ctx context.Context, token string) (*models.MagicLink, error) {
	filter := bson.M{
		"token":     token,
		"used":      false,
		"expiresAt": bson.M{"$gt": time.Now()},
	}
	update := bson.M{"$set": bson.M{"used": true, "updatedAt": time.Now()}}

	var link models.MagicLink
	err := repo.Collection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&link)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindAndUpdateDocument(err)
	}
	return &link, nil
}

func (repo *MagicLinkMongoRepository) FindActiveByEmail(ctx context.Context, email string) (*models.MagicLink, error) {
	filter := bson.M{
		"email":     email,
		"used":      false,
		"expiresAt": bson.M{"$gt": time.Now()},
	}

	var link models.MagicLink
	err := repo.Collection.FindOne(ctx, filter).Decode(&link)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &link, nil
}
