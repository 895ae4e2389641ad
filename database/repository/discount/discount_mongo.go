package discountRepo

import (
	"context"
	"fmt"
	"time"

	"glowbook/database"
	"glowbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDiscountRepo implements DiscountRepository using MongoDB.
type MongoDiscountRepo struct {
	coll *mongo.Collection
}

func NewMongoDiscountRepo() *MongoDiscountRepo {
	return &MongoDiscountRepo{
		coll: database.GetDatabase().Collection("last_minute_settings"),
	}
}

func (repo *MongoDiscountRepo) GetSettings(ctx context.Context, professionalID string) (*models.LastMinuteSettings, error) {
	var settings models.LastMinuteSettings
	err := repo.coll.FindOne(ctx, bson.M{"professional_id": professionalID}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch last-minute settings for %s: %w", professionalID, err)
	}
	return &settings, nil
}

func (repo *MongoDiscountRepo) SaveSettings(ctx context.Context, settings *models.LastMinuteSettings) error {
	settings.UpdatedAt = time.Now().UTC()
	opts := options.Replace().SetUpsert(true)
	if _, err := repo.coll.ReplaceOne(ctx, bson.M{"professional_id": settings.ProfessionalID}, settings, opts); err != nil {
		return fmt.Errorf("failed to save last-minute settings for %s: %w", settings.ProfessionalID, err)
	}
	return nil
}
