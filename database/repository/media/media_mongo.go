package mediaRepo

import (
	"context"
	"fmt"

	"glowbook/database"
	"glowbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoMediaRepo implements MediaRepository using MongoDB.
type MongoMediaRepo struct {
	assetColl     *mongo.Collection
	aftercareColl *mongo.Collection
}

func NewMongoMediaRepo() *MongoMediaRepo {
	db := database.GetDatabase()
	return &MongoMediaRepo{
		assetColl:     db.Collection("media_assets"),
		aftercareColl: db.Collection("aftercare_summaries"),
	}
}

func (repo *MongoMediaRepo) CreateAsset(ctx context.Context, asset *models.MediaAsset) error {
	if _, err := repo.assetColl.InsertOne(ctx, asset); err != nil {
		return fmt.Errorf("failed to insert media asset: %w", err)
	}
	return nil
}

func (repo *MongoMediaRepo) CountAssets(ctx context.Context, bookingID string, kind models.MediaKind) (int64, error) {
	count, err := repo.assetColl.CountDocuments(ctx, bson.M{"booking_id": bookingID, "kind": kind})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s assets for booking %s: %w", kind, bookingID, err)
	}
	return count, nil
}

func (repo *MongoMediaRepo) CreateAftercareSummary(ctx context.Context, summary *models.AftercareSummary) error {
	if _, err := repo.aftercareColl.InsertOne(ctx, summary); err != nil {
		return fmt.Errorf("failed to insert aftercare summary: %w", err)
	}
	return nil
}

func (repo *MongoMediaRepo) HasAftercareSummary(ctx context.Context, bookingID string) (bool, error) {
	count, err := repo.aftercareColl.CountDocuments(ctx, bson.M{"booking_id": bookingID})
	if err != nil {
		return false, fmt.Errorf("failed to check aftercare summary for booking %s: %w", bookingID, err)
	}
	return count > 0, nil
}
