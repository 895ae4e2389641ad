package catalogRepo

import (
	"context"
	"fmt"

	"glowbook/database"
	"glowbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

func NewMongoCatalogRepo() *MongoCatalogRepo {
	return &MongoCatalogRepo{
		coll: database.GetDatabase().Collection("offerings"),
	}
}

func (repo *MongoCatalogRepo) GetOffering(ctx context.Context, offeringID string) (*models.Offering, error) {
	var offering models.Offering
	err := repo.coll.FindOne(ctx, bson.M{"id": offeringID}).Decode(&offering)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch offering %s: %w", offeringID, err)
	}
	return &offering, nil
}

func (repo *MongoCatalogRepo) GetOfferingForService(ctx context.Context, professionalID, serviceID string) (*models.Offering, error) {
	var offering models.Offering
	filter := bson.M{"professional_id": professionalID, "service_id": serviceID}
	err := repo.coll.FindOne(ctx, filter).Decode(&offering)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch offering for service %s: %w", serviceID, err)
	}
	return &offering, nil
}
