package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"glowbook/database"
	"glowbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	locationColl     *mongo.Collection
	scheduleColl     *mongo.Collection
	blockColl        *mongo.Collection
	professionalColl *mongo.Collection
}

func NewMongoScheduleRepo() *MongoScheduleRepo {
	db := database.GetDatabase()
	return &MongoScheduleRepo{
		locationColl:     db.Collection("locations"),
		scheduleColl:     db.Collection("location_schedules"),
		blockColl:        db.Collection("calendar_blocks"),
		professionalColl: db.Collection("professionals"),
	}
}

func (repo *MongoScheduleRepo) GetLocation(ctx context.Context, locationID, professionalID string) (*models.Location, error) {
	var loc models.Location
	err := repo.locationColl.FindOne(ctx, bson.M{"id": locationID, "professional_id": professionalID}).Decode(&loc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch location %s: %w", locationID, err)
	}
	return &loc, nil
}

func (repo *MongoScheduleRepo) FindLocationByType(ctx context.Context, professionalID string, t models.LocationType) (*models.Location, error) {
	var loc models.Location
	filter := bson.M{"professional_id": professionalID, "type": t, "active": true}
	err := repo.locationColl.FindOne(ctx, filter).Decode(&loc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find %s location for professional %s: %w", t, professionalID, err)
	}
	return &loc, nil
}

func (repo *MongoScheduleRepo) GetSchedule(ctx context.Context, locationID string) (*models.LocationSchedule, error) {
	var sched models.LocationSchedule
	err := repo.scheduleColl.FindOne(ctx, bson.M{"location_id": locationID}).Decode(&sched)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule for location %s: %w", locationID, err)
	}
	return &sched, nil
}

func (repo *MongoScheduleRepo) ListBlocks(ctx context.Context, professionalID string, from, to time.Time) ([]models.CalendarBlock, error) {
	filter := bson.M{
		"professional_id": professionalID,
		"start_at":        bson.M{"$lt": to},
		"end_at":          bson.M{"$gt": from},
	}
	cur, err := repo.blockColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar blocks: %w", err)
	}
	defer cur.Close(ctx)

	var blocks []models.CalendarBlock
	if err := cur.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("failed to decode calendar blocks: %w", err)
	}
	return blocks, nil
}

func (repo *MongoScheduleRepo) CreateBlock(ctx context.Context, block *models.CalendarBlock) error {
	if _, err := repo.blockColl.InsertOne(ctx, block); err != nil {
		return fmt.Errorf("failed to create calendar block: %w", err)
	}
	return nil
}

func (repo *MongoScheduleRepo) DeleteBlock(ctx context.Context, blockID, professionalID string) error {
	res, err := repo.blockColl.DeleteOne(ctx, bson.M{"id": blockID, "professional_id": professionalID})
	if err != nil {
		return fmt.Errorf("failed to delete calendar block %s: %w", blockID, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *MongoScheduleRepo) GetProfessional(ctx context.Context, professionalID string) (*models.Professional, error) {
	var pro models.Professional
	err := repo.professionalColl.FindOne(ctx, bson.M{"id": professionalID}).Decode(&pro)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch professional %s: %w", professionalID, err)
	}
	return &pro, nil
}
