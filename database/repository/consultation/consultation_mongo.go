package consultationRepo

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

// MongoConsultationRepo implements ConsultationRepository using MongoDB.
type MongoConsultationRepo struct {
	coll *mongo.Collection
}

func NewMongoConsultationRepo() *MongoConsultationRepo {
	return &MongoConsultationRepo{
		coll: database.GetDatabase().Collection("consultation_approvals"),
	}
}

func (repo *MongoConsultationRepo) GetByBookingID(ctx context.Context, bookingID string) (*models.ConsultationApproval, error) {
	var approval models.ConsultationApproval
	err := repo.coll.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&approval)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch approval for booking %s: %w", bookingID, err)
	}
	return &approval, nil
}

func (repo *MongoConsultationRepo) Upsert(ctx context.Context, approval *models.ConsultationApproval) error {
	approval.UpdatedAt = time.Now().UTC()
	opts := options.Replace().SetUpsert(true)
	if _, err := repo.coll.ReplaceOne(ctx, bson.M{"booking_id": approval.BookingID}, approval, opts); err != nil {
		return fmt.Errorf("failed to upsert approval for booking %s: %w", approval.BookingID, err)
	}
	return nil
}
