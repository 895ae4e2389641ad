package bookingRepo

import (
	"context"
	"log"
	"time"

	"glowbook/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs the repo and ensures its indexes.
func NewMongoBookingRepo() *MongoBookingRepo {
	repo := &MongoBookingRepo{
		coll: database.GetDatabase().Collection("bookings"),
	}
	repo.ensureIndexes()
	return repo
}

func (repo *MongoBookingRepo) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			// One realized slot per professional. Cancelled rows are excluded
			// so a freed slot can be rebooked.
			Keys: bson.D{{Key: "professional_id", Value: 1}, {Key: "scheduled_for", Value: 1}},
			Options: options.Index().SetUnique(true).SetPartialFilterExpression(bson.M{
				"status": bson.M{"$in": bson.A{"PENDING", "ACCEPTED", "COMPLETED"}},
			}),
		},
		{
			Keys: bson.D{{Key: "client_id", Value: 1}, {Key: "scheduled_for", Value: -1}},
		},
	}
	if _, err := repo.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("warning: failed to create booking indexes: %v", err)
	}
}
