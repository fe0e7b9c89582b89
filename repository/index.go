package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	usersCollection := db.Collection("users")
	remindersCollection := db.Collection("reminders")

	userIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetName("email_unique").
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetName("user_id_index").
				SetUnique(true),
		},
	}

	reminderIndexes := []mongo.IndexModel{
		// Per-user due ordering
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().
				SetName("user_reminders_date").
				SetUnique(false),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetName("user_id_index"),
		},
	}

	if _, err := usersCollection.Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create users indexes: %w", err)
	}

	if _, err := remindersCollection.Indexes().CreateMany(ctx, reminderIndexes); err != nil {
		return fmt.Errorf("failed to create reminders indexes: %w", err)
	}

	log.Println("Successfully created all indexes")
	return nil
}
