package repository

import (
	"context"
	"errors"
	"os"

	"main/model"
	"main/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func GetRemindersRepo(client *mongo.Client) *RemindersRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("REMINDERS_COLLECTION", "reminders")
	return &RemindersRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

type RemindersRepo struct {
	MongoCollection *mongo.Collection
}

// AddReminder persists the reminder and returns the assigned id. The id
// is minted here so callers never see a reminder without one.
func (r *RemindersRepo) AddReminder(ctx context.Context, reminder *model.Reminder) (string, error) {
	timer := utils.TrackDBOperation("insert", "reminders")
	defer timer.ObserveDuration()

	if reminder.UserID == "" {
		utils.TrackError("database", "invalid_reminder_data")
		return "", errors.New("user ID is required")
	}
	if reminder.Reminder == "" {
		utils.TrackError("database", "invalid_reminder_data")
		return "", errors.New("reminder text is required")
	}

	if reminder.ReminderID == "" {
		reminder.ReminderID = uuid.New().String()
	}

	if _, err := r.MongoCollection.InsertOne(ctx, reminder); err != nil {
		utils.TrackError("database", "reminder_creation_failed")
		return "", err
	}

	return reminder.ReminderID, nil
}

func (r *RemindersRepo) GetUserReminders(ctx context.Context, userID string) ([]*model.Reminder, error) {
	timer := utils.TrackDBOperation("find", "reminders")
	defer timer.ObserveDuration()

	filter := bson.D{{Key: "user_id", Value: userID}}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "reminder_lookup_error")
		return nil, err
	}
	defer cursor.Close(ctx)

	reminders := []*model.Reminder{}
	if err := cursor.All(ctx, &reminders); err != nil {
		utils.TrackError("database", "reminder_decode_error")
		return nil, err
	}

	return reminders, nil
}

// DeleteReminder removes by id and returns the deleted count; zero means
// the id was unknown.
func (r *RemindersRepo) DeleteReminder(ctx context.Context, reminderID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "reminders")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.D{{Key: "_id", Value: reminderID}})
	if err != nil {
		utils.TrackError("database", "reminder_deletion_failed")
		return 0, err
	}

	return result.DeletedCount, nil
}
