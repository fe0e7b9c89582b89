package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"main/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Integration test against a real MongoDB; skipped when MONGO_URI is
// not set.
func setupTestRepo(t *testing.T) (*RemindersRepo, func()) {
	t.Helper()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set, skipping Mongo integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect to Mongo: %v", err)
	}

	collection := client.Database("reminders_test").Collection("reminders")
	repo := &RemindersRepo{MongoCollection: collection}

	cleanup := func() {
		collection.DeleteMany(context.Background(), bson.D{})
		client.Disconnect(context.Background())
	}
	return repo, cleanup
}

func TestReminderRoundTrip(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	ctx := context.Background()
	reminder := &model.Reminder{
		UserID:   "u1",
		Reminder: "integration check",
		Date:     time.Now().Add(time.Hour).Truncate(time.Millisecond),
		Tag:      model.TagWork,
	}

	id, err := repo.AddReminder(ctx, reminder)
	if err != nil {
		t.Fatalf("AddReminder failed: %v", err)
	}
	if id == "" {
		t.Fatal("AddReminder returned empty id")
	}

	reminders, err := repo.GetUserReminders(ctx, "u1")
	if err != nil {
		t.Fatalf("GetUserReminders failed: %v", err)
	}
	if len(reminders) != 1 {
		t.Fatalf("got %d reminders, want 1", len(reminders))
	}
	if reminders[0].ReminderID != id || reminders[0].Tag != model.TagWork {
		t.Errorf("round-tripped reminder = %+v", reminders[0])
	}

	deleted, err := repo.DeleteReminder(ctx, id)
	if err != nil {
		t.Fatalf("DeleteReminder failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted count = %d, want 1", deleted)
	}

	deleted, err = repo.DeleteReminder(ctx, id)
	if err != nil {
		t.Fatalf("second DeleteReminder failed: %v", err)
	}
	if deleted != 0 {
		t.Errorf("deleted count = %d for unknown id, want 0", deleted)
	}
}

func TestRemindersSortedByDate(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	ctx := context.Background()
	base := time.Now().Truncate(time.Millisecond)
	for _, offset := range []time.Duration{3 * time.Hour, time.Hour, 2 * time.Hour} {
		_, err := repo.AddReminder(ctx, &model.Reminder{
			UserID:   "u2",
			Reminder: "ordering",
			Date:     base.Add(offset),
			Tag:      model.TagGeneral,
		})
		if err != nil {
			t.Fatalf("AddReminder failed: %v", err)
		}
	}

	reminders, err := repo.GetUserReminders(ctx, "u2")
	if err != nil {
		t.Fatalf("GetUserReminders failed: %v", err)
	}
	if len(reminders) != 3 {
		t.Fatalf("got %d reminders, want 3", len(reminders))
	}
	for i := 1; i < len(reminders); i++ {
		if reminders[i].Date.Before(reminders[i-1].Date) {
			t.Errorf("reminders out of order at %d: %v before %v", i, reminders[i].Date, reminders[i-1].Date)
		}
	}
}
