package repository

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func GetUsersRepo(client *mongo.Client) *UsersRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("USERS_COLLECTION", "users")
	return &UsersRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

type UsersRepo struct {
	MongoCollection *mongo.Collection
}

func (r *UsersRepo) AddUser(ctx context.Context, user *model.User) error {
	timer := utils.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	if user.Email == "" || user.Password == "" {
		utils.TrackError("database", "invalid_user_data")
		return errors.New("email and password required")
	}

	if user.UserID == "" {
		user.UserID = utils.GenerateUserID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	if _, err := r.MongoCollection.InsertOne(ctx, user); err != nil {
		utils.TrackError("database", "user_creation_failed")
		return errors.New("failed to add user to database")
	}

	return nil
}

func (r *UsersRepo) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	filter := bson.D{{Key: "email", Value: email}}

	err := r.MongoCollection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "user_lookup_error")
		log.Println("Error finding user:", err)
		return nil, err
	}

	return &user, nil
}

func (r *UsersRepo) FindUser(ctx context.Context, userID string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	filter := bson.D{{Key: "user_id", Value: userID}}

	err := r.MongoCollection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, err
	}

	return &user, nil
}
