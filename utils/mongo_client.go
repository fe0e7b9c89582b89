package utils

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is a global variable holding the MongoDB client
var MongoClient *mongo.Client

// InitMongoClient initializes the MongoDB client from the environment variables
func InitMongoClient() {
	// Only try to load .env if not in test mode
	if os.Getenv("GO_ENV") != "test" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, relying on environment")
		}
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MongoDB URI is not set")
	}

	clientOptions := options.Client().ApplyURI(mongoURI)
	client, err := mongo.Connect(context.Background(), clientOptions)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}

	MongoClient = client
}

// PingMongo reports whether the database answers, used by the health
// endpoint.
func PingMongo(ctx context.Context) error {
	if MongoClient == nil {
		return mongo.ErrClientDisconnected
	}
	return MongoClient.Ping(ctx, nil)
}
