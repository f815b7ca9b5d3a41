package config

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectDB establishes the mongo client shared by every request handler for
// the lifetime of the process. The caller owns the client and disconnects it
// on shutdown.
func ConnectDB(cfg Config) (*mongo.Client, error) {
	log.Println("Attempting to connect to MongoDB...")

	// DefaultDocumentM keeps opaque payloads (prediction, inputs) decoding
	// into bson.M so they serialize back to JSON as plain objects.
	clientOptions := options.Client().
		ApplyURI(cfg.MongoURI).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	log.Println("Successfully connected to MongoDB!")
	return client, nil
}
