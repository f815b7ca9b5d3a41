package services

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureCollections applies the storage invariants the services rely on: the
// users schema validator, a unique index on users.email, and the unique
// (email, date) compound index that serializes concurrent daily upserts.
func EnsureCollections(ctx context.Context, db *mongo.Database) error {
	if err := ensureUserSchema(ctx, db); err != nil {
		return err
	}

	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("predictions").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// ensureUserSchema attaches the $jsonSchema validator to users, creating the
// collection with the validator when it does not exist yet.
func ensureUserSchema(ctx context.Context, db *mongo.Database) error {
	err := db.RunCommand(ctx, bson.D{
		{Key: "collMod", Value: "users"},
		{Key: "validator", Value: userSchemaValidator()},
		{Key: "validationLevel", Value: "moderate"},
	}).Err()
	if err == nil {
		return nil
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Name == "NamespaceNotFound" {
		log.Println("Creating users collection with schema validator")
		opts := options.CreateCollection().SetValidator(userSchemaValidator())
		return db.CreateCollection(ctx, "users", opts)
	}
	return err
}

func userSchemaValidator() bson.M {
	nullableString := bson.M{"bsonType": bson.A{"string", "null"}}
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"email"},
			"properties": bson.M{
				"email":        bson.M{"bsonType": "string"},
				"fullName":     nullableString,
				"phone":        nullableString,
				"bio":          nullableString,
				"dob":          nullableString,
				"age":          bson.M{"bsonType": bson.A{"int", "long", "null"}},
				"gender":       nullableString,
				"profileImage": nullableString,
			},
		},
	}
}
