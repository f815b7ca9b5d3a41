package services

import (
	"context"
	"strings"
	"time"

	"github.com/RohitDev96/profile/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PredictionInput is one wellness snapshot as submitted by the client.
// Prediction and Inputs are opaque payloads stored as-is.
type PredictionInput struct {
	Email      string
	Prediction interface{}
	Inputs     interface{}
	Timestamp  *time.Time
	Date       string // optional explicit YYYY-MM-DD; derived from Timestamp when empty
}

// UpsertResult reports whether the daily record was created or an existing
// one replaced, mirroring mongo's upserted/matched counts.
type UpsertResult struct {
	Date    string
	Created int64
	Updated int64
}

type PredictionService struct {
	users       *mongo.Collection
	predictions *mongo.Collection
	now         func() time.Time
}

func NewPredictionService(db *mongo.Database) *PredictionService {
	return &PredictionService{
		users:       db.Collection("users"),
		predictions: db.Collection("predictions"),
		now:         time.Now,
	}
}

// UpsertForDay stores input as the single snapshot for (email, day). A second
// write within the same UTC day replaces the mutable fields but keeps
// createdAt: a repeat prediction is a correction, not a new event.
func (s *PredictionService) UpsertForDay(ctx context.Context, input PredictionInput) (UpsertResult, error) {
	if strings.TrimSpace(input.Email) == "" {
		return UpsertResult{}, ErrMissingEmail
	}

	now := s.now().UTC()
	ts := now
	if input.Timestamp != nil {
		ts = input.Timestamp.UTC()
	}
	date := resolveDate(input.Date, ts)

	name, age, err := s.ownerSnapshot(ctx, input.Email)
	if err != nil {
		return UpsertResult{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"email": input.Email, "date": date}
	update := bson.M{
		"$set": bson.M{
			"name":       name,
			"age":        age,
			"prediction": input.Prediction,
			"inputs":     input.Inputs,
			"timestamp":  ts,
			"updatedAt":  now,
		},
		"$setOnInsert": bson.M{
			"email":     input.Email,
			"date":      date,
			"createdAt": now,
		},
	}

	opts := options.Update().SetUpsert(true)
	res, err := s.predictions.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return UpsertResult{}, err
	}
	return UpsertResult{Date: date, Created: res.UpsertedCount, Updated: res.MatchedCount}, nil
}

// ListByEmail returns every snapshot for email, most recent day first. An
// email with no records yields an empty slice, not an error.
func (s *PredictionService) ListByEmail(ctx context.Context, email string) ([]models.PredictionRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := s.predictions.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.PredictionRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ownerSnapshot denormalizes name and age from the user's profile. Without a
// profile (or a stored name) the name falls back to the email's local part.
func (s *PredictionService) ownerSnapshot(ctx context.Context, email string) (string, *int, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var profile models.UserProfile
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return localPart(email), nil, nil
	}
	if err != nil {
		return "", nil, err
	}

	name := localPart(email)
	if profile.FullName != nil && *profile.FullName != "" {
		name = *profile.FullName
	}
	return name, profile.Age, nil
}

// resolveDate picks the calendar day a snapshot belongs to: the explicit date
// when the caller sent one, otherwise the UTC day of the event timestamp.
func resolveDate(explicit string, ts time.Time) string {
	if explicit != "" {
		return explicit
	}
	return ts.UTC().Format("2006-01-02")
}

func localPart(email string) string {
	if local, _, found := strings.Cut(email, "@"); found && local != "" {
		return local
	}
	return email
}
