package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PredictionRecord holds one wellness snapshot per user per day. The
// (email, date) pair is the unique key; name and age are denormalized from
// the user's profile at write time.
type PredictionRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Email      string             `bson:"email" json:"email"`
	Date       string             `bson:"date" json:"date"` // YYYY-MM-DD (UTC)
	Name       string             `bson:"name" json:"name"`
	Age        *int               `bson:"age" json:"age"`
	Prediction interface{}        `bson:"prediction" json:"prediction"`
	Inputs     interface{}        `bson:"inputs" json:"inputs"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"` // first insert only
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
