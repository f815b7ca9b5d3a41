package services

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/RohitDev96/profile/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const queryTimeout = 10 * time.Second

// ProfileInput carries the raw field values of a save request. Age stays
// untyped: clients send it as a number, a quoted number, or garbage, and
// normalization owns that decision.
type ProfileInput struct {
	Email        string
	FullName     string
	Phone        string
	Bio          string
	DOB          string
	Age          interface{}
	Gender       string
	ProfileImage string
}

type ProfileService struct {
	users *mongo.Collection
	now   func() time.Time
}

func NewProfileService(db *mongo.Database) *ProfileService {
	return &ProfileService{users: db.Collection("users"), now: time.Now}
}

// GetByEmail returns the profile stored for email, or ErrNotFound.
func (s *ProfileService) GetByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var profile models.UserProfile
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert replaces the whole profile for input.Email, creating it if absent.
// Omitted fields are written as null: last writer wins on the entire record,
// there is no partial merge.
func (s *ProfileService) Upsert(ctx context.Context, input ProfileInput) (*models.UserProfile, error) {
	if strings.TrimSpace(input.Email) == "" {
		return nil, ErrMissingEmail
	}

	profile := &models.UserProfile{
		Email:        input.Email,
		FullName:     nullIfEmpty(input.FullName),
		Phone:        nullIfEmpty(input.Phone),
		Bio:          nullIfEmpty(input.Bio),
		DOB:          nullIfEmpty(input.DOB),
		Age:          normalizeAge(input.Age),
		Gender:       nullIfEmpty(input.Gender),
		ProfileImage: nullIfEmpty(input.ProfileImage),
		UpdatedAt:    s.now().UTC(),
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	_, err := s.users.UpdateOne(ctx, bson.M{"email": input.Email}, bson.M{"$set": profile}, opts)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// normalizeAge converts whatever the client sent into an integer age, or nil
// when the value is not a finite number.
func normalizeAge(v interface{}) *int {
	var f float64
	switch age := v.(type) {
	case nil:
		return nil
	case float64:
		f = age
	case int:
		f = float64(age)
	case int64:
		f = float64(age)
	case string:
		trimmed := strings.TrimSpace(age)
		if trimmed == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	n := int(f)
	return &n
}
