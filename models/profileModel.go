package models

import "time"

// UserProfile is the single document stored per email in the users
// collection. Optional fields are pointers so an omitted value round-trips as
// BSON null, which the collection validator expects.
type UserProfile struct {
	Email        string    `bson:"email" json:"email"`
	FullName     *string   `bson:"fullName" json:"fullName"`
	Phone        *string   `bson:"phone" json:"phone"`
	Bio          *string   `bson:"bio" json:"bio"`
	DOB          *string   `bson:"dob" json:"dob"`
	Age          *int      `bson:"age" json:"age"`
	Gender       *string   `bson:"gender" json:"gender"`
	ProfileImage *string   `bson:"profileImage" json:"profileImage"` // base64 payload
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
