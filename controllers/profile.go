package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/RohitDev96/profile/models"
	"github.com/RohitDev96/profile/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ProfileStore is what the profile endpoints need from the storage layer.
type ProfileStore interface {
	GetByEmail(ctx context.Context, email string) (*models.UserProfile, error)
	Upsert(ctx context.Context, input services.ProfileInput) (*models.UserProfile, error)
}

type saveProfileRequest struct {
	Email        string      `json:"email" validate:"required"`
	FullName     string      `json:"fullName"`
	Phone        string      `json:"phone"`
	Bio          string      `json:"bio"`
	DOB          string      `json:"dob"`
	Age          interface{} `json:"age"`
	Gender       string      `json:"gender"`
	ProfileImage string      `json:"profileImage"`
}

// GetProfileByEmail looks up a profile. A missing record is an "empty"
// response, never an error.
func GetProfileByEmail(store ProfileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")

		profile, err := store.GetByEmail(c.Request.Context(), email)
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"status": "empty"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "profile": profile})
	}
}

// SaveProfileByEmail creates or wholly replaces the profile for the given
// email.
func SaveProfileByEmail(store ProfileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req saveProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid request body"})
			return
		}
		if err := validate.Struct(req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "email is required"})
			return
		}

		profile, err := store.Upsert(c.Request.Context(), services.ProfileInput{
			Email:        req.Email,
			FullName:     req.FullName,
			Phone:        req.Phone,
			Bio:          req.Bio,
			DOB:          req.DOB,
			Age:          req.Age,
			Gender:       req.Gender,
			ProfileImage: req.ProfileImage,
		})
		if errors.Is(err, services.ErrMissingEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err.Error()})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "email": profile.Email})
	}
}
