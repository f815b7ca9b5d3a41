package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/RohitDev96/profile/models"
	"github.com/RohitDev96/profile/services"

	"github.com/gin-gonic/gin"
)

// PredictionStore is what the prediction endpoints need from the storage
// layer.
type PredictionStore interface {
	UpsertForDay(ctx context.Context, input services.PredictionInput) (services.UpsertResult, error)
	ListByEmail(ctx context.Context, email string) ([]models.PredictionRecord, error)
}

type savePredictionRequest struct {
	Email      string      `json:"email" validate:"required"`
	Prediction interface{} `json:"prediction"`
	Inputs     interface{} `json:"inputs"`
	Timestamp  *time.Time  `json:"timestamp"`
	Date       string      `json:"date"`
}

// SavePrediction stores the day's wellness snapshot for a user, replacing an
// earlier snapshot from the same day.
func SavePrediction(store PredictionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req savePredictionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid request body"})
			return
		}
		if err := validate.Struct(req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "email is required"})
			return
		}
		if req.Date != "" {
			if _, err := time.Parse("2006-01-02", req.Date); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "date must be YYYY-MM-DD"})
				return
			}
		}

		result, err := store.UpsertForDay(c.Request.Context(), services.PredictionInput{
			Email:      req.Email,
			Prediction: req.Prediction,
			Inputs:     req.Inputs,
			Timestamp:  req.Timestamp,
			Date:       req.Date,
		})
		if errors.Is(err, services.ErrMissingEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err.Error()})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"email":   req.Email,
			"date":    result.Date,
			"updated": result.Updated,
			"created": result.Created,
		})
	}
}

// GetPredictionsByEmail lists a user's snapshots, most recent day first.
func GetPredictionsByEmail(store PredictionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")

		predictions, err := store.ListByEmail(c.Request.Context(), email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "predictions": predictions})
	}
}
