package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/RohitDev96/profile/config"
	"github.com/RohitDev96/profile/models"
	"github.com/RohitDev96/profile/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubProfileStore struct{}

func (stubProfileStore) GetByEmail(context.Context, string) (*models.UserProfile, error) {
	return nil, services.ErrNotFound
}

func (stubProfileStore) Upsert(_ context.Context, input services.ProfileInput) (*models.UserProfile, error) {
	return &models.UserProfile{Email: input.Email}, nil
}

type stubPredictionStore struct{}

func (stubPredictionStore) UpsertForDay(_ context.Context, input services.PredictionInput) (services.UpsertResult, error) {
	return services.UpsertResult{Date: "2025-03-02", Created: 1}, nil
}

func (stubPredictionStore) ListByEmail(context.Context, string) ([]models.PredictionRecord, error) {
	return []models.PredictionRecord{}, nil
}

func testRouter() *gin.Engine {
	return SetupRouter(Dependencies{
		Config: config.Config{
			CORSAllowOrigins: "*",
			MaxBodyBytes:     1 << 20,
		},
		Profiles:    stubProfileStore{},
		Predictions: stubPredictionStore{},
	})
}

func TestRouterWiresAllEndpoints(t *testing.T) {
	r := testRouter()

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodGet, "/get-profile-by-email/a@b.c", "", http.StatusOK},
		{http.MethodGet, "/get-predictions/a@b.c", "", http.StatusOK},
		{http.MethodPost, "/save-profile-by-email", `{"email":"a@b.c"}`, http.StatusOK},
		{http.MethodPost, "/savePrediction", `{"email":"a@b.c"}`, http.StatusOK},
	}

	for _, tt := range tests {
		var req *http.Request
		if tt.body == "" {
			req = httptest.NewRequest(tt.method, tt.path, nil)
		} else {
			req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equalf(t, tt.want, w.Code, "%s %s", tt.method, tt.path)
	}
}

func TestRouterLiveness(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "MindMetrics Profile API")
}

func TestRouterSetsRequestID(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}
