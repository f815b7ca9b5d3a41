package routes

import (
	"strings"

	"github.com/RohitDev96/profile/config"
	"github.com/RohitDev96/profile/controllers"
	"github.com/RohitDev96/profile/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Dependencies holds everything the router needs, injected from main.
type Dependencies struct {
	Config      config.Config
	Profiles    controllers.ProfileStore
	Predictions controllers.PredictionStore
}

func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware(deps.Config.CORSAllowOrigins))
	r.Use(middleware.RequestID())
	r.Use(middleware.BodyLimit(deps.Config.MaxBodyBytes))

	r.GET("/", controllers.Health())
	r.GET("/get-profile-by-email/:email", controllers.GetProfileByEmail(deps.Profiles))
	r.GET("/get-predictions/:email", controllers.GetPredictionsByEmail(deps.Predictions))

	protected := r.Group("/")
	protected.Use(middleware.Authenticate(deps.Config.RequireAuth))
	{
		protected.POST("/save-profile-by-email", controllers.SaveProfileByEmail(deps.Profiles))
		protected.POST("/savePrediction", controllers.SavePrediction(deps.Predictions))
	}

	return r
}

func corsMiddleware(allowOrigins string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	if allowOrigins == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = strings.Split(allowOrigins, ",")
	}
	return cors.New(cfg)
}
