package api

import (
	"net/http"

	"alcyxob/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the handlers into the gin engine.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	workoutService service.WorkoutService,
) {
	authHandler := NewAuthHandler(authService)
	workoutHandler := NewWorkoutHandler(workoutService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		// GET /api/v1/me - the caller's profile
		protected.GET("/me", authHandler.Me)

		workoutGroup := protected.Group("/workouts")
		{
			// POST /api/v1/workouts - submit one sensor packet
			workoutGroup.POST("", workoutHandler.SubmitWorkout)
			// GET /api/v1/workouts - the caller's history, newest first
			workoutGroup.GET("", workoutHandler.GetWorkouts)
			// GET /api/v1/workouts/export - text report via presigned URL
			workoutGroup.GET("/export", workoutHandler.ExportWorkouts)
		}
	}
}
