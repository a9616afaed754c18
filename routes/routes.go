package routes

import (
	"time"

	"soulsync/handlers"
	"soulsync/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterChatRoutes registers companion chat endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("/sessions", hb.CreateChatSession)
		api.GET("/sessions/:sessionID/messages", hb.GetChatMessages)
		api.POST("/sessions/:sessionID/messages", hb.SendChatMessage)
		api.GET("/quick-replies", hb.GetQuickReplies)
		api.GET("/suggestions/:mood", hb.GetSuggestions)
	}
}

// RegisterMoodRoutes registers mood journal endpoints.
func RegisterMoodRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/moods")
	{
		api.POST("", hb.LogMood)
		api.GET("", hb.ListMoods)
		api.GET("/dashboard", hb.GetDashboard)
		api.GET("/recommendation", hb.GetRecommendation)
		api.POST("/classify", hb.ClassifyMood)
	}
}

// RegisterTaskRoutes registers wellness task endpoints.
func RegisterTaskRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tasks")
	{
		api.GET("", hb.ListTasks)
		api.POST("", hb.CreateTask)
		api.POST("/generate", hb.GenerateTasks)
		api.PATCH("/:id/complete", hb.CompleteTask)
		api.DELETE("/:id", hb.DeleteTask)
	}
}

// RegisterTherapistRoutes registers directory endpoints. Search resolves the
// caller's origin first.
func RegisterTherapistRoutes(r *gin.Engine, hb *handlers.HandlerBundle, locate middleware.IPLocator) {
	api := r.Group("/api/therapists")
	{
		api.GET("", middleware.GeolocationMiddleware(locate), hb.SearchTherapists)
		api.GET("/specialties", hb.ListSpecialties)
		api.GET("/:id", hb.GetTherapist)
		api.POST("", hb.CreateTherapist)
	}
}

// RegisterHealthRoute registers health and metrics endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Options tunes the global middleware stack.
type Options struct {
	RequestsPerMin int
	// Locate resolves client IPs to coordinates; nil disables the IP fallback.
	Locate middleware.IPLocator
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, opts Options) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)

	// Routes registered after this point are rate limited.
	r.Use(middleware.RateLimitMiddleware(opts.RequestsPerMin))
	RegisterChatRoutes(r, hb)
	RegisterMoodRoutes(r, hb)
	RegisterTaskRoutes(r, hb)
	RegisterTherapistRoutes(r, hb, opts.Locate)
}
