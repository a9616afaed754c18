// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Chat endpoints
	CreateChatSession gin.HandlerFunc
	GetChatMessages   gin.HandlerFunc
	SendChatMessage   gin.HandlerFunc
	GetQuickReplies   gin.HandlerFunc
	GetSuggestions    gin.HandlerFunc

	// Mood endpoints
	LogMood           gin.HandlerFunc
	ListMoods         gin.HandlerFunc
	GetDashboard      gin.HandlerFunc
	GetRecommendation gin.HandlerFunc
	ClassifyMood      gin.HandlerFunc

	// Task endpoints
	ListTasks     gin.HandlerFunc
	CreateTask    gin.HandlerFunc
	CompleteTask  gin.HandlerFunc
	DeleteTask    gin.HandlerFunc
	GenerateTasks gin.HandlerFunc

	// Therapist endpoints
	SearchTherapists gin.HandlerFunc
	ListSpecialties  gin.HandlerFunc
	GetTherapist     gin.HandlerFunc
	CreateTherapist  gin.HandlerFunc

	Health gin.HandlerFunc
}
