package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"soulsync/models"
	"soulsync/services/mood"
	"soulsync/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MoodJournal is the mood tracking surface used by MoodHandler.
type MoodJournal interface {
	LogMood(ctx context.Context, entry models.MoodEntry) (*models.MoodEntry, error)
	RecentMoods(ctx context.Context, limit int) ([]models.MoodEntry, error)
	Dashboard(ctx context.Context) (*mood.Dashboard, error)
	Recommendation(ctx context.Context) (mood.Recommendation, error)
}

type MoodHandler struct {
	Journal MoodJournal
}

func NewMoodHandler(j MoodJournal) *MoodHandler {
	return &MoodHandler{Journal: j}
}

type classifyRequest struct {
	Text string `json:"text"`
}

func (h *MoodHandler) LogMood(c *gin.Context) {
	var entry models.MoodEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	saved, err := h.Journal.LogMood(c.Request.Context(), entry)
	var verr *mood.ValidationError
	if errors.As(err, &verr) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid mood entry", verr.Error())
		return
	}
	if err != nil {
		getLogger(c).Error("Failed to log mood", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to log mood", "")
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *MoodHandler) ListMoods(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid limit", raw)
			return
		}
		limit = n
	}
	entries, err := h.Journal.RecentMoods(c.Request.Context(), limit)
	if err != nil {
		getLogger(c).Error("Failed to list moods", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list moods", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"moods": entries})
}

func (h *MoodHandler) Dashboard(c *gin.Context) {
	d, err := h.Journal.Dashboard(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to build dashboard", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load dashboard", "")
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *MoodHandler) Recommendation(c *gin.Context) {
	rec, err := h.Journal.Recommendation(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to build recommendation", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load recommendation", "")
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Classify reports the mood detected in arbitrary text without storing anything.
func (h *MoodHandler) Classify(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	m := mood.Classify(req.Text)
	c.JSON(http.StatusOK, gin.H{
		"mood":     m,
		"isCrisis": m == models.MoodCrisis,
		"color":    mood.ColorFor(m),
	})
}
