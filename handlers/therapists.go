package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"soulsync/middleware"
	"soulsync/models"
	"soulsync/services/therapist"
	"soulsync/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TherapistHandler struct {
	Service therapist.DirectoryService
}

func NewTherapistHandler(s therapist.DirectoryService) *TherapistHandler {
	return &TherapistHandler{Service: s}
}

// Search lists therapists matching q, specialty and maxDistance. Distance
// filtering applies only when the request has a resolved origin. An absent
// maxDistance means the default radius; an explicit 0 is kept.
func (h *TherapistHandler) Search(c *gin.Context) {
	query := models.GeoQuery{
		SearchText:    c.Query("q"),
		Specialty:     c.DefaultQuery("specialty", models.SpecialtyAll),
		Origin:        middleware.OriginFrom(c),
		MaxDistanceKm: models.DefaultMaxDistanceKm,
	}
	if raw, ok := c.GetQuery("maxDistance"); ok {
		d, err := strconv.ParseFloat(raw, 64)
		if err != nil || d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid maxDistance", raw)
			return
		}
		query.MaxDistanceKm = d
	}

	results, err := h.Service.Search(c.Request.Context(), query)
	if err != nil {
		getLogger(c).Error("Therapist search failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to search therapists", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results, "origin": query.Origin})
}

func (h *TherapistHandler) Specialties(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"specialties": h.Service.Specialties()})
}

func (h *TherapistHandler) Get(c *gin.Context) {
	id := c.Param("id")
	t, err := h.Service.Get(c.Request.Context(), id)
	if errors.Is(err, therapist.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Therapist not found", id)
		return
	}
	if err != nil {
		getLogger(c).Error("Failed to get therapist", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get therapist", "")
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TherapistHandler) Create(c *gin.Context) {
	var t models.Therapist
	if err := c.ShouldBindJSON(&t); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	created, err := h.Service.Create(c.Request.Context(), t)
	if errors.Is(err, therapist.ErrInvalidName) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid therapist", err.Error())
		return
	}
	if err != nil {
		getLogger(c).Error("Failed to create therapist", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create therapist", "")
		return
	}
	c.JSON(http.StatusCreated, created)
}
