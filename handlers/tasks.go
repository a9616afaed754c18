package handlers

import (
	"errors"
	"io"
	"net/http"

	"soulsync/models"
	"soulsync/services/tasks"
	"soulsync/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TaskHandler struct {
	Service tasks.TaskService
}

func NewTaskHandler(s tasks.TaskService) *TaskHandler {
	return &TaskHandler{Service: s}
}

func (h *TaskHandler) List(c *gin.Context) {
	list, err := h.Service.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		getLogger(c).Error("Failed to list tasks", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list tasks", "")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *TaskHandler) Create(c *gin.Context) {
	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	created, err := h.Service.Create(c.Request.Context(), task)
	if err != nil {
		h.fail(c, err, "Failed to create task")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *TaskHandler) Complete(c *gin.Context) {
	task, err := h.Service.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Failed to complete task")
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Failed to delete task")
		return
	}
	c.Status(http.StatusNoContent)
}

// Generate creates personalised tasks. The preferences body is optional.
func (h *TaskHandler) Generate(c *gin.Context) {
	var prefs models.TaskPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil && !errors.Is(err, io.EOF) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	generated, err := h.Service.GeneratePersonalized(c.Request.Context(), prefs)
	if err != nil {
		h.fail(c, err, "Failed to generate tasks")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"tasks": generated})
}

func (h *TaskHandler) fail(c *gin.Context, err error, message string) {
	var verr *tasks.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.JSONError(c, http.StatusBadRequest, "Invalid task", verr.Error())
	case errors.Is(err, tasks.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Task not found", c.Param("id"))
	case errors.Is(err, tasks.ErrGenerationUnavailable):
		utils.JSONError(c, http.StatusServiceUnavailable, message, err.Error())
	case errors.Is(err, tasks.ErrGenerationFailed):
		utils.JSONError(c, http.StatusBadGateway, message, "The assistant could not produce tasks right now. Please try again.")
	default:
		getLogger(c).Error(message, zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, message, "")
	}
}
