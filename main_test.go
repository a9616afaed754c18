package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"soulsync/handlers"
	"soulsync/routes"
	"soulsync/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRouterPanicReturnsJSONError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	utils.Logger = zap.NewNop()
	hb := &handlers.HandlerBundle{
		Health: func(c *gin.Context) { panic("health check exploded") },
	}
	router := newRouter(zap.NewNop(), hb, routes.Options{RequestsPerMin: 1000})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal Server Error", body.Message)
	assert.NotEmpty(t, body.Details)
	assert.Equal(t, w.Header().Get("X-Request-ID"), body.RequestID)
	assert.NotEmpty(t, body.RequestID)
}
