package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/syntaxscout-api/internal/service"
)

type storedToken string

func (s storedToken) Token(context.Context) string { return string(s) }

func gatedRouter(tokens tokenSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Gate(tokens))
	router.GET("/dashboard", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextTokenKey))
	})
	return router
}

func TestGateRejectsWithoutToken(t *testing.T) {
	recorder := httptest.NewRecorder()
	gatedRouter(storedToken("")).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Please log in to continue.")
}

func TestGateAcceptsBearerOrStoredToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	recorder := httptest.NewRecorder()
	gatedRouter(storedToken("stored")).ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "header-token", recorder.Body.String())

	recorder = httptest.NewRecorder()
	gatedRouter(storedToken("stored")).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "stored", recorder.Body.String())
}

func TestGateRejectsMalformedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Basic abc")
	recorder := httptest.NewRecorder()
	gatedRouter(storedToken("stored")).ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestMetricsRecordsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := service.NewMetricsService()
	router := gin.New()
	router.Use(Metrics(metrics))
	router.GET("/ping", func(c *gin.Context) {
		time.Sleep(time.Millisecond)
		c.Status(http.StatusNoContent)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	snap := metrics.Snapshot()
	assert.Equal(t, uint64(2), snap.RequestsTotal)
	assert.Greater(t, snap.AverageRequestDurationMs, 0.0)
}
