package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Arun-hash30/Attendence-helix/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type healthEnvelope struct {
	OK    bool              `json:"ok"`
	Data  map[string]string `json:"data"`
	Error *struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func runHealth(t *testing.T, h gin.HandlerFunc) (*httptest.ResponseRecorder, healthEnvelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil).WithContext(context.Background())
	r.ServeHTTP(w, req)

	var env healthEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestHealthHandler_DatabaseUpWithoutRedis(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	assert.NoError(t, err)
	defer db.Close()
	mock.ExpectPing()

	w, env := runHealth(t, healthHandler(db, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.OK)
	assert.Equal(t, "up", env.Data["database"])
	assert.Equal(t, "disabled", env.Data["redis"])
}

func TestHealthHandler_RedisDown(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	assert.NoError(t, err)
	defer db.Close()
	mock.ExpectPing()

	rdb, rmock := redismock.NewClientMock()
	rmock.ExpectPing().SetErr(errors.New("connection refused"))

	w, env := runHealth(t, healthHandler(db, rdb))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "down", env.Data["redis"])
}

func TestHealthHandler_DatabaseDown(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	assert.NoError(t, err)
	defer db.Close()
	mock.ExpectPing().WillReturnError(errors.New("no route to host"))

	w, env := runHealth(t, healthHandler(db, nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.False(t, env.OK)
	assert.Equal(t, "SERVICE_UNAVAILABLE", env.Error.Code)
	assert.Equal(t, "down", env.Error.Details["database"])
}

func TestCORS_PreflightFromAllowedOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(cors.New(corsConfig(config.ServerConfig{AllowedOrigins: []string{"http://localhost:5173"}})))
	r.POST("/api/v1/leave/apply/1", func(c *gin.Context) { c.Status(http.StatusCreated) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/leave/apply/1", nil).WithContext(context.Background())
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Idempotency-Key")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_RejectsUnknownOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(cors.New(corsConfig(config.ServerConfig{AllowedOrigins: []string{"http://localhost:5173"}})))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil).WithContext(context.Background())
	req.Header.Set("Origin", "https://evil.example")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
