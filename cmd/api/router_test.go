package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"procurement/internal/config"
	"procurement/internal/testutil"
	"procurement/internal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		JWTSecret:          string(testutil.Secret),
		CORSAllowedOrigins: []string{"http://localhost:3000"},
		RoleCacheTTL:       time.Minute,
	}
	hub := websocket.NewHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	router := setupRouter(cfg, testutil.SetupTestDB(t), hub, zap.NewNop())

	get := func(path string, header map[string]string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		for k, v := range header {
			req.Header.Set(k, v)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w := get("/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"OK"}`, w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, get("/api/metrics/officer-metrics", nil).Code)

	token := testutil.SignToken(t, "user_1", "Ana", "ana@example.gov")
	w = get("/api/metrics/officer-metrics", map[string]string{
		"Authorization": "Bearer " + token,
		"Origin":        "http://localhost:3000",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.JSONEq(t, `{
		"totalSpend": 0.00,
		"purchaseRequestCount": 0,
		"officeQuotationsCount": 0,
		"supplierQuotationsCount": 0,
		"spendingData": []
	}`, w.Body.String())
}
