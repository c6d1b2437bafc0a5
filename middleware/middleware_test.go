package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestRequestIDGenerated(t *testing.T) {
	router := setupTestRouter()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	router.ServeHTTP(w, req)

	requestID := w.Header().Get(RequestIDHeader)
	assert.Len(t, requestID, 36, "Generated request IDs are UUIDs")
	assert.Equal(t, requestID, w.Body.String(), "Handlers see the same ID as the response header")
}

func TestRequestIDPropagated(t *testing.T) {
	router := setupTestRouter()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	req.Header.Set(RequestIDHeader, "upstream-123")
	router.ServeHTTP(w, req)

	assert.Equal(t, "upstream-123", w.Header().Get(RequestIDHeader))
}

func TestRequestLoggerLevels(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		expectedLevel zapcore.Level
	}{
		{"success logs info", http.StatusOK, zapcore.InfoLevel},
		{"client error logs warn", http.StatusNotFound, zapcore.WarnLevel},
		{"server error logs error", http.StatusInternalServerError, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			router := setupTestRouter()
			router.Use(RequestID(), RequestLogger(zap.New(core)))
			router.GET("/status", func(c *gin.Context) { c.Status(tt.status) })

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/status?verbose=1", nil)
			router.ServeHTTP(w, req)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.expectedLevel, entry.Level)
			assert.Equal(t, "http_request", entry.Message)

			fields := entry.ContextMap()
			assert.Equal(t, "GET", fields["method"])
			assert.Equal(t, "/status", fields["path"])
			assert.Equal(t, "verbose=1", fields["query"])
			assert.Equal(t, int64(tt.status), fields["status"])
			assert.NotEmpty(t, fields["request_id"])
		})
	}
}

func TestPrometheusMiddlewareCountsRequests(t *testing.T) {
	router := setupTestRouter()
	router.Use(PrometheusMiddleware())
	router.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	counter := httpRequestsTotal.WithLabelValues("GET", "/items/:id", "200")
	before := promtestutil.ToFloat64(counter)

	for _, id := range []string{"1", "2", "3"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/items/"+id, nil)
		router.ServeHTTP(w, req)
	}

	assert.Equal(t, before+3, promtestutil.ToFloat64(counter), "Requests are grouped by route template")

	unmatched := httpRequestsTotal.WithLabelValues("GET", "unmatched", "404")
	beforeUnmatched := promtestutil.ToFloat64(unmatched)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/nowhere", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, beforeUnmatched+1, promtestutil.ToFloat64(unmatched))
}

func TestRecordStoreOperation(t *testing.T) {
	ok := storeOperations.WithLabelValues("product", "create", "success")
	failed := storeOperations.WithLabelValues("product", "create", "error")
	okBefore, failedBefore := promtestutil.ToFloat64(ok), promtestutil.ToFloat64(failed)

	RecordStoreOperation("product", "create", true)
	RecordStoreOperation("product", "create", false)
	RecordStoreOperation("product", "create", true)

	assert.Equal(t, okBefore+2, promtestutil.ToFloat64(ok))
	assert.Equal(t, failedBefore+1, promtestutil.ToFloat64(failed))
}

func TestCORSAllowedOrigin(t *testing.T) {
	router := setupTestRouter()
	router.Use(CORS([]string{"https://shop.example.com"}))
	router.GET("/products", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("OPTIONS", "/products", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://shop.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/products", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "Unknown origins are rejected")
}

func TestCORSWildcard(t *testing.T) {
	router := setupTestRouter()
	router.Use(CORS([]string{"*"}))
	router.GET("/products", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/products", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
