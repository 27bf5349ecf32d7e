package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestTraceIDMiddlewareSetsHeaderAndContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("trace_id"))
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	header := w.Header().Get("X-Trace-ID")
	if _, err := uuid.Parse(header); err != nil {
		t.Fatalf("X-Trace-ID is not a uuid: %q", header)
	}
	if w.Body.String() != header {
		t.Fatalf("context trace id %q does not match header %q", w.Body.String(), header)
	}
}
