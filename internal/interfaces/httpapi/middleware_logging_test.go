package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/league-history/internal/platform/logging"
)

func TestRequestLogging_RecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Options{Format: logging.FormatJSON, Level: logging.LevelInfo, Output: &buf})

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	req := httptest.NewRequest(http.MethodGet, "/v1/history", nil)
	rec := httptest.NewRecorder()

	RequestLogging(logger, next).ServeHTTP(rec, req)

	line := buf.String()
	if !strings.Contains(line, `"status":418`) {
		t.Fatalf("expected status in log line, got %s", line)
	}
	if !strings.Contains(line, `"path":"/v1/history"`) {
		t.Fatalf("expected path in log line, got %s", line)
	}
}
