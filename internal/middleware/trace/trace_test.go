package trace

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	applog "cakue/internal/log"
)

func newTraced(t *testing.T, status int) (*Middleware, http.Handler, *bytes.Buffer, *string) {
	t.Helper()
	var buf bytes.Buffer
	logger := applog.New(applog.Config{Level: slog.LevelDebug, Output: &buf})
	m := NewMiddleware(func(*http.Request) string { return "192.0.2.1" }, logger)

	var seen string
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
		w.WriteHeader(status)
	}))
	return m, h, &buf, &seen
}

func TestMiddleware_GeneratesRequestID(t *testing.T) {
	m, h, buf, seen := newTraced(t, http.StatusCreated)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/accounts", nil))

	id := rec.Header().Get(HeaderRequestID)
	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, *seen)
	assert.Contains(t, buf.String(), "status_code=201")
	assert.Equal(t, int64(1), m.GetMetrics().TotalRequests)
}

func TestMiddleware_HonoursIncomingRequestID(t *testing.T) {
	_, h, _, seen := newTraced(t, http.StatusOK)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "client-abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "client-abc-123", rec.Header().Get(HeaderRequestID))
	assert.Equal(t, "client-abc-123", *seen)
}

func TestMiddleware_RejectsOddIncomingRequestID(t *testing.T) {
	_, h, _, _ := newTraced(t, http.StatusOK)

	for _, bad := range []string{"has space", strings.Repeat("x", 200)} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, bad)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.NotEqual(t, bad, rec.Header().Get(HeaderRequestID))
	}
}

func TestMiddleware_CountsServerErrors(t *testing.T) {
	m, h, buf, _ := newTraced(t, http.StatusInternalServerError)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, int64(1), m.GetMetrics().ServerErrors)
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestGetRequestID_Empty(t *testing.T) {
	assert.Empty(t, RequestIDFromRequest(httptest.NewRequest(http.MethodGet, "/", nil)))
}
