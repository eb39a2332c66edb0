package rest_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/RecipeBox/pkg/server/rest"
)

func TestRequestLogger(t *testing.T) {
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)

	handler := middleware.RequestID(rest.RequestLogger(zap.New(observedZapCore))(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
			_, _ = w.Write([]byte("short and stout"))
		})))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/tags/", nil))

	entries := observedLogs.FilterMessage("request served").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/api/tags/", fields["path"])
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
	assert.Equal(t, int64(len("short and stout")), fields["bytes"])
	assert.NotEmpty(t, fields["request_id"])
}

func TestRequestLogger_WarnsOnServerErrors(t *testing.T) {
	observedZapCore, observedLogs := observer.New(zap.WarnLevel)

	handler := rest.RequestLogger(zap.New(observedZapCore))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/recipes/", nil))

	assert.Equal(t, 1, observedLogs.FilterMessage("request served").Len())
}
