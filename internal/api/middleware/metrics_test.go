package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observed struct {
	method, route, status string
}

type recordingObserver struct {
	calls []observed
}

func (o *recordingObserver) ObserveHTTPRequest(method, route, status string, _ time.Duration) {
	o.calls = append(o.calls, observed{method: method, route: route, status: status})
}

func TestMetricsMiddleware(t *testing.T) {
	obs := &recordingObserver{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(obs))
	r.HandleFunc("/time-slots/{slotId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)
	r.HandleFunc("/catalog", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{}"))
	}).Methods(http.MethodGet)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/time-slots/mon-08-09", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/catalog", nil))

	require.Len(t, obs.calls, 2)
	assert.Equal(t, observed{method: "GET", route: "/time-slots/{slotId}", status: "404"}, obs.calls[0])
	assert.Equal(t, observed{method: "GET", route: "/catalog", status: "200"}, obs.calls[1])
}
