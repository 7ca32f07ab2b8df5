package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Delete("/custom/{key}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodDelete, "/custom/{key}", "202")
	before := testutil.ToFloat64(counter)

	for _, key := range []string{"morning", "day_1", "03-11"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/custom/"+key, nil))
		assert.Equal(t, http.StatusAccepted, rec.Code)
	}

	assert.Equal(t, before+3, testutil.ToFloat64(counter), "Concrete keys collapse into one series")
	assert.Equal(t, float64(0), testutil.ToFloat64(HTTPRequestsInFlight))
}
