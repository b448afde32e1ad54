package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveGeneration(t *testing.T) {
	m := New()

	m.ObserveGeneration(OutcomeSuccess, time.Millisecond, []string{"component", "test"})
	m.ObserveGeneration(OutcomeInvalid, time.Millisecond, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.generations.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.generations.WithLabelValues(OutcomeInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.artifacts.WithLabelValues("test")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration), "one histogram series")
}

func TestUsageCounters(t *testing.T) {
	m := New()
	m.UsageRecorded("generate")
	m.UsageRecorded("generate")
	m.UsageDropped()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.usageEvents.WithLabelValues("generate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.droppedEvents))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveGeneration(OutcomeSuccess, time.Millisecond, []string{"component"})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `compgen_generations_total{outcome="success"} 1`))
}
