package prometheus

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/ReactionIQ/internal/infrastructure/monitoring/logging"
)

func newTestCollector(t *testing.T) MetricsCollector {
	t.Helper()
	c, err := NewMetricsCollector(CollectorConfig{Namespace: "reactioniq"}, logging.NewNopLogger())
	require.NoError(t, err)
	return c
}

func scrape(t *testing.T, c MetricsCollector) string {
	t.Helper()
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return string(body)
}

func TestNewMetricsCollector_RequiresNamespace(t *testing.T) {
	_, err := NewMetricsCollector(CollectorConfig{}, nil)
	assert.Error(t, err)
}

func TestCounter_Exposition(t *testing.T) {
	c := newTestCollector(t)
	vec := c.RegisterCounter("balance_attempts_total", "Balancing attempts", "status")
	vec.WithLabelValues("success").Inc()
	vec.WithLabelValues("error").Add(2)

	out := scrape(t, c)
	assert.Contains(t, out, `reactioniq_balance_attempts_total{status="success"} 1`)
	assert.Contains(t, out, `reactioniq_balance_attempts_total{status="error"} 2`)
}

func TestGauge_Exposition(t *testing.T) {
	c := newTestCollector(t)
	g := c.RegisterGauge("active_analyses", "Analyses in flight").WithLabelValues()
	g.Inc()
	g.Inc()
	g.Dec()

	assert.Contains(t, scrape(t, c), "reactioniq_active_analyses 1")
}

func TestHistogram_Exposition(t *testing.T) {
	c := newTestCollector(t)
	h := c.RegisterHistogram("balance_duration_seconds", "Balancing duration", []float64{0.01, 0.1, 1})
	h.WithLabelValues().Observe(0.05)

	out := scrape(t, c)
	assert.Contains(t, out, "reactioniq_balance_duration_seconds_count 1")
	assert.Contains(t, out, `le="0.1"`)
}

func TestRegister_ZeroLabelSeriesExposedImmediately(t *testing.T) {
	c := newTestCollector(t)
	c.RegisterCounter("idle_total", "never incremented")
	c.RegisterGauge("idle_level", "never set")
	c.RegisterHistogram("idle_seconds", "never observed", nil)

	// Unlabelled series must scrape at zero without a first write.
	out := scrape(t, c)
	assert.Contains(t, out, "reactioniq_idle_total 0")
	assert.Contains(t, out, "reactioniq_idle_level 0")
	assert.Contains(t, out, "reactioniq_idle_seconds_count 0")
}

func TestRegister_DuplicateNameReturnsExisting(t *testing.T) {
	c := newTestCollector(t)
	first := c.RegisterCounter("dup_total", "dup", "l")
	second := c.RegisterCounter("dup_total", "dup", "l")

	first.WithLabelValues("a").Inc()
	second.WithLabelValues("a").Inc()

	// Both handles feed the same series.
	assert.Contains(t, scrape(t, c), `reactioniq_dup_total{l="a"} 2`)
}

func TestRegister_ConflictFallsBackToNoop(t *testing.T) {
	c := newTestCollector(t)
	c.RegisterCounter("clash_total", "as counter")
	// Same name, different type: registration fails and the caller gets a
	// no-op instead of a panic.
	g := c.RegisterGauge("clash_total", "as gauge")
	assert.NotPanics(t, func() { g.WithLabelValues().Set(1) })
}

func TestTimer_ObservesElapsed(t *testing.T) {
	c := newTestCollector(t)
	h := c.RegisterHistogram("op_seconds", "op", nil).WithLabelValues()

	timer := NewTimer(h)
	time.Sleep(time.Millisecond)
	timer.ObserveDuration()

	assert.Contains(t, scrape(t, c), "reactioniq_op_seconds_count 1")
}

func TestTimer_NilHistogramSafe(t *testing.T) {
	assert.NotPanics(t, func() { NewTimer(nil).ObserveDuration() })
}
