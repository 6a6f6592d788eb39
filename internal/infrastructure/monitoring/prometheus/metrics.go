package prometheus

import "time"

// EngineMetrics holds every metric the analysis engine emits.
type EngineMetrics struct {
	// Parsing
	EquationsParsedTotal CounterVec

	// Balancing
	BalanceAttemptsTotal CounterVec
	BalanceDuration      HistogramVec
	BalanceCoefficients  HistogramVec

	// Classification
	ClassificationsTotal     CounterVec
	ClassificationDuration   HistogramVec
	ClassificationConfidence HistogramVec
	RuleFailuresTotal        CounterVec

	// Reports
	ReportsGeneratedTotal CounterVec
}

var (
	// DefaultComputeBuckets covers in-process numeric work, which finishes in
	// well under a second for any realistic equation.
	DefaultComputeBuckets = []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1, .25, 1}

	// DefaultCoefficientBuckets covers the integer coefficients produced by
	// balancing.
	DefaultCoefficientBuckets = []float64{1, 2, 3, 5, 10, 25, 50, 100, 500, 1000}

	// DefaultConfidenceBuckets covers classification confidence scores.
	DefaultConfidenceBuckets = []float64{.1, .2, .3, .4, .5, .6, .7, .8, .9, .95, 1}
)

// NewEngineMetrics registers every engine metric with collector.
func NewEngineMetrics(collector MetricsCollector) *EngineMetrics {
	m := &EngineMetrics{}

	m.EquationsParsedTotal = collector.RegisterCounter("equations_parsed_total", "Equations parsed", "status")

	m.BalanceAttemptsTotal = collector.RegisterCounter("balance_attempts_total", "Balancing attempts", "status")
	m.BalanceDuration = collector.RegisterHistogram("balance_duration_seconds", "Balancing duration", DefaultComputeBuckets, "status")
	m.BalanceCoefficients = collector.RegisterHistogram("balance_max_coefficient", "Largest coefficient produced by balancing", DefaultCoefficientBuckets)

	m.ClassificationsTotal = collector.RegisterCounter("classifications_total", "Classifications by primary type", "type")
	m.ClassificationDuration = collector.RegisterHistogram("classification_duration_seconds", "Classification duration", DefaultComputeBuckets)
	m.ClassificationConfidence = collector.RegisterHistogram("classification_confidence", "Primary-type confidence", DefaultConfidenceBuckets, "type")
	m.RuleFailuresTotal = collector.RegisterCounter("rule_failures_total", "Expert-rule predicate failures", "type")

	m.ReportsGeneratedTotal = collector.RegisterCounter("reports_generated_total", "Analysis reports generated", "status")

	return m
}

// ─────────────────────────────────────────────────────────────────────────────
// Recording helpers
// ─────────────────────────────────────────────────────────────────────────────

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordParse counts one equation-parse outcome.
func RecordParse(m *EngineMetrics, err error) {
	if m == nil {
		return
	}
	m.EquationsParsedTotal.WithLabelValues(statusLabel(err)).Inc()
}

// RecordBalance counts one balancing outcome and, on success, the largest
// coefficient produced.
func RecordBalance(m *EngineMetrics, duration time.Duration, coefficients []int64, err error) {
	if m == nil {
		return
	}
	status := statusLabel(err)
	m.BalanceAttemptsTotal.WithLabelValues(status).Inc()
	m.BalanceDuration.WithLabelValues(status).Observe(duration.Seconds())
	if err == nil && len(coefficients) > 0 {
		max := coefficients[0]
		for _, c := range coefficients[1:] {
			if c > max {
				max = c
			}
		}
		m.BalanceCoefficients.WithLabelValues().Observe(float64(max))
	}
}

// RecordClassification counts one classification by primary type and records
// its confidence and duration.
func RecordClassification(m *EngineMetrics, primaryType string, confidence float64, duration time.Duration, ruleFailures []string) {
	if m == nil {
		return
	}
	m.ClassificationsTotal.WithLabelValues(primaryType).Inc()
	m.ClassificationDuration.WithLabelValues().Observe(duration.Seconds())
	m.ClassificationConfidence.WithLabelValues(primaryType).Observe(confidence)
	for _, rt := range ruleFailures {
		m.RuleFailuresTotal.WithLabelValues(rt).Inc()
	}
}

// RecordReport counts one analysis-report outcome.
func RecordReport(m *EngineMetrics, err error) {
	if m == nil {
		return
	}
	m.ReportsGeneratedTotal.WithLabelValues(statusLabel(err)).Inc()
}
