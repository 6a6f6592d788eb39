package config

// ─────────────────────────────────────────────────────────────────────────────
// Default value constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	DefaultBalancerTolerance      = 1e-6
	DefaultBalancerMaxDenominator = 10000

	DefaultRedoxThreshold = 0.1

	DefaultMetricsAddr = ":9464"
	DefaultMetricsPath = "/metrics"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
	DefaultLogOutput = "stdout"
)

// ApplyDefaults fills every zero-value field in cfg with the engine default.
// Fields already set by the caller are left unchanged so that explicit
// configuration always wins.  Call after unmarshalling and before Validate.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// ── Balancer ──────────────────────────────────────────────────────────────
	if cfg.Balancer.Tolerance == 0 {
		cfg.Balancer.Tolerance = DefaultBalancerTolerance
	}
	if cfg.Balancer.MaxDenominator == 0 {
		cfg.Balancer.MaxDenominator = DefaultBalancerMaxDenominator
	}

	// ── Classifier ────────────────────────────────────────────────────────────
	if cfg.Classifier.RedoxThreshold == 0 {
		cfg.Classifier.RedoxThreshold = DefaultRedoxThreshold
	}

	// ── Metrics ───────────────────────────────────────────────────────────────
	if cfg.Metrics.Addr == "" {
		cfg.Metrics.Addr = DefaultMetricsAddr
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = DefaultMetricsPath
	}

	// ── Log ───────────────────────────────────────────────────────────────────
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = DefaultLogOutput
	}
}
