// Package analysis provides the application-level service for equation
// balancing and reaction classification.  It is the interface between the CLI
// and the domain logic: it parses equation strings, drives the balancer and
// classifier, and assembles analysis reports.
package analysis

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/turtacn/ReactionIQ/internal/config"
	"github.com/turtacn/ReactionIQ/internal/domain/classify"
	"github.com/turtacn/ReactionIQ/internal/domain/reaction"
	"github.com/turtacn/ReactionIQ/internal/domain/thermo"
	"github.com/turtacn/ReactionIQ/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/ReactionIQ/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/ReactionIQ/pkg/errors"
	"github.com/turtacn/ReactionIQ/pkg/types/chem"
)

// Service defines the application operations exposed over the CLI.
type Service interface {
	// Parse parses an equation string without balancing it.
	Parse(ctx context.Context, equation string) (*reaction.Reaction, error)

	// Balance parses and balances an equation, returning the integer
	// coefficients and the balanced rendering.
	Balance(ctx context.Context, equation string) (*BalanceResult, error)

	// Classify parses an equation and determines its reaction type.
	Classify(ctx context.Context, equation string) (*ClassifyResult, error)

	// Analyze runs the full pipeline: parse, balance (best effort), classify,
	// and assemble a report covering every analysis signal.
	Analyze(ctx context.Context, equation string) (*Report, error)
}

// BalanceResult carries the outcome of a balancing request.
type BalanceResult struct {
	Equation     string  `json:"equation"`
	Balanced     string  `json:"balanced"`
	Coefficients []int64 `json:"coefficients"`
	WeightDelta  float64 `json:"weight_delta"`
}

// ClassifyResult carries the outcome of a classification request.
type ClassifyResult struct {
	Equation   string                    `json:"equation"`
	Result     chem.ClassificationResult `json:"result"`
	IsBalanced bool                      `json:"is_balanced"`
}

type serviceImpl struct {
	balancer   *reaction.Balancer
	classifier *classify.Classifier
	thermo     *thermo.Calculator
	tolerance  float64
	logger     logging.Logger
	metrics    *prometheus.EngineMetrics
}

// NewService builds a Service from cfg.  logger and metrics may be nil, in
// which case logging is discarded and metrics are not recorded.
func NewService(cfg *config.Config, logger logging.Logger, metrics *prometheus.EngineMetrics) Service {
	if cfg == nil {
		cfg = &config.Config{}
		config.ApplyDefaults(cfg)
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &serviceImpl{
		balancer: reaction.NewBalancer(
			reaction.WithTolerance(cfg.Balancer.Tolerance),
			reaction.WithMaxDenominator(cfg.Balancer.MaxDenominator),
		),
		classifier: classify.NewClassifier(
			classify.WithRedoxThreshold(cfg.Classifier.RedoxThreshold),
		),
		thermo:     thermo.NewCalculator(),
		tolerance:  cfg.Balancer.Tolerance,
		logger:     logger.Named("analysis"),
		metrics:    metrics,
	}
}

func (s *serviceImpl) Parse(ctx context.Context, equation string) (*reaction.Reaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r, err := reaction.ParseEquation(equation)
	prometheus.RecordParse(s.metrics, err)
	if err != nil {
		s.logger.Warn("equation parse failed",
			logging.String("equation", equation),
			logging.Err(err))
		return nil, err
	}
	return r, nil
}

func (s *serviceImpl) Balance(ctx context.Context, equation string) (*BalanceResult, error) {
	r, err := s.Parse(ctx, equation)
	if err != nil {
		return nil, err
	}

	coefficients, err := s.balance(r)
	if err != nil {
		return nil, err
	}

	return &BalanceResult{
		Equation:     equation,
		Balanced:     r.String(),
		Coefficients: coefficients,
		WeightDelta:  r.MolecularWeightBalance(),
	}, nil
}

func (s *serviceImpl) Classify(ctx context.Context, equation string) (*ClassifyResult, error) {
	r, err := s.Parse(ctx, equation)
	if err != nil {
		return nil, err
	}

	result := s.classify(r)
	return &ClassifyResult{
		Equation:   equation,
		Result:     result,
		IsBalanced: r.IsBalanced(s.tolerance),
	}, nil
}

func (s *serviceImpl) Analyze(ctx context.Context, equation string) (*Report, error) {
	r, err := s.Parse(ctx, equation)
	if err != nil {
		prometheus.RecordReport(s.metrics, err)
		return nil, err
	}

	report := &Report{
		ID:          uuid.NewString(),
		Equation:    equation,
		GeneratedAt: time.Now().UTC(),
	}

	// Balancing is best effort here: an unbalanceable equation still gets
	// classified, with the failure recorded on the report.
	coefficients, err := s.balance(r)
	if err != nil {
		report.BalanceError = err.Error()
		report.BalanceErrorCode = errors.GetCode(err).String()
	} else {
		report.Coefficients = coefficients
	}
	report.Balanced = r.String()
	report.IsBalanced = r.IsBalanced(s.tolerance)
	report.WeightDelta = r.MolecularWeightBalance()
	report.Verification = r.VerifyBalance(s.tolerance)

	if report.IsBalanced {
		temperature := thermo.StandardTemperature
		if kelvin, ok := r.Temperature(); ok {
			temperature = kelvin
		}
		if feasibility, thermoErr := s.thermo.Feasibility(r, temperature); thermoErr == nil && feasibility.Complete {
			report.Thermodynamics = &feasibility
		}
	}

	report.Classification = s.classify(r)
	report.ElectronTransfer = s.classifier.ElectronTransfer(r)
	report.FunctionalGroups = s.classifier.FunctionalGroups(r)
	report.Fingerprint = s.classifier.Fingerprint(r)

	_, failures := s.classifier.RuleMatches(r)
	for _, f := range failures {
		report.RuleFailures = append(report.RuleFailures, RuleFailureInfo{
			Type:   f.Type.String(),
			Reason: f.Err.Error(),
		})
	}

	prometheus.RecordReport(s.metrics, nil)
	s.logger.Info("analysis report generated",
		logging.String("report_id", report.ID),
		logging.String("primary_type", report.Classification.PrimaryType.String()),
		logging.Bool("balanced", report.IsBalanced))
	return report, nil
}

// balance runs the balancer with timing and metrics around it.
func (s *serviceImpl) balance(r *reaction.Reaction) ([]int64, error) {
	start := time.Now()
	coefficients, err := s.balancer.Balance(r)
	prometheus.RecordBalance(s.metrics, time.Since(start), coefficients, err)
	if err != nil {
		s.logger.Warn("balancing failed",
			logging.String("equation", r.String()),
			logging.String("code", errors.GetCode(err).String()),
			logging.Err(err))
		return nil, err
	}
	s.logger.Debug("equation balanced",
		logging.String("balanced", r.String()),
		logging.Duration("elapsed", time.Since(start)))
	return coefficients, nil
}

// classify runs the classifier with timing and metrics around it.
func (s *serviceImpl) classify(r *reaction.Reaction) chem.ClassificationResult {
	start := time.Now()
	result := s.classifier.Classify(r)

	_, failures := s.classifier.RuleMatches(r)
	failed := make([]string, 0, len(failures))
	for _, f := range failures {
		failed = append(failed, f.Type.String())
	}

	prometheus.RecordClassification(s.metrics,
		result.PrimaryType.String(),
		result.ConfidenceScores[result.PrimaryType],
		time.Since(start),
		failed)
	return result
}
