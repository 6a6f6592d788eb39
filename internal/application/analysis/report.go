package analysis

import (
	"time"

	"github.com/turtacn/ReactionIQ/internal/domain/classify"
	"github.com/turtacn/ReactionIQ/internal/domain/reaction"
	"github.com/turtacn/ReactionIQ/internal/domain/thermo"
	"github.com/turtacn/ReactionIQ/pkg/types/chem"
)

// RuleFailureInfo records one expert rule that could not be evaluated.
type RuleFailureInfo struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

// Report is the full analysis output for one equation: the balanced form,
// the classification verdict, and every supporting signal.
type Report struct {
	ID          string    `json:"id"`
	Equation    string    `json:"equation"`
	GeneratedAt time.Time `json:"generated_at"`

	// Balancing
	Balanced         string                       `json:"balanced"`
	Coefficients     []int64                      `json:"coefficients,omitempty"`
	IsBalanced       bool                         `json:"is_balanced"`
	WeightDelta      float64                      `json:"weight_delta"`
	Verification     reaction.BalanceVerification `json:"verification"`
	BalanceError     string                       `json:"balance_error,omitempty"`
	BalanceErrorCode string                       `json:"balance_error_code,omitempty"`

	// Classification
	Classification   chem.ClassificationResult `json:"classification"`
	ElectronTransfer chem.ElectronTransfer     `json:"electron_transfer"`
	FunctionalGroups classify.GroupAnalysis    `json:"functional_groups"`
	Fingerprint      chem.ReactionFingerprint  `json:"fingerprint"`
	RuleFailures     []RuleFailureInfo         `json:"rule_failures,omitempty"`

	// Thermodynamics, present when the equation balanced and the property
	// tables cover every species.
	Thermodynamics *thermo.FeasibilityResult `json:"thermodynamics,omitempty"`
}
