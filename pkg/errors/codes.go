package errors

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes
const (
	CodeOK       ErrorCode = "OK"
	CodeUnknown  ErrorCode = "COMMON_000"
	CodeInternal ErrorCode = "COMMON_001"
	CodeNotFound ErrorCode = "COMMON_002"
)

// Validation error codes.  These cover malformed caller input: formulas,
// equation strings, coefficients, and scaling factors.
const (
	CodeValidation           ErrorCode = "VAL_001"
	CodeInvalidFormula       ErrorCode = "VAL_002"
	CodeUnknownElement       ErrorCode = "VAL_003"
	CodeInvalidCoefficient   ErrorCode = "VAL_004"
	CodeInvalidEquation      ErrorCode = "VAL_005"
	CodeInvalidScalingFactor ErrorCode = "VAL_006"
	CodeInvalidPhase         ErrorCode = "VAL_007"
)

// Balancing error codes.  Raised by the stoichiometric balancer when the
// equation cannot conserve atoms or the numerical solution cannot be
// reconstructed into exact integers.
const (
	CodeBalancing             ErrorCode = "BAL_001"
	CodeMissingReactants      ErrorCode = "BAL_002"
	CodeMissingProducts       ErrorCode = "BAL_003"
	CodeElementSetMismatch    ErrorCode = "BAL_004"
	CodeDegenerateSystem      ErrorCode = "BAL_005"
	CodeVerificationFailed    ErrorCode = "BAL_006"
	CodeRationalizationFailed ErrorCode = "BAL_007"
)

// Thermodynamics error codes.  Raised by the thermodynamic calculator when a
// reaction does not meet the preconditions of a property calculation.
const (
	CodeThermodynamics   ErrorCode = "THM_001"
	CodeUnbalancedInput  ErrorCode = "THM_002"
	CodeInsufficientData ErrorCode = "THM_003"
)

// IsValidation reports whether the code belongs to the validation family.
func IsValidation(code ErrorCode) bool {
	switch code {
	case CodeValidation, CodeInvalidFormula, CodeUnknownElement,
		CodeInvalidCoefficient, CodeInvalidEquation, CodeInvalidScalingFactor,
		CodeInvalidPhase:
		return true
	}
	return false
}

// IsBalancing reports whether the code belongs to the balancing family.
func IsBalancing(code ErrorCode) bool {
	switch code {
	case CodeBalancing, CodeMissingReactants, CodeMissingProducts,
		CodeElementSetMismatch, CodeDegenerateSystem, CodeVerificationFailed,
		CodeRationalizationFailed:
		return true
	}
	return false
}

// IsThermodynamics reports whether the code belongs to the thermodynamics
// family.
func IsThermodynamics(code ErrorCode) bool {
	switch code {
	case CodeThermodynamics, CodeUnbalancedInput, CodeInsufficientData:
		return true
	}
	return false
}
