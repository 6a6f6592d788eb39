// Package chem defines the reaction-domain enumerations and data transfer
// objects used across every layer of the ReactionIQ engine.  No domain logic
// lives here — only plain data types that are safe to import from any layer
// without creating circular dependencies.
package chem

// ─────────────────────────────────────────────────────────────────────────────
// Phase — physical state of a reaction component
// ─────────────────────────────────────────────────────────────────────────────

// Phase is the physical state annotation of a molecule in a reaction,
// rendered in parentheses after the formula (e.g. "NaCl(aq)").
type Phase string

const (
	// PhaseSolid marks a solid-state component, "(s)".
	PhaseSolid Phase = "s"

	// PhaseLiquid marks a liquid component, "(l)".
	PhaseLiquid Phase = "l"

	// PhaseGas marks a gaseous component, "(g)".
	PhaseGas Phase = "g"

	// PhaseAqueous marks a component dissolved in water, "(aq)".
	PhaseAqueous Phase = "aq"

	// PhaseNone marks a component with no phase annotation.
	PhaseNone Phase = ""
)

// IsValid reports whether p is one of the recognised phases.
func (p Phase) IsValid() bool {
	switch p {
	case PhaseSolid, PhaseLiquid, PhaseGas, PhaseAqueous, PhaseNone:
		return true
	}
	return false
}

func (p Phase) String() string { return string(p) }

// ─────────────────────────────────────────────────────────────────────────────
// ReactionType — mechanistic classification of a reaction
// ─────────────────────────────────────────────────────────────────────────────

// ReactionType identifies the mechanistic category assigned to a reaction by
// the classification engine.
type ReactionType string

const (
	TypeCombustion        ReactionType = "combustion"
	TypeRedox             ReactionType = "redox"
	TypeAcidBase          ReactionType = "acid_base"
	TypePrecipitation     ReactionType = "precipitation"
	TypeSingleReplacement ReactionType = "single_replacement"
	TypeDoubleReplacement ReactionType = "double_replacement"
	TypeSynthesis         ReactionType = "synthesis"
	TypeDecomposition     ReactionType = "decomposition"
	TypeIsomerization     ReactionType = "isomerization"
	TypeHydrolysis        ReactionType = "hydrolysis"
	TypeUnknown           ReactionType = "unknown"
)

func (t ReactionType) String() string { return string(t) }

// IsValid reports whether t is one of the recognised reaction types.
func (t ReactionType) IsValid() bool {
	switch t {
	case TypeCombustion, TypeRedox, TypeAcidBase, TypePrecipitation,
		TypeSingleReplacement, TypeDoubleReplacement, TypeSynthesis,
		TypeDecomposition, TypeIsomerization, TypeHydrolysis, TypeUnknown:
		return true
	}
	return false
}

// TypePriority is the fixed ordering used to break confidence ties when
// selecting the primary reaction type.  Earlier entries win.  More specific
// mechanisms come before coarse structural categories so that, e.g., a
// combustion reaction that also matches the synthesis count pattern is
// reported as combustion.
var TypePriority = []ReactionType{
	TypeCombustion,
	TypeRedox,
	TypeAcidBase,
	TypePrecipitation,
	TypeHydrolysis,
	TypeSingleReplacement,
	TypeDoubleReplacement,
	TypeIsomerization,
	TypeSynthesis,
	TypeDecomposition,
	TypeUnknown,
}

// ─────────────────────────────────────────────────────────────────────────────
// ClassificationResult
// ─────────────────────────────────────────────────────────────────────────────

// ClassificationResult carries the outcome of reaction-type classification.
// ConfidenceScores values are always in [0, 1] and PrimaryType is the argmax
// over the map (ties resolved by TypePriority).  A reaction with no signal at
// all classifies as TypeUnknown with an empty score map.
type ClassificationResult struct {
	ConfidenceScores map[ReactionType]float64 `json:"confidence_scores"`
	PrimaryType      ReactionType             `json:"primary_type"`
}

// ─────────────────────────────────────────────────────────────────────────────
// ElectronTransfer
// ─────────────────────────────────────────────────────────────────────────────

// ElectronTransfer summarises oxidation-state or ionic-charge movement between
// the two sides of a reaction.
type ElectronTransfer struct {
	// OxidationChanges maps element symbols to the signed change in their
	// side-averaged oxidation state (products − reactants).  Only elements
	// whose change exceeded the detection threshold appear.
	OxidationChanges map[string]float64 `json:"oxidation_changes"`

	// IsRedox is true when at least two elements changed oxidation state.
	IsRedox bool `json:"is_redox"`

	// OxidizingAgent is the formula of the reactant containing an element
	// whose oxidation state decreased (it gained electrons).  Empty when
	// IsRedox is false or attribution failed.
	OxidizingAgent string `json:"oxidizing_agent,omitempty"`

	// ReducingAgent is the formula of the reactant containing an element
	// whose oxidation state increased.
	ReducingAgent string `json:"reducing_agent,omitempty"`

	// FromCharges is true when the result came from the explicit monatomic
	// ionic-charge path, which overrides the oxidation-state estimate.
	FromCharges bool `json:"from_charges"`
}

// ─────────────────────────────────────────────────────────────────────────────
// ReactionFingerprint
// ─────────────────────────────────────────────────────────────────────────────

// PhaseChange records a phase pair for a formula that appears on both sides
// of a reaction with differing phases.
type PhaseChange struct {
	From Phase `json:"from"`
	To   Phase `json:"to"`
}

// ReactionFingerprint is an immutable snapshot of a reaction's element, phase,
// and charge deltas used for diagnostics and comparison.  It makes no
// classification decisions.
type ReactionFingerprint struct {
	ReactantElements  map[string]float64     `json:"reactant_elements"`
	ProductElements   map[string]float64     `json:"product_elements"`
	ElementBalance    map[string]float64     `json:"element_balance"`
	PhaseChanges      map[string]PhaseChange `json:"phase_changes"`
	HasChargeTransfer bool                   `json:"has_charge_transfer"`
	ReactantCount     int                    `json:"reactant_count"`
	ProductCount      int                    `json:"product_count"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Reaction DTOs — round-trip representation consumed by persistence layers
// ─────────────────────────────────────────────────────────────────────────────

// ComponentDTO is the serialised form of a single reaction component.  Formula
// is the source formula as entered (including any ion-charge notation) so that
// the round trip preserves charge and functional-group tokens.
type ComponentDTO struct {
	Formula     string  `json:"formula"`
	Coefficient float64 `json:"coefficient"`
	Phase       Phase   `json:"phase,omitempty"`
	IsCatalyst  bool    `json:"is_catalyst,omitempty"`
}

// ReactionDTO is the serialised form of a full reaction, consumed by external
// persistence layers and produced by Reaction.ToDTO.
type ReactionDTO struct {
	Name        string            `json:"name,omitempty"`
	Reactants   []ComponentDTO    `json:"reactants"`
	Products    []ComponentDTO    `json:"products"`
	Temperature *float64          `json:"temperature,omitempty"` // Kelvin
	Pressure    *float64          `json:"pressure,omitempty"`    // atm
	Conditions  map[string]string `json:"conditions,omitempty"`
	Balanced    bool              `json:"balanced"`
}
