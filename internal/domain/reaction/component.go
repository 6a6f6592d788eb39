package reaction

import (
	"fmt"
	"strconv"

	"github.com/turtacn/ReactionIQ/internal/domain/molecule"
	"github.com/turtacn/ReactionIQ/pkg/errors"
	"github.com/turtacn/ReactionIQ/pkg/types/chem"
)

// ─────────────────────────────────────────────────────────────────────────────
// Component
// ─────────────────────────────────────────────────────────────────────────────

// Component binds one molecular composition to its stoichiometric coefficient
// within a reaction.  The phase recorded on the composition can be overridden
// per component, and catalysts are flagged so that balance computations can
// exclude them while rendering keeps them visible.
type Component struct {
	composition *molecule.Composition
	coefficient float64
	phase       chem.Phase
	isCatalyst  bool
}

// NewComponent validates and constructs a Component.  phase overrides the
// composition's own annotation when non-empty.
func NewComponent(comp *molecule.Composition, coefficient float64, phase chem.Phase, isCatalyst bool) (*Component, error) {
	if comp == nil {
		return nil, errors.Validation("component requires a composition")
	}
	if coefficient <= 0 {
		return nil, errors.New(errors.CodeInvalidCoefficient, "coefficient must be positive").
			WithDetail(fmt.Sprintf("formula=%s coefficient=%g", comp.Source(), coefficient))
	}
	if !phase.IsValid() {
		return nil, errors.New(errors.CodeInvalidPhase, "unrecognised phase").
			WithDetail(fmt.Sprintf("formula=%s phase=%q", comp.Source(), phase))
	}
	if phase == chem.PhaseNone {
		phase = comp.Phase()
	}
	return &Component{
		composition: comp,
		coefficient: coefficient,
		phase:       phase,
		isCatalyst:  isCatalyst,
	}, nil
}

// Composition returns the underlying molecular composition.
func (c *Component) Composition() *molecule.Composition { return c.composition }

// Coefficient returns the stoichiometric coefficient.
func (c *Component) Coefficient() float64 { return c.coefficient }

// Phase returns the effective phase of the component.
func (c *Component) Phase() chem.Phase { return c.phase }

// IsCatalyst reports whether the component is a catalyst.
func (c *Component) IsCatalyst() bool { return c.isCatalyst }

// Formula returns the source formula of the component's composition.
func (c *Component) Formula() string { return c.composition.Source() }

// WeightedWeight returns coefficient × molecular weight.
func (c *Component) WeightedWeight() float64 {
	return c.coefficient * c.composition.MolecularWeight()
}

// String renders the component as it appears in an equation, e.g. "2H2O(l)".
// A coefficient of 1 is omitted.
func (c *Component) String() string {
	out := ""
	if c.coefficient != 1 {
		out = formatCoefficient(c.coefficient)
	}
	out += c.composition.Source()
	if c.phase != chem.PhaseNone {
		out += "(" + string(c.phase) + ")"
	}
	return out
}

func (c *Component) toDTO() chem.ComponentDTO {
	return chem.ComponentDTO{
		Formula:     c.composition.Source(),
		Coefficient: c.coefficient,
		Phase:       c.phase,
		IsCatalyst:  c.isCatalyst,
	}
}

func componentFromDTO(dto chem.ComponentDTO) (*Component, error) {
	comp, err := molecule.Parse(dto.Formula)
	if err != nil {
		return nil, err
	}
	return NewComponent(comp, dto.Coefficient, dto.Phase, dto.IsCatalyst)
}

// formatCoefficient renders a coefficient without a trailing ".0" for whole
// numbers.
func formatCoefficient(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
