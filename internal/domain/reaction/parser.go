package reaction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/turtacn/ReactionIQ/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Equation parsing
// ─────────────────────────────────────────────────────────────────────────────

// arrows lists the recognised reactant/product separators, longest first so
// "->" is not consumed as a bare "-".
var arrows = []string{"→", "->", "="}

var (
	termSplitRe = regexp.MustCompile(`\s+\+\s+`)
	leadCoefRe  = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(\S.*)$`)
)

// ParseEquation parses an equation string such as "CH4 + 2O2 -> CO2 + 2H2O"
// into a Reaction.  "→" and "=" are accepted as arrows.  Terms are separated
// by "+" surrounded by whitespace, so ion charges like "Fe^2+" survive
// splitting.  A leading number on a term becomes its coefficient.
func ParseEquation(eq string) (*Reaction, error) {
	eq = strings.TrimSpace(eq)
	if eq == "" {
		return nil, errors.New(errors.CodeInvalidEquation, "empty equation")
	}

	var left, right string
	found := false
	for _, arrow := range arrows {
		if idx := strings.Index(eq, arrow); idx >= 0 {
			left, right = eq[:idx], eq[idx+len(arrow):]
			found = true
			break
		}
	}
	if !found {
		return nil, errors.New(errors.CodeInvalidEquation, "equation has no reaction arrow").
			WithDetail("input=" + eq)
	}

	r := New("")
	if err := parseSide(r, left, true); err != nil {
		return nil, err
	}
	if err := parseSide(r, right, false); err != nil {
		return nil, err
	}
	return r, nil
}

func parseSide(r *Reaction, side string, reactant bool) error {
	side = strings.TrimSpace(side)
	if side == "" {
		which := "products"
		if reactant {
			which = "reactants"
		}
		return errors.New(errors.CodeInvalidEquation, "equation side has no "+which)
	}
	for _, term := range termSplitRe.Split(side, -1) {
		term = strings.TrimSpace(term)
		if term == "" {
			return errors.New(errors.CodeInvalidEquation, "empty term in equation").
				WithDetail("side=" + side)
		}
		coefficient := 1.0
		formula := term
		if m := leadCoefRe.FindStringSubmatch(term); m != nil {
			v, err := strconv.ParseFloat(m[1], 64)
			if err != nil || v <= 0 {
				return errors.New(errors.CodeInvalidCoefficient, "invalid leading coefficient").
					WithDetail("term=" + term)
			}
			coefficient = v
			formula = m[2]
		}
		var err error
		if reactant {
			err = r.AddReactantFormula(formula, coefficient, false)
		} else {
			err = r.AddProductFormula(formula, coefficient)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
