// Package molecule provides the elemental-composition model for reaction
// components.  A Composition is parsed once from a source formula string and
// is immutable afterwards; it carries the per-element atom counts, the net
// ionic charge, the optional phase annotation, and both the source and the
// Hill-canonical renderings of the formula.
package molecule

import (
	"fmt"
	"sort"
	"strings"

	"github.com/turtacn/ReactionIQ/pkg/types/chem"
)

// ─────────────────────────────────────────────────────────────────────────────
// Composition
// ─────────────────────────────────────────────────────────────────────────────

// Composition is the parsed elemental makeup of a single chemical species.
// Construct via Parse or ParseWith; the zero value is not usable.
type Composition struct {
	source  string
	formula string
	counts  map[string]float64
	order   []string
	charge  int
	phase   chem.Phase
	weight  float64
}

// Source returns the formula as it was entered, including any ion-charge
// notation but excluding the phase suffix.  Functional-group matching runs
// against this form because Hill canonicalisation destroys tokens such as
// "COOH".
func (c *Composition) Source() string { return c.source }

// Formula returns the Hill-canonical formula: carbon first, hydrogen second,
// remaining elements alphabetical.  Compositions without carbon are rendered
// fully alphabetical.
func (c *Composition) Formula() string { return c.formula }

// Charge returns the net ionic charge (e.g. +2 for Fe²⁺, -1 for Cl⁻).
func (c *Composition) Charge() int { return c.charge }

// Phase returns the phase annotation parsed from the formula, or
// chem.PhaseNone when the formula carried none.
func (c *Composition) Phase() chem.Phase { return c.phase }

// MolecularWeight returns the molar mass in g/mol.
func (c *Composition) MolecularWeight() float64 { return c.weight }

// Count returns the number of atoms of the given element, or 0 when the
// element does not occur.
func (c *Composition) Count(symbol string) float64 { return c.counts[symbol] }

// Elements returns the element symbols in Hill order.
func (c *Composition) Elements() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// ElementCounts returns a copy of the symbol→count map.
func (c *Composition) ElementCounts() map[string]float64 {
	out := make(map[string]float64, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}

// IsMonatomicIon reports whether the composition is a charged single-element
// species, returning the element symbol and the per-atom charge.  Species such
// as Fe²⁺ yield ("Fe", 2); polyatomic ions and neutral species report ok=false.
func (c *Composition) IsMonatomicIon() (symbol string, perAtom float64, ok bool) {
	if c.charge == 0 || len(c.counts) != 1 {
		return "", 0, false
	}
	symbol = c.order[0]
	n := c.counts[symbol]
	if n <= 0 {
		return "", 0, false
	}
	return symbol, float64(c.charge) / n, true
}

// String renders the source formula with its phase suffix, matching how the
// species would appear in an equation.
func (c *Composition) String() string {
	if c.phase == chem.PhaseNone {
		return c.source
	}
	return fmt.Sprintf("%s(%s)", c.source, c.phase)
}

// ─────────────────────────────────────────────────────────────────────────────
// Hill ordering
// ─────────────────────────────────────────────────────────────────────────────

func hillOrder(counts map[string]float64) []string {
	symbols := make([]string, 0, len(counts))
	for s := range counts {
		symbols = append(symbols, s)
	}
	_, hasC := counts["C"]
	sort.Slice(symbols, func(i, j int) bool {
		return hillLess(symbols[i], symbols[j], hasC)
	})
	return symbols
}

func hillLess(a, b string, hasCarbon bool) bool {
	if hasCarbon {
		ra, rb := hillRank(a), hillRank(b)
		if ra != rb {
			return ra < rb
		}
	}
	return a < b
}

func hillRank(s string) int {
	switch s {
	case "C":
		return 0
	case "H":
		return 1
	}
	return 2
}

func renderHill(counts map[string]float64, order []string) string {
	var b strings.Builder
	for _, s := range order {
		b.WriteString(s)
		if n := counts[s]; n != 1 {
			if n == float64(int(n)) {
				fmt.Fprintf(&b, "%d", int(n))
			} else {
				fmt.Fprintf(&b, "%g", n)
			}
		}
	}
	return b.String()
}
