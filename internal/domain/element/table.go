// Package element provides the immutable periodic-table data consumed by the
// composition parser, the oxidation-state estimator, and the classification
// rules.  The data is exposed through an injectable Table value so that tests
// can substitute alternate electronegativity or oxidation-state assignments;
// the package-level Default table is built once and never mutated, making it
// safe for unsynchronised concurrent reads.
package element

import (
	"sort"

	"github.com/turtacn/ReactionIQ/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Element — static per-element data
// ─────────────────────────────────────────────────────────────────────────────

// Element holds the static properties of a chemical element used by the
// engine.  Electronegativity is on the Pauling scale; a zero value means the
// element has no tabulated electronegativity.  OxidationStates lists the
// common oxidation numbers in ascending order and may be empty for elements
// the classifier never needs to resolve heuristically.
type Element struct {
	Symbol            string
	AtomicNumber      int
	AtomicWeight      float64 // g/mol, standard atomic weight
	Electronegativity float64
	OxidationStates   []int
	Metal             bool
}

// MostNegativeOxidationState returns the lowest common oxidation state and
// whether any state is tabulated.
func (e Element) MostNegativeOxidationState() (int, bool) {
	if len(e.OxidationStates) == 0 {
		return 0, false
	}
	return e.OxidationStates[0], true
}

// ─────────────────────────────────────────────────────────────────────────────
// Table — injectable element lookup
// ─────────────────────────────────────────────────────────────────────────────

// Table is an immutable symbol→Element lookup.  Construct via NewTable, or
// use Default() for the built-in periodic table.
type Table struct {
	elements map[string]Element
}

// NewTable builds a Table from the given elements.  Oxidation-state slices
// are copied and sorted ascending so callers cannot alias internal state.
func NewTable(elements []Element) *Table {
	m := make(map[string]Element, len(elements))
	for _, e := range elements {
		if len(e.OxidationStates) > 0 {
			states := make([]int, len(e.OxidationStates))
			copy(states, e.OxidationStates)
			sort.Ints(states)
			e.OxidationStates = states
		}
		m[e.Symbol] = e
	}
	return &Table{elements: m}
}

// Lookup returns the element for the given symbol.
func (t *Table) Lookup(symbol string) (Element, bool) {
	e, ok := t.elements[symbol]
	return e, ok
}

// MustLookup returns the element for the given symbol or a validation error
// identifying the unknown symbol.
func (t *Table) MustLookup(symbol string) (Element, error) {
	e, ok := t.elements[symbol]
	if !ok {
		return Element{}, errors.New(errors.CodeUnknownElement, "unknown element symbol").
			WithDetail("symbol=" + symbol)
	}
	return e, nil
}

// Electronegativity returns the Pauling electronegativity for symbol and
// whether a value is tabulated.
func (t *Table) Electronegativity(symbol string) (float64, bool) {
	e, ok := t.elements[symbol]
	if !ok || e.Electronegativity == 0 {
		return 0, false
	}
	return e.Electronegativity, true
}

// IsMetal reports whether symbol names a metallic element.  Unknown symbols
// report false.
func (t *Table) IsMetal(symbol string) bool {
	e, ok := t.elements[symbol]
	return ok && e.Metal
}

// Symbols returns all known symbols in ascending order.  Intended for
// diagnostics and tests.
func (t *Table) Symbols() []string {
	out := make([]string, 0, len(t.elements))
	for s := range t.elements {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of elements in the table.
func (t *Table) Len() int { return len(t.elements) }

// ─────────────────────────────────────────────────────────────────────────────
// Default table
// ─────────────────────────────────────────────────────────────────────────────

var defaultTable = NewTable(builtinElements)

// Default returns the built-in periodic table.  The returned Table is shared
// and immutable.
func Default() *Table { return defaultTable }
