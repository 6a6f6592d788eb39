package molecule

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/turtacn/ReactionIQ/internal/domain/element"
	"github.com/turtacn/ReactionIQ/pkg/errors"
	"github.com/turtacn/ReactionIQ/pkg/types/chem"
)

// ─────────────────────────────────────────────────────────────────────────────
// Formula parsing
// ─────────────────────────────────────────────────────────────────────────────

var phaseSuffixRe = regexp.MustCompile(`\((s|l|g|aq)\)$`)

// Parse parses a chemical formula against the built-in periodic table.
// Supported notation: nested parentheses and brackets ("Ca(OH)2",
// "K4[Fe(CN)6]"), hydrate separators ("CuSO4·5H2O", "CuSO4.5H2O"), trailing
// phase annotations ("NaCl(aq)"), and ionic charges in caret ("Fe^2+",
// "SO4^2-"), superscript ("Fe²⁺"), or bare-sign ("Na+", "OH-") form.
func Parse(input string) (*Composition, error) {
	return ParseWith(input, element.Default())
}

// ParseWith is Parse with an explicit element table.
func ParseWith(input string, tbl *element.Table) (*Composition, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil, errors.New(errors.CodeInvalidFormula, "empty formula")
	}

	phase := chem.PhaseNone
	if m := phaseSuffixRe.FindStringSubmatch(s); m != nil {
		phase = chem.Phase(m[1])
		s = strings.TrimSpace(s[:len(s)-len(m[0])])
	}
	if s == "" {
		return nil, errors.New(errors.CodeInvalidFormula, "formula has only a phase annotation").
			WithDetail("input=" + input)
	}
	source := s

	s = normalizeSuperscripts(s)
	body, charge, err := splitCharge(s)
	if err != nil {
		return nil, err.WithDetail("input=" + input)
	}

	counts, err2 := parseBody(body, tbl)
	if err2 != nil {
		return nil, err2
	}
	if len(counts) == 0 {
		return nil, errors.New(errors.CodeInvalidFormula, "formula contains no elements").
			WithDetail("input=" + input)
	}

	weight := 0.0
	for sym, n := range counts {
		e, _ := tbl.Lookup(sym)
		weight += e.AtomicWeight * n
	}

	order := hillOrder(counts)
	return &Composition{
		source:  source,
		formula: renderHill(counts, order),
		counts:  counts,
		order:   order,
		charge:  charge,
		phase:   phase,
		weight:  weight,
	}, nil
}

// normalizeSuperscripts rewrites a trailing unicode-superscript charge
// ("Fe²⁺") into caret notation ("Fe^2+") so the charge splitter only has one
// form to handle.
func normalizeSuperscripts(s string) string {
	if !strings.ContainsFunc(s, isSuperscript) {
		return s
	}
	var b strings.Builder
	inRun := false
	for _, r := range s {
		if isSuperscript(r) {
			if !inRun {
				b.WriteByte('^')
				inRun = true
			}
			b.WriteRune(fromSuperscript(r))
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}

func isSuperscript(r rune) bool {
	switch r {
	case '⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹', '⁺', '⁻':
		return true
	}
	return false
}

func fromSuperscript(r rune) rune {
	switch r {
	case '⁰':
		return '0'
	case '¹':
		return '1'
	case '²':
		return '2'
	case '³':
		return '3'
	case '⁴':
		return '4'
	case '⁵':
		return '5'
	case '⁶':
		return '6'
	case '⁷':
		return '7'
	case '⁸':
		return '8'
	case '⁹':
		return '9'
	case '⁺':
		return '+'
	case '⁻':
		return '-'
	}
	return r
}

var caretChargeRe = regexp.MustCompile(`\^(\d*)([+-])$`)

// splitCharge strips the ionic-charge suffix from s and returns the neutral
// body plus the signed charge.  Caret notation takes precedence; otherwise a
// trailing run of identical bare signs is read as a charge of that magnitude.
func splitCharge(s string) (string, int, *errors.AppError) {
	if m := caretChargeRe.FindStringSubmatch(s); m != nil {
		magnitude := 1
		if m[1] != "" {
			magnitude = 0
			for _, d := range m[1] {
				magnitude = magnitude*10 + int(d-'0')
			}
		}
		if magnitude == 0 {
			return "", 0, errors.New(errors.CodeInvalidFormula, "ion charge magnitude cannot be zero")
		}
		body := s[:len(s)-len(m[0])]
		if m[2] == "-" {
			magnitude = -magnitude
		}
		return body, magnitude, nil
	}
	if strings.Contains(s, "^") {
		return "", 0, errors.New(errors.CodeInvalidFormula, "malformed ion charge notation")
	}

	n := len(s)
	i := n
	for i > 0 && (s[i-1] == '+' || s[i-1] == '-') {
		i--
	}
	if i == n {
		return s, 0, nil
	}
	run := s[i:]
	for j := 1; j < len(run); j++ {
		if run[j] != run[0] {
			return "", 0, errors.New(errors.CodeInvalidFormula, "mixed charge signs")
		}
	}
	charge := len(run)
	if run[0] == '-' {
		charge = -charge
	}
	return s[:i], charge, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Body grammar
// ─────────────────────────────────────────────────────────────────────────────

// parseBody parses the neutral formula body.  Hydrate separators split the
// body into dot-joined segments; each segment after the first may carry a
// leading integer multiplier ("CuSO4·5H2O").
func parseBody(body string, tbl *element.Table) (map[string]float64, error) {
	segments := strings.FieldsFunc(body, func(r rune) bool {
		return r == '·' || r == '*' || r == '.'
	})
	if len(segments) == 0 {
		return nil, errors.New(errors.CodeInvalidFormula, "formula body is empty").
			WithDetail("input=" + body)
	}

	total := make(map[string]float64)
	for i, seg := range segments {
		mult := 1
		p := &formulaParser{s: seg, tbl: tbl}
		if i > 0 {
			mult = p.readInt(1)
		} else if len(seg) > 0 && seg[0] >= '0' && seg[0] <= '9' {
			return nil, errors.New(errors.CodeInvalidFormula, "formula cannot start with a digit").
				WithDetail("segment=" + seg)
		}
		counts, err := p.parseGroup(0)
		if err != nil {
			return nil, err
		}
		if p.pos != len(p.s) {
			return nil, errors.New(errors.CodeInvalidFormula, "unexpected character in formula").
				WithDetail("segment=" + seg)
		}
		for sym, n := range counts {
			total[sym] += n * float64(mult)
		}
	}
	return total, nil
}

type formulaParser struct {
	s   string
	pos int
	tbl *element.Table
}

func (p *formulaParser) parseGroup(depth int) (map[string]float64, error) {
	counts := make(map[string]float64)
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		switch {
		case c == '(' || c == '[':
			closer := byte(')')
			if c == '[' {
				closer = ']'
			}
			p.pos++
			inner, err := p.parseGroup(depth + 1)
			if err != nil {
				return nil, err
			}
			if p.pos >= len(p.s) || p.s[p.pos] != closer {
				return nil, errors.New(errors.CodeInvalidFormula, "unmatched opening bracket").
					WithDetail("input=" + p.s)
			}
			p.pos++
			mult := float64(p.readInt(1))
			for sym, n := range inner {
				counts[sym] += n * mult
			}

		case c == ')' || c == ']':
			if depth == 0 {
				return nil, errors.New(errors.CodeInvalidFormula, "unmatched closing bracket").
					WithDetail("input=" + p.s)
			}
			return counts, nil

		case unicode.IsUpper(rune(c)):
			start := p.pos
			p.pos++
			for p.pos < len(p.s) && p.s[p.pos] >= 'a' && p.s[p.pos] <= 'z' {
				p.pos++
			}
			sym := p.s[start:p.pos]
			if _, err := p.tbl.MustLookup(sym); err != nil {
				return nil, err
			}
			counts[sym] += float64(p.readInt(1))

		default:
			return nil, errors.New(errors.CodeInvalidFormula, "unexpected character in formula").
				WithDetail("input=" + p.s)
		}
	}
	if depth > 0 {
		return nil, errors.New(errors.CodeInvalidFormula, "unmatched opening bracket").
			WithDetail("input=" + p.s)
	}
	return counts, nil
}

// readInt consumes a run of digits, returning def when none are present.
func (p *formulaParser) readInt(def int) int {
	start := p.pos
	for p.pos < len(p.s) && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return def
	}
	n := 0
	for _, d := range p.s[start:p.pos] {
		n = n*10 + int(d-'0')
	}
	return n
}
