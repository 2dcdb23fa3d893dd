// Package lsystem expands L-system grammars.
//
// An L-system rewrites every symbol of a string in parallel, once per
// iteration, using a table of replacement rules. Symbols are user-perceived
// characters (grapheme clusters), so a letter followed by a combining accent
// is a single symbol. Symbols without a rule are copied unchanged.
//
// Lindenmayer's algae system:
//
//	lsystem.Expand("A", map[string]string{"A": "AB", "B": "A"}, 5)
//	// "ABAABABAABAAB"
//
// Output length grows exponentially with the iteration count for recursive
// rules; callers are responsible for bounding it.
package lsystem

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrInvalidRule is returned by Grammar.Validate for rules whose key is not
// exactly one symbol.
var ErrInvalidRule = errors.New("lsystem: invalid rule")

// Grammar is an axiom and its rewrite rules.
type Grammar struct {
	Axiom string

	// Rules maps a single symbol to its replacement.
	Rules map[string]string
}

// Expand returns the axiom rewritten iterations times.
func (g Grammar) Expand(iterations int) string {
	return Expand(g.Axiom, g.Rules, iterations)
}

// Validate checks that every rule key is exactly one symbol and that no two
// keys are canonically equivalent.
func (g Grammar) Validate() error {
	seen := make(map[string]string, len(g.Rules))
	for _, key := range slices.Sorted(maps.Keys(g.Rules)) {
		n := norm.NFC.String(key)
		if syms := Symbols(n); len(syms) != 1 {
			return fmt.Errorf("%w: key %q has %d symbols, want 1", ErrInvalidRule, key, len(syms))
		}
		if prev, ok := seen[n]; ok {
			return fmt.Errorf("%w: keys %q and %q are equivalent", ErrInvalidRule, prev, key)
		}
		seen[n] = key
	}
	return nil
}

// Expand rewrites axiom iterations times. In each round every symbol s is
// replaced by rules[s] when present and copied unchanged otherwise.
//
// Symbols and rule keys are compared in NFC, so canonically equivalent
// spellings match. The output keeps the caller's bytes: unmatched symbols
// and replacements are written exactly as given. An empty axiom, empty rules
// or a non-positive iteration count return the axiom unchanged. Keys that
// are not a single symbol never match.
func Expand(axiom string, rules map[string]string, iterations int) string {
	if axiom == "" || len(rules) == 0 || iterations <= 0 {
		return axiom
	}

	table := normalizeRules(rules)
	s := axiom
	var sc scanner
	for range iterations {
		var b strings.Builder
		b.Grow(len(s))
		sc.each(s, func(sym string) bool {
			if r, ok := table[norm.NFC.String(sym)]; ok {
				b.WriteString(r)
			} else {
				b.WriteString(sym)
			}
			return true
		})
		s = b.String()
	}
	return s
}

// normalizeRules returns rules keyed by NFC symbol. Replacements are kept as
// given. When two keys normalize to the same symbol, the key already in NFC
// wins, then the smallest key.
func normalizeRules(rules map[string]string) map[string]string {
	table := make(map[string]string, len(rules))
	exact := make(map[string]bool, len(rules))
	for _, key := range slices.Sorted(maps.Keys(rules)) {
		n := norm.NFC.String(key)
		if _, ok := table[n]; ok && (exact[n] || n != key) {
			continue
		}
		table[n] = rules[key]
		exact[n] = n == key
	}
	return table
}
