package skills

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/FlyRocketToMars/RocktheInterview/internal/taxonomy"
)

// Extractor matches text against a fixed taxonomy plus alias table. It is
// built once at startup and safe for concurrent use: matching is pure and
// the token list is never mutated after construction.
type Extractor struct {
	tokens []token
}

// token pairs a lowercase search string with the canonical skill it resolves
// to. Canonical names and aliases both become tokens; matching any one of a
// skill's tokens is sufficient.
type token struct {
	text      string
	canonical string
}

// NewExtractor builds an Extractor over the given taxonomy and alias table.
func NewExtractor(tax *taxonomy.Taxonomy, aliases taxonomy.AliasTable) *Extractor {
	e := &Extractor{}

	for _, skill := range tax.AllSkills() {
		e.tokens = append(e.tokens, token{text: strings.ToLower(skill), canonical: skill})
	}
	for alias, target := range aliases {
		canonical, ok := tax.Canonical(target)
		if !ok {
			// Validate rejects unknown targets at load time.
			continue
		}
		e.tokens = append(e.tokens, token{text: alias, canonical: canonical})
	}

	return e
}

// Extract returns the set of canonical skills mentioned in text. Matching is
// exact-token only: a skill or alias must not be embedded in a larger
// alphanumeric token ("AI" does not match inside "rAId"). Empty text yields
// an empty set. The caller's text is never mutated.
func (e *Extractor) Extract(text string) Set {
	found := make(Set)
	if text == "" {
		return found
	}

	lower := strings.ToLower(text)
	for _, tok := range e.tokens {
		if found.Has(tok.canonical) {
			continue
		}
		if containsToken(lower, tok.text) {
			found.Add(tok.canonical)
		}
	}

	return found
}

// containsToken reports whether tok occurs in text with word boundaries on
// both sides: the runes adjacent to the occurrence must not be letters or
// digits. Non-boundary occurrences are skipped and the scan continues.
func containsToken(text, tok string) bool {
	if tok == "" {
		return false
	}

	for start := 0; start <= len(text)-len(tok); {
		idx := strings.Index(text[start:], tok)
		if idx < 0 {
			return false
		}
		idx += start

		if boundaryBefore(text, idx) && boundaryAfter(text, idx+len(tok)) {
			return true
		}
		start = idx + 1
	}

	return false
}

func boundaryBefore(text string, idx int) bool {
	if idx == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:idx])
	return !isWordRune(r)
}

func boundaryAfter(text string, idx int) bool {
	if idx >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[idx:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
