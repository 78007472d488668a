// Package taxonomy provides the static skill catalog and alias table used by
// skill extraction and gap analysis.
package taxonomy

import (
	"fmt"
	"sort"
	"strings"
)

// Category groups canonical skill names under a named area of the catalog.
type Category struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Taxonomy is the ordered skill catalog. It is loaded once at startup and
// treated as read-only afterwards.
type Taxonomy struct {
	Categories []Category `json:"categories"`

	// canonical maps lowercase skill name -> canonical (original-case) name.
	// Built by Validate.
	canonical map[string]string
}

// Validate checks the structural invariants of the catalog: category IDs are
// unique, every category has at least one skill, and a skill name appears in
// at most one category. It also builds the internal lookup index, so it must
// be called before Has or Canonical.
func (t *Taxonomy) Validate() error {
	if len(t.Categories) == 0 {
		return fmt.Errorf("taxonomy has no categories")
	}

	seenCategories := make(map[string]bool, len(t.Categories))
	t.canonical = make(map[string]string)
	owner := make(map[string]string) // skill -> category ID, for error messages

	for _, cat := range t.Categories {
		if cat.ID == "" {
			return fmt.Errorf("taxonomy category with empty id (name %q)", cat.Name)
		}
		if seenCategories[cat.ID] {
			return fmt.Errorf("duplicate taxonomy category: %s", cat.ID)
		}
		seenCategories[cat.ID] = true

		if len(cat.Skills) == 0 {
			return fmt.Errorf("taxonomy category %s has no skills", cat.ID)
		}

		for _, skill := range cat.Skills {
			if skill == "" {
				return fmt.Errorf("taxonomy category %s contains an empty skill name", cat.ID)
			}
			if prev, exists := owner[skill]; exists {
				return fmt.Errorf("skill %q appears in both %s and %s", skill, prev, cat.ID)
			}
			owner[skill] = cat.ID
			t.canonical[strings.ToLower(skill)] = skill
		}
	}

	return nil
}

// Has reports whether name is a canonical skill name in the catalog.
func (t *Taxonomy) Has(name string) bool {
	_, ok := t.canonical[strings.ToLower(name)]
	return ok
}

// Canonical resolves a case-insensitive skill name to its canonical form.
func (t *Taxonomy) Canonical(name string) (string, bool) {
	skill, ok := t.canonical[strings.ToLower(name)]
	return skill, ok
}

// AllSkills returns every canonical skill name, sorted lexicographically.
func (t *Taxonomy) AllSkills() []string {
	skills := make([]string, 0, len(t.canonical))
	for _, skill := range t.canonical {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	return skills
}

// AliasTable maps a lowercase alias string to a canonical skill name. Several
// aliases may map to the same canonical name.
type AliasTable map[string]string

// Validate checks that alias keys are lowercase and that every alias target
// is a canonical skill name in the given taxonomy. Aliases that point at
// unknown skills would leak non-canonical names into extraction results, so
// they are rejected at load time.
func (a AliasTable) Validate(t *Taxonomy) error {
	for alias, target := range a {
		if alias == "" {
			return fmt.Errorf("empty alias key")
		}
		if alias != strings.ToLower(alias) {
			return fmt.Errorf("alias %q is not lowercase", alias)
		}
		if !t.Has(target) {
			return fmt.Errorf("alias %q resolves to unknown skill %q", alias, target)
		}
	}
	return nil
}
