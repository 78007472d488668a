package skills

import (
	"sort"

	"github.com/FlyRocketToMars/RocktheInterview/internal/taxonomy"
)

// Categorize groups a skill set by taxonomy category. Categories with no
// matching skill are omitted; each category's list is sorted
// lexicographically.
func Categorize(set Set, tax *taxonomy.Taxonomy) map[string][]string {
	categorized := make(map[string][]string)

	for _, cat := range tax.Categories {
		var matching []string
		for _, skill := range cat.Skills {
			if set.Has(skill) {
				matching = append(matching, skill)
			}
		}
		if len(matching) > 0 {
			sort.Strings(matching)
			categorized[cat.Name] = matching
		}
	}

	return categorized
}
