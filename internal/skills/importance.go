package skills

import (
	"fmt"
	"regexp"
	"strings"
)

// Importance is the requirement level of a skill within a job description.
type Importance string

// Importance levels, strongest first.
const (
	ImportanceRequired  Importance = "required"
	ImportancePreferred Importance = "preferred"
	ImportanceMentioned Importance = "mentioned"
)

// Phrase templates checked against the lowercased JD text. %s is the quoted
// skill name. Required templates are checked first and short-circuit, so
// required always wins over preferred when both match.
var (
	requiredTemplates = []string{
		`required.*%s`,
		`must have.*%s`,
		`%s.*required`,
		`%s.*must`,
		`experience with %s`,
		`proficiency in %s`,
	}
	preferredTemplates = []string{
		`preferred.*%s`,
		`nice to have.*%s`,
		`%s.*preferred`,
		`%s.*bonus`,
		`familiarity with %s`,
	}
)

// ClassifyImportance determines the requirement level of a skill from its
// surrounding context in the job description. Skills mentioned without any
// requirement language default to ImportanceMentioned.
func ClassifyImportance(skill, jdText string) Importance {
	jdLower := strings.ToLower(jdText)
	quoted := regexp.QuoteMeta(strings.ToLower(skill))

	for _, tmpl := range requiredTemplates {
		re := regexp.MustCompile(fmt.Sprintf(tmpl, quoted))
		if re.MatchString(jdLower) {
			return ImportanceRequired
		}
	}

	for _, tmpl := range preferredTemplates {
		re := regexp.MustCompile(fmt.Sprintf(tmpl, quoted))
		if re.MatchString(jdLower) {
			return ImportancePreferred
		}
	}

	return ImportanceMentioned
}
