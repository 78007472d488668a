// Package gap computes the skill difference between a candidate's resume and
// a target job description.
package gap

import (
	"github.com/FlyRocketToMars/RocktheInterview/internal/skills"
)

// Analysis holds the three disjoint outcomes of comparing a source (resume)
// skill set against a target (job description) skill set.
type Analysis struct {
	// Gaps are skills the target requires that the source lacks.
	Gaps skills.Set
	// Strengths are skills present in both sets.
	Strengths skills.Set
	// Extra are source skills the target does not ask for.
	Extra skills.Set
}

// Analyze compares resume skills against target-job skills. It is a pure
// function over hash sets: gaps = target − resume, strengths = target ∩
// resume, extra = resume − target. Empty inputs degrade to the obvious
// set-theoretic results; the analyzer itself never errors, and deciding
// whether an empty input is worth analyzing is the caller's concern.
func Analyze(resume, target skills.Set) Analysis {
	a := Analysis{
		Gaps:      make(skills.Set),
		Strengths: make(skills.Set),
		Extra:     make(skills.Set),
	}

	for skill := range target {
		if resume.Has(skill) {
			a.Strengths.Add(skill)
		} else {
			a.Gaps.Add(skill)
		}
	}

	for skill := range resume {
		if !target.Has(skill) {
			a.Extra.Add(skill)
		}
	}

	return a
}
