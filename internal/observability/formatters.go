// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/FlyRocketToMars/RocktheInterview/internal/gap"
	"github.com/FlyRocketToMars/RocktheInterview/internal/plan"
	"github.com/FlyRocketToMars/RocktheInterview/internal/skills"
	"github.com/FlyRocketToMars/RocktheInterview/internal/taxonomy"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExtractedSkills outputs the skills found in a text, grouped by
// taxonomy category.
func (p *Printer) PrintExtractedSkills(title string, found skills.Set, tax *taxonomy.Taxonomy) {
	if len(found) == 0 {
		p.printBox(title, "No catalog skills found")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills found: %d\n", len(found)))

	categorized := skills.Categorize(found, tax)
	for _, cat := range tax.Categories {
		matching, ok := categorized[cat.Name]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n%s:\n", cat.Name))
		for _, skill := range matching {
			sb.WriteString(fmt.Sprintf("  • %s\n", skill))
		}
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGapAnalysis outputs a skill gap report, gaps first with their
// importance in the JD when known.
func (p *Printer) PrintGapAnalysis(analysis gap.Analysis, importance map[string]skills.Importance) {
	var sb strings.Builder

	if len(analysis.Gaps) > 0 {
		sb.WriteString(fmt.Sprintf("Gaps (%d):\n", len(analysis.Gaps)))
		for _, skill := range analysis.Gaps.Sorted() {
			sb.WriteString(fmt.Sprintf("  ✗ %s", skill))
			if level, ok := importance[skill]; ok {
				sb.WriteString(fmt.Sprintf(" (%s)", level))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	} else {
		sb.WriteString("No gaps: every target skill is covered\n\n")
	}

	if len(analysis.Strengths) > 0 {
		sb.WriteString(fmt.Sprintf("Strengths (%d):\n", len(analysis.Strengths)))
		for _, skill := range analysis.Strengths.Sorted() {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", skill))
		}
		sb.WriteString("\n")
	}

	if len(analysis.Extra) > 0 {
		extras := analysis.Extra.Sorted()
		sb.WriteString(fmt.Sprintf("Extra (%d): ", len(extras)))
		shown := min(len(extras), maxItemsToShow)
		sb.WriteString(strings.Join(extras[:shown], ", "))
		if len(extras) > shown {
			sb.WriteString(fmt.Sprintf(" and %d more", len(extras)-shown))
		}
		sb.WriteString("\n")
	}

	total := len(analysis.Gaps) + len(analysis.Strengths)
	if total > 0 {
		sb.WriteString(fmt.Sprintf("\nMatch: %d%%", len(analysis.Strengths)*100/total))
	}

	p.printBox("SKILL GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDailyTasks outputs one day's study tasks.
func (p *Printer) PrintDailyTasks(daily *plan.DailyTasks) {
	if daily == nil || len(daily.Tasks) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Week %d: %s\n", daily.Week, daily.PhaseName))
	if len(daily.FocusAreas) > 0 {
		sb.WriteString(fmt.Sprintf("Focus: %s\n", strings.Join(daily.FocusAreas, ", ")))
	}
	sb.WriteString("\n")

	for _, task := range daily.Tasks {
		sb.WriteString(fmt.Sprintf("%s %s (%d min)\n", task.Icon, task.Name, task.DurationMinutes))
		sb.WriteString(fmt.Sprintf("    %s\n", task.Activity))
		if task.Topic != "" {
			sb.WriteString(fmt.Sprintf("    Topic: %s\n", task.Topic))
		}
	}

	sb.WriteString(fmt.Sprintf("\nTotal: %d minutes", daily.TotalMinutes))
	p.printBox(fmt.Sprintf("STUDY PLAN %s", daily.Date), sb.String())
}

// PrintTemplates outputs the available plan templates.
func (p *Printer) PrintTemplates(templates []*plan.Template) {
	if len(templates) == 0 {
		return
	}

	var sb strings.Builder
	for i, tmpl := range templates {
		sb.WriteString(fmt.Sprintf("%s: %s\n", tmpl.ID, tmpl.Name))
		sb.WriteString(fmt.Sprintf("    %d weeks, %d phases, for %s\n", tmpl.DurationWeeks, len(tmpl.Phases), tmpl.TargetRole))
		if i < len(templates)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("PLAN TEMPLATES", strings.TrimSuffix(sb.String(), "\n"))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
