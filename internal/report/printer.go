package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Tanarius/Learning-Assistant/internal/types"
)

const boxWidth = 60

// Printer handles formatted console output for verbose mode.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobAnalysis outputs a human-readable summary of one job's analysis.
func (p *Printer) PrintJobAnalysis(a types.JobSkillAnalysis) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Company:  %s\n", a.Company)
	fmt.Fprintf(&sb, "Role:     %s\n", a.JobTitle)
	fmt.Fprintf(&sb, "Match:    %.0f%%\n", a.OverallMatchScore)
	fmt.Fprintf(&sb, "Required: %d skills, %d missing\n", len(a.RequiredSkills), len(a.MissingSkills))
	fmt.Fprintf(&sb, "Timeline: %s", a.ReadinessTimeline)
	p.printBox("Job Analysis", sb.String())
}

// PrintGaps outputs the prioritized gap list.
func (p *Printer) PrintGaps(gaps []types.SkillGap) {
	if len(gaps) == 0 {
		p.printBox("Skill Gaps", "None - fully qualified for the analyzed jobs")
		return
	}

	var sb strings.Builder
	for i, gap := range gaps {
		fmt.Fprintf(&sb, "%d. %s (priority %d/5, %d jobs)", i+1, gap.SkillName, gap.LearningPriority, gap.JobFrequency)
		if i < len(gaps)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("Prioritized Skill Gaps", sb.String())
}

// PrintReadiness outputs the overall readiness summary.
func (p *Printer) PrintReadiness(r types.ReadinessSummary) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Score:  %.1f\n", r.OverallScore)
	fmt.Fprintf(&sb, "Status: %s\n", r.Status)
	fmt.Fprintf(&sb, "Best:   %.0f%%  Worst: %.0f%%", r.BestMatchScore, r.WorstMatchScore)
	p.printBox("Overall Readiness", sb.String())
}
