// Package report renders analysis results for humans: a Markdown gap report
// and a formatted console summary for verbose mode.
package report

import (
	"fmt"
	"strings"

	"github.com/Tanarius/Learning-Assistant/internal/types"
)

// Markdown renders the full analysis result as a Markdown report.
func Markdown(res types.AnalysisResult) string {
	var sb strings.Builder

	sb.WriteString("# Skill Gap Analysis\n\n")
	fmt.Fprintf(&sb, "Analyzed %d job applications.\n\n", res.JobsAnalyzedCount)

	fmt.Fprintf(&sb, "**Overall readiness:** %s (score %.1f)\n\n", res.OverallReadiness.Status, res.OverallReadiness.OverallScore)

	if len(res.JobAnalyses) > 0 {
		sb.WriteString("## Job Match Summary\n\n")
		sb.WriteString("| Job | Company | Match | Readiness |\n|---|---|---|---|\n")
		for _, a := range res.JobAnalyses {
			fmt.Fprintf(&sb, "| %s | %s | %.0f%% | %s |\n", a.JobTitle, a.Company, a.OverallMatchScore, a.ReadinessTimeline)
		}
		sb.WriteString("\n")
	}

	if len(res.PrioritizedGaps) > 0 {
		sb.WriteString("## Prioritized Skill Gaps\n\n")
		sb.WriteString("| Skill | Priority | Jobs | Severity | Current | Time Estimate |\n|---|---|---|---|---|---|\n")
		for _, gap := range res.PrioritizedGaps {
			fmt.Fprintf(&sb, "| %s | %d/5 | %d | %.1f | %s | %s |\n",
				gap.SkillName, gap.LearningPriority, gap.JobFrequency, gap.GapSeverity, gap.CurrentLevel, gap.TimeEstimate)
		}
		sb.WriteString("\n")
	} else {
		sb.WriteString("No skill gaps identified - you meet the requirements of every analyzed job.\n\n")
	}

	if len(res.LearningPaths) > 0 {
		sb.WriteString("## Learning Paths\n\n")
		for _, path := range res.LearningPaths {
			fmt.Fprintf(&sb, "### %s (%s → %s, %s)\n\n", path.SkillArea, path.CurrentLevel, path.TargetLevel, path.TotalTimeEstimate)
			for i, step := range path.Steps {
				fmt.Fprintf(&sb, "%d. %s (%s). Deliverable: %s\n", i+1, step.Step, step.Duration, step.Deliverable)
			}
			if len(path.Projects) > 0 {
				fmt.Fprintf(&sb, "\nProjects: %s\n", strings.Join(path.Projects, "; "))
			}
			if len(path.Milestones) > 0 {
				fmt.Fprintf(&sb, "Milestones: %s\n", strings.Join(path.Milestones, "; "))
			}
			if len(path.SuccessMetrics) > 0 {
				fmt.Fprintf(&sb, "Success metrics: %s\n", strings.Join(path.SuccessMetrics, "; "))
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString(renderRecommendations(res.Recommendations))

	if len(res.NextActions) > 0 {
		sb.WriteString("## Next Actions\n\n")
		for _, action := range res.NextActions {
			if action == "" {
				sb.WriteString("\n")
				continue
			}
			fmt.Fprintf(&sb, "%s\n", action)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func renderRecommendations(set types.RecommendationSet) string {
	var sb strings.Builder
	sb.WriteString("## Learning Recommendations\n\n")

	if set.AIGenerated {
		fmt.Fprintf(&sb, "_Generated by %s._\n\n", set.Model)
		sb.WriteString(set.Content)
		sb.WriteString("\n\n")
		return sb.String()
	}

	if set.Note != "" {
		fmt.Fprintf(&sb, "_%s_\n\n", set.Note)
	}
	for _, rec := range set.Recommendations {
		fmt.Fprintf(&sb, "### %s (%s)\n\n", rec.Skill, rec.TimeEstimate)
		fmt.Fprintf(&sb, "Resources: %s\n\n", strings.Join(rec.Resources, "; "))
		fmt.Fprintf(&sb, "Projects: %s\n\n", strings.Join(rec.Projects, "; "))
		if len(rec.QuickWins) > 0 {
			fmt.Fprintf(&sb, "Quick wins: %s\n\n", strings.Join(rec.QuickWins, "; "))
		}
	}
	return sb.String()
}
