package analysis

import (
	"fmt"
	"math"

	"github.com/Tanarius/Learning-Assistant/internal/types"
)

// Readiness aggregates per-job match scores into an overall job-market
// readiness estimate.
func Readiness(analyses []types.JobSkillAnalysis) types.ReadinessSummary {
	if len(analyses) == 0 {
		return types.ReadinessSummary{Status: "No data"}
	}

	scores := make([]float64, len(analyses))
	sum := 0.0
	best := math.Inf(-1)
	worst := math.Inf(1)
	for i, a := range analyses {
		scores[i] = a.OverallMatchScore
		sum += a.OverallMatchScore
		best = math.Max(best, a.OverallMatchScore)
		worst = math.Min(worst, a.OverallMatchScore)
	}
	avg := sum / float64(len(scores))

	var status string
	var recs []string
	switch {
	case avg >= 80:
		status = "Ready - Start applying now"
		recs = []string{
			"Begin aggressive job application campaign",
			"Focus on interview preparation",
		}
	case avg >= 60:
		status = "Nearly Ready - 1-2 months focused learning"
		recs = []string{
			"Focus on top 3 skill gaps",
			"Continue building portfolio projects",
		}
	case avg >= 40:
		status = "Development Phase - 3-6 months needed"
		recs = []string{
			"Systematic skill building required",
			"Consider bootcamp or intensive training",
		}
	default:
		status = "Foundation Phase - 6+ months development needed"
		recs = []string{
			"Build fundamental skills first",
			"Consider formal education or certification",
		}
	}

	return types.ReadinessSummary{
		OverallScore:     math.Round(avg*10) / 10,
		Status:           status,
		IndividualScores: scores,
		BestMatchScore:   best,
		WorstMatchScore:  worst,
		Recommendations:  recs,
	}
}

// NextActions turns the prioritized gap list into a concrete action list for
// the user. An empty gap list is a successful outcome, not an error.
func NextActions(prioritized []types.SkillGap) []string {
	if len(prioritized) == 0 {
		return []string{"Great! No critical skill gaps identified. Focus on interview preparation."}
	}

	top := prioritized
	if len(top) > 3 {
		top = top[:3]
	}

	actions := []string{"IMMEDIATE PRIORITIES (Next 2 weeks):"}
	for i, gap := range top {
		actions = append(actions, fmt.Sprintf("%d. Start learning %s - Priority %d/5", i+1, gap.SkillName, gap.LearningPriority))
	}

	actions = append(actions,
		"",
		"LEARNING ACTIONS:",
		"- Choose one primary skill from the top 3 to focus on first",
		"- Dedicate 1-2 hours daily to structured learning",
		"- Build a portfolio project incorporating the new skill",
		"",
		"INTEGRATION ACTIONS:",
		"- Add new skills to existing automation projects",
		"- Update resume and portfolio to reflect learning progress",
		"- Document the learning journey for personal brand building",
		"",
		"TRACKING ACTIONS:",
		"- Set weekly learning goals and milestones",
		"- Re-run this analysis monthly to track progress",
		"- Apply to 1-2 jobs while learning to get market feedback",
	)

	return actions
}
