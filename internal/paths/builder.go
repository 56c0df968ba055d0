// Package paths groups prioritized skill gaps into topical learning paths
// with templated steps, projects, and milestones.
package paths

import (
	"fmt"
	"strings"

	"github.com/Tanarius/Learning-Assistant/internal/types"
)

// Truncation limits keep each path digestible.
const (
	maxSteps      = 6
	maxProjects   = 3
	maxMilestones = 5
	maxMetrics    = 4
)

// bucketRule assigns a gap to a skill area by substring match. Rules are
// evaluated top to bottom and the first match wins, so a later bucket is only
// reachable for skills no earlier rule claimed.
type bucketRule struct {
	area  string
	terms []string
}

var bucketRules = []bucketRule{
	{"AI/Machine Learning", []string{"machine", "learning", "ai", "tensorflow", "pytorch", "neural"}},
	{"Cloud & Infrastructure", []string{"aws", "cloud", "azure", "gcp", "infrastructure"}},
	{"Data Processing", []string{"data", "pandas", "numpy", "sql", "analytics"}},
	{"Web Development", []string{"web", "javascript", "html", "css", "react", "node"}},
	{"DevOps & Automation", []string{"docker", "kubernetes", "devops", "automation", "ci/cd"}},
}

// defaultArea catches gaps no rule matches.
const defaultArea = "DevOps & Automation"

// Classify returns the skill area for a gap's skill name.
func Classify(skillName string) string {
	lower := strings.ToLower(skillName)
	for _, rule := range bucketRules {
		for _, term := range rule.terms {
			if strings.Contains(lower, term) {
				return rule.area
			}
		}
	}
	return defaultArea
}

// Build groups the prioritized gaps into skill areas and synthesizes a
// learning path per non-empty area, in fixed bucket order. Every input gap
// lands in exactly one area.
func Build(prioritized []types.SkillGap) []types.LearningPath {
	grouped := make(map[string][]types.SkillGap)
	for _, gap := range prioritized {
		area := Classify(gap.SkillName)
		grouped[area] = append(grouped[area], gap)
	}

	var result []types.LearningPath
	for _, rule := range bucketRules {
		gaps := grouped[rule.area]
		if len(gaps) == 0 {
			continue
		}
		result = append(result, buildPath(rule.area, gaps))
	}
	return result
}

// buildPath synthesizes foundation/practice/integration steps for each skill
// in the area, then truncates to the per-path limits.
func buildPath(area string, gaps []types.SkillGap) types.LearningPath {
	var steps []types.PathStep
	var projects, milestones, metrics []string

	for _, gap := range gaps {
		skill := gap.SkillName
		steps = append(steps,
			types.PathStep{
				Step:        fmt.Sprintf("Foundation: Learn %s basics", skill),
				Duration:    "1-2 weeks",
				Resources:   []string{fmt.Sprintf("Official %s documentation", skill), "Beginner tutorials"},
				Deliverable: fmt.Sprintf("Basic %s demo project", skill),
			},
			types.PathStep{
				Step:        fmt.Sprintf("Practice: Build %s project", skill),
				Duration:    "2-3 weeks",
				Resources:   []string{fmt.Sprintf("Hands-on %s projects", skill), "Community forums"},
				Deliverable: fmt.Sprintf("Portfolio-worthy %s application", skill),
			},
			types.PathStep{
				Step:        fmt.Sprintf("Integration: Add %s to existing projects", skill),
				Duration:    "1-2 weeks",
				Resources:   []string{"Existing codebase", "Integration tutorials"},
				Deliverable: fmt.Sprintf("Enhanced automation tooling with %s", skill),
			},
		)
		projects = append(projects,
			fmt.Sprintf("Build %s demonstration project", skill),
			fmt.Sprintf("Integrate %s into an existing application", skill),
			fmt.Sprintf("Create %s automation tool", skill),
		)
		milestones = append(milestones,
			fmt.Sprintf("Complete basic %s tutorial", skill),
			fmt.Sprintf("Build first %s project", skill),
			fmt.Sprintf("Deploy %s in production", skill),
		)
		metrics = append(metrics,
			fmt.Sprintf("Can explain %s concepts clearly", skill),
			fmt.Sprintf("Has working %s project in portfolio", skill),
			fmt.Sprintf("Can implement %s solutions independently", skill),
		)
	}

	return types.LearningPath{
		SkillArea:         area,
		CurrentLevel:      types.LevelBeginner,
		TargetLevel:       types.LevelIntermediate,
		TotalTimeEstimate: "2-4 months",
		Steps:             truncateSteps(steps, maxSteps),
		Projects:          truncate(projects, maxProjects),
		Milestones:        truncate(milestones, maxMilestones),
		SuccessMetrics:    truncate(metrics, maxMetrics),
	}
}

func truncateSteps(steps []types.PathStep, limit int) []types.PathStep {
	if len(steps) > limit {
		return steps[:limit]
	}
	return steps
}

func truncate(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
