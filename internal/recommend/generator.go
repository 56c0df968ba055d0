// Package recommend produces narrative learning recommendations for a
// prioritized gap list. The Gemini-backed generator is optional; the
// deterministic template generator always works and serves as the fallback.
package recommend

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tanarius/Learning-Assistant/internal/prompts"
	"github.com/Tanarius/Learning-Assistant/internal/types"
)

// Generator turns a gap list plus a job-context summary into a
// recommendation set.
type Generator interface {
	Generate(ctx context.Context, gaps []types.SkillGap, jobContext string) (types.RecommendationSet, error)
}

// Narrative runs gen and falls back to the template generator when gen is nil
// or fails. The pipeline never depends on the AI call succeeding.
func Narrative(ctx context.Context, gen Generator, gaps []types.SkillGap, jobContext string) types.RecommendationSet {
	if gen != nil {
		set, err := gen.Generate(ctx, gaps, jobContext)
		if err == nil {
			return set
		}
	}
	set, _ := TemplateGenerator{}.Generate(ctx, gaps, jobContext)
	return set
}

// BuildPrompt renders the learning-plan prompt for a gap list.
func BuildPrompt(gaps []types.SkillGap, jobContext string) string {
	lines := make([]string, 0, len(gaps))
	for _, gap := range gaps {
		lines = append(lines, fmt.Sprintf("- %s: Need to go from %s to %s (Priority: %d/5)",
			gap.SkillName, gap.CurrentLevel, gap.RequiredLevel, gap.LearningPriority))
	}

	template := prompts.MustGet("coaching.json", "learning_plan")
	return prompts.Format(template, map[string]string{
		"JobContext": jobContext,
		"Gaps":       strings.Join(lines, "\n"),
	})
}
