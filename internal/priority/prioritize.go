// Package priority merges skill gaps collected across multiple jobs into one
// ranked entry per distinct skill.
package priority

import (
	"sort"

	"github.com/Tanarius/Learning-Assistant/internal/types"
)

const maxPriority = 5

// Prioritize groups gaps by skill name, takes the first occurrence of each
// skill as representative, sets its frequency to the group size, and boosts
// its priority when the skill recurs (+2 at three or more jobs, +1 at two,
// clamped to 5). The result is sorted descending by (priority, frequency);
// ties keep first-seen order. Input gaps are never mutated; each output entry
// is a fresh record built from its representative.
func Prioritize(all []types.SkillGap) []types.SkillGap {
	if len(all) == 0 {
		return nil
	}

	counts := make(map[string]int, len(all))
	order := make([]types.SkillGap, 0, len(all))
	for _, gap := range all {
		if counts[gap.SkillName] == 0 {
			order = append(order, gap)
		}
		counts[gap.SkillName]++
	}

	merged := make([]types.SkillGap, 0, len(order))
	for _, rep := range order {
		freq := counts[rep.SkillName]
		boosted := rep
		boosted.JobFrequency = freq
		switch {
		case freq >= 3:
			boosted.LearningPriority = clamp(rep.LearningPriority + 2)
		case freq >= 2:
			boosted.LearningPriority = clamp(rep.LearningPriority + 1)
		}
		merged = append(merged, boosted)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].LearningPriority != merged[j].LearningPriority {
			return merged[i].LearningPriority > merged[j].LearningPriority
		}
		return merged[i].JobFrequency > merged[j].JobFrequency
	})

	return merged
}

func clamp(p int) int {
	if p > maxPriority {
		return maxPriority
	}
	return p
}
