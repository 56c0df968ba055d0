package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanarius/Learning-Assistant/internal/types"
)

func analysesWithScores(scores ...float64) []types.JobSkillAnalysis {
	out := make([]types.JobSkillAnalysis, len(scores))
	for i, s := range scores {
		out[i] = types.JobSkillAnalysis{OverallMatchScore: s}
	}
	return out
}

func TestReadiness_AveragesAndBounds(t *testing.T) {
	sum := Readiness(analysesWithScores(50, 75, 100))

	assert.InDelta(t, 75.0, sum.OverallScore, 0.001)
	assert.InDelta(t, 100.0, sum.BestMatchScore, 0.001)
	assert.InDelta(t, 50.0, sum.WorstMatchScore, 0.001)
	assert.Equal(t, []float64{50, 75, 100}, sum.IndividualScores)
	assert.Equal(t, "Nearly Ready - 1-2 months focused learning", sum.Status)
	assert.NotEmpty(t, sum.Recommendations)
}

func TestReadiness_RoundsToOneDecimal(t *testing.T) {
	sum := Readiness(analysesWithScores(33.333, 33.333, 33.333))
	assert.InDelta(t, 33.3, sum.OverallScore, 0.0001)
}

func TestReadiness_StatusTiers(t *testing.T) {
	cases := []struct {
		score  float64
		status string
	}{
		{90, "Ready - Start applying now"},
		{80, "Ready - Start applying now"},
		{60, "Nearly Ready - 1-2 months focused learning"},
		{40, "Development Phase - 3-6 months needed"},
		{10, "Foundation Phase - 6+ months development needed"},
	}
	for _, tc := range cases {
		sum := Readiness(analysesWithScores(tc.score))
		assert.Equal(t, tc.status, sum.Status, "score %v", tc.score)
	}
}

func TestReadiness_NoData(t *testing.T) {
	sum := Readiness(nil)
	assert.Equal(t, "No data", sum.Status)
	assert.Zero(t, sum.OverallScore)
}

func TestNextActions_TopThreePriorities(t *testing.T) {
	gaps := []types.SkillGap{
		{SkillName: "machine_learning", LearningPriority: 5},
		{SkillName: "aws", LearningPriority: 5},
		{SkillName: "docker", LearningPriority: 3},
		{SkillName: "sql", LearningPriority: 2},
	}

	actions := NextActions(gaps)
	require.NotEmpty(t, actions)
	assert.Equal(t, "IMMEDIATE PRIORITIES (Next 2 weeks):", actions[0])
	assert.Equal(t, "1. Start learning machine_learning - Priority 5/5", actions[1])
	assert.Equal(t, "2. Start learning aws - Priority 5/5", actions[2])
	assert.Equal(t, "3. Start learning docker - Priority 3/5", actions[3])
	assert.NotContains(t, actions, "4. Start learning sql - Priority 2/5")
	assert.Contains(t, actions, "LEARNING ACTIONS:")
	assert.Contains(t, actions, "TRACKING ACTIONS:")
}

func TestNextActions_NoGaps(t *testing.T) {
	actions := NextActions(nil)
	require.Len(t, actions, 1)
	assert.Contains(t, actions[0], "No critical skill gaps")
}
