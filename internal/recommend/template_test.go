package recommend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanarius/Learning-Assistant/internal/types"
)

func TestTemplateGenerator_CuratedSkills(t *testing.T) {
	gaps := []types.SkillGap{
		{SkillName: "machine_learning", TimeEstimate: "6-12 months"},
		{SkillName: "python", TimeEstimate: "1-2 months"},
		{SkillName: "aws", TimeEstimate: "3-6 months"},
	}

	set, err := TemplateGenerator{}.Generate(context.Background(), gaps, "")
	require.NoError(t, err)
	assert.False(t, set.AIGenerated)
	assert.Contains(t, set.Note, "Template-based")
	require.Len(t, set.Recommendations, 3)

	ml := set.Recommendations[0]
	assert.Equal(t, "machine_learning", ml.Skill)
	assert.Contains(t, ml.Resources, "Kaggle Learn: Machine Learning")
	assert.Equal(t, "6-12 months", ml.TimeEstimate)
	assert.NotEmpty(t, ml.QuickWins)

	py := set.Recommendations[1]
	assert.Contains(t, py.Resources, "Automate the Boring Stuff with Python")

	cloud := set.Recommendations[2]
	assert.Contains(t, cloud.Resources, "AWS Cloud Practitioner certification path")
}

func TestTemplateGenerator_GenericFallbackTemplate(t *testing.T) {
	set, err := TemplateGenerator{}.Generate(context.Background(), []types.SkillGap{
		{SkillName: "terraform", TimeEstimate: "2-4 months"},
	}, "")
	require.NoError(t, err)
	require.Len(t, set.Recommendations, 1)

	rec := set.Recommendations[0]
	assert.Equal(t, "terraform", rec.Skill)
	assert.Contains(t, rec.Resources, "Official terraform documentation")
	assert.Contains(t, rec.Projects, "Create demo project showcasing terraform")
	assert.Contains(t, rec.QuickWins, "Complete basic terraform tutorial")
}

func TestTemplateGenerator_NoGaps(t *testing.T) {
	set, err := TemplateGenerator{}.Generate(context.Background(), nil, "")
	require.NoError(t, err)
	assert.Empty(t, set.Recommendations)
	assert.False(t, set.AIGenerated)
}
