package extraction

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanarius/Learning-Assistant/internal/catalog"
	"github.com/Tanarius/Learning-Assistant/internal/types"
)

func newExtractor(t *testing.T) *Extractor {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return NewExtractor(c)
}

func TestFromText_DictionaryMatches(t *testing.T) {
	e := newExtractor(t)

	skills := e.FromText("Looking for Python and AWS experience")
	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "aws")
}

func TestFromText_SpaceFormMatchesUnderscoreToken(t *testing.T) {
	e := newExtractor(t)

	skills := e.FromText("Machine Learning Engineer")
	assert.Contains(t, skills, "machine_learning")
}

func TestFromText_PatternMatches(t *testing.T) {
	e := newExtractor(t)

	skills := e.FromText("You will build our REST API and own the deployment infrastructure")
	assert.Contains(t, skills, "api_development")
	assert.Contains(t, skills, "rest_api")
	assert.Contains(t, skills, "infrastructure")
}

func TestFromText_SortedAndDeduplicated(t *testing.T) {
	e := newExtractor(t)

	skills := e.FromText("python python docker aws docker")
	assert.True(t, sort.StringsAreSorted(skills))
	seen := map[string]int{}
	for _, s := range skills {
		seen[s]++
	}
	for s, n := range seen {
		assert.Equal(t, 1, n, "token %q appears more than once", s)
	}
}

func TestFromText_EmptyInput(t *testing.T) {
	e := newExtractor(t)

	assert.Nil(t, e.FromText(""))
	assert.Nil(t, e.FromText("nothing relevant here"))
}

func TestFromRecord_UnionsAllFields(t *testing.T) {
	e := newExtractor(t)

	rec := types.JobRecord{
		JobInformation: types.JobInformation{Title: "Machine Learning Engineer"},
		CompanyIntelligence: types.CompanyIntelligence{
			TechStack:                  []string{"Python", "Terraform"},
			ApplicationRecommendations: []string{"Emphasize docker experience"},
		},
		ResumeCustomization: types.ResumeCustomization{
			EmphasizedSkills: []string{"AWS"},
		},
	}

	skills := e.FromRecord(rec)
	assert.Contains(t, skills, "machine_learning")
	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "aws")
	assert.Contains(t, skills, "docker")
	// Tech-stack entries count even when the dictionary does not know them.
	assert.Contains(t, skills, "terraform")
	assert.True(t, sort.StringsAreSorted(skills))
}

func TestFromRecord_EmptyRecord(t *testing.T) {
	e := newExtractor(t)

	assert.Nil(t, e.FromRecord(types.JobRecord{}))
}

func TestFromRecord_Deterministic(t *testing.T) {
	e := newExtractor(t)

	rec := types.JobRecord{
		CompanyIntelligence: types.CompanyIntelligence{
			TechStack: []string{"Kubernetes", "Docker", "AWS", "Python"},
		},
	}

	first := e.FromRecord(rec)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, e.FromRecord(rec))
	}
}
