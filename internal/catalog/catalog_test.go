package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedCatalog(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	names := c.Names()
	assert.True(t, sort.StringsAreSorted(names))
	for _, want := range []string{"python", "machine_learning", "aws", "docker", "kubernetes"} {
		assert.Contains(t, names, want)
	}

	info, ok := c.Lookup("machine_learning")
	require.True(t, ok)
	assert.Equal(t, "ai_technology", info.Category)
	assert.Equal(t, "steep", info.LearningCurve)
	assert.NotEmpty(t, info.TimeToProficiency)

	_, ok = c.Lookup("cobol")
	assert.False(t, ok)
}

func TestLoad_PatternsCompileAndMatch(t *testing.T) {
	c := MustLoad()
	require.NotEmpty(t, c.Patterns())

	matched := map[string]bool{}
	for _, p := range c.Patterns() {
		if p.Expr.MatchString("we use machine learning pipelines behind an api") {
			matched[p.Skill] = true
		}
	}
	assert.True(t, matched["machine_learning"])
	assert.True(t, matched["api_development"])
}

func TestParse_RejectsBadInput(t *testing.T) {
	_, err := Parse([]byte(`not json`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{"skills": {}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")

	_, err = Parse([]byte(`{"skills": {"go": {"category": "language"}}, "patterns": [{"pattern": "(", "skill": "x"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid extraction pattern")
}
