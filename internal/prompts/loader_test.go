package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_LearningPlan(t *testing.T) {
	prompt, err := Get("coaching.json", "learning_plan")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.JobContext}}")
	assert.Contains(t, prompt, "{{.Gaps}}")
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("coaching.json", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("absent.json", "learning_plan")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	out := Format("plan for {{.JobContext}}: {{.Gaps}}", map[string]string{
		"JobContext": "2 jobs",
		"Gaps":       "- aws",
	})
	assert.Equal(t, "plan for 2 jobs: - aws", out)
}

func TestFormat_UnknownPlaceholderLeftIntact(t *testing.T) {
	out := Format("{{.Missing}}", map[string]string{"Other": "x"})
	assert.Equal(t, "{{.Missing}}", out)
}
