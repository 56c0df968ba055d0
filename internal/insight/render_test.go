package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tanarius/Learning-Assistant/internal/types"
)

func TestRenderMarkdown(t *testing.T) {
	r := Report{
		FilesAnalyzed: []string{"a.go", "b.go"},
		Imports:       []string{"encoding/json", "net/http"},
		Concepts:      []string{"http_apis"},
		Patterns: []Pattern{
			{Name: "Explicit Error Handling", Description: "Checking errors", Example: "if err != nil { return err }"},
		},
		InterviewTopics: []string{"error_handling"},
		Skills: map[string]types.SkillLevel{
			"api_integration": types.LevelIntermediate,
			"go":              types.LevelBeginner,
		},
	}

	out := RenderMarkdown(r)
	assert.Contains(t, out, "# What You Learned")
	assert.Contains(t, out, "Analyzed 2 source files.")
	assert.Contains(t, out, "- http apis")
	assert.Contains(t, out, "- **Explicit Error Handling**: Checking errors (e.g. `if err != nil { return err }`)")
	assert.Contains(t, out, "| api integration | intermediate |")
	assert.Contains(t, out, "- error handling")
	assert.Contains(t, out, "encoding/json, net/http")
}

func TestRenderMarkdown_EmptyReportOmitsSections(t *testing.T) {
	out := RenderMarkdown(Report{})
	assert.Contains(t, out, "Analyzed 0 source files.")
	assert.NotContains(t, out, "## Concepts Demonstrated")
	assert.NotContains(t, out, "## Demonstrated Skills")
}
