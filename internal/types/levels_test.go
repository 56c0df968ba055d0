package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSkillLevel_CaseInsensitive(t *testing.T) {
	assert.Equal(t, LevelAdvanced, ParseSkillLevel("Advanced"))
	assert.Equal(t, LevelBeginner, ParseSkillLevel("BEGINNER"))
	assert.Equal(t, LevelExpert, ParseSkillLevel("  expert  "))
}

func TestParseSkillLevel_UnknownMapsToNone(t *testing.T) {
	assert.Equal(t, LevelNone, ParseSkillLevel(""))
	assert.Equal(t, LevelNone, ParseSkillLevel("wizard"))
}

func TestSkillLevel_TotalOrder(t *testing.T) {
	ordered := []SkillLevel{LevelNone, LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}
	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, ordered[i].Rank(), ordered[i-1].Rank(), "%s should outrank %s", ordered[i], ordered[i-1])
	}
}

func TestSkillLevel_AtLeast(t *testing.T) {
	assert.True(t, LevelAdvanced.AtLeast(LevelIntermediate))
	assert.True(t, LevelIntermediate.AtLeast(LevelIntermediate))
	assert.False(t, LevelBeginner.AtLeast(LevelIntermediate))
	assert.False(t, LevelNone.AtLeast(LevelBeginner))
}
