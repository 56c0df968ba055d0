// Package types provides type definitions for structured data shared across the learning assistant pipeline.
package types

import "strings"

// SkillLevel is a proficiency rating for a single skill.
// Levels are totally ordered: none < beginner < intermediate < advanced < expert.
type SkillLevel string

// Proficiency levels from lowest to highest.
const (
	LevelNone         SkillLevel = "none"
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
	LevelExpert       SkillLevel = "expert"
)

// levelRanks maps each level to its position in the proficiency order.
var levelRanks = map[SkillLevel]int{
	LevelNone:         0,
	LevelBeginner:     1,
	LevelIntermediate: 2,
	LevelAdvanced:     3,
	LevelExpert:       4,
}

// Rank returns the numeric position of the level in the proficiency order.
// Unknown levels rank as none.
func (l SkillLevel) Rank() int {
	return levelRanks[l]
}

// AtLeast reports whether l is at or above other in the proficiency order.
func (l SkillLevel) AtLeast(other SkillLevel) bool {
	return l.Rank() >= other.Rank()
}

// ParseSkillLevel parses a level token case-insensitively.
// Empty or unrecognized input maps to LevelNone.
func ParseSkillLevel(s string) SkillLevel {
	level := SkillLevel(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := levelRanks[level]; ok {
		return level
	}
	return LevelNone
}
