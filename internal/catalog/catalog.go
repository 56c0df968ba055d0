// Package catalog holds the static skill dictionary and the extraction
// pattern table. The data is hand-authored, embedded at compile time, and
// never mutated after loading; callers receive it as an injected value so
// tests can substitute fixtures.
package catalog

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"

	_ "embed"
)

//go:embed skills.json
var skillsJSON []byte

// SkillInfo is the reference metadata for one skill in the dictionary.
type SkillInfo struct {
	Category          string   `json:"category"`
	LearningCurve     string   `json:"learning_curve"` // easy, moderate, or steep
	TimeToProficiency string   `json:"time_to_proficiency"`
	Prerequisites     []string `json:"prerequisites"`
	RelatedSkills     []string `json:"related_skills"`
	MarketDemand      string   `json:"job_market_demand"`
}

// Pattern maps a regex over free text to a canonical skill token, covering
// multi-word phrases the plain dictionary lookup would miss.
type Pattern struct {
	Expr  *regexp.Regexp
	Skill string
}

// Catalog is the immutable reference data consumed by the extractor and the
// gap analyzer.
type Catalog struct {
	skills   map[string]SkillInfo
	names    []string
	patterns []Pattern
}

// rawCatalog mirrors the embedded JSON layout.
type rawCatalog struct {
	Skills   map[string]SkillInfo `json:"skills"`
	Patterns []struct {
		Pattern string `json:"pattern"`
		Skill   string `json:"skill"`
	} `json:"patterns"`
}

// Load parses the embedded skill dictionary and compiles its pattern table.
func Load() (*Catalog, error) {
	return Parse(skillsJSON)
}

// MustLoad is Load, panicking on failure. The embedded data is validated by
// tests, so a failure here means a broken build.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

// Parse builds a Catalog from raw JSON. Exposed so tests can load fixtures.
func Parse(data []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse skill catalog: %w", err)
	}
	if len(raw.Skills) == 0 {
		return nil, fmt.Errorf("skill catalog is empty")
	}

	c := &Catalog{
		skills:   raw.Skills,
		names:    make([]string, 0, len(raw.Skills)),
		patterns: make([]Pattern, 0, len(raw.Patterns)),
	}
	for name := range raw.Skills {
		c.names = append(c.names, name)
	}
	sort.Strings(c.names)

	for _, p := range raw.Patterns {
		expr, err := regexp.Compile(p.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid extraction pattern %q: %w", p.Pattern, err)
		}
		c.patterns = append(c.patterns, Pattern{Expr: expr, Skill: p.Skill})
	}

	return c, nil
}

// Lookup returns the metadata for a skill token.
func (c *Catalog) Lookup(name string) (SkillInfo, bool) {
	info, ok := c.skills[name]
	return info, ok
}

// Names returns all dictionary skill tokens in sorted order.
func (c *Catalog) Names() []string {
	return c.names
}

// Patterns returns the compiled extraction pattern table.
func (c *Catalog) Patterns() []Pattern {
	return c.patterns
}
