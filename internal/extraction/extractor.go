// Package extraction turns free-text job-record fields into normalized skill
// tokens via dictionary and pattern lookup. No stemming, no fuzzy matching.
package extraction

import (
	"sort"
	"strings"

	"github.com/Tanarius/Learning-Assistant/internal/catalog"
	"github.com/Tanarius/Learning-Assistant/internal/types"
)

// Extractor matches text against the skill catalog. Safe for concurrent use;
// it holds only the immutable catalog.
type Extractor struct {
	catalog *catalog.Catalog
}

// NewExtractor returns an Extractor backed by the given catalog.
func NewExtractor(c *catalog.Catalog) *Extractor {
	return &Extractor{catalog: c}
}

// FromText returns the skill tokens found in text, sorted and deduplicated.
// A dictionary skill matches if the lowercased text contains either its token
// or its space-separated form ("machine_learning" also matches
// "machine learning"). Pattern-table matches map multi-word phrases to
// canonical tokens. Empty text yields nil.
func (e *Extractor) FromText(text string) []string {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	found := make(map[string]struct{})

	for _, name := range e.catalog.Names() {
		if strings.Contains(lower, name) || strings.Contains(lower, strings.ReplaceAll(name, "_", " ")) {
			found[name] = struct{}{}
		}
	}

	for _, p := range e.catalog.Patterns() {
		if p.Expr.MatchString(lower) {
			found[p.Skill] = struct{}{}
		}
	}

	return sortedTokens(found)
}

// FromRecord extracts required skills from every text-bearing field of a job
// record and unions the results. Tech-stack entries are also admitted
// directly as lowercased trimmed tokens, so stack items outside the
// dictionary still count as requirements. Missing fields contribute nothing.
func (e *Extractor) FromRecord(rec types.JobRecord) []string {
	found := make(map[string]struct{})

	collect := func(tokens []string) {
		for _, t := range tokens {
			found[t] = struct{}{}
		}
	}

	collect(e.FromText(rec.JobInformation.Title))

	for _, tech := range rec.CompanyIntelligence.TechStack {
		token := strings.ToLower(strings.TrimSpace(tech))
		if token != "" {
			found[token] = struct{}{}
		}
		collect(e.FromText(tech))
	}

	for _, skill := range rec.ResumeCustomization.EmphasizedSkills {
		collect(e.FromText(skill))
	}

	for _, note := range rec.CompanyIntelligence.ApplicationRecommendations {
		collect(e.FromText(note))
	}

	return sortedTokens(found)
}

func sortedTokens(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	tokens := make([]string, 0, len(set))
	for t := range set {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens
}
