// Package analysis implements the per-job skill gap analyzer: it compares
// extracted required skills against the caller's current skill levels and
// produces one gap record per missing or insufficient skill.
package analysis

import (
	"github.com/Tanarius/Learning-Assistant/internal/catalog"
	"github.com/Tanarius/Learning-Assistant/internal/extraction"
	"github.com/Tanarius/Learning-Assistant/internal/types"
)

// Gap severity is two-tier: a skill entirely absent is strictly more severe
// than one merely below target.
const (
	SeverityMissing      = 8.0
	SeverityInsufficient = 5.0
)

// requiredLevel is the assumed target for every job requirement.
const requiredLevel = types.LevelIntermediate

// highValueSkills get the top learning priority when they show up as gaps.
var highValueSkills = map[string]bool{
	"python":           true,
	"machine_learning": true,
	"aws":              true,
}

// Analyzer evaluates job records against a current-skill map. Stateless
// across calls and safe to invoke from any goroutine.
type Analyzer struct {
	catalog   *catalog.Catalog
	extractor *extraction.Extractor
}

// NewAnalyzer returns an Analyzer backed by the given catalog.
func NewAnalyzer(c *catalog.Catalog) *Analyzer {
	return &Analyzer{catalog: c, extractor: extraction.NewExtractor(c)}
}

// Extractor exposes the analyzer's extractor for callers that need raw
// token extraction.
func (a *Analyzer) Extractor() *extraction.Extractor {
	return a.extractor
}

// Analyze extracts the job's required skills and emits a gap for each one the
// caller lacks or holds below the required level. Skills held at or above the
// required level count toward the match score. Malformed records degrade to
// empty extraction and never fail.
func (a *Analyzer) Analyze(rec types.JobRecord, current map[string]types.SkillLevel) types.JobSkillAnalysis {
	required := a.extractor.FromRecord(rec)

	var missing []string
	var gaps []types.SkillGap
	matched := 0

	for _, skill := range required {
		level, ok := current[skill]
		if !ok {
			level = types.LevelNone
		}

		switch {
		case level == types.LevelNone:
			missing = append(missing, skill)
			gaps = append(gaps, types.SkillGap{
				SkillName:        skill,
				RequiredLevel:    requiredLevel,
				CurrentLevel:     types.LevelNone,
				GapSeverity:      SeverityMissing,
				JobFrequency:     1,
				LearningPriority: priorityFor(skill, true),
				TimeEstimate:     a.EstimateLearningTime(skill, types.LevelNone, requiredLevel),
			})
		case !level.AtLeast(requiredLevel):
			gaps = append(gaps, types.SkillGap{
				SkillName:        skill,
				RequiredLevel:    requiredLevel,
				CurrentLevel:     level,
				GapSeverity:      SeverityInsufficient,
				JobFrequency:     1,
				LearningPriority: priorityFor(skill, false),
				TimeEstimate:     a.EstimateLearningTime(skill, level, requiredLevel),
			})
		default:
			matched++
		}
	}

	// A record with no extractable requirements scores 100: no requirements,
	// none unmet.
	score := 100.0
	if len(required) > 0 {
		score = float64(matched) / float64(len(required)) * 100
	}

	return types.JobSkillAnalysis{
		JobTitle:          rec.Title(),
		Company:           rec.Company(),
		RequiredSkills:    required,
		MissingSkills:     missing,
		SkillGaps:         gaps,
		OverallMatchScore: score,
		ReadinessTimeline: readinessTimeline(score),
	}
}

// priorityFor returns the base learning priority for a gap. Missing
// high-value skills rank 5, other missing skills 3; insufficient skills rank
// one step lower on both tiers.
func priorityFor(skill string, missing bool) int {
	if missing {
		if highValueSkills[skill] {
			return 5
		}
		return 3
	}
	if highValueSkills[skill] {
		return 4
	}
	return 2
}

// readinessTimeline buckets a match score into a coarse time-to-ready
// estimate.
func readinessTimeline(score float64) string {
	switch {
	case score >= 80:
		return "Ready now - apply immediately"
	case score >= 60:
		return "1-2 months with focused learning"
	case score >= 40:
		return "3-6 months with dedicated study"
	default:
		return "6+ months - significant skill development needed"
	}
}

// EstimateLearningTime estimates how long closing a level gap takes, using
// the catalog's learning-curve metadata when the skill is known.
func (a *Analyzer) EstimateLearningTime(skill string, current, target types.SkillLevel) string {
	info, known := a.catalog.Lookup(skill)
	if !known {
		if current == types.LevelNone {
			return "2-4 months"
		}
		return "1-2 months"
	}

	levelGap := target.Rank() - current.Rank()
	switch {
	case levelGap <= 0:
		return "Already proficient"
	case levelGap == 1:
		switch info.LearningCurve {
		case "easy":
			return "2-4 weeks"
		case "moderate":
			return "1-2 months"
		default:
			return "2-4 months"
		}
	default:
		return info.TimeToProficiency
	}
}
