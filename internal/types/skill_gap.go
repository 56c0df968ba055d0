package types

// SkillGap describes one missing or insufficient skill identified for a job.
// Gaps start with JobFrequency 1; the prioritizer aggregates duplicates across
// jobs into a single gap carrying the combined frequency and boosted priority.
type SkillGap struct {
	SkillName        string     `json:"skill_name"`
	RequiredLevel    SkillLevel `json:"required_level"`
	CurrentLevel     SkillLevel `json:"current_level"`
	GapSeverity      float64    `json:"gap_severity"`      // 0-10, how critical this gap is
	JobFrequency     int        `json:"job_frequency"`     // how many analyzed jobs require this skill
	LearningPriority int        `json:"learning_priority"` // 1-5, what to study first
	Resources        []string   `json:"resources"`
	TimeEstimate     string     `json:"time_estimate"`
}

// JobSkillAnalysis is the per-job result of the gap analyzer.
// Immutable once constructed.
type JobSkillAnalysis struct {
	JobTitle          string     `json:"job_title"`
	Company           string     `json:"company"`
	RequiredSkills    []string   `json:"required_skills"`
	PreferredSkills   []string   `json:"preferred_skills"`
	MissingSkills     []string   `json:"missing_skills"`
	SkillGaps         []SkillGap `json:"skill_gaps"`
	OverallMatchScore float64    `json:"overall_match_score"`
	ReadinessTimeline string     `json:"readiness_timeline"`
}

// ReadinessSummary aggregates match scores across all analyzed jobs into an
// overall job-market readiness estimate.
type ReadinessSummary struct {
	OverallScore     float64   `json:"overall_score"`
	Status           string    `json:"status"`
	IndividualScores []float64 `json:"individual_scores,omitempty"`
	BestMatchScore   float64   `json:"best_match_score"`
	WorstMatchScore  float64   `json:"worst_match_score"`
	Recommendations  []string  `json:"recommendations,omitempty"`
}
