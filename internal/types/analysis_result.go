package types

// Recommendation is one skill's canned learning recommendation from the
// template generator.
type Recommendation struct {
	Skill        string   `json:"skill"`
	Resources    []string `json:"resources"`
	Projects     []string `json:"projects"`
	TimeEstimate string   `json:"time_estimate"`
	QuickWins    []string `json:"quick_wins"`
}

// RecommendationSet holds the narrative learning recommendations for a run.
// When AIGenerated is true, Content carries the model's free-text plan;
// otherwise Recommendations carries the deterministic template output.
type RecommendationSet struct {
	AIGenerated     bool             `json:"ai_generated"`
	Content         string           `json:"content,omitempty"`
	Model           string           `json:"model_used,omitempty"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	Note            string           `json:"note,omitempty"`
}

// JobSummary is the condensed per-job line carried in the analysis result.
type JobSummary struct {
	Title            string  `json:"title"`
	Company          string  `json:"company"`
	ApplicationScore float64 `json:"application_score,omitempty"`
}

// AnalysisResult is the complete output of one pipeline run. It contains no
// timestamps; the persistence layer attaches those, so identical inputs
// produce identical results.
type AnalysisResult struct {
	JobsAnalyzedCount int                   `json:"jobs_analyzed_count"`
	JobsAnalyzed      []JobSummary          `json:"jobs_analyzed"`
	CurrentSkills     map[string]SkillLevel `json:"current_skills"`
	JobAnalyses       []JobSkillAnalysis    `json:"job_analyses"`
	PrioritizedGaps   []SkillGap            `json:"prioritized_skill_gaps"`
	Recommendations   RecommendationSet     `json:"ai_recommendations"`
	LearningPaths     []LearningPath        `json:"learning_paths"`
	OverallReadiness  ReadinessSummary      `json:"overall_readiness"`
	NextActions       []string              `json:"next_actions"`
}
