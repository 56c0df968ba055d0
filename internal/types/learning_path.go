package types

// PathStep is one step inside a learning path.
type PathStep struct {
	Step        string   `json:"step"`
	Duration    string   `json:"duration"`
	Resources   []string `json:"resources"`
	Deliverable string   `json:"deliverable"`
}

// LearningPath is a templated multi-step plan for one topical skill area.
type LearningPath struct {
	SkillArea         string     `json:"skill_area"`
	CurrentLevel      SkillLevel `json:"current_level"`
	TargetLevel       SkillLevel `json:"target_level"`
	TotalTimeEstimate string     `json:"total_time_estimate"`
	Steps             []PathStep `json:"steps"`
	Projects          []string   `json:"projects"`
	Milestones        []string   `json:"milestones"`
	SuccessMetrics    []string   `json:"success_metrics"`
}
