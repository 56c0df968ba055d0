package types

// JobRecord is one generated job-application record as written by the
// application generator. All nested sections are optional; a missing section
// decodes to its zero value and simply contributes no skills.
type JobRecord struct {
	JobInformation      JobInformation      `json:"job_information"`
	CompanyIntelligence CompanyIntelligence `json:"company_intelligence"`
	ResumeCustomization ResumeCustomization `json:"resume_customization"`
	ApplicationScore    float64             `json:"application_score,omitempty"`
}

// JobInformation identifies the role the record was generated for.
type JobInformation struct {
	Title   string `json:"title"`
	Company string `json:"company"`
}

// CompanyIntelligence holds research gathered about the hiring company.
type CompanyIntelligence struct {
	TechStack                  []string `json:"tech_stack,omitempty"`
	ApplicationRecommendations []string `json:"application_recommendations,omitempty"`
}

// ResumeCustomization records how the resume was tailored for this job.
type ResumeCustomization struct {
	EmphasizedSkills []string `json:"emphasized_skills,omitempty"`
}

// Title returns the job title, or "Unknown" when the record has none.
func (r JobRecord) Title() string {
	if r.JobInformation.Title == "" {
		return "Unknown"
	}
	return r.JobInformation.Title
}

// Company returns the company name, or "Unknown" when the record has none.
func (r JobRecord) Company() string {
	if r.JobInformation.Company == "" {
		return "Unknown"
	}
	return r.JobInformation.Company
}
