package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobRecord_DecodeFullRecord(t *testing.T) {
	data := []byte(`{
		"job_information": {"title": "ML Engineer", "company": "Acme"},
		"company_intelligence": {
			"tech_stack": ["Python", "AWS"],
			"application_recommendations": ["Highlight Docker experience"]
		},
		"resume_customization": {"emphasized_skills": ["Kubernetes"]},
		"application_score": 87.5
	}`)

	var rec JobRecord
	require.NoError(t, json.Unmarshal(data, &rec))

	assert.Equal(t, "ML Engineer", rec.Title())
	assert.Equal(t, "Acme", rec.Company())
	assert.Equal(t, []string{"Python", "AWS"}, rec.CompanyIntelligence.TechStack)
	assert.Equal(t, []string{"Kubernetes"}, rec.ResumeCustomization.EmphasizedSkills)
	assert.InDelta(t, 87.5, rec.ApplicationScore, 0.001)
}

func TestJobRecord_EmptyRecordFallsBackToUnknown(t *testing.T) {
	var rec JobRecord
	require.NoError(t, json.Unmarshal([]byte(`{}`), &rec))

	assert.Equal(t, "Unknown", rec.Title())
	assert.Equal(t, "Unknown", rec.Company())
	assert.Empty(t, rec.CompanyIntelligence.TechStack)
}
