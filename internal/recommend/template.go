package recommend

import (
	"context"
	"fmt"

	"github.com/Tanarius/Learning-Assistant/internal/types"
)

// TemplateGenerator emits canned, deterministic recommendations. It never
// errors, which makes it the terminal fallback for the pipeline.
type TemplateGenerator struct{}

// Generate produces one recommendation per gap from fixed per-skill
// templates.
func (TemplateGenerator) Generate(_ context.Context, gaps []types.SkillGap, _ string) (types.RecommendationSet, error) {
	recs := make([]types.Recommendation, 0, len(gaps))
	for _, gap := range gaps {
		recs = append(recs, templateFor(gap))
	}

	return types.RecommendationSet{
		AIGenerated:     false,
		Recommendations: recs,
		Note:            "Template-based recommendations. Configure an API key for personalized learning plans.",
	}, nil
}

// templateFor picks the canned recommendation for a skill. A few high-signal
// skills get curated content; everything else gets the generic template.
func templateFor(gap types.SkillGap) types.Recommendation {
	switch gap.SkillName {
	case "machine_learning":
		return types.Recommendation{
			Skill: gap.SkillName,
			Resources: []string{
				"Andrew Ng's Machine Learning Course (Coursera)",
				"Hands-On Machine Learning with Scikit-Learn and TensorFlow",
				"Kaggle Learn: Machine Learning",
			},
			Projects: []string{
				"Add intelligent job matching to an application bot",
				"Create an ML model to predict application success rates",
				"Build a recommendation engine for an existing project",
			},
			TimeEstimate: gap.TimeEstimate,
			QuickWins: []string{
				"Complete Kaggle's Intro to Machine Learning course (4 hours)",
				"Build a simple classification model with scikit-learn",
			},
		}
	case "python":
		return types.Recommendation{
			Skill: gap.SkillName,
			Resources: []string{
				"Python Crash Course by Eric Matthes",
				"Automate the Boring Stuff with Python",
				"Real Python tutorials",
			},
			Projects: []string{
				"Enhance existing automation bots with advanced features",
				"Create a data analysis dashboard for job applications",
				"Build a web scraping tool for job market research",
			},
			TimeEstimate: gap.TimeEstimate,
			QuickWins: []string{
				"Add error handling to existing bots",
				"Implement logging and monitoring",
			},
		}
	case "aws", "cloud_computing":
		return types.Recommendation{
			Skill: gap.SkillName,
			Resources: []string{
				"AWS Cloud Practitioner certification path",
				"A Cloud Guru courses",
				"AWS free tier hands-on practice",
			},
			Projects: []string{
				"Deploy an existing project to AWS",
				"Set up an automated deployment pipeline",
				"Create cloud infrastructure monitoring",
			},
			TimeEstimate: gap.TimeEstimate,
			QuickWins: []string{
				"Deploy a simple web app to AWS EC2",
				"Set up an S3 bucket for project files",
			},
		}
	default:
		skill := gap.SkillName
		return types.Recommendation{
			Skill: skill,
			Resources: []string{
				fmt.Sprintf("Official %s documentation", skill),
				fmt.Sprintf("YouTube tutorials for %s", skill),
				fmt.Sprintf("Practice projects with %s", skill),
			},
			Projects: []string{
				fmt.Sprintf("Integrate %s into existing automation projects", skill),
				fmt.Sprintf("Create demo project showcasing %s", skill),
			},
			TimeEstimate: gap.TimeEstimate,
			QuickWins: []string{
				fmt.Sprintf("Complete basic %s tutorial", skill),
				fmt.Sprintf("Add %s to a simple project", skill),
			},
		}
	}
}
