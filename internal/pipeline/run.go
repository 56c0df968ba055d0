// Package pipeline provides the high-level orchestration for a learning
// analysis run: scan job records, analyze each against current skills, merge
// and rank the gaps, generate recommendations and learning paths, and
// persist the outcome.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Tanarius/Learning-Assistant/internal/analysis"
	"github.com/Tanarius/Learning-Assistant/internal/catalog"
	"github.com/Tanarius/Learning-Assistant/internal/ingestion"
	"github.com/Tanarius/Learning-Assistant/internal/insight"
	"github.com/Tanarius/Learning-Assistant/internal/paths"
	"github.com/Tanarius/Learning-Assistant/internal/priority"
	"github.com/Tanarius/Learning-Assistant/internal/recommend"
	"github.com/Tanarius/Learning-Assistant/internal/store"
	"github.com/Tanarius/Learning-Assistant/internal/types"
)

// ErrNoJobRecords indicates there was nothing to analyze. Distinct from a
// successful run that found zero gaps; callers should surface it as an
// actionable message.
var ErrNoJobRecords = errors.New("no job application records found")

// ProgressEvent reports pipeline progress to an observing caller.
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
}

// ProgressCallback is invoked as the pipeline advances. It may be called
// from the pipeline's goroutine only; the pipeline itself never spawns
// observers.
type ProgressCallback func(event ProgressEvent)

// Options configures a pipeline run.
type Options struct {
	// AppsDir holds the generated job-application records.
	AppsDir string
	// DataDir is where the knowledge base, history, and analysis dumps
	// live. Empty disables persistence.
	DataDir string
	// CodebasePath, when set, is statically analyzed to detect current
	// skills.
	CodebasePath string
	// Catalog is the skill reference data. Required.
	Catalog *catalog.Catalog
	// Generator produces narrative recommendations. Nil falls back to the
	// deterministic template generator.
	Generator recommend.Generator
	// BaselineSkills fill in current skills not detected anywhere else.
	BaselineSkills map[string]types.SkillLevel
	// OnProgress, when set, receives step events.
	OnProgress ProgressCallback
}

// Result bundles the analysis with run metadata from persistence.
type Result struct {
	Analysis  types.AnalysisResult
	Warnings  []string
	SavedPath string
}

// Run executes the full analysis. The core stages are pure functions of the
// loaded inputs; only ingestion and persistence touch the filesystem.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}

	emit := func(step, message string) {
		if opts.OnProgress != nil {
			opts.OnProgress(ProgressEvent{Step: step, Message: message})
		}
	}

	emit("scan", "scanning generated job applications")
	records, warnings, err := ingestion.ScanApplications(ctx, opts.AppsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan applications: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoJobRecords
	}

	emit("skills", "resolving current skills")
	current, err := resolveCurrentSkills(opts)
	if err != nil {
		return nil, err
	}

	emit("analyze", fmt.Sprintf("analyzing %d job records", len(records)))
	analyzer := analysis.NewAnalyzer(opts.Catalog)
	analyses := make([]types.JobSkillAnalysis, 0, len(records))
	summaries := make([]types.JobSummary, 0, len(records))
	var allGaps []types.SkillGap
	for _, rec := range records {
		a := analyzer.Analyze(rec, current)
		analyses = append(analyses, a)
		allGaps = append(allGaps, a.SkillGaps...)
		summaries = append(summaries, types.JobSummary{
			Title:            rec.Title(),
			Company:          rec.Company(),
			ApplicationScore: rec.ApplicationScore,
		})
	}

	emit("prioritize", "merging and ranking skill gaps")
	prioritized := priority.Prioritize(allGaps)

	emit("recommend", "generating learning recommendations")
	recommendations := recommend.Narrative(ctx, opts.Generator, prioritized, JobContext(records))

	emit("paths", "building learning paths")
	learningPaths := paths.Build(prioritized)

	result := types.AnalysisResult{
		JobsAnalyzedCount: len(records),
		JobsAnalyzed:      summaries,
		CurrentSkills:     current,
		JobAnalyses:       analyses,
		PrioritizedGaps:   prioritized,
		Recommendations:   recommendations,
		LearningPaths:     learningPaths,
		OverallReadiness:  analysis.Readiness(analyses),
		NextActions:       analysis.NextActions(prioritized),
	}

	run := &Result{Analysis: result, Warnings: warnings}
	if opts.DataDir != "" {
		emit("persist", "saving analysis and updating knowledge base")
		run.SavedPath = persist(opts.DataDir, result)
	}
	return run, nil
}

// resolveCurrentSkills merges skill sources by precedence: knowledge base
// first, then skills detected from the codebase, then configured baseline
// skills filling anything still unknown. Keys are normalized lowercase.
func resolveCurrentSkills(opts Options) (map[string]types.SkillLevel, error) {
	current := make(map[string]types.SkillLevel)

	if opts.DataDir != "" {
		kb := store.New(opts.DataDir).LoadKnowledgeBase()
		for skill, level := range kb.SkillsLearned {
			current[normalizeSkillKey(skill)] = level
		}
	}

	if opts.CodebasePath != "" {
		report, err := insight.AnalyzeDir(opts.CodebasePath)
		if err != nil {
			return nil, fmt.Errorf("failed to analyze codebase: %w", err)
		}
		for skill, level := range report.Skills {
			current[normalizeSkillKey(skill)] = level
		}
	}

	for skill, level := range opts.BaselineSkills {
		key := normalizeSkillKey(skill)
		if _, ok := current[key]; !ok {
			current[key] = level
		}
	}

	return current, nil
}

// JobContext produces the free-text summary handed to the narrative
// generator alongside the gap list.
func JobContext(records []types.JobRecord) string {
	companies := make([]string, 0, len(records))
	for _, rec := range records {
		companies = append(companies, rec.Company())
	}
	return fmt.Sprintf("Analyzing %d job applications including roles at: %s",
		len(records), strings.Join(companies, ", "))
}

// persist saves the run and updates the knowledge base. Persistence failures
// never fail the run; the analysis is already complete by this point.
func persist(dataDir string, result types.AnalysisResult) string {
	s := store.New(dataDir)

	savedPath, err := s.SaveAnalysis(result)
	if err != nil {
		savedPath = ""
	}
	_ = s.RecordSkills(result.CurrentSkills)
	_, _ = s.AppendHistory(result)
	return savedPath
}

func normalizeSkillKey(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}
