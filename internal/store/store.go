// Package store persists the knowledge base, learning history, and analysis
// dumps as flat JSON files under a data directory. Missing or corrupt files
// degrade to defaults; persistence problems never fail an analysis run.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Tanarius/Learning-Assistant/internal/types"
)

const (
	knowledgeBaseFile = "knowledge_base.json"
	historyFile       = "learning_history.json"
)

// CareerGoals records where the user is and where they are heading.
type CareerGoals struct {
	CurrentRole string `json:"current_role"`
	TargetRole  string `json:"target_role"`
	Timeline    string `json:"timeline"`
}

// KnowledgeBase is the persistent record of what the user knows.
type KnowledgeBase struct {
	SkillsLearned     map[string]types.SkillLevel `json:"skills_learned"`
	ConceptsMastered  map[string]string           `json:"concepts_mastered"`
	ProjectsCompleted map[string]string           `json:"projects_completed"`
	AreasOfInterest   []string                    `json:"areas_of_interest"`
	CareerGoals       CareerGoals                 `json:"career_goals"`
}

// HistoryEntry is one timestamped analysis-run summary.
type HistoryEntry struct {
	RunID             string    `json:"run_id"`
	Timestamp         time.Time `json:"timestamp"`
	AnalysisType      string    `json:"analysis_type"`
	SkillsAnalyzed    []string  `json:"skills_analyzed"`
	JobCount          int       `json:"job_count"`
	AIRecommendations bool      `json:"recommendations_generated"`
}

// SavedAnalysis wraps an analysis result with the timestamp attached at
// persistence time.
type SavedAnalysis struct {
	Timestamp time.Time            `json:"analysis_timestamp"`
	Result    types.AnalysisResult `json:"result"`
}

// Store reads and writes learning data under a single directory.
type Store struct {
	dir string
	now func() time.Time
}

// New returns a Store rooted at dir. The directory is created on first
// write.
func New(dir string) *Store {
	return &Store{dir: dir, now: time.Now}
}

// DefaultKnowledgeBase is the knowledge base used when none exists on disk.
func DefaultKnowledgeBase() KnowledgeBase {
	return KnowledgeBase{
		SkillsLearned:     map[string]types.SkillLevel{},
		ConceptsMastered:  map[string]string{},
		ProjectsCompleted: map[string]string{},
		CareerGoals: CareerGoals{
			CurrentRole: "Infrastructure Engineer",
			TargetRole:  "AI/Automation Specialist",
			Timeline:    "30 days for job transition",
		},
	}
}

// LoadKnowledgeBase reads the knowledge base, falling back to the default on
// any problem.
func (s *Store) LoadKnowledgeBase() KnowledgeBase {
	var kb KnowledgeBase
	if err := s.readJSON(knowledgeBaseFile, &kb); err != nil {
		return DefaultKnowledgeBase()
	}
	if kb.SkillsLearned == nil {
		kb.SkillsLearned = map[string]types.SkillLevel{}
	}
	return kb
}

// SaveKnowledgeBase writes the knowledge base.
func (s *Store) SaveKnowledgeBase(kb KnowledgeBase) error {
	return s.writeJSON(knowledgeBaseFile, kb)
}

// LoadHistory reads the learning history, falling back to empty on any
// problem.
func (s *Store) LoadHistory() []HistoryEntry {
	var history []HistoryEntry
	if err := s.readJSON(historyFile, &history); err != nil {
		return nil
	}
	return history
}

// AppendHistory adds a run summary for the given result to the history and
// writes it back. The entry gets a fresh run id and timestamp.
func (s *Store) AppendHistory(result types.AnalysisResult) (HistoryEntry, error) {
	skills := make([]string, 0, len(result.CurrentSkills))
	for skill := range result.CurrentSkills {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	entry := HistoryEntry{
		RunID:             uuid.New().String(),
		Timestamp:         s.now(),
		AnalysisType:      "job_skill_gap_analysis",
		SkillsAnalyzed:    skills,
		JobCount:          result.JobsAnalyzedCount,
		AIRecommendations: result.Recommendations.AIGenerated,
	}

	history := append(s.LoadHistory(), entry)
	if err := s.writeJSON(historyFile, history); err != nil {
		return HistoryEntry{}, err
	}
	return entry, nil
}

// SaveAnalysis writes a timestamped dump of the full analysis result and
// returns the file path.
func (s *Store) SaveAnalysis(result types.AnalysisResult) (string, error) {
	now := s.now()
	name := fmt.Sprintf("learning_analysis_%s.json", now.Format("20060102_150405"))
	saved := SavedAnalysis{Timestamp: now, Result: result}
	if err := s.writeJSON(name, saved); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, name), nil
}

// RecordSkills merges the resolved current skills into the knowledge base
// and writes it back.
func (s *Store) RecordSkills(current map[string]types.SkillLevel) error {
	kb := s.LoadKnowledgeBase()
	for skill, level := range current {
		kb.SkillsLearned[skill] = level
	}
	return s.SaveKnowledgeBase(kb)
}

func (s *Store) readJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (s *Store) writeJSON(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", s.dir, err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
