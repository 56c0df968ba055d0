// Package insight performs shallow static analysis of Go source files
// (import lists plus pattern checks) and reports the skills and concepts the
// code demonstrates. It feeds the current-skill map and the standalone
// "what you learned" report.
package insight

import (
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/Tanarius/Learning-Assistant/internal/types"
)

// Pattern is one recognized programming pattern with interview-ready framing.
type Pattern struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Example     string `json:"example"`
	Concept     string `json:"concept"`
}

// Report summarizes what a codebase demonstrates.
type Report struct {
	FilesAnalyzed   []string                    `json:"files_analyzed"`
	Imports         []string                    `json:"imports_used"`
	Concepts        []string                    `json:"concepts_identified"`
	Patterns        []Pattern                   `json:"complexity_patterns"`
	InterviewTopics []string                    `json:"interview_topics"`
	Skills          map[string]types.SkillLevel `json:"skills"`
}

// importConcepts maps import paths to the programming concepts they imply.
var importConcepts = map[string][]string{
	"net/http":      {"http_apis", "web_requests", "network_programming"},
	"encoding/json": {"data_serialization", "api_communication", "data_formats"},
	"regexp":        {"regular_expressions", "text_processing", "pattern_matching"},
	"sync":          {"concurrency", "parallel_processing", "background_tasks"},
	"context":       {"cancellation", "request_scoping", "concurrency"},
	"os/exec":       {"process_management", "system_integration", "external_commands"},
	"database/sql":  {"database_access", "data_persistence", "sql"},
	"go/parser":     {"code_analysis", "meta_programming", "syntax_trees"},
	"path/filepath": {"file_system_operations", "path_handling", "cross_platform"},
	"time":          {"time_handling", "timestamp_management", "scheduling"},
	"flag":          {"command_line", "configuration", "tooling"},
	"testing":       {"automated_testing", "test_design", "quality_assurance"},
}

// importSkills maps imports to demonstrated skills and levels.
var importSkills = map[string]struct {
	skill string
	level types.SkillLevel
}{
	"net/http":      {"api_integration", types.LevelIntermediate},
	"encoding/json": {"data_processing", types.LevelIntermediate},
	"sync":          {"concurrent_programming", types.LevelBeginner},
	"database/sql":  {"sql", types.LevelIntermediate},
	"regexp":        {"text_processing", types.LevelIntermediate},
	"go/parser":     {"code_analysis", types.LevelIntermediate},
	"testing":       {"automated_testing", types.LevelIntermediate},
}

// AnalyzeDir analyzes every non-test Go file under dir. Files that fail to
// parse fall back to text-only pattern checks rather than failing the run.
func AnalyzeDir(dir string) (Report, error) {
	report := Report{Skills: map[string]types.SkillLevel{}}

	imports := make(map[string]struct{})
	concepts := make(map[string]struct{})
	topics := make(map[string]struct{})
	seenPatterns := make(map[string]struct{})

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil // unreadable file, skip
		}

		report.FilesAnalyzed = append(report.FilesAnalyzed, path)
		for _, imp := range fileImports(path, content) {
			imports[imp] = struct{}{}
			for _, c := range importConcepts[imp] {
				concepts[c] = struct{}{}
			}
			if mapped, ok := importSkills[imp]; ok {
				report.Skills[mapped.skill] = mapped.level
			}
		}

		text := string(content)
		for _, p := range textPatterns(text) {
			if _, seen := seenPatterns[p.Name]; !seen {
				seenPatterns[p.Name] = struct{}{}
				report.Patterns = append(report.Patterns, p)
			}
		}
		for _, topic := range interviewTopics(text) {
			topics[topic] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return Report{}, fmt.Errorf("failed to analyze %s: %w", dir, err)
	}

	// Rough overall language estimate from how much the codebase shows.
	if len(report.Skills) > 3 {
		report.Skills["go"] = types.LevelIntermediate
	} else if len(report.Skills) > 0 {
		report.Skills["go"] = types.LevelBeginner
	}

	report.Imports = sortedKeys(imports)
	report.Concepts = sortedKeys(concepts)
	report.InterviewTopics = sortedKeys(topics)
	sort.Strings(report.FilesAnalyzed)
	return report, nil
}

func skipDir(name string) bool {
	return name == "vendor" || name == "testdata" || name == ".git" || strings.HasPrefix(name, "_")
}

// fileImports extracts import paths, falling back to a crude text scan when
// the file does not parse.
func fileImports(path string, content []byte) []string {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, content, parser.ImportsOnly)
	if err != nil {
		return fallbackImports(string(content))
	}

	imports := make([]string, 0, len(file.Imports))
	for _, imp := range file.Imports {
		if p, err := strconv.Unquote(imp.Path.Value); err == nil {
			imports = append(imports, p)
		}
	}
	return imports
}

// fallbackImports scans for quoted known imports when AST parsing fails.
func fallbackImports(content string) []string {
	var found []string
	for imp := range importConcepts {
		if strings.Contains(content, strconv.Quote(imp)) {
			found = append(found, imp)
		}
	}
	sort.Strings(found)
	return found
}

// textPatterns runs the fixed pattern checks over file content.
func textPatterns(content string) []Pattern {
	var out []Pattern
	if strings.Contains(content, "go func(") {
		out = append(out, Pattern{
			Name:        "Background Processing",
			Description: "Using goroutines to run work off the calling thread",
			Example:     "go func() { ... }()",
			Concept:     "Concurrent programming",
		})
	}
	if strings.Contains(content, "http.Get(") || strings.Contains(content, "http.Client") {
		out = append(out, Pattern{
			Name:        "REST API Consumption",
			Description: "Making HTTP requests to external APIs",
			Example:     "http.Get(url)",
			Concept:     "API integration",
		})
	}
	if strings.Contains(content, "err != nil") {
		out = append(out, Pattern{
			Name:        "Explicit Error Handling",
			Description: "Checking and propagating errors at every call site",
			Example:     "if err != nil { return err }",
			Concept:     "Robust error handling",
		})
	}
	if strings.Contains(content, "json.Unmarshal") || strings.Contains(content, "json.Marshal") {
		out = append(out, Pattern{
			Name:        "Data Serialization",
			Description: "Encoding and decoding structured data as JSON",
			Example:     "json.Unmarshal(data, &v)",
			Concept:     "Data formats",
		})
	}
	if strings.Contains(content, "regexp.MustCompile") {
		out = append(out, Pattern{
			Name:        "Pattern Matching",
			Description: "Extracting structure from text with regular expressions",
			Example:     "regexp.MustCompile(expr)",
			Concept:     "Text processing",
		})
	}
	return out
}

// interviewTopics derives talking points from file content.
func interviewTopics(content string) []string {
	var topics []string
	if strings.Contains(content, "type ") && strings.Contains(content, "struct {") {
		topics = append(topics, "type_design")
	}
	if strings.Contains(content, "func ") {
		topics = append(topics, "function_design")
	}
	if strings.Contains(content, "http.") {
		topics = append(topics, "api_integration", "http_methods")
	}
	if strings.Contains(content, "go func(") || strings.Contains(content, "sync.") {
		topics = append(topics, "concurrency")
	}
	if strings.Contains(content, "json.") {
		topics = append(topics, "data_formats")
	}
	if strings.Contains(content, "err != nil") {
		topics = append(topics, "error_handling")
	}
	return topics
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
