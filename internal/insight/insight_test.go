package insight

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanarius/Learning-Assistant/internal/types"
)

const sampleSource = `package sample

import (
	"encoding/json"
	"net/http"
	"sync"
)

type Fetcher struct {
	client *http.Client
	mu     sync.Mutex
}

func (f *Fetcher) Fetch(url string) (map[string]any, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	go func() {
		f.mu.Lock()
		defer f.mu.Unlock()
	}()
	return out, nil
}
`

func writeGoFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestAnalyzeDir_CollectsImportsConceptsAndSkills(t *testing.T) {
	dir := t.TempDir()
	writeGoFile(t, dir, "fetcher.go", sampleSource)

	report, err := AnalyzeDir(dir)
	require.NoError(t, err)

	require.Len(t, report.FilesAnalyzed, 1)
	assert.Contains(t, report.Imports, "net/http")
	assert.Contains(t, report.Imports, "encoding/json")
	assert.Contains(t, report.Imports, "sync")

	assert.Contains(t, report.Concepts, "http_apis")
	assert.Contains(t, report.Concepts, "data_serialization")
	assert.Contains(t, report.Concepts, "concurrency")

	assert.Equal(t, types.LevelIntermediate, report.Skills["api_integration"])
	assert.Equal(t, types.LevelIntermediate, report.Skills["data_processing"])
	assert.Equal(t, types.LevelBeginner, report.Skills["concurrent_programming"])
}

func TestAnalyzeDir_DetectsPatternsAndTopics(t *testing.T) {
	dir := t.TempDir()
	writeGoFile(t, dir, "fetcher.go", sampleSource)

	report, err := AnalyzeDir(dir)
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, p := range report.Patterns {
		names[p.Name] = true
	}
	assert.True(t, names["Background Processing"])
	assert.True(t, names["REST API Consumption"])
	assert.True(t, names["Explicit Error Handling"])

	assert.Contains(t, report.InterviewTopics, "concurrency")
	assert.Contains(t, report.InterviewTopics, "error_handling")
	assert.Contains(t, report.InterviewTopics, "type_design")
}

func TestAnalyzeDir_OverallGoLevel(t *testing.T) {
	dir := t.TempDir()
	writeGoFile(t, dir, "fetcher.go", sampleSource)

	report, err := AnalyzeDir(dir)
	require.NoError(t, err)
	// Three import-derived skills puts the overall estimate at beginner.
	assert.Equal(t, types.LevelBeginner, report.Skills["go"])
}

func TestAnalyzeDir_SkipsTestFilesAndVendor(t *testing.T) {
	dir := t.TempDir()
	writeGoFile(t, dir, "main.go", "package main\n\nfunc main() {}\n")
	writeGoFile(t, dir, "main_test.go", sampleSource)
	writeGoFile(t, filepath.Join(dir, "vendor", "dep"), "dep.go", sampleSource)

	report, err := AnalyzeDir(dir)
	require.NoError(t, err)
	require.Len(t, report.FilesAnalyzed, 1)
	assert.Equal(t, filepath.Join(dir, "main.go"), report.FilesAnalyzed[0])
	assert.Empty(t, report.Imports)
}

func TestAnalyzeDir_UnparseableFileFallsBackToTextScan(t *testing.T) {
	dir := t.TempDir()
	writeGoFile(t, dir, "broken.go", `package broken

import "net/http"

func incomplete( {
	if err != nil {
`)

	report, err := AnalyzeDir(dir)
	require.NoError(t, err)
	assert.Contains(t, report.Imports, "net/http", "text fallback still finds known imports")
}

func TestAnalyzeDir_EmptyDir(t *testing.T) {
	report, err := AnalyzeDir(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, report.FilesAnalyzed)
	assert.Empty(t, report.Skills)
}
