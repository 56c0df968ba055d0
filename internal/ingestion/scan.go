// Package ingestion loads generated job-application records from disk.
// Records live in an applications directory, either as JSON files directly or
// as application_summary_*.json files one level down, one directory per
// generated application.
package ingestion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Tanarius/Learning-Assistant/internal/schemas"
	"github.com/Tanarius/Learning-Assistant/internal/types"
)

// maxConcurrentReads bounds parallel file loads.
const maxConcurrentReads = 8

// ScanApplications finds and loads every job record under dir. Files that are
// not JSON at all are skipped with a warning; files that decode, even with
// field type mismatches, are still loaded with a schema warning, since missing
// fields degrade to empty extraction downstream. A missing directory yields zero records, not an
// error; the caller decides whether an empty result is actionable.
func ScanApplications(ctx context.Context, dir string) ([]types.JobRecord, []string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil, nil
	}

	files, err := recordFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return nil, nil, nil
	}

	// Load in parallel but keep results keyed by candidate index so output
	// order stays deterministic.
	records := make([]*types.JobRecord, len(files))
	var mu sync.Mutex
	var warnings []string

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			rec, warn, err := loadRecord(path)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			if warn != "" {
				warnings = append(warnings, warn)
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	loaded := make([]types.JobRecord, 0, len(records))
	for _, rec := range records {
		if rec != nil {
			loaded = append(loaded, *rec)
		}
	}
	sort.Strings(warnings)
	return loaded, warnings, nil
}

// recordFiles collects record file paths: *.json directly in dir, plus
// application_summary_*.json inside each application subdirectory. The list
// is sorted for deterministic pipeline output.
func recordFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read applications directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			matches, err := filepath.Glob(filepath.Join(dir, entry.Name(), "application_summary_*.json"))
			if err != nil {
				return nil, err
			}
			files = append(files, matches...)
			continue
		}
		if strings.HasSuffix(entry.Name(), ".json") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// loadRecord reads and decodes a single record file. Unparseable files are
// reported as a warning with a nil record; schema violations are reported as
// warnings but the record is kept.
func loadRecord(path string) (*types.JobRecord, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	// A type mismatch still decodes the remaining fields, so keep the record
	// and let schema validation report the details. Anything else means the
	// file is not a record at all.
	var rec types.JobRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, fmt.Sprintf("skipping %s: %v", path, err), nil
		}
	}

	if err := schemas.ValidateJobRecord(data); err != nil {
		return &rec, fmt.Sprintf("schema warnings for %s: %v", path, err), nil
	}
	return &rec, "", nil
}
