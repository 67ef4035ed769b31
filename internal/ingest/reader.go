// Package ingest reads raw posting records from source export files.
// Supported formats are CSV with a header row (column names are mapped to
// the canonical record fields) and JSON lines. Missing fields stay empty;
// nothing here is fatal below the file level.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/project-tktt/job-market-etl/internal/domain"
	pkgerrors "github.com/project-tktt/job-market-etl/internal/errors"
)

// ReadFiles reads every path in order and concatenates the records. The
// mapping argument adds source-specific header names on top of the
// defaults; pass nil to use the defaults alone.
func ReadFiles(paths []string, mapping map[string]string) ([]*domain.RawPosting, error) {
	var all []*domain.RawPosting

	for _, path := range paths {
		records, err := readFile(path, mapping)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		all = append(all, records...)
	}

	if len(all) == 0 {
		return nil, pkgerrors.NoInput("input files contained no records", nil)
	}

	return all, nil
}

func readFile(path string, mapping map[string]string) ([]*domain.RawPosting, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(f, mapping)
	case ".json", ".jsonl", ".ndjson":
		return ReadJSONL(f)
	default:
		return nil, fmt.Errorf("unsupported input format %q", filepath.Ext(path))
	}
}
