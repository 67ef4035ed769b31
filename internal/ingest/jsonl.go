package ingest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/project-tktt/job-market-etl/internal/domain"
)

// ReadJSONL parses one RawPosting per non-empty line. Malformed lines are
// an error: unlike missing fields, a broken file usually means the export
// itself is damaged.
func ReadJSONL(r io.Reader) ([]*domain.RawPosting, error) {
	var records []*domain.RawPosting

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		raw := &domain.RawPosting{}
		if err := json.Unmarshal([]byte(text), raw); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, raw)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}

	return records, nil
}
