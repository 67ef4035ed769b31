package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/project-tktt/job-market-etl/internal/domain"
)

// defaultHeaderMapping maps well-known export column names (normalized to
// lowercase snake_case) to canonical record fields. Glassdoor-style names
// are included out of the box.
var defaultHeaderMapping = map[string]string{
	"id":              "id",
	"job_id":          "id",
	"posting_id":      "id",
	"title":           "title",
	"job_title":       "title",
	"company":         "company",
	"company_name":    "company",
	"location":        "location",
	"salary":          "salary",
	"salary_estimate": "salary",
	"description":     "description",
	"job_description": "description",
	"employment_type": "employment_type",
	"job_type":        "employment_type",
	"industry":        "industry",
	"size":            "company_size",
	"company_size":    "company_size",
	"posted_date":     "posted_date",
	"date_posted":     "posted_date",
	"url":             "url",
	"application_url": "url",
	"job_url":         "url",
}

var headerCleanRe = regexp.MustCompile(`[^a-z0-9_]`)

// ReadCSV parses records from a CSV stream with a header row. Extra
// mapping entries (source header → canonical field) take precedence over
// the defaults. Unmapped columns are ignored; records keep whatever
// fields their row provides.
func ReadCSV(r io.Reader, mapping map[string]string) ([]*domain.RawPosting, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	fields := make([]string, len(header))
	for i, col := range header {
		fields[i] = resolveField(col, mapping)
	}

	var records []*domain.RawPosting
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		raw := &domain.RawPosting{}
		for i, value := range row {
			if i >= len(fields) {
				break
			}
			setField(raw, fields[i], value)
		}
		records = append(records, raw)
	}

	return records, nil
}

// resolveField normalizes a header name to lowercase snake_case and looks
// it up, preferring caller-supplied mappings.
func resolveField(col string, mapping map[string]string) string {
	name := strings.ToLower(strings.TrimSpace(col))
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")
	name = headerCleanRe.ReplaceAllString(name, "")

	if mapping != nil {
		if field, ok := mapping[name]; ok {
			return field
		}
	}
	if field, ok := defaultHeaderMapping[name]; ok {
		return field
	}
	return ""
}

func setField(raw *domain.RawPosting, field, value string) {
	switch field {
	case "id":
		raw.ID = value
	case "title":
		raw.Title = value
	case "company":
		raw.Company = value
	case "location":
		raw.Location = value
	case "salary":
		raw.Salary = value
	case "description":
		raw.Description = value
	case "employment_type":
		raw.EmploymentType = value
	case "industry":
		raw.Industry = value
	case "company_size":
		raw.CompanySize = value
	case "posted_date":
		raw.PostedDate = value
	case "url":
		raw.URL = value
	}
}
