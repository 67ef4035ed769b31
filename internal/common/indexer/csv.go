package indexer

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/project-tktt/job-market-etl/internal/domain"
)

// CSVExporter writes the table bundle as one CSV file per table, the
// interchange format downstream SQL staging loads consume.
type CSVExporter struct {
	dir string
}

// NewCSVExporter creates an exporter writing into dir, creating it if
// needed.
func NewCSVExporter(dir string) (*CSVExporter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &CSVExporter{dir: dir}, nil
}

// Load writes all seven tables. Existing files are overwritten, matching
// the Type-1 overwrite semantics of the model.
func (e *CSVExporter) Load(_ context.Context, tables *domain.TableBundle) error {
	files := []struct {
		name   string
		header []string
		rows   func(w *csv.Writer) error
	}{
		{"dim_job.csv", []string{"job_id", "job_title", "job_category", "seniority_level"},
			func(w *csv.Writer) error {
				for _, r := range tables.Jobs {
					if err := w.Write([]string{strconv.Itoa(r.JobID), r.JobTitle, r.JobCategory, r.SeniorityLevel}); err != nil {
						return err
					}
				}
				return nil
			}},
		{"dim_company.csv", []string{"company_id", "company_name", "industry", "company_size"},
			func(w *csv.Writer) error {
				for _, r := range tables.Companies {
					if err := w.Write([]string{strconv.Itoa(r.CompanyID), r.CompanyName, r.Industry, r.CompanySize}); err != nil {
						return err
					}
				}
				return nil
			}},
		{"dim_location.csv", []string{"location_id", "city", "state", "country", "region", "is_remote"},
			func(w *csv.Writer) error {
				for _, r := range tables.Locations {
					if err := w.Write([]string{
						strconv.Itoa(r.LocationID), strDeref(r.City), strDeref(r.State),
						strDeref(r.Country), strDeref(r.Region), strconv.FormatBool(r.IsRemote),
					}); err != nil {
						return err
					}
				}
				return nil
			}},
		{"dim_employment_type.csv", []string{"employment_type_id", "employment_type", "work_arrangement"},
			func(w *csv.Writer) error {
				for _, r := range tables.EmploymentTypes {
					if err := w.Write([]string{strconv.Itoa(r.EmploymentTypeID), r.EmploymentType, r.WorkArrangement}); err != nil {
						return err
					}
				}
				return nil
			}},
		{"dim_skill.csv", []string{"skill_id", "skill_name", "skill_category"},
			func(w *csv.Writer) error {
				for _, r := range tables.Skills {
					if err := w.Write([]string{strconv.Itoa(r.SkillID), r.SkillName, r.SkillCategory}); err != nil {
						return err
					}
				}
				return nil
			}},
		{"fact_posting.csv", []string{
			"posting_id", "job_id", "company_id", "location_id", "employment_type_id",
			"salary_min", "salary_max", "posted_date", "application_url",
		},
			func(w *csv.Writer) error {
				for _, r := range tables.Facts {
					if err := w.Write([]string{
						r.PostingID, strconv.Itoa(r.JobID), intDeref(r.CompanyID),
						strconv.Itoa(r.LocationID), strconv.Itoa(r.EmploymentTypeID),
						floatDeref(r.SalaryMin), floatDeref(r.SalaryMax),
						dateDeref(r.PostedDate), r.ApplicationURL,
					}); err != nil {
						return err
					}
				}
				return nil
			}},
		{"bridge_posting_skill.csv", []string{"posting_id", "skill_id"},
			func(w *csv.Writer) error {
				for _, r := range tables.Bridge {
					if err := w.Write([]string{r.PostingID, strconv.Itoa(r.SkillID)}); err != nil {
						return err
					}
				}
				return nil
			}},
	}

	for _, file := range files {
		if err := e.writeFile(file.name, file.header, file.rows); err != nil {
			return fmt.Errorf("write %s: %w", file.name, err)
		}
	}

	return nil
}

func (e *CSVExporter) writeFile(name string, header []string, rows func(w *csv.Writer) error) error {
	f, err := os.Create(filepath.Join(e.dir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := rows(w); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// Null fields export as empty cells.

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intDeref(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}

func floatDeref(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func dateDeref(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
