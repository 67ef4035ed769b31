package domain

import (
	"strings"
	"time"
)

// RawPosting represents one source record before normalization. All fields
// are loosely-typed text as extracted upstream; missing fields stay empty.
type RawPosting struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Company        string `json:"company"`
	Location       string `json:"location"`
	Salary         string `json:"salary"`
	Description    string `json:"description"`
	EmploymentType string `json:"employment_type"`
	Industry       string `json:"industry"`
	CompanySize    string `json:"company_size"`
	PostedDate     string `json:"posted_date"`
	URL            string `json:"url"`
}

// Empty reports whether the record carries no data at all. Such records are
// structurally invalid and get dropped from the run.
func (r *RawPosting) Empty() bool {
	for _, f := range []string{
		r.ID, r.Title, r.Company, r.Location, r.Salary,
		r.Description, r.EmploymentType, r.Industry,
		r.CompanySize, r.PostedDate, r.URL,
	} {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// NormalizedPosting is the cleaned form of exactly one RawPosting. Nullable
// attributes are pointers; nil means the source field could not be parsed,
// which is a valid outcome rather than an error.
type NormalizedPosting struct {
	PostingID       string     `json:"posting_id"`
	JobTitle        string     `json:"job_title"`
	JobCategory     string     `json:"job_category"`
	SeniorityLevel  string     `json:"seniority_level"`
	CompanyName     string     `json:"company_name"`
	Industry        string     `json:"industry"`
	CompanySize     string     `json:"company_size"`
	City            *string    `json:"city"`
	State           *string    `json:"state"`
	Country         *string    `json:"country"`
	Region          *string    `json:"region"`
	IsRemote        bool       `json:"is_remote"`
	EmploymentType  string     `json:"employment_type"`
	WorkArrangement string     `json:"work_arrangement"`
	SalaryMin       *float64   `json:"salary_min"`
	SalaryMax       *float64   `json:"salary_max"`
	PostedDate      *time.Time `json:"posted_date"`
	ApplicationURL  string     `json:"application_url"`
	Skills          []string   `json:"skills"`
}

// HasSalary reports whether the salary range parsed to a usable value.
func (p *NormalizedPosting) HasSalary() bool {
	return p.SalaryMin != nil && p.SalaryMax != nil
}
