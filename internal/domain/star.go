package domain

import "time"

// Star-schema row types. Field names are part of the downstream contract:
// BI-side SQL joins on them by name, so they must stay stable.

// DimJob is one deduplicated (title, category, seniority) tuple.
type DimJob struct {
	JobID          int    `json:"job_id"`
	JobTitle       string `json:"job_title"`
	JobCategory    string `json:"job_category"`
	SeniorityLevel string `json:"seniority_level"`
}

// DimCompany is one deduplicated company. CompanyName is the mandatory
// identity field; postings without it are excluded from this dimension.
type DimCompany struct {
	CompanyID   int    `json:"company_id"`
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry"`
	CompanySize string `json:"company_size"`
}

// DimLocation is one deduplicated parsed location. An all-null member is
// valid and represents postings with no usable location data.
type DimLocation struct {
	LocationID int     `json:"location_id"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	Country    *string `json:"country"`
	Region     *string `json:"region"`
	IsRemote   bool    `json:"is_remote"`
}

// DimEmploymentType is one deduplicated (employment type, work arrangement)
// pair.
type DimEmploymentType struct {
	EmploymentTypeID int    `json:"employment_type_id"`
	EmploymentType   string `json:"employment_type"`
	WorkArrangement  string `json:"work_arrangement"`
}

// DimSkill is one canonical skill from the extraction lexicon.
type DimSkill struct {
	SkillID       int    `json:"skill_id"`
	SkillName     string `json:"skill_name"`
	SkillCategory string `json:"skill_category"`
}

// FactPosting holds one row per posting with its dimension keys and salary
// measures. CompanyID is nil when the source record had no company name;
// the other keys always resolve because their dimensions admit empty and
// fallback members.
type FactPosting struct {
	PostingID        string     `json:"posting_id"`
	JobID            int        `json:"job_id"`
	CompanyID        *int       `json:"company_id"`
	LocationID       int        `json:"location_id"`
	EmploymentTypeID int        `json:"employment_type_id"`
	SalaryMin        *float64   `json:"salary_min"`
	SalaryMax        *float64   `json:"salary_max"`
	PostedDate       *time.Time `json:"posted_date"`
	ApplicationURL   string     `json:"application_url"`
}

// BridgePostingSkill resolves the posting-to-skill many-to-many
// relationship. (PostingID, SkillID) pairs are unique.
type BridgePostingSkill struct {
	PostingID string `json:"posting_id"`
	SkillID   int    `json:"skill_id"`
}

// TableBundle is the complete output of one build pass: five dimensions,
// the fact table, and the bridge table. Every key referenced by Facts or
// Bridge exists in the corresponding dimension slice.
type TableBundle struct {
	Jobs            []DimJob
	Companies       []DimCompany
	Locations       []DimLocation
	EmploymentTypes []DimEmploymentType
	Skills          []DimSkill
	Facts           []FactPosting
	Bridge          []BridgePostingSkill
}
