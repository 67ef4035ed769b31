package normalizer

import (
	"html"
	"strings"
	"time"

	"github.com/project-tktt/job-market-etl/internal/common/cleaner"
	"github.com/project-tktt/job-market-etl/internal/common/parser"
	"github.com/project-tktt/job-market-etl/internal/domain"
)

// Normalizer converts a RawPosting to a NormalizedPosting by running every
// field parser over it. Normalization never fails: unparseable fields
// resolve to null or a fallback label and the record proceeds.
type Normalizer struct {
	rules      *parser.Rules
	cleaner    *cleaner.Cleaner
	classifier *parser.Classifier
	employment *parser.Matcher
	skills     *parser.SkillExtractor
}

// NewNormalizer creates a normalizer with all parsers compiled from the
// given rule tables.
func NewNormalizer(rules *parser.Rules) *Normalizer {
	return &Normalizer{
		rules:      rules,
		cleaner:    cleaner.NewCleaner(),
		classifier: parser.NewClassifier(rules),
		employment: parser.NewEmploymentClassifier(rules),
		skills:     parser.NewSkillExtractor(rules),
	}
}

// Normalize produces the cleaned form of one raw record. The posting ID is
// carried through as-is; the pipeline derives one beforehand if the source
// record had none.
func (n *Normalizer) Normalize(raw *domain.RawPosting) *domain.NormalizedPosting {
	title := strings.TrimSpace(html.UnescapeString(raw.Title))
	description := n.cleaner.CleanToText(raw.Description)

	category, seniority := n.classifier.Classify(title)
	loc := parser.ParseLocation(raw.Location, n.rules)
	salaryMin, salaryMax := parser.ParseSalary(raw.Salary, n.rules.Salary)

	p := &domain.NormalizedPosting{
		PostingID:       raw.ID,
		JobTitle:        title,
		JobCategory:     category,
		SeniorityLevel:  seniority,
		CompanyName:     strings.TrimSpace(html.UnescapeString(raw.Company)),
		Industry:        strings.TrimSpace(raw.Industry),
		CompanySize:     n.normalizeCompanySize(raw.CompanySize),
		City:            loc.City,
		State:           loc.State,
		Country:         loc.Country,
		Region:          loc.Region,
		IsRemote:        loc.IsRemote,
		EmploymentType:  n.normalizeEmploymentType(raw.EmploymentType, title),
		WorkArrangement: n.deriveWorkArrangement(loc, raw.Location, description),
		SalaryMin:       salaryMin,
		SalaryMax:       salaryMax,
		PostedDate:      parsePostedDate(raw.PostedDate),
		ApplicationURL:  strings.TrimSpace(raw.URL),
		Skills:          n.skills.Extract(description),
	}

	return p
}

// normalizeEmploymentType maps free-text employment fields to a standard
// label, falling back to markers embedded in the title.
func (n *Normalizer) normalizeEmploymentType(raw, title string) string {
	if label, ok := n.employment.Match(raw); ok {
		return label
	}
	if label, ok := n.employment.Match(title); ok {
		return label
	}
	return "Unknown"
}

// deriveWorkArrangement classifies Remote / Hybrid / On-site from the
// remote flag and hybrid markers in location or description text.
func (n *Normalizer) deriveWorkArrangement(loc parser.Location, rawLocation, description string) string {
	if loc.IsRemote {
		return "Remote"
	}
	haystack := strings.ToLower(rawLocation + " " + description)
	for _, marker := range n.rules.HybridMarkers {
		if strings.Contains(haystack, marker) {
			return "Hybrid"
		}
	}
	return "On-site"
}

func (n *Normalizer) normalizeCompanySize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-1" {
		return "Unknown"
	}
	if mapped, ok := n.rules.CompanySizes[s]; ok {
		return mapped
	}
	return s
}

// parsePostedDate tries the date formats seen across source exports.
// Unparseable dates come back nil rather than defaulting to now; a wrong
// date is worse than a missing one in an analytical model.
func parsePostedDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	formats := []string{
		"2006-01-02",
		"01/02/2006",
		"2006-01-02T15:04:05Z",
		time.RFC3339,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return &t
		}
	}

	return nil
}
