package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/project-tktt/job-market-etl/internal/common/parser"
	"github.com/project-tktt/job-market-etl/internal/domain"
)

func TestNormalize(t *testing.T) {
	n := NewNormalizer(parser.Defaults())

	raw := &domain.RawPosting{
		ID:             "post-1",
		Title:          "Senior Data Analyst",
		Company:        "Acme Corp",
		Location:       "Austin, TX",
		Salary:         "$80,000 - $120,000",
		Description:    "<p>Strong <b>SQL</b> and Python skills required.</p>",
		EmploymentType: "Full-time",
		Industry:       "Information Technology",
		CompanySize:    "51 to 200 employees",
		PostedDate:     "2024-03-15",
		URL:            "https://example.com/jobs/1",
	}

	p := n.Normalize(raw)

	assert.Equal(t, "post-1", p.PostingID)
	assert.Equal(t, "Senior Data Analyst", p.JobTitle)
	assert.Equal(t, "Data Analytics", p.JobCategory)
	assert.Equal(t, "Senior", p.SeniorityLevel)
	assert.Equal(t, "Acme Corp", p.CompanyName)
	assert.Equal(t, "51-200", p.CompanySize)

	require.NotNil(t, p.City)
	require.NotNil(t, p.State)
	require.NotNil(t, p.Region)
	assert.Equal(t, "Austin", *p.City)
	assert.Equal(t, "TX", *p.State)
	assert.Equal(t, "Southwest", *p.Region)
	assert.False(t, p.IsRemote)
	assert.Equal(t, "On-site", p.WorkArrangement)

	require.True(t, p.HasSalary())
	assert.Equal(t, 80000.0, *p.SalaryMin)
	assert.Equal(t, 120000.0, *p.SalaryMax)

	assert.Equal(t, "Full-time", p.EmploymentType)
	assert.Equal(t, []string{"Python", "SQL"}, p.Skills)

	require.NotNil(t, p.PostedDate)
	assert.Equal(t, "2024-03-15", p.PostedDate.Format("2006-01-02"))
}

// Normalization is total: a record with nothing parseable still comes out
// with fallback labels and nil optionals, never an error.
func TestNormalizeSparseRecord(t *testing.T) {
	n := NewNormalizer(parser.Defaults())

	p := n.Normalize(&domain.RawPosting{
		ID:    "post-2",
		Title: "Wizard",
	})

	assert.Equal(t, "Other", p.JobCategory)
	assert.Equal(t, "Mid-level", p.SeniorityLevel)
	assert.Equal(t, "Unknown", p.EmploymentType)
	assert.Equal(t, "Unknown", p.CompanySize)
	assert.Equal(t, "On-site", p.WorkArrangement)
	assert.Nil(t, p.City)
	assert.Nil(t, p.SalaryMin)
	assert.Nil(t, p.PostedDate)
	assert.Empty(t, p.Skills)
}

func TestNormalizeHTMLStripped(t *testing.T) {
	n := NewNormalizer(parser.Defaults())

	p := n.Normalize(&domain.RawPosting{
		ID:          "post-3",
		Title:       "Data Engineer &amp; Architect",
		Description: "<div>Build pipelines with <a href='#'>Airflow</a> &amp; Spark</div>",
	})

	assert.Equal(t, "Data Engineer & Architect", p.JobTitle)
	assert.Equal(t, []string{"Spark", "Airflow"}, p.Skills)
}

func TestNormalizeEmploymentTypeFromTitle(t *testing.T) {
	n := NewNormalizer(parser.Defaults())

	p := n.Normalize(&domain.RawPosting{
		ID:    "post-4",
		Title: "Data Analyst (Contract)",
	})

	assert.Equal(t, "Contract", p.EmploymentType)
}

func TestNormalizeWorkArrangement(t *testing.T) {
	n := NewNormalizer(parser.Defaults())

	remote := n.Normalize(&domain.RawPosting{ID: "a", Title: "Analyst", Location: "Remote"})
	assert.Equal(t, "Remote", remote.WorkArrangement)
	assert.True(t, remote.IsRemote)

	hybrid := n.Normalize(&domain.RawPosting{
		ID: "b", Title: "Analyst", Location: "Denver, CO",
		Description: "Hybrid schedule, 2 days in office",
	})
	assert.Equal(t, "Hybrid", hybrid.WorkArrangement)
	assert.False(t, hybrid.IsRemote)
}

func TestNormalizeUnparseableDate(t *testing.T) {
	n := NewNormalizer(parser.Defaults())

	p := n.Normalize(&domain.RawPosting{
		ID:         "post-5",
		Title:      "Analyst",
		PostedDate: "a few days ago",
	})

	assert.Nil(t, p.PostedDate)
}
