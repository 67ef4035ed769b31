package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills(t *testing.T) {
	e := NewSkillExtractor(Defaults())

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "basic mention",
			text: "Strong SQL and Python skills required",
			want: []string{"Python", "SQL"},
		},
		{
			name: "surface form maps to canonical",
			text: "Experience with postgres and powerbi",
			want: []string{"PostgreSQL", "Power BI"},
		},
		{
			name: "substring does not fire",
			text: "We use PostgreSQL in production",
			want: []string{"PostgreSQL"},
		},
		{
			name: "single letter language needs boundaries",
			text: "Reporting to the Director of Research",
			want: nil,
		},
		{
			name: "r as standalone word",
			text: "Proficiency in R or Python",
			want: []string{"Python", "R"},
		},
		{
			name: "punctuated skill names",
			text: "Visualization in d3.js and modeling in c++",
			want: []string{"C++", "D3.js"},
		},
		{
			name: "repeated mentions collapse",
			text: "Python, python, and more Python",
			want: []string{"Python"},
		},
		{
			name: "no skills",
			text: "Great communication and teamwork",
			want: nil,
		},
		{
			name: "empty text",
			text: "   ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Extract(tt.text))
		})
	}
}

// Extraction order follows the lexicon, so two runs over the same text
// produce identical slices.
func TestExtractSkillsDeterministic(t *testing.T) {
	e := NewSkillExtractor(Defaults())
	text := "Spark, Kafka, Airflow, Python, SQL, Snowflake and dbt"

	first := e.Extract(text)
	second := e.Extract(text)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"Python", "SQL", "Snowflake", "Spark", "Kafka", "Airflow", "dbt"}, first)
}
