package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	input := `Job Title,Company Name,Location,Salary Estimate,Job Description
Data Analyst,Acme Corp,"Austin, TX",$80K-$120K,SQL required
Data Engineer,Globex,Remote,,Spark and Kafka
`
	records, err := ReadCSV(strings.NewReader(input), nil)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Data Analyst", records[0].Title)
	assert.Equal(t, "Acme Corp", records[0].Company)
	assert.Equal(t, "Austin, TX", records[0].Location)
	assert.Equal(t, "$80K-$120K", records[0].Salary)
	assert.Equal(t, "SQL required", records[0].Description)

	assert.Equal(t, "Remote", records[1].Location)
	assert.Empty(t, records[1].Salary)
}

func TestReadCSVCustomMapping(t *testing.T) {
	input := "position,employer\nAnalyst,Acme\n"

	records, err := ReadCSV(strings.NewReader(input), map[string]string{
		"position": "title",
		"employer": "company",
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Analyst", records[0].Title)
	assert.Equal(t, "Acme", records[0].Company)
}

func TestReadCSVRaggedRows(t *testing.T) {
	input := "title,company,location\nAnalyst,Acme\nEngineer,Globex,Remote,extra\n"

	records, err := ReadCSV(strings.NewReader(input), nil)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Empty(t, records[0].Location)
	assert.Equal(t, "Remote", records[1].Location)
}

func TestReadCSVUnknownColumnsIgnored(t *testing.T) {
	input := "title,rating\nAnalyst,4.2\n"

	records, err := ReadCSV(strings.NewReader(input), nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Analyst", records[0].Title)
}

func TestReadCSVEmpty(t *testing.T) {
	records, err := ReadCSV(strings.NewReader(""), nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}
