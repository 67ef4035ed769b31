package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/project-tktt/job-market-etl/internal/errors"
)

func TestReadJSONL(t *testing.T) {
	input := `{"id":"p1","title":"Data Analyst","company":"Acme"}

{"id":"p2","title":"Data Engineer","location":"Remote"}
`
	records, err := ReadJSONL(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "p1", records[0].ID)
	assert.Equal(t, "Data Analyst", records[0].Title)
	assert.Equal(t, "Remote", records[1].Location)
}

func TestReadJSONLMalformedLine(t *testing.T) {
	input := "{\"id\":\"p1\"}\nnot json\n"

	_, err := ReadJSONL(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "postings.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("title,company\nAnalyst,Acme\n"), 0o644))

	jsonlPath := filepath.Join(dir, "postings.jsonl")
	require.NoError(t, os.WriteFile(jsonlPath, []byte(`{"title":"Engineer","company":"Globex"}`+"\n"), 0o644))

	records, err := ReadFiles([]string{csvPath, jsonlPath}, nil)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Analyst", records[0].Title)
	assert.Equal(t, "Engineer", records[1].Title)
}

func TestReadFilesNoRecords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(path, []byte("title,company\n"), 0o644))

	_, err := ReadFiles([]string{path}, nil)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsType(err, pkgerrors.ErrTypeNoInput))
}

func TestReadFilesUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "postings.xml")
	require.NoError(t, os.WriteFile(path, []byte("<jobs/>"), 0o644))

	_, err := ReadFiles([]string{path}, nil)
	assert.Error(t, err)
}
