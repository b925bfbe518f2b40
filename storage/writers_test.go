package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s-hari-haran/vtu-portal-scraper/models"
)

func sampleListings() []models.Listing {
	return []models.Listing{
		{
			Title:    "Data Science Intern",
			Company:  "Acme Labs",
			Location: "Bengaluru",
			Mode:     "Remote",
			Duration: "3 months",
			Fees:     "Free",
			ApplyBy:  "2026-09-15",
			URL:      "https://portal/i/1",
			Page:     1,
		},
		{
			Title:   "Web Developer Intern",
			Company: "Initech",
			Page:    2,
		},
	}
}

func TestCSVWriter_WritesHeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "internships.csv")

	require.NoError(t, NewCSVWriter(path).Write(sampleListings()))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"title", "company", "location", "mode", "duration", "fees", "apply_by", "url", "page"}, rows[0])
	assert.Equal(t, "Data Science Intern", rows[1][0])
	assert.Equal(t, "1", rows[1][8])
	assert.Equal(t, "", rows[2][2], "missing fields stay empty, row still written")
}

// brokenWriter fails every write, like a full or closed device.
type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, errors.New("device full")
}

func TestCSVWriter_FlushErrorSurfaces(t *testing.T) {
	err := writeCSV(brokenWriter{}, sampleListings())
	require.Error(t, err, "errors held back until flush must still be reported")
	assert.Contains(t, err.Error(), "device full")
}

func TestCSVWriter_NoListings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "internships.csv")

	require.NoError(t, NewCSVWriter(path).Write(nil))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no file for an empty result set")
}

func TestJSONWriter_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "internships.json")

	require.NoError(t, NewJSONWriter(path).Write(sampleListings()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []models.Listing
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, sampleListings(), got)
}

func TestJSONWriter_EmptyIsValidArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "internships.json")

	require.NoError(t, NewJSONWriter(path).Write(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []models.Listing
	require.NoError(t, json.Unmarshal(data, &got))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTextWriter_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "internships.txt")

	require.NoError(t, NewTextWriter(path).Write(sampleListings()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "1. Data Science Intern — Acme Labs")
	assert.Contains(t, out, "Bengaluru | Remote | 3 months | fees: Free | apply by 2026-09-15")
	assert.Contains(t, out, "https://portal/i/1")
	assert.Contains(t, out, "2. Web Developer Intern — Initech")
	assert.Contains(t, out, "2 internships total")
}

func TestTextWriter_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "internships.txt")

	require.NoError(t, NewTextWriter(path).Write(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "No internships found.")
}
