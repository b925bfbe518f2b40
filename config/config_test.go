package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)

	assert.Equal(t, defaultStartURL, cfg.StartURL)
	assert.Zero(t, cfg.MaxPages, "default is no page bound")
	assert.True(t, cfg.Headless)
	assert.False(t, cfg.JSON)
	assert.Empty(t, cfg.OutputPath)
	assert.False(t, cfg.SaveToDB)
}

func TestParseFlags_Overrides(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"--url", "https://example.com/internships",
		"--max-pages", "3",
		"--keyword", "python",
		"--json",
		"--output", "out.json",
		"--csv", "out.csv",
		"--headless=false",
		"--timeout", "5s",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/internships", cfg.StartURL)
	assert.Equal(t, 3, cfg.MaxPages)
	assert.Equal(t, "python", cfg.Keyword)
	assert.True(t, cfg.JSON)
	assert.Equal(t, "out.json", cfg.OutputPath)
	assert.Equal(t, "out.csv", cfg.CSVPath)
	assert.False(t, cfg.Headless)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestParseFlags_Invalid(t *testing.T) {
	_, err := ParseFlags([]string{"--url", ""})
	assert.Error(t, err)

	_, err = ParseFlags([]string{"--max-pages", "-2"})
	assert.Error(t, err)

	_, err = ParseFlags([]string{"--no-such-flag"})
	assert.Error(t, err)
}

func TestParseFlags_DBEnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "harvests")
	t.Setenv("DB_USER", "")

	cfg, err := ParseFlags(nil)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, 5433, cfg.DBPort)
	assert.Equal(t, "harvests", cfg.DBName)
	assert.Equal(t, "postgres", cfg.DBUser, "unset vars keep defaults")
}

func TestLoadSelectors_Defaults(t *testing.T) {
	sel, err := LoadSelectors("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSelectors(), sel)
}

func TestLoadSelectors_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selectors.yaml")
	content := `cards:
  - "div.listing"
next:
  - "a.pager-next"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	sel, err := LoadSelectors(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"div.listing"}, sel.Cards)
	assert.Equal(t, []string{"a.pager-next"}, sel.Next)
	assert.Equal(t, DefaultSelectors().Title, sel.Title, "untouched lists keep defaults")
}

func TestLoadSelectors_MissingFile(t *testing.T) {
	_, err := LoadSelectors(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadSelectors_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selectors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cards: {not: [a, list"), 0o600))

	_, err := LoadSelectors(path)
	assert.Error(t, err)
}
