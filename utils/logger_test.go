package utils

import (
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture swaps stdout and stderr for the duration of fn and returns what
// was written to each.
func capture(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()

	outR, outW, err := os.Pipe()
	require.NoError(t, err)
	errR, errW, err := os.Pipe()
	require.NoError(t, err)

	origOut, origErr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = outW, errW
	defer func() {
		os.Stdout, os.Stderr = origOut, origErr
	}()

	fn()

	outW.Close()
	errW.Close()
	outBytes, err := io.ReadAll(outR)
	require.NoError(t, err)
	errBytes, err := io.ReadAll(errR)
	require.NoError(t, err)
	return string(outBytes), string(errBytes)
}

func TestLogsGoToStderr(t *testing.T) {
	stdout, stderr := capture(t, func() {
		Info("scraping page %d", 2)
		Success("harvest complete")
		Warn("page yielded nothing")
		Error("could not start")
	})

	assert.Empty(t, stdout, "stdout is reserved for results")
	assert.Contains(t, stderr, "scraping page 2")
	assert.Contains(t, stderr, "[OK]")
	assert.Contains(t, stderr, "[WARN]")
	assert.Contains(t, stderr, "[ERROR]")
}

func TestLoggingKeepsStdoutParseable(t *testing.T) {
	stdout, _ := capture(t, func() {
		Success("saved %d listings", 2)
		json.NewEncoder(os.Stdout).Encode([]string{"a", "b"})
	})

	var got []string
	require.NoError(t, json.Unmarshal([]byte(stdout), &got), "log lines must not corrupt piped JSON")
	assert.Equal(t, []string{"a", "b"}, got)
}
