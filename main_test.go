package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersionInfo(t *testing.T) {
	version, commit := GetVersionInfo()
	// In test builds neither ldflags nor module build info set a real
	// version, so both come back empty; that is the expected shape here.
	assert.GreaterOrEqual(t, len(version), 0)
	assert.GreaterOrEqual(t, len(commit), 0)
}

func TestParseArgsNoneOpensScratch(t *testing.T) {
	path, readOnly, err := parseArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, "", path)
	assert.False(t, readOnly)
}

func TestParseArgsFile(t *testing.T) {
	path, readOnly, err := parseArgs([]string{"notes.txt"})
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", path)
	assert.False(t, readOnly)
}

func TestParseArgsReadOnlyFlag(t *testing.T) {
	path, readOnly, err := parseArgs([]string{"-R", "notes.txt"})
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", path)
	assert.True(t, readOnly)
}

func TestParseArgsReadOnlyFlagAfterPath(t *testing.T) {
	path, readOnly, err := parseArgs([]string{"notes.txt", "-R"})
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", path)
	assert.True(t, readOnly)
}

func TestParseArgsUnknownFlagErrors(t *testing.T) {
	_, _, err := parseArgs([]string{"--bogus"})
	assert.Error(t, err)
}

func TestParseArgsTwoPathsErrors(t *testing.T) {
	_, _, err := parseArgs([]string{"a.txt", "b.txt"})
	assert.Error(t, err)
}

func TestRunAppFailsWithoutControllingTerminal(t *testing.T) {
	// The test binary's stdin is not a TTY, so RunApp must fail fast at
	// the terminal-acquisition step and report exit code 1, never
	// attempting to enter raw mode.
	assert.Equal(t, 1, RunApp(nil))
}

func TestRunAppFailsOnBadFlag(t *testing.T) {
	assert.Equal(t, 1, RunApp([]string{"--nope"}))
}
