package main

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// resetFlags restores every command flag to its default.
func resetFlags() {
	verbose, quiet, jsonOut = false, false, false
	logLevel, logFormat = "", "text"

	sortContainer, sortOrder = containerList, ordering{}
	mergeContainer, mergeOrder, mergePresort = containerList, ordering{}, false
	uniqueContainer, uniqueOrder, uniquePresort = containerList, ordering{}, false
	spliceContainer, spliceAt, spliceCount = containerList, -1, -1
	growthN, growthReserve, growthSource, growthLimit, growthShrink = 16, 0, "heap", 1<<20, false
	growthTable = false
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	require.NoError(t, err, "failed to create pipe")

	// Redirect stdout to pipe
	os.Stdout = w

	// Drain concurrently so large outputs cannot fill the pipe
	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	return string(<-done), fnErr
}

// decodeJSON checks that output is valid JSON and returns it decoded
func decodeJSON(t *testing.T, output string) map[string]any {
	t.Helper()
	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &result), "invalid JSON output:\n%s", output)
	return result
}
