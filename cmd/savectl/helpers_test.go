package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/hadeskit/internal/testutil"
)

const testSize = testutil.Size

// resetGlobals restores flag variables between tests.
func resetGlobals(t *testing.T) {
	t.Helper()
	verbose, quiet, jsonOut = false, false, false
	pathSep = "."
	getShowType = false
	dumpDepth = 0
	setType, setBackup, setDryRun = "", "", false
	settings = fileConfig{Size: testSize}
}

// writeTestSave writes the shared fixture save and returns its path.
func writeTestSave(t *testing.T) string {
	t.Helper()
	return testutil.SetupTestSave(t)
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)
	return buf.String(), fnErr
}
