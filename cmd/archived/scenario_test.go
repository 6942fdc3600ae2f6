package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseScenario(t *testing.T) {
	sc, err := parseScenario([]byte("initial: 13\nincrements: [3, 4, 7, 9, 4, 5, 7, 94]\n"))
	require.NoError(t, err)
	require.Equal(t, defaultScenario, sc)

	_, err = parseScenario([]byte("initial: 13\n"))
	require.Error(t, err)

	_, err = parseScenario([]byte("initial: 13\nincrements: [1]\nunknown: 1\n"))
	require.Error(t, err)
}

func TestLoadScenario(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(fname, []byte("initial: -5\nincrements:\n  - 10\n  - -3\n"), 0600))

	sc, err := loadScenario(fname)
	require.NoError(t, err)
	require.Equal(t, Scenario{Initial: -5, Increments: []int64{10, -3}}, sc)

	_, err = loadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
