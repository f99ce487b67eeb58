package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/evtrip/core/model"
	coresweep "github.com/kilianp07/evtrip/core/sweep"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		for _, f := range []string{"vehicle", "distance", "min", "max", "workers", "format", "out"} {
			_ = sweepCmd.Flags().Set(f, sweepCmd.Flags().Lookup(f).DefValue)
			sweepCmd.Flags().Lookup(f).Changed = false
		}
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVehiclesLs(t *testing.T) {
	out, err := execute(t, "vehicles", "ls", "--env-file", "")
	require.NoError(t, err)
	for _, name := range model.PresetNames() {
		assert.Contains(t, out, name)
	}
}

func TestSweepWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	_, err := execute(t, "sweep", "--env-file", "", "--vehicle", "zoe", "--distance", "400",
		"--min", "60", "--max", "130", "--workers", "4", "-f", "json", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var res coresweep.Result
	require.NoError(t, json.Unmarshal(data, &res))
	assert.Equal(t, "zoe", res.Vehicle.Name)
	assert.Equal(t, 400.0, res.Trip.DistanceKm)
	require.Len(t, res.Samples, 71)
	assert.Equal(t, 60.0, res.Samples[0].SpeedKmh)
}

func TestSweepRejectsInvalidRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	_, err := execute(t, "sweep", "--env-file", "", "--min", "0", "-f", "csv", "-o", path)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "min_kmh"))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no output on invalid input")
}

func TestSweepRejectsInfiniteDistance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	_, err := execute(t, "sweep", "--env-file", "", "--distance", "Inf", "-f", "json", "-o", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
