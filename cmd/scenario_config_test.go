package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/ed-sim/ed-sim/sim"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario_FullFile(t *testing.T) {
	path := writeScenario(t, `
executions: 3
arrivals_per_hour: 30
hours: 2
beds: 8
queue_size: 50
doctors: 6
nurses: 7
wardies: 3
labs: 2
xray_staff: 1
algo: 1
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	require.NotNil(t, scenario.Executions)
	assert.Equal(t, 3, *scenario.Executions)
	cfg := scenario.Config()
	want := sim.Config{
		MeanArrivalsPerHour: 30,
		SimHours:            2,
		Beds:                8,
		QueueCapacity:       50,
		Doctors:             6,
		Nurses:              7,
		Wardies:             3,
		Labs:                2,
		XRayStaff:           1,
		AlgorithmIndex:      1,
	}
	assert.Equal(t, want, cfg)
}

func TestLoadScenario_PartialFile_KeepsDefaults(t *testing.T) {
	path := writeScenario(t, "beds: 12\n")

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	cfg := scenario.Config()
	defaults := sim.DefaultConfig()
	assert.Equal(t, 12, cfg.Beds)
	assert.Equal(t, defaults.MeanArrivalsPerHour, cfg.MeanArrivalsPerHour)
	assert.Equal(t, defaults.Nurses, cfg.Nurses)
	assert.Equal(t, defaults.AlgorithmIndex, cfg.AlgorithmIndex)
	assert.Nil(t, scenario.Executions)
}

func TestLoadScenario_ExplicitZeros_Survive(t *testing.T) {
	// GIVEN a scenario pinning beds and queue capacity to zero, the regime
	// where every arrival must die
	path := writeScenario(t, "beds: 0\nqueue_size: 0\n")

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	// THEN the zeros reach the configuration instead of reverting to the
	// stock defaults
	cfg := scenario.Config()
	assert.Equal(t, 0, cfg.Beds)
	assert.Equal(t, 0, cfg.QueueCapacity)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadScenario_MalformedYAML(t *testing.T) {
	path := writeScenario(t, "beds: [unclosed\n")
	_, err := LoadScenario(path)
	assert.Error(t, err)
}
