package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specproj/gospectral/synth"
)

func TestLoadConfigDefaultsWhenAbsent(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(cwd)

	cfg, mix, err := loadConfig("")
	require.NoError(t, err)
	assert.Nil(t, mix)
	assert.True(t, cfg.BaselineCorrection)
	assert.Equal(t, 0.20, cfg.BaselineFraction)
	assert.Equal(t, 50, cfg.BaselineMinPoints)
	assert.True(t, cfg.ClampNegative)
	assert.Equal(t, 1, cfg.CSVHeaderSize)
}

func TestLoadConfigOverrides(t *testing.T) {
	yaml := `
baseline:
  enabled: false
  fraction: 0.1
fit:
  multipliers: [0.65, 0.18]
  refs: [CO2, H2O]
  clamp_negative: false
data:
  ref_dir: refs
  sample_dir: samples
  csv_header_size: 3
  selected_refs: [CO2, H2O]
plot:
  residuals: true
mixture:
  H2O: 0.2
  CO2: 0.8
`
	path := filepath.Join(t.TempDir(), "conf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, mix, err := loadConfig(path)
	require.NoError(t, err)

	assert.False(t, cfg.BaselineCorrection)
	assert.Equal(t, 0.1, cfg.BaselineFraction)
	assert.Equal(t, 50, cfg.BaselineMinPoints, "unset keys keep defaults")
	assert.Equal(t, []float64{0.65, 0.18}, cfg.Multipliers)
	assert.Equal(t, []string{"CO2", "H2O"}, cfg.RefNames)
	assert.False(t, cfg.ClampNegative)
	assert.Equal(t, "refs", cfg.RefDir)
	assert.Equal(t, "samples", cfg.SampleDir)
	assert.Equal(t, 3, cfg.CSVHeaderSize)
	assert.Equal(t, []string{"CO2", "H2O"}, cfg.SelectedRefs)
	assert.True(t, cfg.PlotResiduals)

	// Mixture components are ordered by name for reproducible generation.
	require.Equal(t, synth.Mixture{
		{Name: "CO2", Coefficient: 0.8},
		{Name: "H2O", Coefficient: 0.2},
	}, mix)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, _, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
