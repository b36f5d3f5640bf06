package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"energy-sim/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultParams(), c.ToParams())
	assert.Equal(t, "info", c.Logging.Level)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
simulation:
  days: 7
  seed: 9
tariff:
  price_per_kwh: 0.2
optimization:
  reduction_fraction: 0.25
logging:
  level: debug
`)
	c, err := Load(path)
	require.NoError(t, err)

	p := c.ToParams()
	assert.Equal(t, 7, p.Days)
	assert.Equal(t, uint64(9), p.Seed)
	assert.Equal(t, 0.2, p.PricePerKWh)
	assert.Equal(t, 0.25, p.ReductionFraction)
	assert.Equal(t, model.DefaultEmissionFactor, p.EmissionFactor)
	assert.Equal(t, model.DefaultUsageMin, p.UsageMin)
	assert.Equal(t, "debug", c.Logging.Level)
}

func TestLoadExplicitZeroDays(t *testing.T) {
	c, err := Load(writeFile(t, "simulation:\n  days: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, c.ToParams().Days)
}

func TestLoadExplicitZeroOverrides(t *testing.T) {
	path := writeFile(t, `
simulation:
  usage_min: 0
  seed: 0
tariff:
  price_per_kwh: 0
  emission_factor: 0
optimization:
  reduction_fraction: 0
`)
	c, err := Load(path)
	require.NoError(t, err)

	p := c.ToParams()
	assert.Equal(t, 0.0, p.UsageMin)
	assert.Equal(t, uint64(0), p.Seed)
	assert.Equal(t, 0.0, p.PricePerKWh)
	assert.Equal(t, 0.0, p.EmissionFactor)
	assert.Equal(t, 0.0, p.ReductionFraction)
	assert.Equal(t, model.DefaultUsageMax, p.UsageMax)
	assert.Equal(t, model.DefaultDays, p.Days)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeFile(t, "simulation: [unclosed"))
		assert.Error(t, err)
	})
	t.Run("invalid range", func(t *testing.T) {
		_, err := Load(writeFile(t, "simulation:\n  usage_min: 80\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config invalid")
	})
}

func TestMergeDoesNotAliasBase(t *testing.T) {
	base := Default()
	days := 3
	out := Merge(base, &Config{Simulation: SimulationConfig{Days: &days}})
	*out.Simulation.Days = 99
	assert.Equal(t, model.DefaultDays, *base.Simulation.Days)

	seed := uint64(7)
	out = Merge(base, &Config{Simulation: SimulationConfig{Seed: &seed}})
	seed = 8
	*out.Simulation.UsageMin = 1
	assert.Equal(t, uint64(7), *out.Simulation.Seed)
	assert.Equal(t, model.DefaultUsageMin, *base.Simulation.UsageMin)

	same := Merge(base, nil)
	assert.Equal(t, base.ToParams(), same.ToParams())
}

func TestValidateNil(t *testing.T) {
	var c *Config
	assert.Error(t, c.Validate())
}

func TestInitLogger(t *testing.T) {
	var buf bytes.Buffer
	InitLogger("warn", &buf)
	defer InitLogger("info", os.Stderr)

	l := GetLogger()
	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())
	l.Info().Msg("hidden")
	l.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	InitLogger("bogus", &buf)
	assert.Equal(t, zerolog.InfoLevel, GetLogger().GetLevel())
}
