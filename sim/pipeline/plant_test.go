package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canesim/canesim/sim/steam"
)

func TestDefaultPlantConfig_Valid(t *testing.T) {
	cfg := DefaultPlantConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, []float64{3500, 2500, 2000, 2000, 1000, 1000}, cfg.EvaporatorAreas)
	assert.Len(t, cfg.Steam.Boilers, 2)
	assert.NotNil(t, cfg.Table())
}

func TestParsePlantConfig_OverlaysDefaults(t *testing.T) {
	// GIVEN a file overriding only the areas and the band
	data := []byte(`
evaporator_areas: [3000, 2000, 1500]
target_brix:
  low: 58
  high: 62
ethanol:
  fermentation_conversion: 0.9
`)

	// WHEN parsed
	cfg, err := ParsePlantConfig(data)

	// THEN the overrides apply and everything else keeps its default
	require.NoError(t, err)
	assert.Equal(t, []float64{3000, 2000, 1500}, cfg.EvaporatorAreas)
	assert.Equal(t, 58.0, cfg.TargetBrix.Low)
	assert.Equal(t, 62.0, cfg.TargetBrix.High)
	assert.Equal(t, 0.9, cfg.Ethanol.FermentationConversion)
	assert.Equal(t, 0.94, cfg.Ethanol.AA1Vapor)
	assert.Equal(t, 1.0, cfg.PressureOffset)
	assert.Equal(t, 0.17, cfg.DecanterRetention)
	assert.NoError(t, cfg.Validate())
}

func TestParsePlantConfig_Empty_Defaults(t *testing.T) {
	cfg, err := ParsePlantConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, DefaultPlantConfig(), cfg)
}

func TestParsePlantConfig_UnknownKey_Rejected(t *testing.T) {
	// GIVEN a typo in a key
	_, err := ParsePlantConfig([]byte("decanter_retension: 0.2\n"))

	// THEN strict parsing refuses it
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing plant config")
}

func TestLoadPlantConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plant.yaml")
	require.NoError(t, os.WriteFile(path, []byte("flash_exit_temp: 98.5\n"), 0o644))

	cfg, err := LoadPlantConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 98.5, cfg.FlashExitTemp)
}

func TestLoadPlantConfig_MissingFile(t *testing.T) {
	_, err := LoadPlantConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading plant config")
}

func TestPlantConfig_Validate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *PlantConfig)
		want   string
	}{
		{"no areas", func(c *PlantConfig) { c.EvaporatorAreas = nil }, "evaporator_areas"},
		{"zero area", func(c *PlantConfig) { c.EvaporatorAreas = []float64{3500, 0} }, "evaporator_areas[1]"},
		{"inverted band", func(c *PlantConfig) { c.TargetBrix.Low, c.TargetBrix.High = 63, 60 }, "target_brix"},
		{"retention above 1", func(c *PlantConfig) { c.DecanterRetention = 1.2 }, "decanter_retention"},
		{"zero cake solids", func(c *PlantConfig) { c.CakeSolids = 0 }, "cake_solids"},
		{"molasses purity 100", func(c *PlantConfig) { c.MolassesPurity = 100 }, "molasses_purity"},
		{"one boiler", func(c *PlantConfig) { c.Steam.Boilers = c.Steam.Boilers[:1] }, "exactly 2 boilers"},
		{"boiler efficiency", func(c *PlantConfig) { c.Steam.Boilers[1].Efficiency = 0 }, "steam.boilers[1]"},
		{"aa1 vapor", func(c *PlantConfig) { c.Ethanol.AA1Vapor = 1.5 }, "ethanol.aa1_vapor"},
		{"steam table temperature order", func(c *PlantConfig) {
			c.SteamTable = steam.DefaultTable()
			c.SteamTable.Temperature[4], c.SteamTable.Temperature[5] = c.SteamTable.Temperature[5], c.SteamTable.Temperature[4]
		}, "steam_table: reference table temperature must be strictly ascending"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPlantConfig()
			tc.mutate(cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestRemoveArea(t *testing.T) {
	areas := []float64{3500, 2500, 2000, 2000, 1000, 1000}
	tests := []struct {
		name string
		id   string
		want []float64
	}{
		{"first of duplicates", "1000", []float64{3500, 2500, 2000, 2000, 1000}},
		{"labelled id", "2000 m²", []float64{3500, 2500, 2000, 1000, 1000}},
		{"fractional id truncates", "3500.8", []float64{2500, 2000, 2000, 1000, 1000}},
		{"no match", "1500", areas},
		{"no integer prefix", "evap", areas},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RemoveArea(areas, tc.id)

			assert.Equal(t, tc.want, got)
		})
	}

	// THEN the installed list is never modified
	assert.Equal(t, []float64{3500, 2500, 2000, 2000, 1000, 1000}, areas)
}
