package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"toroidz/pkg/toroid"
)

// Config holds everything the pipeline needs: winding, core geometry,
// shunt capacitance, material data source and output targets.
type Config struct {
	Title    string
	Winding  WindingConfig
	Core     CoreConfig
	Material MaterialConfig
	Output   OutputConfig
}

type WindingConfig struct {
	Turns    int
	ShuntCap float64 // F
}

type CoreConfig struct {
	ODmm float64
	IDmm float64
	HTmm float64
}

type MaterialConfig struct {
	File  string
	Sheet string  // XLSX sheet, ignored for CSV/TSV
	FMin  float64 // Hz, band trim
	FMax  float64 // Hz
}

type OutputConfig struct {
	PNG  string
	XLSX string
	TSV  string
}

// Load reads the config file (YAML) when path is non-empty, with
// environment variables (TOROIDZ_ prefix) and built-in defaults
// underneath. Defaults are the FT-114 sized reference scenario.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("title", "Ferrite toroid inductor")
	v.SetDefault("winding.turns", 12)
	v.SetDefault("winding.shunt_capacitance", "0.65p")
	v.SetDefault("core.od_mm", 61.0)
	v.SetDefault("core.id_mm", 35.55)
	v.SetDefault("core.height_mm", 12.7)
	v.SetDefault("material.file", "material_43.csv")
	v.SetDefault("material.sheet", "")
	v.SetDefault("material.fmin", "100k")
	v.SetDefault("material.fmax", "100meg")
	v.SetDefault("output.png", "impedance.png")
	v.SetDefault("output.xlsx", "")
	v.SetDefault("output.tsv", "")

	v.SetEnvPrefix("TOROIDZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	cfg.Title = v.GetString("title")
	cfg.Winding.Turns = v.GetInt("winding.turns")
	cfg.Core.ODmm = v.GetFloat64("core.od_mm")
	cfg.Core.IDmm = v.GetFloat64("core.id_mm")
	cfg.Core.HTmm = v.GetFloat64("core.height_mm")
	cfg.Material.File = v.GetString("material.file")
	cfg.Material.Sheet = v.GetString("material.sheet")
	cfg.Output.PNG = v.GetString("output.png")
	cfg.Output.XLSX = v.GetString("output.xlsx")
	cfg.Output.TSV = v.GetString("output.tsv")

	var err error
	cfg.Winding.ShuntCap, err = ParseValue(v.GetString("winding.shunt_capacitance"))
	if err != nil {
		return nil, fmt.Errorf("winding.shunt_capacitance: %w", err)
	}
	cfg.Material.FMin, err = ParseValue(v.GetString("material.fmin"))
	if err != nil {
		return nil, fmt.Errorf("material.fmin: %w", err)
	}
	cfg.Material.FMax, err = ParseValue(v.GetString("material.fmax"))
	if err != nil {
		return nil, fmt.Errorf("material.fmax: %w", err)
	}

	coil := cfg.Coil()
	if err := coil.Validate(); err != nil {
		return nil, err
	}
	if cfg.Material.FMin >= cfg.Material.FMax {
		return nil, fmt.Errorf("material band is empty: fmin=%g fmax=%g", cfg.Material.FMin, cfg.Material.FMax)
	}

	log.Debug().
		Int("turns", cfg.Winding.Turns).
		Float64("od_mm", cfg.Core.ODmm).
		Float64("id_mm", cfg.Core.IDmm).
		Float64("ht_mm", cfg.Core.HTmm).
		Float64("shunt_pf", cfg.Winding.ShuntCap*1e12).
		Str("material", cfg.Material.File).
		Msg("configuration loaded")

	return &cfg, nil
}

// Coil assembles the toroid model from the loaded parameters.
func (c *Config) Coil() toroid.Coil {
	return toroid.Coil{
		Core:     toroid.NewCore(c.Core.ODmm, c.Core.IDmm, c.Core.HTmm),
		Turns:    c.Winding.Turns,
		ShuntCap: c.Winding.ShuntCap,
	}
}
