package main

import (
	"errors"
	"sort"

	"github.com/spf13/viper"

	"github.com/specproj/gospectral/analysis"
	"github.com/specproj/gospectral/synth"
)

// fileConfig mirrors the optional YAML configuration file. Pointer fields
// distinguish "absent" from zero values so file entries only override the
// defaults they actually set.
type fileConfig struct {
	Baseline struct {
		Enabled   *bool    `mapstructure:"enabled"`
		Fraction  *float64 `mapstructure:"fraction"`
		MinPoints *int     `mapstructure:"min_points"`
	} `mapstructure:"baseline"`
	Fit struct {
		Multipliers   []float64 `mapstructure:"multipliers"`
		Refs          []string  `mapstructure:"refs"`
		ClampNegative *bool     `mapstructure:"clamp_negative"`
	} `mapstructure:"fit"`
	Data struct {
		RequiredJDXFields []string `mapstructure:"required_jdx_fields"`
		CSVHeaderSize     *int     `mapstructure:"csv_header_size"`
		RefDir            string   `mapstructure:"ref_dir"`
		SampleDir         string   `mapstructure:"sample_dir"`
		SelectedRefs      []string `mapstructure:"selected_refs"`
	} `mapstructure:"data"`
	Plot struct {
		Residuals    *bool `mapstructure:"residuals"`
		Constituents *bool `mapstructure:"constituents"`
	} `mapstructure:"plot"`
	Mixture map[string]float64 `mapstructure:"mixture"`
}

// loadConfig reads the optional configuration file onto the defaults. An
// explicitly named file must exist; the implicit gospectral.yaml may be
// absent.
func loadConfig(cfgFile string) (analysis.Config, synth.Mixture, error) {
	cfg := analysis.DefaultConfig()

	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("gospectral")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return cfg, nil, nil
		}
		return cfg, nil, err
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return cfg, nil, err
	}

	if fc.Baseline.Enabled != nil {
		cfg.BaselineCorrection = *fc.Baseline.Enabled
	}
	if fc.Baseline.Fraction != nil {
		cfg.BaselineFraction = *fc.Baseline.Fraction
	}
	if fc.Baseline.MinPoints != nil {
		cfg.BaselineMinPoints = *fc.Baseline.MinPoints
	}
	if fc.Fit.Multipliers != nil {
		cfg.Multipliers = fc.Fit.Multipliers
	}
	if fc.Fit.Refs != nil {
		cfg.RefNames = fc.Fit.Refs
	}
	if fc.Fit.ClampNegative != nil {
		cfg.ClampNegative = *fc.Fit.ClampNegative
	}
	if fc.Data.RequiredJDXFields != nil {
		cfg.RequiredJDXFields = fc.Data.RequiredJDXFields
	}
	if fc.Data.CSVHeaderSize != nil {
		cfg.CSVHeaderSize = *fc.Data.CSVHeaderSize
	}
	if fc.Data.RefDir != "" {
		cfg.RefDir = fc.Data.RefDir
	}
	if fc.Data.SampleDir != "" {
		cfg.SampleDir = fc.Data.SampleDir
	}
	if fc.Data.SelectedRefs != nil {
		cfg.SelectedRefs = fc.Data.SelectedRefs
	}
	if fc.Plot.Residuals != nil {
		cfg.PlotResiduals = *fc.Plot.Residuals
	}
	if fc.Plot.Constituents != nil {
		cfg.ShowConstituents = *fc.Plot.Constituents
	}

	var mix synth.Mixture
	if len(fc.Mixture) > 0 {
		names := make([]string, 0, len(fc.Mixture))
		for name := range fc.Mixture {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			mix = append(mix, synth.Component{Name: name, Coefficient: fc.Mixture[name]})
		}
	}

	return cfg, mix, nil
}
