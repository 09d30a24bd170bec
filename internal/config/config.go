// Package config loads the twiddler-tools settings.
//
// Values come from, in increasing precedence: built-in defaults, a YAML
// config file (twiddler.yaml in the working directory or the path given
// with --config) and TWIDDLER_* environment variables.
//
//	input: tabspace_twiddler_V6.csv
//	output_suffix: _w_modifiers
//	combine: eligible
//	markers:
//	  keyboard: '[KB]'
//	  system: '[SYS]'
//	modifiers:
//	  - {name: Shift, button: "4", label: L-Shift}
//	  - {name: Ctrl, button: "3", label: L-Ctrl}
//	  - {name: Alt, button: "2", label: L-Alt}
//	tutor:
//	  input: twiddler_cfg.csv
//	  output: twiddler_cfg.json
package config

import (
	"twiddler-tools/internal/chord"
	"twiddler-tools/internal/expand"
	"twiddler-tools/internal/modifier"
)

// Config represents the twiddler-tools configuration.
type Config struct {
	Input        string              `mapstructure:"input" yaml:"input"`
	OutputSuffix string              `mapstructure:"output_suffix" yaml:"output_suffix"`
	Combine      string              `mapstructure:"combine" yaml:"combine"`
	Markers      MarkersConfig       `mapstructure:"markers" yaml:"markers"`
	Modifiers    []modifier.Modifier `mapstructure:"modifiers" yaml:"modifiers"`
	Tutor        TutorConfig         `mapstructure:"tutor" yaml:"tutor"`
}

// MarkersConfig holds the action markers.
type MarkersConfig struct {
	Keyboard string `mapstructure:"keyboard" yaml:"keyboard"`
	System   string `mapstructure:"system" yaml:"system"`
}

// TutorConfig configures the Tutor JSON conversion.
type TutorConfig struct {
	Input  string `mapstructure:"input" yaml:"input"`
	Output string `mapstructure:"output" yaml:"output"`
}

// ExpandOptions builds the expansion options described by the config.
func (c *Config) ExpandOptions() (expand.Options, error) {
	policy, err := expand.ParsePolicy(c.Combine)
	if err != nil {
		return expand.Options{}, err
	}

	return expand.Options{
		Modifiers: modifier.Set(c.Modifiers),
		Markers: chord.Markers{
			Keyboard: c.Markers.Keyboard,
			System:   c.Markers.System,
		},
		Policy: policy,
	}, nil
}
