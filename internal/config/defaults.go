package config

import (
	"github.com/spf13/viper"

	"twiddler-tools/internal/chord"
	"twiddler-tools/internal/csvio"
	"twiddler-tools/internal/expand"
	"twiddler-tools/internal/modifier"
)

// Default file names.
const (
	DefaultInput       = "tabspace_twiddler_V6.csv"
	DefaultTutorInput  = "twiddler_cfg.csv"
	DefaultTutorOutput = "twiddler_cfg.json"
	FileName           = "twiddler"
)

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input", DefaultInput)
	v.SetDefault("output_suffix", csvio.DefaultSuffix)
	v.SetDefault("combine", string(expand.PolicyEligible))

	v.SetDefault("markers.keyboard", chord.KeyboardMarker)
	v.SetDefault("markers.system", chord.SystemMarker)

	mods := make([]map[string]any, 0, len(modifier.Default()))
	for _, m := range modifier.Default() {
		mods = append(mods, map[string]any{"name": m.Name, "button": m.Button, "label": m.Label})
	}

	v.SetDefault("modifiers", mods)

	v.SetDefault("tutor.input", DefaultTutorInput)
	v.SetDefault("tutor.output", DefaultTutorOutput)
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Input:        DefaultInput,
		OutputSuffix: csvio.DefaultSuffix,
		Combine:      string(expand.PolicyEligible),
		Markers: MarkersConfig{
			Keyboard: chord.KeyboardMarker,
			System:   chord.SystemMarker,
		},
		Modifiers: modifier.Default(),
		Tutor: TutorConfig{
			Input:  DefaultTutorInput,
			Output: DefaultTutorOutput,
		},
	}
}
