package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ErrInvalid marks configuration errors.
var ErrInvalid = errors.New("invalid configuration")

const filePerm = 0o644

// Load reads the configuration. An empty path looks for twiddler.yaml in
// the working directory and falls back to defaults when there is none; an
// explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("TWIDDLER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Wrap(err, "failed to read config file")
			}
		}
	}

	return LoadWithViper(v)
}

// LoadWithViper decodes and validates the configuration held by v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Input == "" {
		return errors.Mark(errors.New("input cannot be empty"), ErrInvalid)
	}

	if c.OutputSuffix == "" {
		return errors.Mark(
			errors.WithHint(errors.New("output_suffix cannot be empty"),
				"an empty suffix would overwrite the input table"),
			ErrInvalid)
	}

	opts, err := c.ExpandOptions()
	if err != nil {
		return errors.Mark(err, ErrInvalid)
	}

	if err := opts.Validate(); err != nil {
		return errors.Mark(err, ErrInvalid)
	}

	return nil
}

// Marshal serializes a Config to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteFile writes a Config to the given path.
func WriteFile(c *Config, path string) error {
	data, err := Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", path)
	}

	return nil
}
