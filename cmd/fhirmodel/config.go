package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/gofhir/models/pkg/logger"
	"github.com/gofhir/models/pkg/record"
	fhirvalidator "github.com/gofhir/models/pkg/validator"
)

// envPrefix namespaces environment overrides, e.g. FHIRMODEL_VALIDATION_WORKERS.
const envPrefix = "FHIRMODEL"

// Config holds CLI configuration. Values come from flags, FHIRMODEL_*
// environment variables and an optional YAML file, in that precedence.
type Config struct {
	LogLevel   string           `mapstructure:"log_level" validate:"oneof=debug info warn error none"`
	LogFormat  string           `mapstructure:"log_format" validate:"oneof=text json"`
	Output     string           `mapstructure:"output" validate:"oneof=text json yaml"`
	Validation ValidationConfig `mapstructure:"validation"`
}

// ValidationConfig configures the validate command.
type ValidationConfig struct {
	Unknown     string `mapstructure:"unknown" validate:"oneof=reject preserve ignore"`
	Strict      bool   `mapstructure:"strict"`
	Constraints bool   `mapstructure:"constraints"`
	References  bool   `mapstructure:"references"`
	Workers     int    `mapstructure:"workers" validate:"min=1,max=256"`
	Metrics     bool   `mapstructure:"metrics"`
}

var validate = validator.New()

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")
	v.SetDefault("output", "text")
	v.SetDefault("validation.unknown", "reject")
	v.SetDefault("validation.strict", false)
	v.SetDefault("validation.constraints", true)
	v.SetDefault("validation.references", true)
	v.SetDefault("validation.workers", runtime.NumCPU())
	v.SetDefault("validation.metrics", false)
}

// loadConfig resolves the configuration. path names an optional YAML file.
func loadConfig(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// unknownPolicy maps the configured name onto a decode policy. The name has
// already been checked by loadConfig.
func (c *Config) unknownPolicy() record.UnknownPolicy {
	p, _ := record.ParseUnknownPolicy(c.Validation.Unknown)
	return p
}

func (c *Config) validatorOptions() []fhirvalidator.Option {
	return []fhirvalidator.Option{
		fhirvalidator.WithUnknownPolicy(c.unknownPolicy()),
		fhirvalidator.WithStrictMode(c.Validation.Strict),
		fhirvalidator.WithConstraints(c.Validation.Constraints),
		fhirvalidator.WithReferences(c.Validation.References),
		fhirvalidator.WithWorkers(c.Validation.Workers),
	}
}

func (c *Config) configureLogging() {
	level, _ := logger.ParseLevel(c.LogLevel)
	logger.SetLevel(level)
	logger.SetFormat(logger.Format(c.LogFormat))
}
