package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"triz/standards/internal/domain"
)

// Config holds all configuration for the application
type Config struct {
	Details DetailsConfig `mapstructure:"details"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Log     LogConfig     `mapstructure:"log"`
}

// DetailsConfig describes where the detail store lives and how records are read
type DetailsConfig struct {
	Path     string `mapstructure:"path"`
	Format   string `mapstructure:"format"`
	Required bool   `mapstructure:"required"`

	Schema domain.RecordSchema `mapstructure:",squash"`
}

// CatalogConfig selects the category tree
type CatalogConfig struct {
	Path string `mapstructure:"path"`
	Root string `mapstructure:"root"`
}

// LogConfig holds logrus settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"details":         "details.path",
	"details-format":  "details.format",
	"require-details": "details.required",
	"catalog":         "catalog.path",
	"log-level":       "log.level",
}

// Load reads configuration from configFile, or config.yaml in the working
// directory when configFile is empty. Environment variables prefixed with
// TRIZ_ and set flags override file values.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("triz")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	schema := domain.DefaultRecordSchema()

	v.SetDefault("details.path", "./merged_standards.json")
	v.SetDefault("details.format", "auto")
	v.SetDefault("details.required", false)
	v.SetDefault("details.name_field", schema.NameField)
	v.SetDefault("details.description_fields", schema.DescriptionFields)

	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.root", "Inventive Standards")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}
