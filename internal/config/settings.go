package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/iddl/internal/logger"
	"github.com/alexisbeaulieu97/iddl/internal/storage"
)

// EnvPrefix prefixes every environment override, e.g. IDDL_LOG_LEVEL.
const EnvPrefix = "IDDL"

// Settings are the process-level knobs of the CLI.
type Settings struct {
	Log         LogSettings     `mapstructure:"log"`
	Storage     StorageSettings `mapstructure:"storage"`
	Definitions []string        `mapstructure:"definitions" validate:"dive,required"`
	Metrics     bool            `mapstructure:"metrics"`
}

// LogSettings configure the logger.
type LogSettings struct {
	Level      string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Human      bool   `mapstructure:"human"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" validate:"min=0"`
	MaxBackups int    `mapstructure:"max_backups" validate:"min=0"`
}

// StorageSettings select the layout state backend.
type StorageSettings struct {
	Backend string `mapstructure:"backend" validate:"oneof=memory file sqlite"`
	Path    string `mapstructure:"path" validate:"required_unless=Backend memory"`
}

// SetDefaults initializes default values for every setting.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.human", true)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)

	v.SetDefault("storage.backend", string(storage.BackendMemory))
	v.SetDefault("storage.path", "")

	v.SetDefault("definitions", []string{})
	v.SetDefault("metrics", false)
}

// NewViper returns a viper instance with defaults and IDDL_* environment
// overrides wired in.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadSettings reads an optional settings file into v and decodes the result.
func LoadSettings(v *viper.Viper, file string) (*Settings, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading settings file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error unmarshaling settings: %w", err)
	}
	if err := validatorInstance().Struct(&s); err != nil {
		return nil, convertValidationError(err)
	}
	return &s, nil
}

// LoggerOptions maps log settings onto logger options.
func (s *Settings) LoggerOptions() logger.Options {
	return logger.Options{
		Level:         s.Log.Level,
		HumanReadable: s.Log.Human,
		File:          s.Log.File,
		MaxSizeMB:     s.Log.MaxSizeMB,
		MaxBackups:    s.Log.MaxBackups,
	}
}
