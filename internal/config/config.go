// Package config loads and validates the lutextract configuration.
package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Lute    LuteConfig    `mapstructure:"lute"`
	Extract ExtractConfig `mapstructure:"extract"`
}

type LuteConfig struct {
	// DatabasePath is the default lute.db file used when the extract
	// command is run without --db.
	DatabasePath string `mapstructure:"database_path" validate:"omitempty,file"`
}

type ExtractConfig struct {
	ParentsOnly           bool   `mapstructure:"parents_only"`
	AllowEmptyTranslation bool   `mapstructure:"allow_empty_translation"`
	IncludeWellKnown      bool   `mapstructure:"include_well_known"`
	CutoffDate            string `mapstructure:"cutoff_date" validate:"omitempty,datetime=2006-01-02"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/lutextract")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("lute.database_path", "")
	v.SetDefault("extract.parents_only", false)
	v.SetDefault("extract.allow_empty_translation", false)
	v.SetDefault("extract.include_well_known", false)
	// Empty means today; the extract command resolves it per run.
	v.SetDefault("extract.cutoff_date", "")

	if err := v.BindEnv("lute.database_path", "LUTE_DB_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind LUTE_DB_PATH environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
