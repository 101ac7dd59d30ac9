// Package config loads converter settings from flags, environment and an
// optional config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/ukaji3/exseries-go/pkg/exseries"
	"github.com/ukaji3/exseries-go/pkg/exseries/models"
)

// EnvPrefix prefixes every environment variable, e.g. EXSERIES_OUTPUT_DIR.
const EnvPrefix = "EXSERIES"

// Config holds converter settings.
type Config struct {
	InputDir   string   `mapstructure:"input_dir"`
	OutputDir  string   `mapstructure:"output_dir"`
	Shape      string   `mapstructure:"shape"`
	DateFormat string   `mapstructure:"date_format"`
	DateColumn string   `mapstructure:"date_column"`
	Sheet      string   `mapstructure:"sheet"`
	OnMissing  string   `mapstructure:"on_missing"`
	ValueType  string   `mapstructure:"value_type"`
	NAValues   []string `mapstructure:"na_values"`
	LogLevel   string   `mapstructure:"log_level"`
}

// Defaults returns the default settings.
func Defaults() Config {
	return Config{
		InputDir:  "ExcelInputs",
		OutputDir: "JSONOutputs",
		Shape:     string(exseries.ShapeMapping),
		OnMissing: string(exseries.MissingDrop),
		ValueType: string(models.KindAny),
		LogLevel:  "info",
	}
}

// flagKeys maps config keys to flag names.
var flagKeys = map[string]string{
	"input_dir":   "input-dir",
	"output_dir":  "output-dir",
	"shape":       "shape",
	"date_format": "date-format",
	"date_column": "date-column",
	"sheet":       "sheet",
	"on_missing":  "on-missing",
	"value_type":  "value-type",
	"na_values":   "na-values",
	"log_level":   "log-level",
}

// RegisterFlags adds a flag for every setting to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	d := Defaults()
	flags.String("input-dir", d.InputDir, "Directory the input file name is resolved against")
	flags.String("output-dir", d.OutputDir, "Directory the JSON file is written to")
	flags.String("shape", d.Shape, "Output shape: mapping, records")
	flags.String("date-format", d.DateFormat, "Go time layout for dates (default: 2006-01-02 for mapping, 2006/01/02 for records)")
	flags.String("date-column", d.DateColumn, "Header name of the date column (default: first column)")
	flags.String("sheet", d.Sheet, "Sheet to read (default: first sheet)")
	flags.String("on-missing", d.OnMissing, "Rows with a missing date or value: drop, error, keep")
	flags.String("value-type", d.ValueType, "Value column type check: any, number")
	flags.StringSlice("na-values", d.NAValues, "Cell texts treated as missing (default: pandas NA tokens)")
	flags.String("log-level", d.LogLevel, "Log level: debug, info, warn, error")
}

// Load resolves settings with precedence flag > environment > config file >
// defaults. A .env file in the working directory is loaded when present.
// configFile may be empty.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	d := Defaults()
	v.SetDefault("input_dir", d.InputDir)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("shape", d.Shape)
	v.SetDefault("date_format", d.DateFormat)
	v.SetDefault("date_column", d.DateColumn)
	v.SetDefault("sheet", d.Sheet)
	v.SetDefault("on_missing", d.OnMissing)
	v.SetDefault("value_type", d.ValueType)
	v.SetDefault("na_values", d.NAValues)
	v.SetDefault("log_level", d.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Options converts the settings into validated conversion options.
func (c *Config) Options() (exseries.Options, error) {
	opts := exseries.Options{
		Shape:      exseries.Shape(strings.ToLower(c.Shape)),
		DateLayout: c.DateFormat,
		DateColumn: c.DateColumn,
		Sheet:      c.Sheet,
		OnMissing:  exseries.MissingPolicy(strings.ToLower(c.OnMissing)),
		ValueKind:  models.ColumnKind(strings.ToLower(c.ValueType)),
	}
	if len(c.NAValues) > 0 {
		opts.NAValues = c.NAValues
	}
	if err := opts.Validate(); err != nil {
		return exseries.Options{}, err
	}
	return opts, nil
}
