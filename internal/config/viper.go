// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"fjacquet/livro-caixa/internal/csvparser"
	"fjacquet/livro-caixa/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. CAIXA_IMPORT_ANOMALY_POLICY.
const EnvPrefix = "CAIXA"

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// LogConfig configures the logrus logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// ImportConfig configures statement parsing.
type ImportConfig struct {
	DefaultCurrency        string `mapstructure:"default_currency" yaml:"default_currency"`
	CSVEncoding            string `mapstructure:"csv_encoding" yaml:"csv_encoding"`
	AnomalyPolicy          string `mapstructure:"anomaly_policy" yaml:"anomaly_policy"`
	MaxUploadBytes         int64  `mapstructure:"max_upload_bytes" yaml:"max_upload_bytes"`
	CounterpartAliasesFile string `mapstructure:"counterpart_aliases_file" yaml:"counterpart_aliases_file"`
}

// ExportConfig configures the preview writers.
type ExportConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// Config represents the complete application configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Import ImportConfig `mapstructure:"import" yaml:"import"`
	Export ExportConfig `mapstructure:"export" yaml:"export"`
}

// InitializeConfig loads defaults, then config.yaml, then CAIXA_* environment variables.
// configFile, when set, replaces the search in $HOME/.livro-caixa, .livro-caixa and the
// current directory and must exist.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.livro-caixa")
		v.AddConfigPath(".livro-caixa")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns the configuration used when nothing overrides the defaults.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Import: ImportConfig{
			DefaultCurrency: models.DefaultCurrency,
			CSVEncoding:     csvparser.EncodingLatin1,
			AnomalyPolicy:   string(models.AnomalySkip),
			MaxUploadBytes:  10 << 20,
		},
		Export: ExportConfig{Delimiter: ","},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetDefault("import.default_currency", d.Import.DefaultCurrency)
	v.SetDefault("import.csv_encoding", d.Import.CSVEncoding)
	v.SetDefault("import.anomaly_policy", d.Import.AnomalyPolicy)
	v.SetDefault("import.max_upload_bytes", d.Import.MaxUploadBytes)
	v.SetDefault("import.counterpart_aliases_file", d.Import.CounterpartAliasesFile)

	v.SetDefault("export.delimiter", d.Export.Delimiter)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if !currencyPattern.MatchString(config.Import.DefaultCurrency) {
		return fmt.Errorf("import.default_currency must be a three-letter ISO 4217 code, got: %s", config.Import.DefaultCurrency)
	}

	if _, err := csvparser.ParseEncoding(config.Import.CSVEncoding); err != nil {
		return fmt.Errorf("invalid import.csv_encoding: %w", err)
	}

	if _, ok := models.ParseAnomalyPolicy(config.Import.AnomalyPolicy); !ok {
		return fmt.Errorf("invalid import.anomaly_policy: %s (must be 'skip', 'fail' or 'flag')", config.Import.AnomalyPolicy)
	}

	if config.Import.MaxUploadBytes <= 0 {
		return fmt.Errorf("import.max_upload_bytes must be positive, got: %d", config.Import.MaxUploadBytes)
	}

	if utf8.RuneCountInString(config.Export.Delimiter) != 1 {
		return fmt.Errorf("export delimiter must be a single character, got: %s", config.Export.Delimiter)
	}

	return nil
}

// AnomalyPolicy returns the validated policy, defaulting to skip.
func (c *Config) AnomalyPolicy() models.AnomalyPolicy {
	policy, ok := models.ParseAnomalyPolicy(c.Import.AnomalyPolicy)
	if !ok {
		return models.AnomalySkip
	}
	return policy
}

// DelimiterRune returns the export delimiter as a rune, defaulting to ','.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Export.Delimiter)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
