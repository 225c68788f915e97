package config

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/livro-caixa/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into dir for the rest of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(originalDir))
	})
}

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	config, err := InitializeConfig("")
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "BRL", config.Import.DefaultCurrency)
	assert.Equal(t, "latin1", config.Import.CSVEncoding)
	assert.Equal(t, "skip", config.Import.AnomalyPolicy)
	assert.Equal(t, int64(10485760), config.Import.MaxUploadBytes)
	assert.Equal(t, "", config.Import.CounterpartAliasesFile)
	assert.Equal(t, ",", config.Export.Delimiter)
	assert.Equal(t, DefaultConfig(), config)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	testEnvVars := map[string]string{
		"CAIXA_LOG_LEVEL":                       "debug",
		"CAIXA_LOG_FORMAT":                      "json",
		"CAIXA_IMPORT_ANOMALY_POLICY":           "flag",
		"CAIXA_IMPORT_CSV_ENCODING":             "utf-8",
		"CAIXA_IMPORT_MAX_UPLOAD_BYTES":         "2048",
		"CAIXA_IMPORT_COUNTERPART_ALIASES_FILE": "aliases.yaml",
		"CAIXA_EXPORT_DELIMITER":                ";",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig("")
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, models.AnomalyFlag, config.AnomalyPolicy())
	assert.Equal(t, "utf-8", config.Import.CSVEncoding)
	assert.Equal(t, int64(2048), config.Import.MaxUploadBytes)
	assert.Equal(t, "aliases.yaml", config.Import.CounterpartAliasesFile)
	assert.Equal(t, ';', config.DelimiterRune())
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configContent := `
log:
  level: "warn"
import:
  default_currency: "USD"
  anomaly_policy: "fail"
export:
  delimiter: "|"
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0600))
	chdir(t, tempDir)

	config, err := InitializeConfig("")
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "USD", config.Import.DefaultCurrency)
	assert.Equal(t, models.AnomalyFail, config.AnomalyPolicy())
	assert.Equal(t, "|", config.Export.Delimiter)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "caixa.yaml")
	configContent := `
log:
  level: "warn"
import:
  anomaly_policy: "fail"
`
	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0600))

	t.Setenv("CAIXA_LOG_LEVEL", "error")

	config, err := InitializeConfig(configFile)
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)
	assert.Equal(t, "fail", config.Import.AnomalyPolicy)
}

func TestInitializeConfig_ExplicitFileMissing(t *testing.T) {
	clearTestEnvVars(t)
	_, err := InitializeConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInitializeConfig_InvalidEnv(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())
	t.Setenv("CAIXA_IMPORT_ANOMALY_POLICY", "ignore")

	_, err := InitializeConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid import.anomaly_policy")
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name:         "invalid log level",
			modifyConfig: func(c *Config) { c.Log.Level = "invalid" },
			expectError:  "invalid log level",
		},
		{
			name:         "invalid log format",
			modifyConfig: func(c *Config) { c.Log.Format = "invalid" },
			expectError:  "invalid log format",
		},
		{
			name:         "lowercase currency",
			modifyConfig: func(c *Config) { c.Import.DefaultCurrency = "brl" },
			expectError:  "import.default_currency must be a three-letter ISO 4217 code",
		},
		{
			name:         "unknown encoding",
			modifyConfig: func(c *Config) { c.Import.CSVEncoding = "utf-16" },
			expectError:  "invalid import.csv_encoding",
		},
		{
			name:         "unknown anomaly policy",
			modifyConfig: func(c *Config) { c.Import.AnomalyPolicy = "ignore" },
			expectError:  "invalid import.anomaly_policy",
		},
		{
			name:         "zero upload limit",
			modifyConfig: func(c *Config) { c.Import.MaxUploadBytes = 0 },
			expectError:  "import.max_upload_bytes must be positive",
		},
		{
			name:         "multi-character delimiter",
			modifyConfig: func(c *Config) { c.Export.Delimiter = "abc" },
			expectError:  "export delimiter must be a single character",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			require.NoError(t, validateConfig(config))

			tt.modifyConfig(config)
			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	config := DefaultConfig()
	logger := ConfigureLoggingFromConfig(config)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	config.Log = LogConfig{Level: "debug", Format: "json"}
	logger = ConfigureLoggingFromConfig(config)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestLoadEnv(t *testing.T) {
	clearTestEnvVars(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CAIXA_LOG_LEVEL=warn\n"), 0600))
	chdir(t, dir)

	assert.Equal(t, ".env", LoadEnv(nil))
	assert.Equal(t, "warn", os.Getenv("CAIXA_LOG_LEVEL"))
}

func TestLoadEnv_NoFile(t *testing.T) {
	chdir(t, t.TempDir())
	assert.Equal(t, "", LoadEnv(logrus.New()))
}

// clearTestEnvVars unsets the variables the tests read and restores them afterwards.
// HOME points to an empty directory so a developer's own config is never picked up.
func clearTestEnvVars(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	envVars := []string{
		"CAIXA_LOG_LEVEL",
		"CAIXA_LOG_FORMAT",
		"CAIXA_IMPORT_DEFAULT_CURRENCY",
		"CAIXA_IMPORT_CSV_ENCODING",
		"CAIXA_IMPORT_ANOMALY_POLICY",
		"CAIXA_IMPORT_MAX_UPLOAD_BYTES",
		"CAIXA_IMPORT_COUNTERPART_ALIASES_FILE",
		"CAIXA_EXPORT_DELIMITER",
	}

	for _, envVar := range envVars {
		t.Setenv(envVar, "")
		require.NoError(t, os.Unsetenv(envVar))
	}
}
