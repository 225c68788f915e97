package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// LoadEnv loads CAIXA_* variables from a .env file in the current or parent directory,
// without overriding variables already set. It returns the file loaded, or "" when none
// was found.
func LoadEnv(logger *logrus.Logger) string {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	for _, envFile := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			logger.Warnf("Error loading .env file: %v", err)
			return ""
		}
		logger.Debugf("Loaded environment variables from %s", envFile)
		return envFile
	}

	logger.Debug("No .env file found, using environment variables")
	return ""
}

