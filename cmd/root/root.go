// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/livro-caixa/internal/config"
	"fjacquet/livro-caixa/internal/container"
	"fjacquet/livro-caixa/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input       string
	Output      string
	ContentType string
	ConfigFile  string
	LogLevel    string
	LogFormat   string
}

var (
	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "livro-caixa",
		Short: "Import bank statements (CSV, OFX) into livro-caixa ledger previews.",
		Long: `livro-caixa reads bank statements exported as CSV or OFX and turns them into
ledger-entry candidates for review: date, amount, counterpart, payment method and
movement are derived for every transaction. Nothing is persisted.

PDF statements are detected and rejected with a dedicated error.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initContainer()
		},
	}

	// SharedFlags are the persistent flags accessible to all commands
	SharedFlags = CommonFlags{}

	appContainer *container.Container
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file (directory for batch)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (directory for batch); stdout when empty")
	Cmd.PersistentFlags().StringVar(&SharedFlags.ContentType, "content-type", "", "Declared content type of the input, e.g. text/csv")
	Cmd.PersistentFlags().StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default: config.yaml in $HOME/.livro-caixa, .livro-caixa or .)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format (text, json)")
}

// initContainer loads .env and the configuration, applies flag overrides and wires
// the application.
func initContainer() error {
	config.LoadEnv(nil)

	cfg, err := config.InitializeConfig(SharedFlags.ConfigFile)
	if err != nil {
		return err
	}
	if SharedFlags.LogLevel != "" {
		cfg.Log.Level = SharedFlags.LogLevel
	}
	if SharedFlags.LogFormat != "" {
		cfg.Log.Format = SharedFlags.LogFormat
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	appContainer = c
	return nil
}

// GetContainer returns the application container, nil before the root pre-run.
func GetContainer() *container.Container {
	return appContainer
}

// SetContainer replaces the application container. Used by tests.
func SetContainer(c *container.Container) {
	appContainer = c
}

// GetLogger returns the container's logger, or a default logrus logger before initialization.
func GetLogger() logging.Logger {
	if appContainer != nil {
		return appContainer.GetLogger()
	}
	return logging.NewLogrusAdapter("info", "text")
}
