// Package container provides dependency injection for the livro-caixa application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/livro-caixa/internal/classifier"
	"fjacquet/livro-caixa/internal/common"
	"fjacquet/livro-caixa/internal/config"
	"fjacquet/livro-caixa/internal/factory"
	"fjacquet/livro-caixa/internal/importer"
	"fjacquet/livro-caixa/internal/logging"
	"fjacquet/livro-caixa/internal/parser"
	"fjacquet/livro-caixa/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: fields are private and only reachable through
// getters.
type Container struct {
	logger   logging.Logger
	config   *config.Config
	aliases  *store.AliasTable
	service  *importer.Service
	exporter *common.Exporter
}

// NewContainer creates and wires all application dependencies with a logrus logger
// configured from cfg.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	logger := logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))
	return NewContainerWithLogger(cfg, logger)
}

// NewContainerWithLogger is NewContainer with an injected logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	aliases, err := store.NewAliasStore(cfg.Import.CounterpartAliasesFile, logger).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load counterpart aliases: %w", err)
	}

	parsers, err := factory.GetParsers(factory.Settings{
		Logger:     logger,
		Classifier: classifier.New(aliases),
		Options: parser.Options{
			DefaultCurrency: cfg.Import.DefaultCurrency,
			AnomalyPolicy:   cfg.AnomalyPolicy(),
		},
		CSVEncoding: cfg.Import.CSVEncoding,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create parsers: %w", err)
	}

	service := importer.NewService(logger, parsers, cfg.Import.MaxUploadBytes)

	logger.Debug("Container initialized",
		logging.F(logging.FieldCount, len(parsers)),
		logging.F(logging.FieldPolicy, cfg.Import.AnomalyPolicy))

	return &Container{
		logger:   logger,
		config:   cfg,
		aliases:  aliases,
		service:  service,
		exporter: common.NewExporter(cfg.DelimiterRune(), logger),
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetService returns the import service.
func (c *Container) GetService() *importer.Service {
	return c.service
}

// GetExporter returns the preview writer.
func (c *Container) GetExporter() *common.Exporter {
	return c.exporter
}

// GetAliases returns the loaded counterpart aliases. It is never nil.
func (c *Container) GetAliases() *store.AliasTable {
	return c.aliases
}
