package common

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/livro-caixa/internal/logging"
	"fjacquet/livro-caixa/internal/models"

	"gopkg.in/yaml.v3"
)

// Output formats of a preview.
const (
	OutputJSON = "json"
	OutputCSV  = "csv"
	OutputYAML = "yaml"
)

// Exporter writes previews in one of the output formats.
type Exporter struct {
	Delimiter rune
	logger    logging.Logger
}

// NewExporter creates an Exporter. A zero delimiter means ','.
func NewExporter(delimiter rune, logger logging.Logger) *Exporter {
	if delimiter == 0 {
		delimiter = ','
	}
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Exporter{Delimiter: delimiter, logger: logger}
}

// Write renders the extract to w.
func (e *Exporter) Write(w io.Writer, extract *models.ParsedExtract, format string) error {
	switch format {
	case OutputJSON, "":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		if err := encoder.Encode(extract); err != nil {
			return fmt.Errorf("error writing JSON preview: %w", err)
		}
		return nil
	case OutputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(extract); err != nil {
			return fmt.Errorf("error writing YAML preview: %w", err)
		}
		return encoder.Close()
	case OutputCSV:
		return WriteCSV(w, extract, e.Delimiter, e.logger)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteFile renders the extract into path, creating parent directories.
func (e *Exporter) WriteFile(path string, extract *models.ParsedExtract, format string) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("error closing output file: %w", closeErr)
		}
	}()

	if err := e.Write(file, extract, format); err != nil {
		return err
	}

	e.logger.Info("Wrote preview",
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldFormat, format),
		logging.F(logging.FieldCount, len(extract.Transactions)))
	return nil
}

// OutputPath derives the preview file name for an input file: "extrato.ofx" becomes
// "extrato.ofx.json", so a CSV and an OFX export of the same month do not collide.
func OutputPath(dir, inputFile, format string) string {
	if format == "" {
		format = OutputJSON
	}
	return filepath.Join(dir, filepath.Base(inputFile)+"."+format)
}
