package factory

import (
	"fmt"

	"fjacquet/livro-caixa/internal/classifier"
	"fjacquet/livro-caixa/internal/csvparser"
	"fjacquet/livro-caixa/internal/logging"
	"fjacquet/livro-caixa/internal/models"
	"fjacquet/livro-caixa/internal/ofxparser"
	"fjacquet/livro-caixa/internal/parser"
)

// Settings carries the dependencies shared by every parser.
type Settings struct {
	Logger      logging.Logger
	Classifier  *classifier.Classifier
	Options     parser.Options
	CSVEncoding string
}

// SupportedFormats lists the formats that have a parser, in the order they are registered.
var SupportedFormats = []models.Format{models.FormatCSV, models.FormatOFX}

// GetParser returns a new parser for the given format.
func GetParser(format models.Format, settings Settings) (parser.Parser, error) {
	switch format {
	case models.FormatCSV:
		p, err := csvparser.New(settings.Logger, settings.Classifier, settings.Options, settings.CSVEncoding)
		if err != nil {
			return nil, err
		}
		return p, nil
	case models.FormatOFX:
		return ofxparser.New(settings.Logger, settings.Classifier, settings.Options), nil
	default:
		return nil, fmt.Errorf("no parser for format: %s", format)
	}
}

// GetParsers builds one parser per supported format.
func GetParsers(settings Settings) (map[models.Format]parser.Parser, error) {
	parsers := make(map[models.Format]parser.Parser, len(SupportedFormats))
	for _, format := range SupportedFormats {
		p, err := GetParser(format, settings)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s parser: %w", format, err)
		}
		parsers[format] = p
	}
	return parsers, nil
}
