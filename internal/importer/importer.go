// Package importer is the entry point of a statement import: it checks the upload,
// detects its format and hands it to the matching parser.
package importer

import (
	"fjacquet/livro-caixa/internal/detector"
	"fjacquet/livro-caixa/internal/logging"
	"fjacquet/livro-caixa/internal/models"
	"fjacquet/livro-caixa/internal/parser"
	"fjacquet/livro-caixa/internal/parsererror"
	"fjacquet/livro-caixa/internal/validation"
)

const pdfNotSupportedMsg = "PDF statements are not yet supported; export the statement as CSV or OFX"

// Service parses uploads. It holds no per-call state and is safe for concurrent use.
type Service struct {
	logger         logging.Logger
	parsers        map[models.Format]parser.Parser
	maxUploadBytes int64
}

// NewService creates a Service dispatching to parsers by format. A non-positive
// maxUploadBytes disables the size check.
func NewService(logger logging.Logger, parsers map[models.Format]parser.Parser, maxUploadBytes int64) *Service {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	registry := make(map[models.Format]parser.Parser, len(parsers))
	for format, p := range parsers {
		registry[format] = p
	}
	return &Service{logger: logger, parsers: registry, maxUploadBytes: maxUploadBytes}
}

// Detect returns the format the upload would be parsed as.
func (s *Service) Detect(upload models.Upload) models.Format {
	return detector.Detect(upload)
}

// Parse turns an upload into a preview. Every failure is a *parsererror.ImportError;
// no partial result is returned with it.
func (s *Service) Parse(upload models.Upload) (*models.ParsedExtract, error) {
	logger := s.logger.WithFields(
		logging.F(logging.FieldFile, upload.Filename),
		logging.F(logging.FieldContentType, upload.ContentType))

	if err := validation.ValidateUploadSize(upload, s.maxUploadBytes); err != nil {
		logger.WithError(err).Warn("Upload rejected")
		return nil, err
	}

	format := s.Detect(upload)
	logger.Debug("Detected statement format", logging.F(logging.FieldFormat, format))

	switch format {
	case models.FormatPDF:
		err := parsererror.New(parsererror.CategoryUnsupportedFormatPDF, upload.Filename, pdfNotSupportedMsg, nil)
		logger.Warn("PDF statement rejected")
		return nil, err
	case models.FormatUnsupported:
		err := parsererror.New(parsererror.CategoryUnsupportedFormat, upload.Filename, "unsupported file format", nil)
		logger.Warn("Unsupported statement format")
		return nil, err
	}

	p, ok := s.parsers[format]
	if !ok {
		return nil, parsererror.New(parsererror.CategoryUnsupportedFormat, upload.Filename,
			"no parser registered for format "+string(format), nil)
	}

	if err := validation.ValidateTextContent(upload, format); err != nil {
		logger.WithError(err).Warn("Upload rejected")
		return nil, err
	}

	extract, err := p.Parse(upload)
	if err != nil {
		logger.WithError(err).Warn("Statement import failed",
			logging.F(logging.FieldFormat, format),
			logging.F(logging.FieldCategory, parsererror.CategoryOf(err)))
		return nil, err
	}

	logger.Info("Statement imported",
		logging.F(logging.FieldFormat, extract.Format),
		logging.F(logging.FieldCount, len(extract.Transactions)))
	return extract, nil
}
