// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"

	preview "fjacquet/livro-caixa/internal/common"
	"fjacquet/livro-caixa/internal/container"
	"fjacquet/livro-caixa/internal/fileutils"
	"fjacquet/livro-caixa/internal/logging"
	"fjacquet/livro-caixa/internal/models"
	"fjacquet/livro-caixa/internal/parsererror"
)

// Request describes one file to import.
type Request struct {
	InputFile   string
	OutputFile  string
	ContentType string
	Format      string
}

// ReadUpload loads the input file within the configured upload limit.
func ReadUpload(c *container.Container, inputFile, contentType string) (models.Upload, error) {
	return fileutils.ReadUpload(inputFile, contentType, c.GetConfig().Import.MaxUploadBytes)
}

// ProcessFile parses one statement and writes its preview to OutputFile, or to stdout
// when OutputFile is empty.
func ProcessFile(c *container.Container, req Request, stdout io.Writer) (*models.ParsedExtract, error) {
	logger := c.GetLogger().WithFields(logging.F(logging.FieldInputFile, req.InputFile))

	upload, err := ReadUpload(c, req.InputFile, req.ContentType)
	if err != nil {
		return nil, err
	}

	extract, err := c.GetService().Parse(upload)
	if err != nil {
		logger.Error("Import failed",
			logging.F(logging.FieldCategory, parsererror.CategoryOf(err)),
			logging.F(logging.FieldError, err.Error()))
		return nil, err
	}

	if req.OutputFile == "" {
		if err := c.GetExporter().Write(stdout, extract, req.Format); err != nil {
			return nil, err
		}
		return extract, nil
	}

	if err := c.GetExporter().WriteFile(req.OutputFile, extract, req.Format); err != nil {
		return nil, fmt.Errorf("failed to write preview: %w", err)
	}
	return extract, nil
}

// BatchResult summarizes a directory import.
type BatchResult struct {
	Processed int
	Failed    int
}

// ProcessDirectory imports every file of inputDir into outputDir. A failing file is
// logged and counted; it does not stop the batch.
func ProcessDirectory(c *container.Container, inputDir, outputDir, format string) (BatchResult, error) {
	logger := c.GetLogger()
	var result BatchResult

	files, err := fileutils.ListStatementFiles(inputDir)
	if err != nil {
		return result, err
	}
	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return result, err
	}

	if len(files) == 0 {
		logger.Warn("No files found in input directory", logging.F(logging.FieldInputFile, inputDir))
		return result, nil
	}

	for _, file := range files {
		req := Request{
			InputFile:  file,
			OutputFile: preview.OutputPath(outputDir, file, format),
			Format:     format,
		}
		if _, err := ProcessFile(c, req, io.Discard); err != nil {
			result.Failed++
			continue
		}
		result.Processed++
	}

	logger.Info("Batch import finished",
		logging.F(logging.FieldCount, result.Processed),
		logging.F(logging.FieldSkipped, result.Failed))
	return result, nil
}
