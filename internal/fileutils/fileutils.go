// Package fileutils provides the file operations behind the CLI commands.
package fileutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fjacquet/livro-caixa/internal/models"
)

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// ReadUpload loads a statement file into an Upload. At most maxBytes+1 bytes are read so
// an oversized file is still rejected by the size check without being fully buffered.
// A non-positive maxBytes reads the whole file.
func ReadUpload(filePath, contentType string, maxBytes int64) (models.Upload, error) {
	if !FileExists(filePath) {
		return models.Upload{}, fmt.Errorf("file does not exist: %s", filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return models.Upload{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var reader io.Reader = file
	if maxBytes > 0 {
		reader = io.LimitReader(file, maxBytes+1)
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return models.Upload{}, fmt.Errorf("failed to read file: %w", err)
	}

	return models.Upload{
		Filename:    filepath.Base(filePath),
		ContentType: contentType,
		Content:     content,
	}, nil
}

// ListStatementFiles returns the regular, non-hidden files directly inside dirPath,
// sorted by name. Subdirectories are not walked.
func ListStatementFiles(dirPath string) ([]string, error) {
	if !DirectoryExists(dirPath) {
		return nil, fmt.Errorf("directory does not exist: %s", dirPath)
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		files = append(files, filepath.Join(dirPath, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}
