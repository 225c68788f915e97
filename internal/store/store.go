// Package store loads the counterpart alias table from YAML.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/livro-caixa/internal/logging"
	"fjacquet/livro-caixa/internal/textutils"

	"gopkg.in/yaml.v3"
)

// DefaultAliasesFile is looked up when no file is configured.
const DefaultAliasesFile = "counterparts.yaml"

// aliasFile is the documented layout:
//
//	aliases:
//	  joao silva: João Silva ME
//	  padaria central: Padaria Central Ltda
type aliasFile struct {
	Aliases map[string]string `yaml:"aliases"`
}

// AliasTable maps a normalized counterpart name to its preferred display name.
// It is read-only once loaded and safe for concurrent use.
type AliasTable struct {
	aliases map[string]string
}

// NewAliasTable builds a table from raw names; keys are normalized for matching.
func NewAliasTable(aliases map[string]string) *AliasTable {
	table := &AliasTable{aliases: make(map[string]string, len(aliases))}
	for name, display := range aliases {
		key := aliasKey(name)
		if key == "" || display == "" {
			continue
		}
		table.aliases[key] = display
	}
	return table
}

// Lookup returns the display name for an extracted counterpart, ignoring case, accents
// and repeated spaces.
func (t *AliasTable) Lookup(counterpart string) (string, bool) {
	if t == nil {
		return "", false
	}
	display, ok := t.aliases[aliasKey(counterpart)]
	return display, ok
}

// Len is the number of aliases in the table.
func (t *AliasTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.aliases)
}

func aliasKey(name string) string {
	return textutils.NormalizeWhitespace(textutils.NormalizeForMatching(name))
}

// AliasStore reads alias tables from disk.
type AliasStore struct {
	File   string
	logger logging.Logger
}

// NewAliasStore creates a store for the given file. An empty name means DefaultAliasesFile.
func NewAliasStore(file string, logger logging.Logger) *AliasStore {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &AliasStore{File: file, logger: logger}
}

// FindConfigFile looks for a file in the current directory, ./config and ~/.livro-caixa.
func (s *AliasStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".livro-caixa", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// Load reads the alias table. A missing file yields an empty table: aliases are optional.
func (s *AliasStore) Load() (*AliasTable, error) {
	filename := s.File
	if filename == "" {
		filename = DefaultAliasesFile
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if s.File != "" {
				s.logger.Warn("Counterpart aliases file not found", logging.F(logging.FieldFile, filename))
			}
			return NewAliasTable(nil), nil
		}
		return nil, fmt.Errorf("error resolving aliases file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading aliases file: %w", err)
	}

	aliases, err := parseAliases(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing aliases file %s: %w", filePath, err)
	}

	table := NewAliasTable(aliases)
	s.logger.Info("Loaded counterpart aliases",
		logging.F(logging.FieldFile, filePath),
		logging.F(logging.FieldCount, table.Len()))
	return table, nil
}

// parseAliases accepts the documented "aliases:" layout and, as a fallback, a flat map.
func parseAliases(data []byte) (map[string]string, error) {
	var file aliasFile
	if err := yaml.Unmarshal(data, &file); err == nil && len(file.Aliases) > 0 {
		return file.Aliases, nil
	}

	var flat map[string]string
	if err := yaml.Unmarshal(data, &flat); err != nil {
		return nil, err
	}
	return flat, nil
}
