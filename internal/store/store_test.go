package store

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/livro-caixa/internal/classifier"
	"fjacquet/livro-caixa/internal/logging"
	"fjacquet/livro-caixa/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err)
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	testFile := filepath.Join(dir, "counterparts.yaml")
	writeFile(t, testFile, "aliases: {}")

	s := NewAliasStore("", nil)

	file, err := s.FindConfigFile(testFile)
	assert.NoError(t, err)
	assert.Equal(t, testFile, file)

	_, err = s.FindConfigFile(filepath.Join(dir, "nonexistent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_DocumentedLayout(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "counterparts.yaml")
	writeFile(t, file, `aliases:
  "João  Silva": "João Silva ME"
  padaria central: Padaria Central Ltda
  "": ignored
`)

	logger := logging.NewMockLogger()
	table, err := NewAliasStore(file, logger).Load()
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	assert.True(t, logger.HasEntry("INFO", "Loaded counterpart aliases"))

	display, ok := table.Lookup("JOAO SILVA")
	assert.True(t, ok)
	assert.Equal(t, "João Silva ME", display)

	display, ok = table.Lookup("Padaria  Central")
	assert.True(t, ok)
	assert.Equal(t, "Padaria Central Ltda", display)

	_, ok = table.Lookup("Mercado")
	assert.False(t, ok)
}

func TestLoad_FlatMap(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "flat.yaml")
	writeFile(t, file, "fornecedor x: Fornecedor X S.A.\n")

	table, err := NewAliasStore(file, nil).Load()
	require.NoError(t, err)
	display, ok := table.Lookup("Fornecedor X")
	assert.True(t, ok)
	assert.Equal(t, "Fornecedor X S.A.", display)
}

func TestLoad_MissingFile(t *testing.T) {
	logger := logging.NewMockLogger()
	table, err := NewAliasStore(filepath.Join(t.TempDir(), "missing.yaml"), logger).Load()
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	assert.True(t, logger.HasEntry("WARN", "Counterpart aliases file not found"))
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "broken.yaml")
	writeFile(t, file, "aliases: [unclosed\n")

	_, err := NewAliasStore(file, nil).Load()
	assert.Error(t, err)
}

func TestNilTable(t *testing.T) {
	var table *AliasTable
	_, ok := table.Lookup("x")
	assert.False(t, ok)
	assert.Equal(t, 0, table.Len())
}

func TestAliasTable_WithClassifier(t *testing.T) {
	table := NewAliasTable(map[string]string{"joao silva": "João Silva ME"})
	c := classifier.New(table)

	got := c.Classify("PIX RECEBIDO - Joao Silva", decimal.NewFromInt(100))
	assert.Equal(t, "João Silva ME", got.Counterpart)
	assert.Equal(t, models.PaymentPIX, got.PaymentMethod)

	got = c.Classify("PIX RECEBIDO - Maria", decimal.NewFromInt(100))
	assert.Equal(t, "Maria", got.Counterpart)
}
