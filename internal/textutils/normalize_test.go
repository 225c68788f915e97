package textutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  PIX   RECEBIDO  ", "PIX RECEBIDO"},
		{"PAGTO\tBOLETO\r\nLOJA", "PAGTO BOLETO LOJA"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, NormalizeWhitespace(tc.input), "input %q", tc.input)
	}
}

func TestStripObfuscationMarks(t *testing.T) {
	assert.Equal(t, ".456.789-", StripObfuscationMarks(" ***.456.789-** "))
	assert.Equal(t, "Conta 1234", StripObfuscationMarks("Conta ••••1234"))
	assert.Equal(t, "sem marcas", StripObfuscationMarks("sem marcas"))
}

func TestNormalizeForMatching(t *testing.T) {
	assert.Equal(t, "pagamento credito", NormalizeForMatching("Pagamento CRÉDITO"))
	assert.Equal(t, "debito automatico", NormalizeForMatching("Débito Automático"))
	assert.Equal(t, "acao cao", NormalizeForMatching("AÇÃO ção"))
}

func TestCleanName(t *testing.T) {
	assert.Equal(t, "Joao Silva", CleanName("Joao Silva 123"))
	assert.Equal(t, "D'Ávila Com. Ltda-ME", CleanName("D'Ávila Com. Ltda-ME #42"))
	assert.Equal(t, "", CleanName("12/34"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Ação", Truncate("Ação rápida", 4))
	assert.Equal(t, "curto", Truncate("curto", 80))
}

func TestContainsLetter(t *testing.T) {
	assert.True(t, ContainsLetter("123 a"))
	assert.True(t, ContainsLetter("É"))
	assert.False(t, ContainsLetter("123.456-78"))
}
