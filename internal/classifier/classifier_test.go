package classifier

import (
	"strings"
	"testing"

	"fjacquet/livro-caixa/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExtractCounterpart(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    string
	}{
		{"second part", "PIX RECEBIDO - Joao Silva", "Joao Silva"},
		{"skips masked document", "PIX ENVIADO - ***.456.789-** - Maria Souza", "Maria Souza"},
		{"masked document after name", "PIX RECEBIDO - Joao Silva - 123.456", "Joao Silva"},
		{"digits stripped after selection", "BOLETO PAGTO - Fornecedor X 0042", "Fornecedor X"},
		{"falls back to second part", "TED - 123 - 456", models.NotIdentified},
		{"no separator uses description", "TARIFA BANCARIA MENSAL", "TARIFA BANCARIA MENSAL"},
		{"empty description", "   ", models.NotIdentified},
		{"obfuscation marks removed", "COMPRA CARTAO - Padaria •••• Central", "Padaria Central"},
		{"accented names kept", "PIX RECEBIDO - José D'Ávila", "José D'Ávila"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractCounterpart(tc.description))
		})
	}
}

func TestExtractCounterpart_SecondPartFallback(t *testing.T) {
	// Neither part after the first qualifies; the second one is used but has no name left.
	assert.Equal(t, models.NotIdentified, ExtractCounterpart("PAGAMENTO - 111.222.333-44 - 555"))
}

func TestExtractCounterpart_TruncatesLongDescriptions(t *testing.T) {
	long := strings.Repeat("abcdefghij", 10)
	got := ExtractCounterpart(long)
	assert.Len(t, got, 80)
}

func TestInferPaymentMethod(t *testing.T) {
	tests := []struct {
		description string
		expected    models.PaymentMethod
	}{
		{"PIX RECEBIDO - Joao Silva", models.PaymentPIX},
		{"Pagamento de Boleto", models.PaymentBankSlip},
		{"COMPRA CARTÃO CRÉDITO", models.PaymentCreditCard},
		{"Compra Débito Visa", models.PaymentDebitCard},
		{"CHEQUE COMPENSADO 000123", models.PaymentCheck},
		{"Depósito em dinheiro", models.PaymentCash},
		{"SAQUE 24H", models.PaymentCash},
		{"TARIFA MENSAL", models.PaymentOther},
		{"", models.PaymentOther},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, InferPaymentMethod(tc.description), tc.description)
	}
}

func TestInferPaymentMethod_PriorityOrder(t *testing.T) {
	assert.Equal(t, models.PaymentPIX, InferPaymentMethod("PIX CREDITO BOLETO"))
	assert.Equal(t, models.PaymentBankSlip, InferPaymentMethod("BOLETO DEBITO"))
	assert.Equal(t, models.PaymentCreditCard, InferPaymentMethod("ESTORNO CREDITO DEBITO"))
	assert.Equal(t, models.PaymentDebitCard, InferPaymentMethod("DEBITO CHEQUE"))
	assert.Equal(t, models.PaymentCheck, InferPaymentMethod("CHEQUE SAQUE"))
}

func TestInferMovement(t *testing.T) {
	assert.Equal(t, models.MovementIncome, InferMovement(decimal.NewFromInt(10)))
	assert.Equal(t, models.MovementIncome, InferMovement(decimal.Zero))
	assert.Equal(t, models.MovementExpense, InferMovement(decimal.RequireFromString("-0.01")))
}

type staticAliases map[string]string

func (s staticAliases) Lookup(counterpart string) (string, bool) {
	alias, ok := s[counterpart]
	return alias, ok
}

func TestClassifier_Classify(t *testing.T) {
	c := New(staticAliases{"Joao Silva": "João Silva ME"})

	got := c.Classify("PIX RECEBIDO - Joao Silva", decimal.NewFromInt(1500))
	assert.Equal(t, models.Classification{
		Counterpart:   "João Silva ME",
		PaymentMethod: models.PaymentPIX,
		Movement:      models.MovementIncome,
	}, got)

	got = c.Classify("BOLETO PAGTO - Fornecedor X", decimal.RequireFromString("-45.90"))
	assert.Equal(t, "Fornecedor X", got.Counterpart)
	assert.Equal(t, models.PaymentBankSlip, got.PaymentMethod)
	assert.Equal(t, models.MovementExpense, got.Movement)
}

func TestClassifier_NilAliases(t *testing.T) {
	got := New(nil).Classify("SAQUE 24H", decimal.RequireFromString("-100"))
	assert.Equal(t, "SAQUE H", got.Counterpart)
	assert.Equal(t, models.PaymentCash, got.PaymentMethod)
}
