package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionBuilder_Defaults(t *testing.T) {
	tx, err := NewTransactionBuilder().
		WithDate("2024-03-05").
		WithAmount(decimal.RequireFromString("1500.00")).
		WithDescription("PIX RECEBIDO - Joao Silva").
		WithReference("ABC123").
		Build()

	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", tx.Date)
	assert.True(t, decimal.NewFromInt(1500).Equal(tx.Amount))
	assert.Equal(t, NotIdentified, tx.Counterpart)
	assert.Equal(t, NotIdentified, tx.ProductService)
	assert.Equal(t, PaymentOther, tx.PaymentMethod)
	assert.False(t, tx.HasAnomalies())
}

func TestTransactionBuilder_Classification(t *testing.T) {
	tx, err := NewTransactionBuilder().
		WithDate("2024-01-15").
		WithAmount(decimal.RequireFromString("-45.90")).
		WithClassification(Classification{
			Counterpart:   "Fornecedor X",
			PaymentMethod: PaymentBankSlip,
			Movement:      MovementExpense,
		}).
		WithRaw("fitid", "99887766").
		Build()

	require.NoError(t, err)
	assert.Equal(t, "Fornecedor X", tx.Counterpart)
	assert.Equal(t, PaymentBankSlip, tx.PaymentMethod)
	assert.Equal(t, MovementExpense, tx.Movement)
	assert.Equal(t, "99887766", tx.Raw["fitid"])
	assert.False(t, tx.IsIncome())
}

func TestTransactionBuilder_Errors(t *testing.T) {
	_, err := NewTransactionBuilder().WithDate("05/03/2024").Build()
	assert.Error(t, err)

	_, err = NewTransactionBuilder().Build()
	assert.EqualError(t, err, "transaction has no date")
}

func TestTransactionBuilder_FlaggedDate(t *testing.T) {
	tx, err := NewTransactionBuilder().
		WithDate("").
		WithAnomaly(AnomalyInvalidDate).
		Build()

	require.NoError(t, err)
	assert.Empty(t, tx.Date)
	assert.Equal(t, []string{AnomalyInvalidDate}, tx.Anomalies)
}

func TestParseAnomalyPolicy(t *testing.T) {
	for _, name := range []string{"skip", "fail", "flag"} {
		p, ok := ParseAnomalyPolicy(name)
		assert.True(t, ok, name)
		assert.Equal(t, AnomalyPolicy(name), p)
	}
	_, ok := ParseAnomalyPolicy("ignore")
	assert.False(t, ok)
}

func TestAccount_IsEmpty(t *testing.T) {
	assert.True(t, Account{}.IsEmpty())
	assert.False(t, Account{AccountID: "12345-6"}.IsEmpty())
}
