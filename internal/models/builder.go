package models

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Classification is what the classifiers derive from a description and an amount.
type Classification struct {
	Counterpart   string
	PaymentMethod PaymentMethod
	Movement      Movement
}

// TransactionBuilder assembles a ParsedTransaction and checks it before handing it out,
// so partially-validated rows never leave a parser.
type TransactionBuilder struct {
	tx  ParsedTransaction
	err error
}

// NewTransactionBuilder starts a transaction with the placeholder fields set.
func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{
		tx: ParsedTransaction{
			Amount:         decimal.Zero,
			Counterpart:    NotIdentified,
			ProductService: NotIdentified,
			PaymentMethod:  PaymentOther,
			Movement:       MovementIncome,
			Raw:            map[string]string{},
		},
	}
}

// WithDate sets the ISO date. An empty date is accepted only when flagged as an anomaly.
func (b *TransactionBuilder) WithDate(date string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	if date != "" && !isoDatePattern.MatchString(date) {
		b.err = fmt.Errorf("date %q is not YYYY-MM-DD", date)
		return b
	}
	b.tx.Date = date
	return b
}

func (b *TransactionBuilder) WithAmount(amount decimal.Decimal) *TransactionBuilder {
	b.tx.Amount = amount
	return b
}

func (b *TransactionBuilder) WithDescription(description string) *TransactionBuilder {
	b.tx.Description = description
	return b
}

func (b *TransactionBuilder) WithReference(reference string) *TransactionBuilder {
	b.tx.Reference = reference
	return b
}

// WithClassification copies the classifier output. Empty values keep the placeholders.
func (b *TransactionBuilder) WithClassification(c Classification) *TransactionBuilder {
	if c.Counterpart != "" {
		b.tx.Counterpart = c.Counterpart
	}
	if c.PaymentMethod != "" {
		b.tx.PaymentMethod = c.PaymentMethod
	}
	if c.Movement != "" {
		b.tx.Movement = c.Movement
	}
	return b
}

// WithRaw records a format-specific debug value.
func (b *TransactionBuilder) WithRaw(key, value string) *TransactionBuilder {
	b.tx.Raw[key] = value
	return b
}

// WithAnomaly marks the row as kept despite an unreadable field.
func (b *TransactionBuilder) WithAnomaly(anomaly string) *TransactionBuilder {
	b.tx.Anomalies = append(b.tx.Anomalies, anomaly)
	return b
}

// Build returns the transaction or the first error met while building it.
func (b *TransactionBuilder) Build() (ParsedTransaction, error) {
	if b.err != nil {
		return ParsedTransaction{}, b.err
	}
	if b.tx.Date == "" && !b.hasAnomaly(AnomalyInvalidDate) {
		return ParsedTransaction{}, errors.New("transaction has no date")
	}
	return b.tx, nil
}

func (b *TransactionBuilder) hasAnomaly(anomaly string) bool {
	for _, a := range b.tx.Anomalies {
		if a == anomaly {
			return true
		}
	}
	return false
}
