// Package classifier derives counterpart, payment method and movement direction
// from a transaction description and amount.
package classifier

import (
	"fjacquet/livro-caixa/internal/models"

	"github.com/shopspring/decimal"
)

// AliasSource resolves an extracted counterpart to a preferred display name.
type AliasSource interface {
	Lookup(counterpart string) (string, bool)
}

// Classifier applies the heuristics to one transaction at a time. It holds no
// per-call state and is safe for concurrent use.
type Classifier struct {
	aliases AliasSource
}

// New returns a Classifier. aliases may be nil.
func New(aliases AliasSource) *Classifier {
	return &Classifier{aliases: aliases}
}

// Classify runs the three classifiers on a normalized description.
func (c *Classifier) Classify(description string, amount decimal.Decimal) models.Classification {
	counterpart := ExtractCounterpart(description)
	if c != nil && c.aliases != nil && counterpart != models.NotIdentified {
		if alias, ok := c.aliases.Lookup(counterpart); ok {
			counterpart = alias
		}
	}

	return models.Classification{
		Counterpart:   counterpart,
		PaymentMethod: InferPaymentMethod(description),
		Movement:      InferMovement(amount),
	}
}

// InferMovement maps the amount sign to a movement: zero and positive amounts are income.
func InferMovement(amount decimal.Decimal) models.Movement {
	if amount.IsNegative() {
		return models.MovementExpense
	}
	return models.MovementIncome
}
