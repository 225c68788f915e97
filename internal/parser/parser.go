package parser

import (
	"fjacquet/livro-caixa/internal/models"
)

// Parser converts one uploaded statement into a preview envelope.
//
// Implementations are synchronous, keep no reference to the upload after returning and
// return a *parsererror.ImportError for every fatal failure.
type Parser interface {
	Parse(upload models.Upload) (*models.ParsedExtract, error)
}

// Options are the per-import settings shared by every parser.
type Options struct {
	// DefaultCurrency is used when the statement does not declare one.
	DefaultCurrency string
	// AnomalyPolicy decides what happens to a row whose date or amount cannot be read.
	AnomalyPolicy models.AnomalyPolicy
}

// DefaultOptions returns BRL with the skip policy.
func DefaultOptions() Options {
	return Options{
		DefaultCurrency: models.DefaultCurrency,
		AnomalyPolicy:   models.AnomalySkip,
	}
}

func (o Options) withDefaults() Options {
	if o.DefaultCurrency == "" {
		o.DefaultCurrency = models.DefaultCurrency
	}
	if o.AnomalyPolicy == "" {
		o.AnomalyPolicy = models.AnomalySkip
	}
	return o
}
