package classifier

import (
	"strings"

	"fjacquet/livro-caixa/internal/models"
	"fjacquet/livro-caixa/internal/textutils"
)

type paymentRule struct {
	keywords []string
	method   models.PaymentMethod
}

// Checked in order; a description such as "PIX CREDITO" is PIX.
var paymentRules = []paymentRule{
	{[]string{"pix"}, models.PaymentPIX},
	{[]string{"boleto"}, models.PaymentBankSlip},
	{[]string{"credito"}, models.PaymentCreditCard},
	{[]string{"debito"}, models.PaymentDebitCard},
	{[]string{"cheque"}, models.PaymentCheck},
	{[]string{"dinheiro", "saque"}, models.PaymentCash},
}

// InferPaymentMethod looks for payment keywords in the description, ignoring case and accents.
func InferPaymentMethod(description string) models.PaymentMethod {
	normalized := textutils.NormalizeForMatching(description)
	for _, rule := range paymentRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(normalized, keyword) {
				return rule.method
			}
		}
	}
	return models.PaymentOther
}
