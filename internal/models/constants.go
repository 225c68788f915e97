package models

// NotIdentified is the placeholder used when a field cannot be derived from the statement.
const NotIdentified = "Não identificado"

// DefaultCurrency is used when the statement does not declare one.
const DefaultCurrency = "BRL"

// Format identifies the kind of statement file that was uploaded.
type Format string

const (
	FormatCSV         Format = "csv"
	FormatOFX         Format = "ofx"
	FormatPDF         Format = "pdf"
	FormatUnsupported Format = "unsupported"
)

// PaymentMethod is the inferred means of payment of a ledger entry.
type PaymentMethod string

const (
	PaymentPIX        PaymentMethod = "PIX"
	PaymentCash       PaymentMethod = "CASH"
	PaymentBankSlip   PaymentMethod = "BANK_SLIP"
	PaymentCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard  PaymentMethod = "DEBIT_CARD"
	PaymentCheck      PaymentMethod = "CHECK"
	PaymentOther      PaymentMethod = "OTHER"
)

// Movement is the ledger category of an entry.
// Inference only produces MovementIncome and MovementExpense; the other two
// are assigned by the user when reviewing the preview.
type Movement string

const (
	MovementIncome     Movement = "INCOME"
	MovementPurchase   Movement = "PURCHASE"
	MovementExpense    Movement = "EXPENSE"
	MovementWithdrawal Movement = "WITHDRAWAL"
)

// AnomalyPolicy decides what happens to a row whose date or amount cannot be parsed.
type AnomalyPolicy string

const (
	// AnomalySkip drops the row and keeps parsing.
	AnomalySkip AnomalyPolicy = "skip"
	// AnomalyFail aborts the whole parse on the first anomalous row.
	AnomalyFail AnomalyPolicy = "fail"
	// AnomalyFlag keeps the row with zero values and lists the problems in Anomalies.
	AnomalyFlag AnomalyPolicy = "flag"
)

// Anomaly markers stored in ParsedTransaction.Anomalies.
const (
	AnomalyInvalidDate   = "invalid_date"
	AnomalyInvalidAmount = "invalid_amount"
)

// ParseAnomalyPolicy validates a policy name coming from configuration.
func ParseAnomalyPolicy(s string) (AnomalyPolicy, bool) {
	switch AnomalyPolicy(s) {
	case AnomalySkip, AnomalyFail, AnomalyFlag:
		return AnomalyPolicy(s), true
	}
	return "", false
}
