package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are numbers in the JSON preview, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Upload is a statement file as received from the caller, fully buffered in memory.
type Upload struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Account holds the OFX BANKACCTFROM identifiers. Any of them may be missing.
type Account struct {
	BankID    string `json:"bankId,omitempty" yaml:"bank_id,omitempty"`
	BranchID  string `json:"branchId,omitempty" yaml:"branch_id,omitempty"`
	AccountID string `json:"accountId,omitempty" yaml:"account_id,omitempty"`
	Type      string `json:"type,omitempty" yaml:"type,omitempty"`
}

// IsEmpty reports whether no identifier was found.
func (a Account) IsEmpty() bool {
	return a.BankID == "" && a.BranchID == "" && a.AccountID == "" && a.Type == ""
}

// ParsedExtract is the result of parsing one statement file.
// Transactions keep the order of the source file.
type ParsedExtract struct {
	Filename     string              `json:"filename" yaml:"filename"`
	Format       Format              `json:"format" yaml:"format"`
	Currency     string              `json:"currency,omitempty" yaml:"currency,omitempty"`
	Account      *Account            `json:"account,omitempty" yaml:"account,omitempty"`
	Transactions []ParsedTransaction `json:"transactions" yaml:"transactions"`
}

// ParsedTransaction is a ledger-entry candidate awaiting review.
//
// Date is YYYY-MM-DD, or empty when the source date could not be read (only possible
// under AnomalyFlag). A positive Amount is an inflow, a negative one an outflow.
type ParsedTransaction struct {
	Date           string            `json:"date" yaml:"date"`
	Amount         decimal.Decimal   `json:"amount" yaml:"amount"`
	Description    string            `json:"description" yaml:"description"`
	Reference      string            `json:"reference" yaml:"reference"`
	Counterpart    string            `json:"counterpart" yaml:"counterpart"`
	ProductService string            `json:"productService" yaml:"product_service"`
	PaymentMethod  PaymentMethod     `json:"paymentMethod" yaml:"payment_method"`
	Movement       Movement          `json:"movement" yaml:"movement"`
	Raw            map[string]string `json:"raw,omitempty" yaml:"raw,omitempty"`
	Anomalies      []string          `json:"anomalies,omitempty" yaml:"anomalies,omitempty"`
}

// HasAnomalies reports whether the row was kept despite unreadable fields.
func (t ParsedTransaction) HasAnomalies() bool {
	return len(t.Anomalies) > 0
}

// IsIncome reports whether the amount is an inflow.
func (t ParsedTransaction) IsIncome() bool {
	return !t.Amount.IsNegative()
}
