package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Advance is a partial payment recorded against a charge document before or
// alongside final settlement. Amount may be signed for reversible entries.
type Advance struct {
	ID string `json:"id"`
	// BankTransactionId is stamped at creation when the advance originates
	// from a banking entry, so a later rollback can match by id instead of
	// approximate amount+date equality.
	BankTransactionId string          `json:"bank_transaction_id"`
	Date              time.Time       `json:"date"`
	Amount            decimal.Decimal `json:"amount"`
	Narration         string          `json:"narration"`
}

// DocumentCore is the shape shared by bills and memos. Balance and Status are
// derived, cached fields: Balance must always equal
// max(0, TotalCharges - sum(advances) - deductions - linked payments).
type DocumentCore struct {
	ID           string          `json:"id"`
	Number       string          `json:"number"`
	AccountId    string          `json:"account_id"` // party for bills, supplier for memos
	AccountName  string          `json:"account_name"`
	Date         time.Time       `json:"date"`
	FromLocation string          `json:"from_location"`
	ToLocation   string          `json:"to_location"`
	Advances     []Advance       `json:"advances"`
	Balance      decimal.Decimal `json:"balance"`
	Status       DocumentStatus  `json:"status"`
	PaymentCount int             `json:"payment_count"`
	SettledDate  *time.Time      `json:"settled_date,omitempty"`
	SettledNote  string          `json:"settled_note,omitempty"`
}

// DeductionLine is one named deduction a document carries against its charges
// (memo commission/mamul). Used by the ledger builder to emit itemised rows.
type DeductionLine struct {
	Name   string
	Amount decimal.Decimal
}

// ChargeDocument is the union over Bill and Memo: the balance formulas and
// the ledger builder are written once against this interface, with a small
// adapter per variant.
type ChargeDocument interface {
	Core() *DocumentCore
	Kind() DocumentKind
	// TotalCharges is the gross amount owed before advances and deductions.
	TotalCharges() decimal.Decimal
	// Deductions is the sum withheld from the total (zero for bills, where
	// mamul is already netted into TotalCharges).
	Deductions() decimal.Decimal
	// DeductionLines itemises Deductions for ledger emission.
	DeductionLines() []DeductionLine
	// Clone returns a deep copy; the advance list is not shared.
	Clone() ChargeDocument
}

func cloneAdvances(advances []Advance) []Advance {
	if advances == nil {
		return nil
	}
	out := make([]Advance, len(advances))
	copy(out, advances)
	return out
}

// AdvanceTotal sums a document's advances.
func (c *DocumentCore) AdvanceTotal() decimal.Decimal {
	total := decimal.Zero
	for _, a := range c.Advances {
		total = total.Add(a.Amount)
	}
	return total
}
