package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one row per monetary event: a charge, an advance, a
// deduction or a payment. RunningBalance is the cumulative credit minus debit
// over the date-sorted entry sequence.
type LedgerEntry struct {
	Date           time.Time       `json:"date"`
	DocumentNumber string          `json:"document_number"`
	Description    string          `json:"description"`
	CreditAmount   decimal.Decimal `json:"credit_amount"`
	DebitAmount    decimal.Decimal `json:"debit_amount"`
	RunningBalance decimal.Decimal `json:"running_balance"`
}

// AccountLedger is the derived chronological statement for one party or
// supplier. It holds no state of its own and is rebuilt in full whenever the
// underlying documents change; it is never hand-edited.
type AccountLedger struct {
	AccountId          string          `json:"account_id"`
	AccountName        string          `json:"account_name"`
	Entries            []LedgerEntry   `json:"entries"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}

// ContainsDocument reports whether the ledger carries at least one entry for
// the given document number.
func (l AccountLedger) ContainsDocument(number string) bool {
	for _, e := range l.Entries {
		if e.DocumentNumber == number {
			return true
		}
	}
	return false
}
