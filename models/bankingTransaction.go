package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction is one atomic cash movement. For category bill/memo/advance
// it is the source of truth for a payment event applied to the related
// document; deleting it must roll that effect back before the record goes.
type BankTransaction struct {
	ID          string              `json:"id"`
	Date        time.Time           `json:"date"`
	Type        TransactionType     `json:"type"`
	Category    TransactionCategory `json:"category"`
	Amount      decimal.Decimal     `json:"amount"`
	RelatedId   string              `json:"related_id,omitempty"`
	RelatedName string              `json:"related_name,omitempty"`
	Narration   string              `json:"narration"`
}

// LinksDocument reports whether the transaction references a charge document.
func (t BankTransaction) LinksDocument() bool {
	switch t.Category {
	case TransactionCategoryBill, TransactionCategoryMemo, TransactionCategoryAdvance:
		return true
	}
	return false
}

// IsPaymentFor reports whether the transaction is a payment event applied to
// the given document: category matches the document kind and the link matches
// by id, falling back to the document number for legacy rows.
func (t BankTransaction) IsPaymentFor(doc ChargeDocument) bool {
	kind, ok := DocumentKindForCategory(t.Category)
	if !ok || kind != doc.Kind() {
		return false
	}
	if t.RelatedId != "" && t.RelatedId == doc.Core().ID {
		return true
	}
	return t.RelatedId == "" && t.RelatedName != "" && t.RelatedName == doc.Core().Number
}
