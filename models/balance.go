package models

import (
	"fmt"

	"github.com/freightdesk/brokerage_backend/utils"
	"github.com/shopspring/decimal"
)

// ComputeDocumentBalance is the single balance formula:
// max(0, totalCharges - sum(advances) - deductions), rounded to 2 places.
// Pure; inputs are never mutated.
func ComputeDocumentBalance(totalCharges decimal.Decimal, advances []Advance, deductions decimal.Decimal) decimal.Decimal {
	balance := totalCharges.Sub(deductions)
	for _, a := range advances {
		balance = balance.Sub(a.Amount)
	}
	return utils.FloorZero(utils.RoundAmount(balance))
}

// RecomputeBalance derives a document's balance before payments from its own
// fields via the variant adapter.
func RecomputeBalance(doc ChargeDocument) decimal.Decimal {
	mustBeDocument(doc)
	return ComputeDocumentBalance(doc.TotalCharges(), doc.Core().Advances, doc.Deductions())
}

// OutstandingAfterPayments re-derives what a document still owes given the
// payment transactions currently linked to it. Always computed from the full
// remaining set, never by subtracting a single deleted amount from a cached
// total.
func OutstandingAfterPayments(doc ChargeDocument, transactions []BankTransaction) decimal.Decimal {
	mustBeDocument(doc)
	paid := decimal.Zero
	for _, txn := range transactions {
		if txn.IsPaymentFor(doc) {
			paid = paid.Add(txn.Amount)
		}
	}
	return utils.FloorZero(RecomputeBalance(doc).Sub(paid))
}

// mustBeDocument guards the input contract; a nil document is a programming
// error, not a business failure.
func mustBeDocument(doc ChargeDocument) {
	if doc == nil || doc.Core() == nil {
		panic(fmt.Sprintf("malformed charge document: %#v", doc))
	}
}
