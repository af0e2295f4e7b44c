package workflow

import (
	"sort"

	"github.com/freightdesk/brokerage_backend/models"
	"github.com/freightdesk/brokerage_backend/utils"
	"github.com/shopspring/decimal"
)

// BuildLedger derives the full chronological ledger for one account from its
// documents and the banking transactions linked to them.
//
// Entries are first emitted per document (charge, advances, deductions,
// payments), then the whole list is re-sorted by entry date: a later-dated
// document's advance can predate an earlier document's payment. The sort is
// stable so equal-dated entries keep their emission order and the output is
// deterministic. Running balance is the cumulative credit minus debit over
// the re-sorted sequence.
func BuildLedger(account models.Account, documents []models.ChargeDocument, transactions []models.BankTransaction) models.AccountLedger {
	docs := make([]models.ChargeDocument, 0, len(documents))
	for _, doc := range documents {
		if doc.Core().AccountId == account.ID {
			docs = append(docs, doc)
		}
	}
	sort.SliceStable(docs, func(i, j int) bool {
		return utils.CompareDates(docs[i].Core().Date, docs[j].Core().Date) < 0
	})

	entries := make([]models.LedgerEntry, 0, len(docs)*2)
	for _, doc := range docs {
		entries = append(entries, documentEntries(doc, transactions)...)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return utils.CompareDates(entries[i].Date, entries[j].Date) < 0
	})

	running := decimal.Zero
	for i := range entries {
		running = running.Add(entries[i].CreditAmount).Sub(entries[i].DebitAmount)
		entries[i].RunningBalance = running
	}

	outstanding := decimal.Zero
	if len(entries) > 0 {
		outstanding = entries[len(entries)-1].RunningBalance
	}

	return models.AccountLedger{
		AccountId:          account.ID,
		AccountName:        account.Name,
		Entries:            entries,
		OutstandingBalance: outstanding,
	}
}

// documentEntries emits the rows one document contributes, in order: the
// charge credit, one debit per advance (list order is assumed chronological),
// the document's own deduction lines, then one debit per linked payment
// transaction. Zero-amount rows are omitted.
func documentEntries(doc models.ChargeDocument, transactions []models.BankTransaction) []models.LedgerEntry {
	core := doc.Core()
	entries := make([]models.LedgerEntry, 0, 2+len(core.Advances))

	if charges := doc.TotalCharges(); !charges.IsZero() {
		entries = append(entries, models.LedgerEntry{
			Date:           core.Date,
			DocumentNumber: core.Number,
			Description:    chargeDescription(doc),
			CreditAmount:   charges,
		})
	}

	for _, adv := range core.Advances {
		if adv.Amount.IsZero() {
			continue
		}
		desc := "Advance"
		if adv.Narration != "" {
			desc = "Advance - " + adv.Narration
		}
		entries = append(entries, models.LedgerEntry{
			Date:           adv.Date,
			DocumentNumber: core.Number,
			Description:    desc,
			DebitAmount:    adv.Amount,
		})
	}

	for _, line := range doc.DeductionLines() {
		if line.Amount.IsZero() {
			continue
		}
		entries = append(entries, models.LedgerEntry{
			Date:           core.Date,
			DocumentNumber: core.Number,
			Description:    line.Name,
			DebitAmount:    line.Amount,
		})
	}

	for _, txn := range transactions {
		if !txn.IsPaymentFor(doc) || txn.Amount.IsZero() {
			continue
		}
		desc := "Payment received"
		if txn.Narration != "" {
			desc = txn.Narration
		}
		entries = append(entries, models.LedgerEntry{
			Date:           txn.Date,
			DocumentNumber: core.Number,
			Description:    desc,
			DebitAmount:    txn.Amount,
		})
	}

	return entries
}

func chargeDescription(doc models.ChargeDocument) string {
	core := doc.Core()
	label := "Freight charges"
	if doc.Kind() == models.DocumentKindMemo {
		label = "Trip charges"
	}
	if core.FromLocation != "" && core.ToLocation != "" {
		return label + " " + core.FromLocation + " to " + core.ToLocation
	}
	return label
}
