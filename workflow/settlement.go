package workflow

import (
	"time"

	"github.com/freightdesk/brokerage_backend/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ApplySettlementRule derives a document's status from its balance. Memos
// settle automatically when nothing is outstanding; bills only settle through
// an explicit action (SettleBill), so they are left untouched here.
func ApplySettlementRule(doc models.ChargeDocument) {
	if doc.Kind() != models.DocumentKindMemo {
		return
	}
	if doc.Core().Balance.Sign() <= 0 {
		doc.Core().Status = models.DocumentStatusSettled
	} else {
		doc.Core().Status = models.DocumentStatusPending
	}
}

// SettleBill marks a bill settled on an explicit user action, decoupled from
// the balance reaching zero: any remaining difference is absorbed and noted
// in the settlement narration.
func SettleBill(set *models.DocumentSet, accounts []*models.Account, bill *models.Bill, date time.Time, narration string) error {
	if _, ok := set.Resolve(models.DocumentKindBill, bill.ID, bill.Number); !ok {
		return &ResolutionError{
			Category:    string(models.DocumentKindBill),
			RelatedId:   bill.ID,
			RelatedName: bill.Number,
			Detail:      "linked document not found",
		}
	}
	if bill.Balance.IsPositive() {
		note := "difference of " + bill.Balance.String() + " absorbed"
		if narration != "" {
			narration = narration + "; " + note
		} else {
			narration = note
		}
		bill.Balance = decimal.Zero
	}
	bill.Status = models.DocumentStatusSettled
	bill.SettledDate = &date
	bill.SettledNote = narration
	set.Refile(bill)
	recomputeOwner(set, accounts, bill.AccountId)
	return nil
}

// ApplyAdvance records an advance against a document and re-derives the
// cached balance and status from the full remaining state.
func ApplyAdvance(doc models.ChargeDocument, adv models.Advance, transactions []models.BankTransaction) {
	core := doc.Core()
	core.Advances = append(core.Advances, adv)
	core.Balance = models.OutstandingAfterPayments(doc, transactions)
	ApplySettlementRule(doc)
}

// AdvanceFromTransaction builds the advance for a banking entry, stamping the
// transaction id so rollback can match by id rather than amount+date.
func AdvanceFromTransaction(txn models.BankTransaction) models.Advance {
	return models.Advance{
		ID:                uuid.NewString(),
		BankTransactionId: txn.ID,
		Date:              txn.Date,
		Amount:            txn.Amount,
		Narration:         txn.Narration,
	}
}
