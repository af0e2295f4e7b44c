package workflow

import (
	"github.com/freightdesk/brokerage_backend/config"
	"github.com/freightdesk/brokerage_backend/models"
	"github.com/freightdesk/brokerage_backend/utils"
	"github.com/sirupsen/logrus"
)

// RollbackTransaction undoes the financial effect of a banking transaction
// that is about to be deleted. It must run BEFORE the transaction record is
// removed: on a resolution failure the caller aborts the delete so the link
// survives for a retry. `remaining` is the transaction set as it will look
// after the delete.
//
// Categories without document linkage (expense, transfer, other) have no
// financial effect to undo.
func RollbackTransaction(logger *logrus.Logger, set *models.DocumentSet, accounts []*models.Account, deleted models.BankTransaction, remaining []models.BankTransaction) error {
	if !deleted.LinksDocument() {
		return nil
	}
	if deleted.Category == models.TransactionCategoryAdvance {
		return RollbackAdvance(logger, set, accounts, deleted, remaining)
	}
	return RollbackPayment(logger, set, accounts, deleted, remaining)
}

// RollbackPayment re-derives the linked document's balance without the
// deleted payment. The remaining payments are summed from the transactions
// still linked to the document, never by subtracting the one deleted amount
// from a cached total; that avoids drift when several transactions were
// linked.
func RollbackPayment(logger *logrus.Logger, set *models.DocumentSet, accounts []*models.Account, deleted models.BankTransaction, remaining []models.BankTransaction) error {
	kind, ok := models.DocumentKindForCategory(deleted.Category)
	if !ok {
		return &ValidationError{Field: "category", Message: "transaction is not a document payment"}
	}
	doc, found := set.Resolve(kind, deleted.RelatedId, deleted.RelatedName)
	if !found {
		err := &ResolutionError{
			Category:    string(deleted.Category),
			RelatedId:   deleted.RelatedId,
			RelatedName: deleted.RelatedName,
			Detail:      "linked document not found",
		}
		config.LogError(logger, "RollbackWorkflow.go", "RollbackPayment", "ResolveDocument", deleted, err)
		return err
	}

	doc.Core().Balance = models.OutstandingAfterPayments(doc, remaining)
	doc.Core().PaymentCount = countLinkedPayments(doc, remaining)
	revertSettlementIfOutstanding(set, doc)
	recomputeOwner(set, accounts, doc.Core().AccountId)
	return nil
}

// RollbackAdvance removes the advance the deleted transaction created and
// re-derives balance and status. Matching prefers the stamped transaction id;
// legacy advances without a stamp fall back to amount + same-day matching,
// taking the first hit in list order.
func RollbackAdvance(logger *logrus.Logger, set *models.DocumentSet, accounts []*models.Account, deleted models.BankTransaction, remaining []models.BankTransaction) error {
	doc, found := set.ResolveAny(deleted.RelatedId, deleted.RelatedName)
	if !found {
		err := &ResolutionError{
			Category:    string(deleted.Category),
			RelatedId:   deleted.RelatedId,
			RelatedName: deleted.RelatedName,
			Detail:      "linked document not found",
		}
		config.LogError(logger, "RollbackWorkflow.go", "RollbackAdvance", "ResolveDocument", deleted, err)
		return err
	}

	core := doc.Core()
	idx := -1
	for i, adv := range core.Advances {
		if adv.BankTransactionId != "" && adv.BankTransactionId == deleted.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		for i, adv := range core.Advances {
			if adv.BankTransactionId == "" &&
				utils.AmountsEqual(adv.Amount, deleted.Amount) &&
				utils.SameDay(adv.Date, deleted.Date) {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		err := &ResolutionError{
			Category:    string(deleted.Category),
			RelatedId:   deleted.RelatedId,
			RelatedName: deleted.RelatedName,
			Detail:      "linked advance not found",
		}
		config.LogError(logger, "RollbackWorkflow.go", "RollbackAdvance", "MatchAdvance", deleted, err)
		return err
	}

	core.Advances = append(core.Advances[:idx:idx], core.Advances[idx+1:]...)
	core.Balance = models.OutstandingAfterPayments(doc, remaining)
	revertSettlementIfOutstanding(set, doc)
	recomputeOwner(set, accounts, core.AccountId)
	return nil
}

// revertSettlementIfOutstanding moves a settled document back to pending when
// a positive balance was restored; otherwise it stays where it is.
func revertSettlementIfOutstanding(set *models.DocumentSet, doc models.ChargeDocument) {
	if !doc.Core().Balance.IsPositive() || !set.IsSettled(doc) {
		return
	}
	doc.Core().Status = models.DocumentStatusPending
	doc.Core().SettledDate = nil
	doc.Core().SettledNote = ""
	set.Refile(doc)
}

func countLinkedPayments(doc models.ChargeDocument, transactions []models.BankTransaction) int {
	count := 0
	for _, txn := range transactions {
		if txn.IsPaymentFor(doc) {
			count++
		}
	}
	return count
}
