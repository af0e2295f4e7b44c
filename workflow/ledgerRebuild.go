package workflow

import (
	"github.com/freightdesk/brokerage_backend/models"
)

// BuildAllLedgers rebuilds the ledger of every account that has at least one
// document; accounts without documents are omitted so no empty ledgers are
// persisted. Output order follows the input account order. Idempotent:
// unchanged inputs yield structurally identical output, which is what the
// regression checks rely on.
func BuildAllLedgers(accounts []*models.Account, documents []models.ChargeDocument, transactions []models.BankTransaction) []models.AccountLedger {
	ledgers := make([]models.AccountLedger, 0, len(accounts))
	for _, account := range accounts {
		if account == nil {
			continue
		}
		if !accountHasDocuments(account.ID, documents) {
			continue
		}
		ledgers = append(ledgers, BuildLedger(*account, documents, transactions))
	}
	return ledgers
}

// RebuildLedgers regenerates all derived ledgers from a full snapshot.
func RebuildLedgers(snapshot *models.Snapshot) []models.AccountLedger {
	return BuildAllLedgers(snapshot.Accounts(), snapshot.Documents.Documents(), snapshot.BankTransactions)
}

func accountHasDocuments(accountId string, documents []models.ChargeDocument) bool {
	for _, doc := range documents {
		if doc.Core().AccountId == accountId {
			return true
		}
	}
	return false
}
