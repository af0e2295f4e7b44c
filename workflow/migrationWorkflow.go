package workflow

import (
	"fmt"

	"github.com/freightdesk/brokerage_backend/models"
)

// MigrationReport summarises one linking pass over legacy documents.
type MigrationReport struct {
	DocumentsMigrated int      `json:"documents_migrated"`
	AccountsTouched   int      `json:"accounts_touched"`
	Errors            []string `json:"errors,omitempty"`
}

// IntegrityIssue is one ledger whose stored state disagrees with a fresh
// recomputation.
type IntegrityIssue struct {
	AccountId   string `json:"account_id"`
	AccountName string `json:"account_name"`
	Stored      string `json:"stored"`
	Computed    string `json:"computed"`
	Detail      string `json:"detail"`
}

// IntegrityReport always covers every ledger; a mismatch is an issue, not a
// fatal error.
type IntegrityReport struct {
	IsValid bool             `json:"is_valid"`
	Issues  []IntegrityIssue `json:"issues,omitempty"`
	Summary string           `json:"summary"`
}

// DetectUnlinkedDocuments counts documents whose account has no ledger at
// all, or whose number never appears in their account's ledger entries.
// Legacy data predating the ledger feature exhibits both shapes. A document
// that emits no ledger rows has nothing to link and is never counted;
// otherwise an all-zero document would read as unlinked forever.
func DetectUnlinkedDocuments(documents []models.ChargeDocument, transactions []models.BankTransaction, ledgers []models.AccountLedger) int {
	byAccount := ledgersByAccount(ledgers)
	count := 0
	for _, doc := range documents {
		if len(documentEntries(doc, transactions)) == 0 {
			continue
		}
		ledger, ok := byAccount[doc.Core().AccountId]
		if !ok || !ledger.ContainsDocument(doc.Core().Number) {
			count++
		}
	}
	return count
}

// Migrate links legacy documents lacking ledger entries by rebuilding the
// ledger of every account that owns one and merging it into the stored set.
// A document whose account is unknown is reported and skipped; one bad
// document never aborts the pass. Running twice on the same inputs migrates
// zero documents the second time.
func Migrate(documents []models.ChargeDocument, transactions []models.BankTransaction, ledgers []models.AccountLedger, accounts []*models.Account) ([]models.AccountLedger, MigrationReport) {
	report := MigrationReport{}
	byAccount := ledgersByAccount(ledgers)
	accountsById := make(map[string]*models.Account, len(accounts))
	for _, acc := range accounts {
		if acc != nil {
			accountsById[acc.ID] = acc
		}
	}

	touched := make(map[string]bool)
	for _, doc := range documents {
		if len(documentEntries(doc, transactions)) == 0 {
			continue
		}
		accountId := doc.Core().AccountId
		ledger, hasLedger := byAccount[accountId]
		if hasLedger && ledger.ContainsDocument(doc.Core().Number) {
			continue
		}
		if _, known := accountsById[accountId]; !known {
			report.Errors = append(report.Errors,
				fmt.Sprintf("document %s: account %s not found", doc.Core().Number, accountId))
			continue
		}
		report.DocumentsMigrated++
		touched[accountId] = true
	}

	updated := make([]models.AccountLedger, 0, len(ledgers)+len(touched))
	replaced := make(map[string]bool, len(touched))
	for _, ledger := range ledgers {
		if touched[ledger.AccountId] {
			updated = append(updated, BuildLedger(*accountsById[ledger.AccountId], documents, transactions))
			replaced[ledger.AccountId] = true
			continue
		}
		updated = append(updated, ledger)
	}
	// Ledgers synthesized for accounts with no stored ledger follow the input
	// account order, so repeated runs over the same snapshot write the same
	// output.
	for _, acc := range accounts {
		if acc == nil || !touched[acc.ID] || replaced[acc.ID] {
			continue
		}
		updated = append(updated, BuildLedger(*acc, documents, transactions))
	}
	report.AccountsTouched = len(touched)
	return updated, report
}

// ValidateIntegrity rebuilds every stored ledger from scratch and diffs the
// outstanding balances and entry counts. Validation always completes and
// reports every mismatch found.
func ValidateIntegrity(ledgers []models.AccountLedger, accounts []*models.Account, documents []models.ChargeDocument, transactions []models.BankTransaction) IntegrityReport {
	accountsById := make(map[string]*models.Account, len(accounts))
	for _, acc := range accounts {
		if acc != nil {
			accountsById[acc.ID] = acc
		}
	}

	report := IntegrityReport{IsValid: true}
	for _, stored := range ledgers {
		account, ok := accountsById[stored.AccountId]
		if !ok {
			report.Issues = append(report.Issues, IntegrityIssue{
				AccountId:   stored.AccountId,
				AccountName: stored.AccountName,
				Detail:      "ledger references an unknown account",
			})
			continue
		}
		fresh := BuildLedger(*account, documents, transactions)
		if !stored.OutstandingBalance.Equal(fresh.OutstandingBalance) {
			report.Issues = append(report.Issues, IntegrityIssue{
				AccountId:   stored.AccountId,
				AccountName: stored.AccountName,
				Stored:      stored.OutstandingBalance.String(),
				Computed:    fresh.OutstandingBalance.String(),
				Detail:      "outstanding balance mismatch",
			})
			continue
		}
		if len(stored.Entries) != len(fresh.Entries) {
			report.Issues = append(report.Issues, IntegrityIssue{
				AccountId:   stored.AccountId,
				AccountName: stored.AccountName,
				Stored:      fmt.Sprintf("%d entries", len(stored.Entries)),
				Computed:    fmt.Sprintf("%d entries", len(fresh.Entries)),
				Detail:      "entry count mismatch",
			})
		}
	}

	report.IsValid = len(report.Issues) == 0
	report.Summary = fmt.Sprintf("checked %d ledgers, %d mismatches", len(ledgers), len(report.Issues))
	return report
}

func ledgersByAccount(ledgers []models.AccountLedger) map[string]models.AccountLedger {
	byAccount := make(map[string]models.AccountLedger, len(ledgers))
	for _, l := range ledgers {
		byAccount[l.AccountId] = l
	}
	return byAccount
}
