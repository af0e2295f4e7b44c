package models

import "github.com/shopspring/decimal"

// Account is a party or supplier. Balance and ActiveCount are recomputation
// targets, never inputs: the only writer is RecomputeAccount and it always
// sums the current pending document set. No code path may adjust them in
// place.
type Account struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        AccountType     `json:"type"`
	Balance     decimal.Decimal `json:"balance"`
	ActiveCount int             `json:"active_count"`
}

// RecomputeAccount replaces the derived fields from the account's current
// pending documents. Documents belonging to other accounts are ignored, so
// callers can pass the full pending set.
func RecomputeAccount(account *Account, pending []ChargeDocument) {
	balance := decimal.Zero
	count := 0
	for _, doc := range pending {
		if doc.Core().AccountId != account.ID {
			continue
		}
		balance = balance.Add(doc.Core().Balance)
		count++
	}
	account.Balance = balance
	account.ActiveCount = count
}
