package workflow

import (
	"time"

	"github.com/freightdesk/brokerage_backend/models"
	"github.com/shopspring/decimal"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func day(d int) time.Time {
	return time.Date(2026, time.January, d, 0, 0, 0, 0, time.UTC)
}

func newTestBill(id, number, accountId string, date time.Time, freight, detention, mamul int64) *models.Bill {
	bill := &models.Bill{
		DocumentCore: models.DocumentCore{
			ID:           id,
			Number:       number,
			AccountId:    accountId,
			AccountName:  "Party " + accountId,
			Date:         date,
			FromLocation: "Indore",
			ToLocation:   "Mumbai",
			Status:       models.DocumentStatusPending,
		},
		Freight:   dec(freight),
		Detention: dec(detention),
		Mamul:     dec(mamul),
	}
	bill.Balance = models.RecomputeBalance(bill)
	return bill
}

func newTestMemo(id, number, accountId string, date time.Time, freight, commission int64) *models.Memo {
	memo := &models.Memo{
		DocumentCore: models.DocumentCore{
			ID:           id,
			Number:       number,
			AccountId:    accountId,
			AccountName:  "Supplier " + accountId,
			Date:         date,
			FromLocation: "Indore",
			ToLocation:   "Delhi",
			Status:       models.DocumentStatusPending,
		},
		Freight:    dec(freight),
		Commission: dec(commission),
	}
	memo.Balance = models.RecomputeBalance(memo)
	return memo
}

func newTestAccount(id string, accType models.AccountType) *models.Account {
	return &models.Account{ID: id, Name: "Account " + id, Type: accType}
}

func paymentTxn(id string, category models.TransactionCategory, relatedId, relatedName string, date time.Time, amount int64) models.BankTransaction {
	return models.BankTransaction{
		ID:          id,
		Date:        date,
		Type:        models.TransactionTypeDebit,
		Category:    category,
		Amount:      dec(amount),
		RelatedId:   relatedId,
		RelatedName: relatedName,
	}
}
