package models_test

import (
	"testing"
	"time"

	"github.com/freightdesk/brokerage_backend/models"
	"github.com/shopspring/decimal"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestComputeDocumentBalance(t *testing.T) {
	cases := []struct {
		name         string
		totalCharges decimal.Decimal
		advances     []models.Advance
		deductions   decimal.Decimal
		want         decimal.Decimal
	}{
		{"no advances no deductions", dec(10000), nil, decimal.Zero, dec(10000)},
		{"commission deducted", dec(10000), nil, dec(600), dec(9400)},
		{"advance reduces balance", dec(10000), []models.Advance{{Amount: dec(4000)}}, dec(600), dec(5400)},
		{"multiple advances", dec(10000), []models.Advance{{Amount: dec(4000)}, {Amount: dec(2000)}}, dec(600), dec(3400)},
		{"overpaid floors to zero", dec(5000), []models.Advance{{Amount: dec(6000)}}, decimal.Zero, decimal.Zero},
		{"signed advance credits back", dec(5000), []models.Advance{{Amount: dec(2000)}, {Amount: dec(-500)}}, decimal.Zero, dec(3500)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := models.ComputeDocumentBalance(tc.totalCharges, tc.advances, tc.deductions)
			if !got.Equal(tc.want) {
				t.Fatalf("ComputeDocumentBalance = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestComputeDocumentBalanceDoesNotMutateInputs(t *testing.T) {
	advances := []models.Advance{{Amount: dec(100)}}
	total := dec(500)
	_ = models.ComputeDocumentBalance(total, advances, dec(50))
	if !advances[0].Amount.Equal(dec(100)) || !total.Equal(dec(500)) {
		t.Fatal("inputs were mutated")
	}
}

func TestBillTotalChargesNetsMamul(t *testing.T) {
	bill := &models.Bill{
		Freight:      dec(20000),
		Detention:    dec(500),
		RtoAmount:    decimal.Zero,
		ExtraCharges: decimal.Zero,
		Mamul:        dec(200),
	}
	if got := bill.TotalCharges(); !got.Equal(dec(20300)) {
		t.Fatalf("bill total charges = %s, want 20300", got)
	}
	if !bill.Deductions().IsZero() {
		t.Fatalf("bill deductions = %s, want 0", bill.Deductions())
	}
	if bill.DeductionLines() != nil {
		t.Fatal("bill must not carry deduction lines")
	}
}

func TestMemoChargesAndDeductions(t *testing.T) {
	memo := &models.Memo{
		Freight:    dec(10000),
		Commission: dec(600),
	}
	if got := memo.TotalCharges(); !got.Equal(dec(10000)) {
		t.Fatalf("memo total charges = %s, want 10000", got)
	}
	if got := memo.Deductions(); !got.Equal(dec(600)) {
		t.Fatalf("memo deductions = %s, want 600", got)
	}
	if got := models.RecomputeBalance(memo); !got.Equal(dec(9400)) {
		t.Fatalf("memo balance = %s, want 9400", got)
	}
	lines := memo.DeductionLines()
	if len(lines) != 1 || lines[0].Name != "Commission" {
		t.Fatalf("memo deduction lines = %+v", lines)
	}
}

func TestOutstandingAfterPaymentsReDerives(t *testing.T) {
	memo := &models.Memo{
		DocumentCore: models.DocumentCore{
			ID:     "m1",
			Number: "MM-1",
			Date:   time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		Freight:    dec(10000),
		Commission: dec(600),
	}
	txns := []models.BankTransaction{
		{ID: "t1", Category: models.TransactionCategoryMemo, RelatedId: "m1", Amount: dec(4000), Type: models.TransactionTypeDebit},
		{ID: "t2", Category: models.TransactionCategoryMemo, RelatedId: "other", Amount: dec(9999), Type: models.TransactionTypeDebit},
		{ID: "t3", Category: models.TransactionCategoryExpense, RelatedId: "m1", Amount: dec(1), Type: models.TransactionTypeDebit},
	}
	if got := models.OutstandingAfterPayments(memo, txns); !got.Equal(dec(5400)) {
		t.Fatalf("outstanding = %s, want 5400", got)
	}
}

func TestOutstandingAfterPaymentsLinksLegacyByNumber(t *testing.T) {
	memo := &models.Memo{
		DocumentCore: models.DocumentCore{ID: "m1", Number: "MM-1"},
		Freight:      dec(1000),
	}
	txns := []models.BankTransaction{
		{ID: "t1", Category: models.TransactionCategoryMemo, RelatedName: "MM-1", Amount: dec(400), Type: models.TransactionTypeDebit},
	}
	if got := models.OutstandingAfterPayments(memo, txns); !got.Equal(dec(600)) {
		t.Fatalf("outstanding = %s, want 600", got)
	}
}

func TestRecomputeBalancePanicsOnNilDocument(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil document")
		}
	}()
	models.RecomputeBalance(nil)
}

func TestRecomputeAccountSumsPendingOnly(t *testing.T) {
	account := &models.Account{ID: "p1", Name: "Party", Type: models.AccountTypeParty, Balance: dec(999), ActiveCount: 9}
	mine := &models.Bill{DocumentCore: models.DocumentCore{ID: "b1", AccountId: "p1", Balance: dec(300)}}
	alsoMine := &models.Bill{DocumentCore: models.DocumentCore{ID: "b2", AccountId: "p1", Balance: dec(200)}}
	other := &models.Bill{DocumentCore: models.DocumentCore{ID: "b3", AccountId: "p2", Balance: dec(100)}}

	models.RecomputeAccount(account, []models.ChargeDocument{mine, alsoMine, other})
	if !account.Balance.Equal(dec(500)) {
		t.Fatalf("account balance = %s, want 500", account.Balance)
	}
	if account.ActiveCount != 2 {
		t.Fatalf("active count = %d, want 2", account.ActiveCount)
	}
}
