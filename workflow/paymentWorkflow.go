package workflow

import (
	"strings"

	"github.com/freightdesk/brokerage_backend/models"
	"github.com/freightdesk/brokerage_backend/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentResult carries everything one payment event produces: the immutable
// payment record, an updated copy of the document, the ledger row and the
// banking entry that becomes the source of truth for the event.
type PaymentResult struct {
	Payment          models.Payment
	UpdatedDocument  models.ChargeDocument
	LedgerEntry      models.LedgerEntry
	Transaction      models.BankTransaction
	RemainingBalance decimal.Decimal
}

// ProcessPayment converts a user-entered payment into a payment record, an
// updated document copy and a ledger entry. The input document is not
// mutated, and settlement is not decided here; callers combine the result
// with the settlement rules.
func ProcessPayment(doc models.ChargeDocument, form models.PaymentForm) (*PaymentResult, error) {
	models.RecomputeBalance(doc) // contract check on document shape

	if form.ReceivedAmount.IsNegative() {
		return nil, &ValidationError{Field: "received_amount", Message: "amount cannot be negative"}
	}
	for _, l := range []struct {
		name   string
		amount decimal.Decimal
	}{
		{"tds", form.Deductions.Tds},
		{"mamul", form.Deductions.Mamul},
		{"payment_charges", form.Deductions.PaymentCharges},
		{"commission", form.Deductions.Commission},
		{"other", form.Deductions.Other},
	} {
		if l.amount.IsNegative() {
			return nil, &ValidationError{Field: l.name, Message: "deduction cannot be negative"}
		}
	}
	if err := utils.ValidateStruct(form); err != nil {
		return nil, &ValidationError{Message: firstValidationMessage(err)}
	}
	totalDeductions := form.Deductions.Total()
	if form.ReceivedAmount.GreaterThan(doc.Core().Balance) && totalDeductions.IsZero() {
		return nil, &ValidationError{
			Field:   "received_amount",
			Message: "cannot pay more than the outstanding balance without a deduction",
		}
	}

	received := utils.RoundAmount(form.ReceivedAmount)
	remaining := utils.FloorZero(doc.Core().Balance.Sub(received).Sub(totalDeductions))

	updated := doc.Clone()
	updated.Core().Balance = remaining
	updated.Core().PaymentCount++

	payment := models.Payment{
		ID:               uuid.NewString(),
		DocumentId:       doc.Core().ID,
		DocumentNumber:   doc.Core().Number,
		DocumentKind:     doc.Kind(),
		Date:             form.Date,
		Amount:           received,
		Deductions:       form.Deductions,
		Method:           form.Method,
		Reference:        form.Reference,
		Remarks:          form.Remarks,
		RemainingBalance: remaining,
	}

	category := models.TransactionCategoryBill
	if doc.Kind() == models.DocumentKindMemo {
		category = models.TransactionCategoryMemo
	}
	txn := models.BankTransaction{
		ID:          uuid.NewString(),
		Date:        form.Date,
		Type:        models.TransactionTypeDebit,
		Category:    category,
		Amount:      received,
		RelatedId:   doc.Core().ID,
		RelatedName: doc.Core().Number,
		Narration:   paymentNarration(form),
	}

	// The debit is the cash amount only; deductions are itemised in the
	// description. A full rebuild emits the same event from the banking
	// transaction, so the two paths must agree on the amount.
	entry := models.LedgerEntry{
		Date:           form.Date,
		DocumentNumber: doc.Core().Number,
		Description:    paymentDescription(form),
		DebitAmount:    received,
	}

	return &PaymentResult{
		Payment:          payment,
		UpdatedDocument:  updated,
		LedgerEntry:      entry,
		Transaction:      txn,
		RemainingBalance: remaining,
	}, nil
}

// ApplyPayment is the caller-side composition: process the payment, replace
// the stored document with the updated copy, apply the settlement rule,
// refile between collections and recompute the owning account.
func ApplyPayment(set *models.DocumentSet, accounts []*models.Account, doc models.ChargeDocument, form models.PaymentForm) (*PaymentResult, error) {
	result, err := ProcessPayment(doc, form)
	if err != nil {
		return nil, err
	}
	updated := result.UpdatedDocument
	if !set.Replace(updated) {
		return nil, &ResolutionError{
			Category:    string(doc.Kind()),
			RelatedId:   doc.Core().ID,
			RelatedName: doc.Core().Number,
			Detail:      "linked document not found",
		}
	}
	ApplySettlementRule(updated)
	set.Refile(updated)
	recomputeOwner(set, accounts, updated.Core().AccountId)
	return result, nil
}

func paymentNarration(form models.PaymentForm) string {
	parts := []string{"Payment"}
	if form.Method != "" {
		parts = append(parts, "via "+form.Method)
	}
	if form.Reference != "" {
		parts = append(parts, "ref "+form.Reference)
	}
	return strings.Join(parts, " ")
}

func paymentDescription(form models.PaymentForm) string {
	desc := paymentNarration(form)
	lines := form.Deductions.Lines()
	if len(lines) == 0 {
		return desc
	}
	items := make([]string, 0, len(lines))
	for _, l := range lines {
		items = append(items, l.Name+" "+l.Amount.String())
	}
	return desc + " (less " + strings.Join(items, ", ") + ")"
}

func firstValidationMessage(err error) string {
	fields := utils.ProcessValidationErrors(err)
	for field, msg := range fields {
		return field + " " + msg
	}
	return err.Error()
}

func recomputeOwner(set *models.DocumentSet, accounts []*models.Account, accountId string) {
	pending := set.Pending()
	for _, acc := range accounts {
		if acc.ID == accountId {
			models.RecomputeAccount(acc, pending)
			return
		}
	}
}
