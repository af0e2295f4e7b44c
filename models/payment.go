package models

import (
	"time"

	"github.com/freightdesk/brokerage_backend/utils"
	"github.com/shopspring/decimal"
)

// PaymentDeductions is the itemised breakdown entered with a payment.
// Every component must be non-negative.
type PaymentDeductions struct {
	Tds            decimal.Decimal `json:"tds" validate:"gte=0"`
	Mamul          decimal.Decimal `json:"mamul" validate:"gte=0"`
	PaymentCharges decimal.Decimal `json:"payment_charges" validate:"gte=0"`
	Commission     decimal.Decimal `json:"commission" validate:"gte=0"`
	Other          decimal.Decimal `json:"other" validate:"gte=0"`
}

func (d PaymentDeductions) Total() decimal.Decimal {
	return utils.SumAmounts(d.Tds, d.Mamul, d.PaymentCharges, d.Commission, d.Other)
}

// Lines returns the non-zero components in entry order for descriptions.
func (d PaymentDeductions) Lines() []DeductionLine {
	all := []DeductionLine{
		{Name: "TDS", Amount: d.Tds},
		{Name: "Mamul", Amount: d.Mamul},
		{Name: "Payment charges", Amount: d.PaymentCharges},
		{Name: "Commission", Amount: d.Commission},
		{Name: "Other", Amount: d.Other},
	}
	lines := make([]DeductionLine, 0, len(all))
	for _, l := range all {
		if !l.Amount.IsZero() {
			lines = append(lines, l)
		}
	}
	return lines
}

// PaymentForm is the user-entered payment against one document.
type PaymentForm struct {
	ReceivedAmount decimal.Decimal   `json:"received_amount" validate:"gte=0"`
	Deductions     PaymentDeductions `json:"deductions"`
	Method         string            `json:"method"`
	Reference      string            `json:"reference"`
	Remarks        string            `json:"remarks"`
	Date           time.Time         `json:"date" validate:"required"`
}

// Payment is the immutable record produced by processing a payment form.
type Payment struct {
	ID               string            `json:"id"`
	DocumentId       string            `json:"document_id"`
	DocumentNumber   string            `json:"document_number"`
	DocumentKind     DocumentKind      `json:"document_kind"`
	Date             time.Time         `json:"date"`
	Amount           decimal.Decimal   `json:"amount"`
	Deductions       PaymentDeductions `json:"deductions"`
	Method           string            `json:"method"`
	Reference        string            `json:"reference"`
	Remarks          string            `json:"remarks"`
	RemainingBalance decimal.Decimal   `json:"remaining_balance"`
}
