package models

import "github.com/shopspring/decimal"

// Bill is the party-facing charge document for one trip.
type Bill struct {
	DocumentCore
	Freight      decimal.Decimal `json:"freight"`
	Detention    decimal.Decimal `json:"detention"`
	RtoAmount    decimal.Decimal `json:"rto_amount"`
	ExtraCharges decimal.Decimal `json:"extra_charges"`
	Mamul        decimal.Decimal `json:"mamul"`
}

func (b *Bill) Core() *DocumentCore { return &b.DocumentCore }

func (b *Bill) Kind() DocumentKind { return DocumentKindBill }

// TotalCharges nets mamul off the gross trip charges; bills carry no separate
// deduction lines.
func (b *Bill) TotalCharges() decimal.Decimal {
	return b.Freight.Add(b.Detention).Add(b.RtoAmount).Add(b.ExtraCharges).Sub(b.Mamul)
}

func (b *Bill) Deductions() decimal.Decimal { return decimal.Zero }

func (b *Bill) DeductionLines() []DeductionLine { return nil }

func (b *Bill) Clone() ChargeDocument {
	clone := *b
	clone.Advances = cloneAdvances(b.Advances)
	if b.SettledDate != nil {
		d := *b.SettledDate
		clone.SettledDate = &d
	}
	return &clone
}
