package models

import "github.com/shopspring/decimal"

// Memo is the supplier-facing charge document for one trip. Commission and
// mamul are withheld from the supplier rather than netted into the charges.
type Memo struct {
	DocumentCore
	Freight     decimal.Decimal `json:"freight"`
	Detention   decimal.Decimal `json:"detention"`
	ExtraCharge decimal.Decimal `json:"extra_charge"`
	Commission  decimal.Decimal `json:"commission"`
	Mamul       decimal.Decimal `json:"mamul"`
}

func (m *Memo) Core() *DocumentCore { return &m.DocumentCore }

func (m *Memo) Kind() DocumentKind { return DocumentKindMemo }

func (m *Memo) TotalCharges() decimal.Decimal {
	return m.Freight.Add(m.Detention).Add(m.ExtraCharge)
}

func (m *Memo) Deductions() decimal.Decimal {
	return m.Commission.Add(m.Mamul)
}

func (m *Memo) DeductionLines() []DeductionLine {
	lines := make([]DeductionLine, 0, 2)
	if !m.Commission.IsZero() {
		lines = append(lines, DeductionLine{Name: "Commission", Amount: m.Commission})
	}
	if !m.Mamul.IsZero() {
		lines = append(lines, DeductionLine{Name: "Mamul", Amount: m.Mamul})
	}
	return lines
}

func (m *Memo) Clone() ChargeDocument {
	clone := *m
	clone.Advances = cloneAdvances(m.Advances)
	if m.SettledDate != nil {
		d := *m.SettledDate
		clone.SettledDate = &d
	}
	return &clone
}
