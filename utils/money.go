package utils

import "github.com/shopspring/decimal"

// Amounts are stored and compared at 2 decimal places.
const AmountPrecision = 2

var amountEpsilon = decimal.New(1, -AmountPrecision) // 0.01

func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(AmountPrecision)
}

// FloorZero clamps negative amounts to zero. Overpayment is absorbed, never
// carried as a credit balance.
func FloorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// AmountsEqual reports whether two amounts match within one minor unit.
// Legacy records were entered through a form that rounded inconsistently.
func AmountsEqual(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(amountEpsilon)
}

func SumAmounts(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
