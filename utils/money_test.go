package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRoundAmount(t *testing.T) {
	got := RoundAmount(decimal.NewFromFloat(10.005))
	if got.String() != "10.01" {
		t.Fatalf("RoundAmount(10.005) = %s, want 10.01", got)
	}
}

func TestFloorZero(t *testing.T) {
	if !FloorZero(decimal.NewFromInt(-5)).IsZero() {
		t.Fatal("negative amount must floor to zero")
	}
	if !FloorZero(decimal.NewFromInt(5)).Equal(decimal.NewFromInt(5)) {
		t.Fatal("positive amount must pass through")
	}
}

func TestAmountsEqualWithinEpsilon(t *testing.T) {
	a := decimal.NewFromFloat(4000.004)
	b := decimal.NewFromInt(4000)
	if !AmountsEqual(a, b) {
		t.Fatalf("%s and %s should compare equal within a paisa", a, b)
	}
	c := decimal.NewFromFloat(4000.02)
	if AmountsEqual(c, b) {
		t.Fatalf("%s and %s should not compare equal", c, b)
	}
}

func TestSumAmounts(t *testing.T) {
	got := SumAmounts(decimal.NewFromInt(100), decimal.NewFromInt(200), decimal.NewFromInt(-50))
	if !got.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("SumAmounts = %s, want 250", got)
	}
}
