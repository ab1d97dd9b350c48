package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecompute(t *testing.T) {
	got := Recompute(1000, 100, 300)
	assert.Equal(t, Totals{Total: 900, BalanceDue: 600}, got)
}

func TestRecomputeOverpaidIsNotClamped(t *testing.T) {
	got := Recompute(1000, 0, 1200)
	assert.Equal(t, 1000.0, got.Total)
	assert.Equal(t, -200.0, got.BalanceDue)
}

func TestRecomputeRoundsToCents(t *testing.T) {
	got := Recompute(0.3, 0.1, 0.1)
	assert.Equal(t, 0.2, got.Total)
	assert.Equal(t, 0.1, got.BalanceDue)
}

func TestToggleDiscount(t *testing.T) {
	on := ToggleDiscount(0, 7500)
	assert.Equal(t, 750.0, on)

	off := ToggleDiscount(on, 7500)
	assert.Equal(t, 0.0, off)

	assert.Equal(t, 0.0, ToggleDiscount(off+123.45, 7500), "any stored discount toggles off")
	assert.Equal(t, 333.33, ToggleDiscount(0, 3333.33))
}
