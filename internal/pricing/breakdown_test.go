package pricing

import (
	"testing"

	"github.com/EhtashamulIslam/FitnessZone/internal/models"

	"github.com/stretchr/testify/assert"
)

func ptr(f float64) *float64 { return &f }

func TestCompute(t *testing.T) {
	b := Compute(models.Plan{Price: 100, Discount: 10, TaxPercent: 5})

	assert.InDelta(t, 10.00, b.DiscountAmount, 1e-9)
	assert.InDelta(t, 90.00, b.PriceAfterDiscount, 1e-9)
	assert.InDelta(t, 4.50, b.TaxAmount, 1e-9)
	assert.InDelta(t, 94.50, b.Total, 1e-9)
}

func TestCompute_PrecomputedTotalWins(t *testing.T) {
	b := Compute(models.Plan{Price: 100, Discount: 10, TaxPercent: 5, TotalPrice: ptr(75)})
	assert.Equal(t, 75.0, b.Total)

	b = Compute(models.Plan{Price: 100, TotalPrice: ptr(0)})
	assert.Equal(t, 0.0, b.Total)
}

func TestCompute_NoDiscountNoTax(t *testing.T) {
	b := Compute(models.Plan{Price: 49.99})
	assert.Equal(t, 0.0, b.DiscountAmount)
	assert.Equal(t, 0.0, b.TaxAmount)
	assert.InDelta(t, 49.99, b.Total, 1e-9)
}

func TestCardPrice(t *testing.T) {
	assert.Equal(t, 75.0, CardPrice(models.Plan{Price: 100, TotalPrice: ptr(75)}))
	assert.Equal(t, 100.0, CardPrice(models.Plan{Price: 100}))
	assert.Equal(t, 100.0, CardPrice(models.Plan{Price: 100, TotalPrice: ptr(0)}))
	assert.Equal(t, 0.0, CardPrice(models.Plan{}))
}
