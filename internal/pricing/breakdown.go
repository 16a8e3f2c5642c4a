package pricing

import "github.com/EhtashamulIslam/FitnessZone/internal/models"

// Breakdown is the price/discount/tax/total decomposition of one plan.
type Breakdown struct {
	Price              float64
	DiscountPercent    float64
	DiscountAmount     float64
	PriceAfterDiscount float64
	TaxPercent         float64
	TaxAmount          float64
	Total              float64
}

// Compute derives the breakdown. A precomputed TotalPrice always wins over the computed one.
func Compute(p models.Plan) Breakdown {
	b := Breakdown{
		Price:           p.Price,
		DiscountPercent: p.Discount,
		TaxPercent:      p.TaxPercent,
	}
	b.DiscountAmount = b.Price * b.DiscountPercent / 100
	b.PriceAfterDiscount = b.Price - b.DiscountAmount
	b.TaxAmount = b.PriceAfterDiscount * b.TaxPercent / 100
	if p.TotalPrice != nil {
		b.Total = *p.TotalPrice
	} else {
		b.Total = b.PriceAfterDiscount + b.TaxAmount
	}
	return b
}

// CardPrice is the price charged by the catalog "join" action:
// a non-zero TotalPrice, otherwise Price.
func CardPrice(p models.Plan) float64 {
	if p.TotalPrice != nil && *p.TotalPrice != 0 {
		return *p.TotalPrice
	}
	return p.Price
}
