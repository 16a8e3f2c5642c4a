package catalog

import (
	"context"

	"github.com/EhtashamulIslam/FitnessZone/internal/cart"
	"github.com/EhtashamulIslam/FitnessZone/internal/models"
	"github.com/EhtashamulIslam/FitnessZone/internal/pricing"
)

// DetailView: one plan with its price breakdown.
type DetailView struct {
	State     State
	Err       error
	ID        string
	Currency  string
	Plan      *models.Plan
	Breakdown pricing.Breakdown
}

func NewDetailView(id string) *DetailView {
	return &DetailView{State: Loading, ID: id, Currency: cart.DefaultCurrency}
}

// Load reads the document and looks up the view's plan. A missing plan ends in the
// Error state with a *pricing.NotFoundError.
func (v *DetailView) Load(ctx context.Context, l DocumentLoader) {
	doc, err := l.Load(ctx)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		v.State, v.Err = Error, err
		return
	}
	if doc.Currency != "" {
		v.Currency = doc.Currency
	}
	plan, err := pricing.FindPlan(doc, v.ID)
	if err != nil {
		v.State, v.Err = Error, err
		return
	}
	v.Plan = plan
	v.Breakdown = pricing.Compute(*plan)
	v.State = Ready
}

// CartItem is what "add to cart" puts into the cart: the plan at its breakdown total.
func (v *DetailView) CartItem() models.CartItem {
	if v.Plan == nil {
		return models.CartItem{}
	}
	return models.CartItem{
		ID:         v.Plan.ID,
		PlanName:   v.Plan.PlanName,
		TotalPrice: v.Breakdown.Total,
		Currency:   v.Currency,
		Raw:        *v.Plan,
	}
}

func (v *DetailView) Message() string {
	if v.Err == nil {
		return ""
	}
	return v.Err.Error()
}

// GroupClasses renders the flag as Yes/No.
func (v *DetailView) GroupClasses() string {
	if v.Plan != nil && v.Plan.GroupClasses {
		return "Yes"
	}
	return "No"
}
