// Package catalog builds the view models of the catalog page and the plan detail page.
//
// A view starts in Loading and moves to Error, Empty or Ready once its document load
// returns. The result is applied only while the view's context is live: a view whose
// request is gone keeps its Loading state and never sees the late data.
package catalog

import (
	"context"
	"net/url"

	"github.com/EhtashamulIslam/FitnessZone/internal/models"
	"github.com/EhtashamulIslam/FitnessZone/internal/pricing"
)

type State int

const (
	Loading State = iota
	Error
	Empty
	Ready
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Error:
		return "error"
	case Empty:
		return "empty"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// DocumentLoader is satisfied by *pricing.Loader.
type DocumentLoader interface {
	Load(ctx context.Context) (*models.PricingDocument, error)
}

const (
	descriptionLimit = 140
	cardFeatures     = 3
)

// PlanCard is one plan as shown in the catalog grid.
type PlanCard struct {
	ID            string
	Name          string
	Type          string
	ImageURL      string
	Currency      string
	Price         float64
	JoinPrice     float64
	BillingCycle  string
	Description   string
	Features      []string
	TrainerAccess string
	OpeningHours  string
	Recommended   bool
	DetailURL     string

	raw models.Plan
}

func newCard(p models.Plan, currency string) PlanCard {
	features := []string(p.Features)
	if len(features) > cardFeatures {
		features = features[:cardFeatures]
	}
	return PlanCard{
		ID:            p.ID.String(),
		Name:          p.PlanName,
		Type:          p.PlanType,
		ImageURL:      p.ImageURL,
		Currency:      currency,
		Price:         p.Price,
		JoinPrice:     pricing.CardPrice(p),
		BillingCycle:  p.BillingCycle,
		Description:   truncate(p.Description, descriptionLimit),
		Features:      features,
		TrainerAccess: p.TrainerAccess,
		OpeningHours:  p.OpeningHours,
		Recommended:   p.Recommended,
		DetailURL:     "/plans/" + url.PathEscape(p.ID.String()),
		raw:           p,
	}
}

// CartItem is what the "join" action puts into the cart.
func (c PlanCard) CartItem() models.CartItem {
	return models.CartItem{
		ID:         c.raw.ID,
		PlanName:   c.raw.PlanName,
		TotalPrice: c.JoinPrice,
		Currency:   c.Currency,
		Raw:        c.raw,
	}
}

// CatalogView: all plans of the document as cards.
type CatalogView struct {
	State    State
	Err      error
	Currency string
	Cards    []PlanCard
}

func NewCatalogView() *CatalogView {
	return &CatalogView{State: Loading}
}

// Load reads the document once and moves the view out of Loading.
func (v *CatalogView) Load(ctx context.Context, l DocumentLoader) {
	doc, err := l.Load(ctx)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		v.State, v.Err = Error, err
		return
	}
	v.Currency = doc.Currency
	if len(doc.PricingOptions) == 0 {
		v.State = Empty
		return
	}
	v.Cards = make([]PlanCard, 0, len(doc.PricingOptions))
	for _, p := range doc.PricingOptions {
		v.Cards = append(v.Cards, newCard(p, v.Currency))
	}
	v.State = Ready
}

// Card returns the card of the plan with the given id.
func (v *CatalogView) Card(id string) (PlanCard, error) {
	for _, c := range v.Cards {
		if c.ID == id {
			return c, nil
		}
	}
	return PlanCard{}, &pricing.NotFoundError{ID: id}
}

func (v *CatalogView) Message() string {
	if v.Err == nil {
		return ""
	}
	return v.Err.Error()
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
