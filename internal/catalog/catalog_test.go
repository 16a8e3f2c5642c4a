package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/EhtashamulIslam/FitnessZone/internal/models"
	"github.com/EhtashamulIslam/FitnessZone/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoader struct {
	doc *models.PricingDocument
	err error
}

func (f fakeLoader) Load(context.Context) (*models.PricingDocument, error) {
	return f.doc, f.err
}

func ptr(f float64) *float64 { return &f }

func testDoc() *models.PricingDocument {
	return &models.PricingDocument{
		Currency: "EUR",
		PricingOptions: []models.Plan{
			{
				ID: "1", PlanName: "Basic", PlanType: "Monthly", Price: 100, Discount: 10, TaxPercent: 5,
				Features:    models.StringList{"Gym floor", "Lockers", "Showers", "Sauna"},
				Recommended: true,
			},
			{ID: "2", PlanName: "Gold", Price: 200, TotalPrice: ptr(75), GroupClasses: true},
		},
	}
}

func TestCatalogView_Ready(t *testing.T) {
	v := NewCatalogView()
	require.Equal(t, Loading, v.State)

	v.Load(context.Background(), fakeLoader{doc: testDoc()})

	require.Equal(t, Ready, v.State)
	require.Len(t, v.Cards, 2)
	basic := v.Cards[0]
	assert.Equal(t, []string{"Gym floor", "Lockers", "Showers"}, basic.Features)
	assert.True(t, basic.Recommended)
	assert.Equal(t, "/plans/1", basic.DetailURL)
	assert.Equal(t, 100.0, basic.JoinPrice)
	assert.Equal(t, 75.0, v.Cards[1].JoinPrice)
}

func TestPlanCard_DetailURLEscapesID(t *testing.T) {
	doc := &models.PricingDocument{PricingOptions: []models.Plan{
		{ID: "gold plan"}, {ID: "50%off"}, {ID: "a/b"},
	}}
	v := NewCatalogView()
	v.Load(context.Background(), fakeLoader{doc: doc})
	require.Equal(t, Ready, v.State)

	assert.Equal(t, "/plans/gold%20plan", v.Cards[0].DetailURL)
	assert.Equal(t, "/plans/50%25off", v.Cards[1].DetailURL)
	assert.Equal(t, "/plans/a%2Fb", v.Cards[2].DetailURL)
	assert.Equal(t, "gold plan", v.Cards[0].ID)
}

func TestCatalogView_EmptyDocument(t *testing.T) {
	v := NewCatalogView()
	v.Load(context.Background(), fakeLoader{doc: &models.PricingDocument{Currency: "USD", PricingOptions: []models.Plan{}}})
	assert.Equal(t, Empty, v.State)

	v = NewCatalogView()
	v.Load(context.Background(), fakeLoader{doc: &models.PricingDocument{}})
	assert.Equal(t, Empty, v.State)
}

func TestCatalogView_Error(t *testing.T) {
	v := NewCatalogView()
	v.Load(context.Background(), fakeLoader{err: &pricing.FetchError{Status: 500}})

	assert.Equal(t, Error, v.State)
	assert.Contains(t, v.Message(), "status 500")
}

func TestCatalogView_IgnoresResultAfterTeardown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v := NewCatalogView()
	v.Load(ctx, fakeLoader{doc: testDoc()})

	assert.Equal(t, Loading, v.State)
	assert.Nil(t, v.Cards)
}

func TestPlanCard_CartItem(t *testing.T) {
	v := NewCatalogView()
	v.Load(context.Background(), fakeLoader{doc: testDoc()})

	card, err := v.Card("2")
	require.NoError(t, err)
	it := card.CartItem()
	assert.Equal(t, models.PlanID("2"), it.ID)
	assert.Equal(t, "Gold", it.PlanName)
	assert.Equal(t, 75.0, it.TotalPrice)
	assert.Equal(t, "EUR", it.Currency)
	assert.Equal(t, "Gold", it.Raw.PlanName)

	_, err = v.Card("999")
	var nf *pricing.NotFoundError
	assert.True(t, errors.As(err, &nf))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	long := strings.Repeat("é", 200)
	got := truncate(long, descriptionLimit)
	assert.Equal(t, descriptionLimit, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))
}
