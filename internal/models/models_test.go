package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanID_StringAndNumber(t *testing.T) {
	var doc PricingDocument
	err := json.Unmarshal([]byte(`{"currency":"EUR","pricingOptions":[{"id":3},{"id":"gold"},{"id":1.5}]}`), &doc)
	require.NoError(t, err)
	require.Len(t, doc.PricingOptions, 3)

	assert.Equal(t, PlanID("3"), doc.PricingOptions[0].ID)
	assert.Equal(t, PlanID("gold"), doc.PricingOptions[1].ID)
	assert.Equal(t, PlanID("1.5"), doc.PricingOptions[2].ID)
}

func TestPlan_Defaults(t *testing.T) {
	var p Plan
	require.NoError(t, json.Unmarshal([]byte(`{"id":"a","price":20,"totalPrice":null}`), &p))

	assert.Zero(t, p.Discount)
	assert.Zero(t, p.TaxPercent)
	assert.Nil(t, p.TotalPrice)
	assert.Nil(t, p.Features)
	assert.Equal(t, "N/A", p.Locations.String())
}

func TestLocations(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"list", `{"locations":["Downtown","Uptown"]}`, "Downtown, Uptown"},
		{"single string", `{"locations":"Main street"}`, "Main street"},
		{"empty string", `{"locations":""}`, "N/A"},
		{"missing", `{}`, "N/A"},
		{"empty list", `{"locations":[]}`, ""},
		{"number", `{"locations":3}`, "3"},
		{"boolean", `{"locations":true}`, "true"},
		{"object", `{"locations":{"city":"Oslo"}}`, "N/A"},
		{"null", `{"locations":null}`, "N/A"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p Plan
			require.NoError(t, json.Unmarshal([]byte(tc.in), &p))
			assert.Equal(t, tc.want, p.Locations.String())
		})
	}
}

func TestStringList_NonArrayIsAbsent(t *testing.T) {
	var p Plan
	require.NoError(t, json.Unmarshal([]byte(`{"features":"sauna","perks":["towel"]}`), &p))

	assert.Nil(t, p.Features)
	assert.Equal(t, StringList{"towel"}, p.Perks)
}
