package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// PricingDocument: the whole pricing dataset (PricingData.json)
type PricingDocument struct {
	Currency       string `json:"currency"`
	PricingOptions []Plan `json:"pricingOptions"`
}

// Plan is one purchasable tier. Read-only once loaded.
type Plan struct {
	ID            PlanID     `json:"id"`
	PlanName      string     `json:"planName"`
	PlanType      string     `json:"planType"`
	Duration      string     `json:"duration"`
	BillingCycle  string     `json:"billingCycle"`
	Description   string     `json:"description"`
	ImageURL      string     `json:"imageUrl"`
	Price         float64    `json:"price"`
	Discount      float64    `json:"discount"`   // percent
	TaxPercent    float64    `json:"taxPercent"` // percent
	TotalPrice    *float64   `json:"totalPrice,omitempty"`
	Recommended   bool       `json:"recommended"`
	Features      StringList `json:"features"`
	Perks         StringList `json:"perks"`
	Locations     Locations  `json:"locations"`
	TrainerAccess string     `json:"trainerAccess"`
	GroupClasses  bool       `json:"groupClasses"`
	OpeningHours  string     `json:"openingHours"`
}

// CartItem: snapshot of a plan taken when it was added to the cart
type CartItem struct {
	ID         PlanID  `json:"id"`
	PlanName   string  `json:"planName"`
	TotalPrice float64 `json:"totalPrice"`
	Currency   string  `json:"currency"`
	Raw        Plan    `json:"raw"`
}

// PlanID accepts both JSON strings and numbers; ids are always compared as strings.
type PlanID string

func (id *PlanID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = PlanID(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = PlanID(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}

func (id PlanID) String() string { return string(id) }

// StringList is a list of display strings. Anything that is not an array of strings
// decodes to nil, so a malformed list only hides that list.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		*l = nil
		return nil
	}
	*l = out
	return nil
}

// Locations holds either a list of locations or a single location string. Other scalars
// (a number, a boolean) are kept as their JSON text; objects and malformed lists decode to
// nil, the same tolerance StringList has.
type Locations []string

func (l *Locations) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if c := data[0]; c == '-' || (c >= '0' && c <= '9') || c == 't' || c == 'f' {
		*l = Locations{string(data)}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*l = nil
		} else {
			*l = Locations{s}
		}
		return nil
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		*l = nil
		return nil
	}
	if out == nil {
		*l = nil
		return nil
	}
	*l = Locations(out)
	return nil
}

// String joins the locations with ", " or returns "N/A" when none were given.
func (l Locations) String() string {
	if l == nil {
		return "N/A"
	}
	return strings.Join(l, ", ")
}
