// Package cart holds the ordered, id-unique list of plans a visitor has picked.
package cart

import "github.com/EhtashamulIslam/FitnessZone/internal/models"

// DefaultCurrency labels totals of items that carry no currency.
const DefaultCurrency = "USD"

// Cart keeps insertion order and at most one item per id.
// The zero value is an empty cart ready to use.
type Cart struct {
	items []models.CartItem
}

// New builds a cart from items, dropping later duplicates.
func New(items ...models.CartItem) *Cart {
	c := &Cart{}
	for _, it := range items {
		c.Add(it)
	}
	return c
}

// Add appends item unless an item with the same id is already present.
// The existing entry is kept as is; it reports whether the cart changed.
func (c *Cart) Add(item models.CartItem) bool {
	if c.Contains(item.ID) {
		return false
	}
	c.items = append(c.items, item)
	return true
}

// Remove drops the item with the given id; it reports whether the cart changed.
func (c *Cart) Remove(id models.PlanID) bool {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Contains(id models.PlanID) bool {
	for i := range c.items {
		if c.items[i].ID == id {
			return true
		}
	}
	return false
}

// Items returns a copy of the cart contents in insertion order.
func (c *Cart) Items() []models.CartItem {
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int { return len(c.items) }

func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

// Sum is the plain sum of TotalPrice over all items, currencies ignored.
func (c *Cart) Sum() float64 {
	var sum float64
	for _, it := range c.items {
		sum += it.TotalPrice
	}
	return sum
}

// Total is the amount owed in one currency.
type Total struct {
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
}

// Totals sums prices per currency, in the order currencies first appear.
// Items without a currency count as DefaultCurrency.
func (c *Cart) Totals() []Total {
	var out []Total
	idx := map[string]int{}
	for _, it := range c.items {
		cur := it.Currency
		if cur == "" {
			cur = DefaultCurrency
		}
		i, ok := idx[cur]
		if !ok {
			i = len(out)
			idx[cur] = i
			out = append(out, Total{Currency: cur})
		}
		out[i].Amount += it.TotalPrice
	}
	return out
}
