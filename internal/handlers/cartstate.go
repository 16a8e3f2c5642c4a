package handlers

import (
	"github.com/EhtashamulIslam/FitnessZone/internal/cart"
	"github.com/EhtashamulIslam/FitnessZone/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const cartKey = "cart"

// cartView: what the cart partial renders.
type cartView struct {
	Items  []models.CartItem `json:"items"`
	Totals []cart.Total      `json:"totals"`
	Empty  bool              `json:"empty"`
	Count  int               `json:"count"`
}

func newCartView(ct *cart.Cart) cartView {
	return cartView{
		Items:  ct.Items(),
		Totals: ct.Totals(),
		Empty:  ct.IsEmpty(),
		Count:  ct.Len(),
	}
}

// loadCart returns a private copy of the session's cart. Changes take effect only
// after saveCart.
func (h *Handler) loadCart(c *fiber.Ctx) (*cart.Cart, *session.Session, error) {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return nil, nil, err
	}
	items, _ := sess.Get(cartKey).([]models.CartItem)
	return cart.New(items...), sess, nil
}

func (h *Handler) saveCart(sess *session.Session, ct *cart.Cart) error {
	sess.Set(cartKey, ct.Items())
	return sess.Save()
}
