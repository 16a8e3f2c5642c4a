package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/EhtashamulIslam/FitnessZone/internal/catalog"
	"github.com/EhtashamulIslam/FitnessZone/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AddToCart: POST /cart. The item is rebuilt from the current document; prices sent by
// the browser are never used.
func (h *Handler) AddToCart(c *fiber.Ctx) error {
	var f addToCartForm
	if err := c.BodyParser(&f); err != nil {
		return renderError(c, fiber.StatusBadRequest, "invalid form data")
	}
	if err := h.validate.Struct(f); err != nil {
		return renderError(c, fiber.StatusBadRequest, err.Error())
	}

	ctx, cancel := h.viewContext(c)
	defer cancel()

	item, err := h.itemFor(ctx, f.ID, f.View)
	if err != nil {
		h.log.Warn("add to cart failed", zap.String("plan_id", f.ID), zap.Error(err))
		return renderError(c, statusFor(err), err.Error())
	}

	ct, sess, err := h.loadCart(c)
	if err != nil {
		return err
	}
	if ct.Add(item) {
		if err := h.saveCart(sess, ct); err != nil {
			return err
		}
		h.log.Info("plan added to cart", zap.String("plan_id", f.ID), zap.Int("items", ct.Len()))
	}
	return c.Redirect(returnPath(f.ReturnTo, "/"), fiber.StatusSeeOther)
}

// itemFor builds the cart item the way the originating page prices it:
// the detail page charges the breakdown total, the catalog the card price.
func (h *Handler) itemFor(ctx context.Context, id, view string) (models.CartItem, error) {
	if view == "detail" {
		dv := catalog.NewDetailView(id)
		dv.Load(ctx, h.loader)
		if dv.State != catalog.Ready {
			return models.CartItem{}, viewErr(ctx, dv.Err)
		}
		return dv.CartItem(), nil
	}

	cv := catalog.NewCatalogView()
	cv.Load(ctx, h.loader)
	if cv.State == catalog.Error || cv.State == catalog.Loading {
		return models.CartItem{}, viewErr(ctx, cv.Err)
	}
	card, err := cv.Card(id)
	if err != nil {
		return models.CartItem{}, err
	}
	return card.CartItem(), nil
}

// viewErr is the error of a view that did not reach Ready. A view left in Loading was cut
// off by its context, which a rendered page must report instead of a spinner.
func viewErr(ctx context.Context, err error) error {
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		return fmt.Errorf("pricing data not loaded in time: %w", ctx.Err())
	}
	return errors.New("pricing data unavailable")
}

// RemoveFromCart: POST /cart/:id/remove
func (h *Handler) RemoveFromCart(c *fiber.Ctx) error {
	id := models.PlanID(planIDParam(c))

	ct, sess, err := h.loadCart(c)
	if err != nil {
		return err
	}
	if ct.Remove(id) {
		if err := h.saveCart(sess, ct); err != nil {
			return err
		}
		h.log.Info("plan removed from cart", zap.String("plan_id", id.String()), zap.Int("items", ct.Len()))
	}
	return c.Redirect(returnPath(c.FormValue("return_to"), "/"), fiber.StatusSeeOther)
}

// Checkout: POST /checkout, hands the cart to the checkout hook.
func (h *Handler) Checkout(c *fiber.Ctx) error {
	ct, _, err := h.loadCart(c)
	if err != nil {
		return err
	}
	if err := h.checkout(c.UserContext(), ct.Items()); err != nil {
		if !errors.Is(err, ErrCheckoutNotImplemented) {
			h.log.Error("checkout failed", zap.Error(err))
		}
		return renderError(c, statusFor(err), capitalize(err.Error()))
	}
	return c.Redirect(returnPath(c.FormValue("return_to"), "/"), fiber.StatusSeeOther)
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
