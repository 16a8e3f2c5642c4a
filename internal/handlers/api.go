package handlers

import (
	"github.com/EhtashamulIslam/FitnessZone/internal/catalog"
	"github.com/EhtashamulIslam/FitnessZone/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetCartJSON: GET /api/cart
func (h *Handler) GetCartJSON(c *fiber.Ctx) error {
	ct, _, err := h.loadCart(c)
	if err != nil {
		return h.jsonError(c, fiber.StatusInternalServerError, "Could not read the cart", err)
	}
	return jsonOK(c, fiber.Map{"cart": newCartView(ct)})
}

// DeleteCartItemJSON: DELETE /api/cart/:id
func (h *Handler) DeleteCartItemJSON(c *fiber.Ctx) error {
	ct, sess, err := h.loadCart(c)
	if err != nil {
		return h.jsonError(c, fiber.StatusInternalServerError, "Could not read the cart", err)
	}
	removed := ct.Remove(models.PlanID(planIDParam(c)))
	if removed {
		if err := h.saveCart(sess, ct); err != nil {
			return h.jsonError(c, fiber.StatusInternalServerError, "Could not save the cart", err)
		}
	}
	return jsonOK(c, fiber.Map{"removed": removed, "cart": newCartView(ct)})
}

// GetPlanJSON: GET /api/plans/:id, the plan with its breakdown
func (h *Handler) GetPlanJSON(c *fiber.Ctx) error {
	ctx, cancel := h.viewContext(c)
	defer cancel()

	view := catalog.NewDetailView(planIDParam(c))
	view.Load(ctx, h.loader)
	if view.State != catalog.Ready {
		err := viewErr(ctx, view.Err)
		status := statusFor(err)
		msg := "Could not load pricing data"
		if status == fiber.StatusNotFound {
			msg = "Plan not found"
		}
		return h.jsonError(c, status, msg, err)
	}

	b := view.Breakdown
	return jsonOK(c, fiber.Map{
		"currency": view.Currency,
		"plan":     view.Plan,
		"breakdown": fiber.Map{
			"price":              b.Price,
			"discountPercent":    b.DiscountPercent,
			"discountAmount":     b.DiscountAmount,
			"priceAfterDiscount": b.PriceAfterDiscount,
			"taxPercent":         b.TaxPercent,
			"taxAmount":          b.TaxAmount,
			"total":              b.Total,
		},
	})
}
