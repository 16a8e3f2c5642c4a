package handlers

import (
	"github.com/EhtashamulIslam/FitnessZone/internal/cart"
	"github.com/EhtashamulIslam/FitnessZone/internal/catalog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Home: catalog of all plans plus the visitor's cart
func (h *Handler) Home(c *fiber.Ctx) error {
	ctx, cancel := h.viewContext(c)
	defer cancel()

	view := catalog.NewCatalogView()
	view.Load(ctx, h.loader)
	if view.State == catalog.Loading {
		view.State, view.Err = catalog.Error, viewErr(ctx, nil)
	}
	if view.State == catalog.Error {
		h.log.Warn("catalog load failed", zap.Error(view.Err))
		c.Status(statusFor(view.Err))
	}

	ct, _, err := h.loadCart(c)
	if err != nil {
		h.log.Error("session read failed", zap.Error(err))
		ct = cart.New()
	}

	return c.Render("catalog", fiber.Map{
		"Title":    "FitZone Pricing",
		"Catalog":  view,
		"Cart":     newCartView(ct),
		"ReturnTo": "/",
	})
}
