package handlers

import (
	"net/url"

	"github.com/EhtashamulIslam/FitnessZone/internal/catalog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PlanDetails: one plan with its price breakdown
func (h *Handler) PlanDetails(c *fiber.Ctx) error {
	id := planIDParam(c)

	ctx, cancel := h.viewContext(c)
	defer cancel()

	view := catalog.NewDetailView(id)
	view.Load(ctx, h.loader)
	if view.State == catalog.Loading {
		view.State, view.Err = catalog.Error, viewErr(ctx, nil)
	}
	if view.State == catalog.Error {
		h.log.Warn("plan load failed", zap.String("plan_id", id), zap.Error(view.Err))
		c.Status(statusFor(view.Err))
	}

	title := "Plan details"
	if view.Plan != nil {
		title = view.Plan.PlanName
	}
	return c.Render("plan", fiber.Map{
		"Title":    title,
		"Detail":   view,
		"Back":     backURL(c),
		"ReturnTo": c.Path(),
	})
}

// backURL is the page the visitor came from when it is on this site, otherwise "/".
func backURL(c *fiber.Ctx) string {
	ref := c.Get(fiber.HeaderReferer)
	if ref == "" {
		return "/"
	}
	u, err := url.Parse(ref)
	if err != nil || u.Host != c.Hostname() {
		return "/"
	}
	return returnPath(u.RequestURI(), "/")
}
