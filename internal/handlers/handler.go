package handlers

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/EhtashamulIslam/FitnessZone/internal/catalog"
	"github.com/EhtashamulIslam/FitnessZone/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"
)

// ErrCheckoutNotImplemented is what the default checkout hook returns.
var ErrCheckoutNotImplemented = errors.New("proceed to checkout (not implemented)")

// CheckoutFunc receives the cart contents when the visitor presses "Checkout".
type CheckoutFunc func(ctx context.Context, items []models.CartItem) error

func notImplementedCheckout(context.Context, []models.CartItem) error {
	return ErrCheckoutNotImplemented
}

// Deps: everything the shell needs. Loader and Sessions are required.
type Deps struct {
	Loader      catalog.DocumentLoader
	Sessions    *session.Store
	Log         *zap.Logger
	Checkout    CheckoutFunc
	LoadTimeout time.Duration
}

// Handler is the application shell: it owns the per-session carts and hands the
// add/remove actions to the catalog and detail pages.
type Handler struct {
	loader      catalog.DocumentLoader
	sessions    *session.Store
	log         *zap.Logger
	validate    *validator.Validate
	checkout    CheckoutFunc
	loadTimeout time.Duration
}

func New(d Deps) *Handler {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Checkout == nil {
		d.Checkout = notImplementedCheckout
	}
	d.Sessions.RegisterType([]models.CartItem{})

	return &Handler{
		loader:      d.Loader,
		sessions:    d.Sessions,
		log:         d.Log,
		validate:    newValidator(),
		checkout:    d.Checkout,
		loadTimeout: d.LoadTimeout,
	}
}

// Register mounts the pages, the cart actions and the JSON API.
func (h *Handler) Register(r fiber.Router) {
	// pages
	r.Get("/", h.Home)
	r.Get("/plans/:id", h.PlanDetails)

	// cart actions
	r.Post("/cart", h.AddToCart)
	r.Post("/cart/:id/remove", h.RemoveFromCart)
	r.Post("/checkout", h.Checkout)

	// API
	api := r.Group("/api")
	api.Get("/cart", h.GetCartJSON)
	api.Delete("/cart/:id", h.DeleteCartItemJSON)
	api.Get("/plans/:id", h.GetPlanJSON)
}

// viewContext scopes one view's lifetime to the request: it is cancelled when the
// handler returns, so late load results are discarded.
func (h *Handler) viewContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	if h.loadTimeout > 0 {
		return context.WithTimeout(c.UserContext(), h.loadTimeout)
	}
	return context.WithCancel(c.UserContext())
}

// planIDParam returns the :id segment unescaped. Pages write ids with url.PathEscape, and
// fiber hands params over still escaped.
func planIDParam(c *fiber.Ctx) string {
	raw := c.Params("id")
	if id, err := url.PathUnescape(raw); err == nil {
		return id
	}
	return raw
}
