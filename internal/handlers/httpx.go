package handlers

import (
	"context"
	"errors"

	"github.com/EhtashamulIslam/FitnessZone/internal/pricing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const problemBase = "urn:fitzone:problem:"

// statusFor maps an error to the HTTP status of the page or API response.
func statusFor(err error) int {
	var (
		nf   *pricing.NotFoundError
		fe   *pricing.FetchError
		wc   *pricing.WrongContentError
		pe   *pricing.ParseError
		ve   validator.ValidationErrors
		fErr *fiber.Error
	)
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.As(err, &nf):
		return fiber.StatusNotFound
	case errors.As(err, &fe), errors.As(err, &wc), errors.As(err, &pe):
		return fiber.StatusBadGateway
	case errors.As(err, &ve):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrCheckoutNotImplemented):
		return fiber.StatusNotImplemented
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout
	case errors.As(err, &fErr):
		return fErr.Code
	default:
		return fiber.StatusInternalServerError
	}
}

// problemCode returns the suffix of the Problem Details "type" URN.
func problemCode(err error, status int) string {
	var (
		nf *pricing.NotFoundError
		fe *pricing.FetchError
		wc *pricing.WrongContentError
		pe *pricing.ParseError
	)
	switch {
	case errors.As(err, &nf):
		return "not-found"
	case errors.As(err, &fe):
		return "fetch-failed"
	case errors.As(err, &wc):
		return "wrong-content"
	case errors.As(err, &pe):
		return "parse-failed"
	case errors.Is(err, ErrCheckoutNotImplemented):
		return "not-implemented"
	}
	switch status {
	case fiber.StatusBadRequest:
		return "validation-error"
	case fiber.StatusNotFound:
		return "not-found"
	default:
		return "internal-error"
	}
}

// jsonError: error answer in RFC 7807 form (application/problem+json).
func (h *Handler) jsonError(c *fiber.Ctx, status int, publicMsg string, err error) error {
	if status >= fiber.StatusInternalServerError {
		h.log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	}
	if publicMsg == "" {
		publicMsg = fiber.ErrInternalServerError.Message
	}
	problem := fiber.Map{
		"type":     problemBase + problemCode(err, status),
		"title":    publicMsg,
		"status":   status,
		"instance": c.OriginalURL(),
	}
	if err != nil {
		problem["detail"] = err.Error()
	}
	if err := c.Status(status).JSON(problem); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return nil
}

func jsonOK(c *fiber.Ctx, payload fiber.Map) error {
	if payload == nil {
		payload = fiber.Map{}
	}
	return c.JSON(payload)
}

// renderError shows the plain-text error page.
func renderError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).Render("error", fiber.Map{
		"Title":   "Error",
		"Status":  status,
		"Message": msg,
	})
}

// ErrorHandler renders errors that escaped a handler with the error page.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := statusFor(err)
		if status >= fiber.StatusInternalServerError {
			log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		}
		if rerr := renderError(c, status, err.Error()); rerr != nil {
			return c.Status(status).SendString(err.Error())
		}
		return nil
	}
}
