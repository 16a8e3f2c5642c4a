package handlers

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// addToCartForm: body of POST /cart
type addToCartForm struct {
	ID       string `form:"id" validate:"required,max=64"`
	View     string `form:"view" validate:"omitempty,oneof=catalog detail"`
	ReturnTo string `form:"return_to" validate:"omitempty,localpath"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	// registration only fails for an empty tag or a nil func
	_ = v.RegisterValidation("localpath", func(fl validator.FieldLevel) bool {
		return isLocalPath(fl.Field().String())
	})
	return v
}

// isLocalPath accepts only same-site absolute paths, so redirects never leave the site.
func isLocalPath(p string) bool {
	if !strings.HasPrefix(p, "/") {
		return false
	}
	return !strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "/\\")
}

func returnPath(p, fallback string) string {
	if isLocalPath(p) {
		return p
	}
	return fallback
}
