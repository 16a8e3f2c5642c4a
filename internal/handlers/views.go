package handlers

import (
	"net/url"
	"strconv"

	"github.com/gofiber/template/html/v2"
)

// BaseLayout wraps every page.
const BaseLayout = "layouts/base"

// NewViews creates the template engine with the helpers the pages use.
func NewViews(dir string) *html.Engine {
	engine := html.New(dir, ".html")
	engine.AddFunc("money", money)
	engine.AddFunc("percent", percent)
	engine.AddFunc("pathEscape", url.PathEscape)
	return engine
}

// money formats an amount with two decimals.
func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// percent prints a rate without trailing zeros: 10, 7.5.
func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
