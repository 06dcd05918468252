package naturesite

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Base stylesheet shipped with the engine. Sites can layer their own CSS on
// top from their static dir.
//
//go:embed embedded/site.css
var siteCSS []byte

func (a *App) handleStylesheet(c echo.Context) error {
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", siteCSS)
}
