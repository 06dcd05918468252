package naturesite

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// handleAdminAnalytics returns a JSON summary of recent page views for the
// dashboard. Registered only when analytics is enabled.
func (a *App) handleAdminAnalytics(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	days := 30
	summary, err := a.analyticsStore.Summary(days)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
