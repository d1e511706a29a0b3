package showcase

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/showcase/views"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, a.Views.AdminLogin(a.site(), false, CsrfToken(c)))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	return Render(c, a.Views.AdminLogin(a.site(), true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminReindex(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	n, err := a.Reindex(c.Request().Context())
	if err != nil {
		a.Logger.Error("admin reindex", zap.Error(err))
		return a.renderAdminDashboard(c, "Reindex failed: "+err.Error())
	}
	return a.renderAdminDashboard(c, fmt.Sprintf("Indexed %d examples.", n))
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	count := 0
	if a.Store != nil {
		n, err := a.Store.CountExamples(c.Request().Context())
		if err != nil {
			return err
		}
		count = n
	}
	last := ""
	if t := a.LastIndexed(); !t.IsZero() {
		last = t.UTC().Format(time.RFC3339)
	}
	return Render(c, a.Views.AdminDashboard(views.AdminDashboardPage{
		Site:        a.site(),
		Examples:    count,
		LastIndexed: last,
		Message:     msg,
		CSRFToken:   CsrfToken(c),
	}))
}
