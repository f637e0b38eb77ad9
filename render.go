package galleria

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
)

// render writes a template as an HTTP 200 HTML response.
func (a *App) render(c echo.Context, name string, data any) error {
	return a.renderStatus(c, http.StatusOK, name, data)
}

// renderStatus writes a template with a specific HTTP status code. The
// template executes into a buffer first, so a render error surfaces as a
// 500 instead of a half-written page with a committed status.
func (a *App) renderStatus(c echo.Context, code int, name string, data any) error {
	var buf bytes.Buffer
	if err := a.templates.Render(&buf, name, data); err != nil {
		return err
	}
	return c.HTMLBlob(code, buf.Bytes())
}
