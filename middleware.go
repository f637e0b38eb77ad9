package galleria

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func (a *App) setupMiddleware() {
	e := a.Echo

	e.IPExtractor = echo.ExtractIPFromXFFHeader(
		echo.TrustLoopback(true),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(true),
	)

	e.HTTPErrorHandler = a.httpErrorHandler

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			c.Logger().Infof("%s %s -> %d (%s)", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))

	e.Use(middleware.Recover())

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			// Image bytes don't compress; only gzip the HTML pages.
			return !isPagePath(c.Request().URL.Path)
		},
	}))

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'; style-src 'self'; img-src 'self' data:",
	}))

	e.Use(a.titleParam)
	e.Use(a.cacheControl)
	if a.Stats != nil {
		e.Use(a.recordViews)
	}
}

// titleParam applies the title query parameter side effect: any request
// carrying ?title= overwrites the persisted gallery title before its
// handler runs.
func (a *App) titleParam(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.QueryParams().Has("title") {
			if err := a.Settings.SetTitle(c.QueryParam("title")); err != nil {
				return err
			}
		}
		return next(c)
	}
}

// cacheControl sets Cache-Control headers based on the request path.
// Stylesheets are loaded once at boot, so they cache long; HTML pages
// must reflect uploads and title changes immediately.
func (a *App) cacheControl(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		switch {
		case path == "/gallery.css" || path == "/detail/details.css":
			c.Response().Header().Set("Cache-Control", "public, max-age=86400")
		case isPagePath(path) || path == "/stats":
			c.Response().Header().Set("Cache-Control", "no-cache")
		default:
			c.Response().Header().Set("Cache-Control", "public, max-age=3600")
		}
		return next(c)
	}
}

// recordViews counts GET requests for the HTML pages. Best effort: a
// failed insert is logged, never surfaced.
func (a *App) recordViews(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		if c.Request().Method == http.MethodGet && isPagePath(path) {
			if err := a.Stats.Record(path); err != nil {
				c.Logger().Errorf("record view %s: %v", path, err)
			}
		}
		return next(c)
	}
}

// isPagePath reports whether path is one of the rendered HTML pages.
func isPagePath(path string) bool {
	if path == "/" || path == "/gallery" {
		return true
	}
	return strings.HasPrefix(path, "/detail/") && path != "/detail/details.css"
}
