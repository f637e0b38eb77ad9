package galleria

import (
	"errors"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
)

func (a *App) handleGallery(c echo.Context) error {
	return a.renderGallery(c, http.StatusOK)
}

// renderGallery builds the gallery page from the image listing, one
// image/link pair per file, in listing order.
func (a *App) renderGallery(c echo.Context, code int) error {
	names, err := a.cache.ImageNames()
	if err != nil {
		return err
	}
	page := GalleryPage{
		Title: a.Settings.Title(),
		Items: make([]GalleryItem, 0, len(names)),
	}
	for _, name := range names {
		page.Items = append(page.Items, GalleryItem{
			Name:      name,
			ImageURL:  "/" + url.PathEscape(name),
			DetailURL: "/detail/" + url.PathEscape(name),
		})
	}
	return a.renderStatus(c, code, "gallery.html", page)
}

// handleDetail renders the detail page for /detail/<name>. The catalog
// entry is looked up by the name with its extension stripped. A detail
// link with no catalog entry is a broken gallery, not a client mistake,
// so the missing entry surfaces as a 500.
func (a *App) handleDetail(c echo.Context) error {
	name := c.Param("name")
	entry, err := a.Library.ReadEntry(stripExt(name))
	if err != nil {
		if errors.Is(err, ErrInvalidName) {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid image name").SetInternal(err)
		}
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
	page := DetailPage{
		SiteTitle:   a.Settings.Title(),
		ImageName:   entry.ImageName,
		ImageURL:    "/" + url.PathEscape(name),
		Title:       entry.Title,
		Description: entry.Description,
	}
	return a.render(c, "detail.html", page)
}

// handleImage serves raw image bytes for any path not claimed by another
// route. The path is percent-decoded and must resolve to a plain file
// name in the images directory; anything else is a 404.
func (a *App) handleImage(c echo.Context) error {
	raw := strings.TrimPrefix(c.Param("*"), "/")
	name, err := url.PathUnescape(raw)
	if err != nil {
		name = raw
	}
	path, err := a.Library.ImagePath(name)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound).SetInternal(err)
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return echo.ErrNotFound
		}
		return err
	}
	return c.File(path)
}

func (a *App) handleGalleryCSS(c echo.Context) error {
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", a.galleryCSS)
}

func (a *App) handleDetailCSS(c echo.Context) error {
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", a.detailCSS)
}

func (a *App) handleStats(c echo.Context) error {
	views, err := a.Stats.Views()
	if err != nil {
		return err
	}
	return a.render(c, "stats.html", StatsPage{
		Title: a.Settings.Title(),
		Views: views,
	})
}

// httpErrorHandler logs 5xx errors and keeps client-facing messages
// generic: status code and status text only.
func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := http.StatusText(code)
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		msg = http.StatusText(code)
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.String(code, msg)
}
