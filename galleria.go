// Package galleria is a minimal photo-gallery web server built with Go and
// Echo. It lists image files from a directory, renders gallery and detail
// pages from HTML templates loaded at startup, and accepts multipart
// uploads that add images together with their JSON sidecar metadata.
//
// Gallery content lives entirely on the filesystem: images/, catalog/,
// config.json. SQLite is used only for the optional page-view counters.
package galleria

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
)

// App is the central galleria application. It wires together the library,
// settings, templates, cache, limiter, stats, and routes.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Library  *Library
	Settings *Settings
	Stats    *StatsStore

	templates     *TemplateStore
	cache         *listingCache
	uploadLimiter *UploadLimiter
	galleryCSS    []byte
	detailCSS     []byte
	customRoutes  []func(*App)
}

// New creates a galleria App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the library, settings, templates, middleware, and
// routes, and runs the server until it is shut down.
func (a *App) Start() error {
	if err := a.bootstrap(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// bootstrap loads everything the handlers need. Split from Start so tests
// can drive the Echo instance without binding a listener.
func (a *App) bootstrap() error {
	library, err := NewLibrary(a.Config.ImagesDir, a.Config.CatalogDir)
	if err != nil {
		return err
	}
	a.Library = library

	settings, err := LoadSettings(a.Config.ConfigPath)
	if err != nil {
		return err
	}
	a.Settings = settings

	if err := a.loadTemplates(); err != nil {
		return err
	}

	a.galleryCSS, err = loadAsset(a.Config.GalleryCSSPath, "gallery.css")
	if err != nil {
		return fmt.Errorf("galleria: load gallery stylesheet: %w", err)
	}
	a.detailCSS, err = loadAsset(a.Config.DetailCSSPath, "details.css")
	if err != nil {
		return fmt.Errorf("galleria: load detail stylesheet: %w", err)
	}

	if !a.Config.DisableStats {
		stats, err := NewStatsStore(a.Config.StatsDBPath)
		if err != nil {
			return fmt.Errorf("galleria: init stats: %w", err)
		}
		a.Stats = stats
	}

	a.cache = newListingCache(a.Library, a.Config.ListCacheTTL)
	a.uploadLimiter = NewUploadLimiter(a.Config.UploadsPerMinute, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// loadTemplates parses the templates directory, falling back to the
// embedded defaults when the directory does not exist.
func (a *App) loadTemplates() error {
	if _, err := os.Stat(a.Config.TemplatesDir); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("galleria: stat templates dir: %w", err)
		}
		sub, err := fs.Sub(defaultAssets, "templates")
		if err != nil {
			return err
		}
		a.templates, err = LoadTemplatesFS(sub)
		return err
	}
	templates, err := LoadTemplates(a.Config.TemplatesDir)
	if err != nil {
		return err
	}
	a.templates = templates
	return nil
}

// loadAsset reads a boot-time static asset from disk, falling back to the
// embedded default when the file does not exist.
func loadAsset(path, embedded string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}
	return defaultAssets.ReadFile(embedded)
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/", a.handleGallery)
	e.GET("/gallery", a.handleGallery)
	e.POST("/", a.handleUpload)
	e.POST("/gallery", a.handleUpload)

	e.GET("/gallery.css", a.handleGalleryCSS)
	e.GET("/detail/details.css", a.handleDetailCSS)
	e.GET("/detail/:name", a.handleDetail)

	if a.Stats != nil {
		e.GET("/stats", a.handleStats)
	}

	// Everything else is treated as an image filename.
	e.GET("/*", a.handleImage)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Stats != nil {
		return a.Stats.Close()
	}
	return nil
}
