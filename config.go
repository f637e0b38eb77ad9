package galleria

import "time"

// SiteConfig holds all configuration for a galleria site.
type SiteConfig struct {
	Addr string // Listen address (default ":8080")

	ImagesDir    string // Image files (default "images")
	CatalogDir   string // Sidecar JSON metadata (default "catalog")
	TemplatesDir string // Page templates, loaded once at boot (default "templates")
	ConfigPath   string // Persisted title config (default "config.json")

	GalleryCSSPath string // Gallery stylesheet (default "gallery.css")
	DetailCSSPath  string // Detail stylesheet (default "details.css")

	DisableStats bool   // Skip page-view recording and the /stats page
	StatsDBPath  string // Stats SQLite path (default "data/stats.db")

	MaxUploadBytes   int64 // Upload size cap (default 10MB)
	UploadsPerMinute int   // Per-IP upload rate limit (default 20)

	ListCacheTTL time.Duration // Image listing cache TTL (default 2s)
}

func (c *SiteConfig) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.ImagesDir == "" {
		c.ImagesDir = "images"
	}
	if c.CatalogDir == "" {
		c.CatalogDir = "catalog"
	}
	if c.TemplatesDir == "" {
		c.TemplatesDir = "templates"
	}
	if c.ConfigPath == "" {
		c.ConfigPath = "config.json"
	}
	if c.GalleryCSSPath == "" {
		c.GalleryCSSPath = "gallery.css"
	}
	if c.DetailCSSPath == "" {
		c.DetailCSSPath = "details.css"
	}
	if c.StatsDBPath == "" {
		c.StatsDBPath = "data/stats.db"
	}
	if c.MaxUploadBytes == 0 {
		c.MaxUploadBytes = 10 << 20
	}
	if c.UploadsPerMinute == 0 {
		c.UploadsPerMinute = 20
	}
	if c.ListCacheTTL == 0 {
		c.ListCacheTTL = 2 * time.Second
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are set up.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
