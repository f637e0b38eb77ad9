// Command galleria runs the photo-gallery server. Settings come from
// environment variables (optionally via a .env file); unset values fall
// back to the stock layout: images/, catalog/, templates/, config.json.
package main

import (
	"log"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/eringen/galleria"
)

func main() {
	// A missing .env is fine; the defaults stand on their own.
	_ = godotenv.Load()

	cfg := galleria.SiteConfig{
		Addr:           galleria.EnvOr("GALLERIA_ADDR", ":8080"),
		ImagesDir:      galleria.EnvOr("GALLERIA_IMAGES_DIR", "images"),
		CatalogDir:     galleria.EnvOr("GALLERIA_CATALOG_DIR", "catalog"),
		TemplatesDir:   galleria.EnvOr("GALLERIA_TEMPLATES_DIR", "templates"),
		ConfigPath:     galleria.EnvOr("GALLERIA_CONFIG_PATH", "config.json"),
		GalleryCSSPath: galleria.EnvOr("GALLERIA_GALLERY_CSS", "gallery.css"),
		DetailCSSPath:  galleria.EnvOr("GALLERIA_DETAIL_CSS", "details.css"),
		StatsDBPath:    galleria.EnvOr("GALLERIA_STATS_DB", "data/stats.db"),
		DisableStats:   envBool("GALLERIA_DISABLE_STATS"),
	}

	app := galleria.New(cfg)
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

func envBool(key string) bool {
	v, _ := strconv.ParseBool(galleria.EnvOr(key, "false"))
	return v
}
