package galleria

import "embed"

// defaultAssets ships the stock templates and stylesheets so a fresh
// install serves pages before the site directory has any of its own.
//
//go:embed templates gallery.css details.css
var defaultAssets embed.FS
