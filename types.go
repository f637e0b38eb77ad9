package galleria

// CatalogEntry is the sidecar metadata for one image, stored as
// catalog/<basename>.json and matched to its image by basename.
// Width, Height, and UploadedAt are best effort; older entries may
// carry only the name, title, and description.
type CatalogEntry struct {
	ID          string `json:"id,omitempty"`
	ImageName   string `json:"imageName"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	UploadedAt  string `json:"uploadedAt,omitempty"`
}

// GalleryItem is one image cell on the gallery page. URLs are always
// derived from the filename, never from stored metadata.
type GalleryItem struct {
	Name      string
	ImageURL  string
	DetailURL string
}

// GalleryPage is the data the gallery template renders.
type GalleryPage struct {
	Title string
	Items []GalleryItem
}

// DetailPage is the data the detail template renders.
type DetailPage struct {
	SiteTitle   string
	ImageName   string
	ImageURL    string
	Title       string
	Description string
}

// PageView is one hit counter row on the stats page.
type PageView struct {
	Path string
	Hits int
}

// StatsPage is the data the stats template renders.
type StatsPage struct {
	Title string
	Views []PageView
}
