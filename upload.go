package galleria

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	_ "golang.org/x/image/webp"
)

// uploadForm is the multipart payload for POST / and POST /gallery.
type uploadForm struct {
	File        *multipart.FileHeader
	Title       string
	Description string
}

// validate checks the fields in the order clients expect the error
// messages: file, then title, then description.
func (f uploadForm) validate() error {
	if err := validation.Validate(f.File, validation.Required.Error("No file specified")); err != nil {
		return err
	}
	if err := validation.Validate(f.Title, validation.Required.Error("No title specified")); err != nil {
		return err
	}
	return validation.Validate(f.Description, validation.Required.Error("No description specified"))
}

// handleUpload accepts a new image plus its metadata. The upload is
// all-or-nothing: the image is written first, and a failed catalog write
// rolls it back, so no image ever lands without its catalog entry.
func (a *App) handleUpload(c echo.Context) error {
	if !a.uploadLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many uploads. Try again later.")
	}

	form := uploadForm{
		Title:       strings.TrimSpace(c.FormValue("title")),
		Description: strings.TrimSpace(c.FormValue("description")),
	}
	if file, err := c.FormFile("file"); err == nil {
		form.File = file
	}
	if err := form.validate(); err != nil {
		return c.String(http.StatusBadRequest, err.Error())
	}
	if form.File.Size > a.Config.MaxUploadBytes {
		return c.String(http.StatusRequestEntityTooLarge, "File too large")
	}

	src, err := form.File.Open()
	if err != nil {
		return err
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	entry := CatalogEntry{
		ID:          uuid.NewString(),
		ImageName:   form.File.Filename,
		Title:       form.Title,
		Description: form.Description,
		UploadedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	// Dimension sniffing is best effort: files no registered decoder
	// understands are stored without dimensions.
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		entry.Width = cfg.Width
		entry.Height = cfg.Height
	}

	if err := a.Library.SaveImage(form.File.Filename, data); err != nil {
		switch {
		case errors.Is(err, ErrImageExists):
			return c.String(http.StatusConflict, "An image with that name already exists")
		case errors.Is(err, ErrInvalidName):
			return c.String(http.StatusBadRequest, "Invalid file name")
		}
		return err
	}
	if err := a.Library.WriteEntry(entry); err != nil {
		if rmErr := a.Library.RemoveImage(form.File.Filename); rmErr != nil {
			c.Logger().Errorf("roll back image %s: %v", form.File.Filename, rmErr)
		}
		return err
	}
	a.cache.Invalidate()

	return a.renderGallery(c, http.StatusOK)
}
