package naturesite

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
)

const (
	maxLogoWidth  = 400
	logoQuality   = 85
	maxUploadSize = 5 << 20 // 5MB
)

// encodeLogoDataURL decodes an uploaded image, scales it down to at most
// maxLogoWidth, and returns it as a JPEG data URL. The store treats the
// result as an opaque string in SiteConfig.LogoURL; no file is written.
func encodeLogoDataURL(src io.Reader) (string, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxLogoWidth {
		newH := h * maxLogoWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxLogoWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: logoQuality}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (a *App) handleAdminLogoUpload(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}

	file, err := c.FormFile("logo")
	if err != nil {
		return c.String(http.StatusBadRequest, "No logo file provided")
	}
	if file.Size > maxUploadSize {
		return c.String(http.StatusBadRequest, "File too large (max 5MB)")
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dataURL, err := encodeLogoDataURL(src)
	if err != nil {
		return c.String(http.StatusBadRequest, "Invalid image: "+err.Error())
	}

	cfg := a.Store.Config()
	cfg.LogoURL = dataURL
	a.Store.UpdateConfig(cfg)

	return c.Redirect(http.StatusSeeOther, "/admin/settings/?msg=logo+updated")
}
