package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/jung-kurt/gofpdf"
)

// A4 geometry in millimeters.
const (
	pageWidthMM  = 210.0
	pageHeightMM = 297.0
	pageMarginMM = 10.0

	contentWidthMM  = pageWidthMM - 2*pageMarginMM
	contentHeightMM = pageHeightMM - 2*pageMarginMM
)

// assemblePDF embeds the captured bitmap into one or more A4 pages. The
// target width is the page width minus fixed margins and the image height
// scales proportionally from the bitmap's aspect ratio; content taller than
// one page is sliced across successive pages rather than shrunk to fit.
func assemblePDF(img image.Image) ([]byte, int, error) {
	bounds := img.Bounds()
	imgW, imgH := bounds.Dx(), bounds.Dy()
	if imgW == 0 || imgH == 0 {
		return nil, 0, &CaptureError{Message: "captured bitmap is empty"}
	}

	src, ok := img.(subImager)
	if !ok {
		return nil, 0, &CaptureError{Message: "captured bitmap does not support slicing"}
	}

	// Pixels per millimeter once the bitmap is scaled to the content width.
	pxPerMM := float64(imgW) / contentWidthMM
	slicePx := int(contentHeightMM * pxPerMM)
	if slicePx < 1 {
		slicePx = 1
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(true)

	pages := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y += slicePx {
		sliceH := slicePx
		if y+sliceH > bounds.Max.Y {
			sliceH = bounds.Max.Y - y
		}
		slice := src.SubImage(image.Rect(bounds.Min.X, y, bounds.Max.X, y+sliceH))

		var encoded bytes.Buffer
		if err := png.Encode(&encoded, slice); err != nil {
			return nil, 0, &CaptureError{Message: "failed to encode page slice", Cause: err}
		}

		pages++
		name := fmt.Sprintf("page-%d", pages)
		pdf.AddPage()
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(name, opts, &encoded)
		pdf.ImageOptions(name, pageMarginMM, pageMarginMM, contentWidthMM, float64(sliceH)/pxPerMM, false, opts, 0, "")
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, 0, &CaptureError{Message: "failed to assemble PDF", Cause: err}
	}
	return out.Bytes(), pages, nil
}
