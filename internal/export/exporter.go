package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-builder/internal/render"
	"github.com/jonathan/resume-builder/internal/types"
)

// A4PageWidthPx is the deterministic layout width of the off-screen
// container: 210mm at 96dpi. The clone is laid out at this width no matter
// what viewport the live render happened in.
const A4PageWidthPx = 794

// DefaultScale is the supersampling factor applied during rasterization to
// preserve text sharpness.
const DefaultScale = 2.0

// DefaultTimeout bounds a single capture run.
const DefaultTimeout = 60 * time.Second

// MIMEType of the produced artifact.
const MIMEType = "application/pdf"

// Artifact is the binary PDF output together with its download metadata.
type Artifact struct {
	PDF      []byte
	Filename string
	MIME     string
	Pages    int
}

// CaptureFunc rasterizes the page at pageURL to a PNG bitmap. widthPx is
// the layout viewport width; scale is the supersampling factor.
type CaptureFunc func(ctx context.Context, pageURL string, widthPx int64, scale float64) ([]byte, error)

// Exporter runs the capture-and-assemble pipeline. The zero Option set uses
// a headless Chrome capture; tests substitute CaptureFunc to run without a
// browser.
type Exporter struct {
	chromePath string
	timeout    time.Duration
	scale      float64
	capture    CaptureFunc
	validate   *validator.Validate
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithChromePath points the capturer at a specific Chrome binary.
func WithChromePath(path string) Option {
	return func(e *Exporter) { e.chromePath = path }
}

// WithTimeout overrides the capture timeout.
func WithTimeout(d time.Duration) Option {
	return func(e *Exporter) { e.timeout = d }
}

// WithScale overrides the supersampling factor. Values below 2 are raised
// to 2 to keep text print-sharp.
func WithScale(scale float64) Option {
	return func(e *Exporter) {
		if scale < 2 {
			scale = 2
		}
		e.scale = scale
	}
}

// WithCapture substitutes the rasterization backend.
func WithCapture(fn CaptureFunc) Option {
	return func(e *Exporter) { e.capture = fn }
}

// NewExporter creates an Exporter with headless Chrome capture defaults.
func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{
		timeout:  DefaultTimeout,
		scale:    DefaultScale,
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.capture == nil {
		e.capture = ChromeCapture(e.chromePath)
	}
	return e
}

// Export validates the document, clones the rendered root into an
// off-screen fixed-width container, rasterizes it, and assembles an A4 PDF.
// Content taller than one page is sliced across as many pages as needed.
// nameHint, when non-empty, overrides the default file name derived from
// the subject's full name. The off-screen clone is removed on success and
// failure alike; no partial artifact is ever returned.
func (e *Exporter) Export(ctx context.Context, doc *types.ResumeDocument, renderedHTML, nameHint string) (*Artifact, error) {
	if doc == nil {
		return nil, &ValidationError{Field: "document", Message: "no document to export"}
	}
	// Export-time validation runs before any off-screen resource exists.
	if err := e.validatePersonalInfo(doc.PersonalInfo); err != nil {
		return nil, err
	}

	pageHTML, err := cloneRoot(renderedHTML)
	if err != nil {
		return nil, err
	}

	// The off-screen clone lives in a throwaway directory released on
	// every exit path.
	tmpDir, err := os.MkdirTemp("", "resume-export-")
	if err != nil {
		return nil, &CaptureError{Message: "failed to create off-screen container", Cause: err}
	}
	defer os.RemoveAll(tmpDir)

	pagePath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(pagePath, []byte(pageHTML), 0o644); err != nil {
		return nil, &CaptureError{Message: "failed to write off-screen container", Cause: err}
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	bitmap, err := e.capture(ctx, "file://"+pagePath, A4PageWidthPx, e.scale)
	if err != nil {
		return nil, &CaptureError{Message: "rasterization failed", Cause: err}
	}

	img, err := png.Decode(bytes.NewReader(bitmap))
	if err != nil {
		return nil, &CaptureError{Message: "captured bitmap is not decodable", Cause: err}
	}

	pdf, pages, err := assemblePDF(img)
	if err != nil {
		return nil, err
	}

	return &Artifact{
		PDF:      pdf,
		Filename: artifactFilename(doc.PersonalInfo.FullName, nameHint),
		MIME:     MIMEType,
		Pages:    pages,
	}, nil
}

// validatePersonalInfo enforces the export precondition: full name, email,
// phone, and location must all be non-empty, and the email well-formed.
// This is stricter than builder-time validation on purpose.
func (e *Exporter) validatePersonalInfo(pi types.PersonalInfo) error {
	fields := []struct {
		name  string
		value string
		rule  string
	}{
		{"full_name", pi.FullName, "required"},
		{"email", pi.Email, "required,email"},
		{"phone", pi.Phone, "required"},
		{"location", pi.Location, "required"},
	}
	for _, f := range fields {
		if err := e.validate.Var(f.value, f.rule); err != nil {
			return &ValidationError{Field: f.name, Message: fmt.Sprintf("%s is required for export", f.name)}
		}
	}
	return nil
}

// cloneRoot extracts the stable rendered root node and wraps it, together
// with the source document's style blocks, in a fixed-width container so
// the layout width is deterministic regardless of the live viewport.
func cloneRoot(renderedHTML string) (string, error) {
	src, err := goquery.NewDocumentFromReader(strings.NewReader(renderedHTML))
	if err != nil {
		return "", &CaptureError{Message: "failed to parse rendered output", Cause: err}
	}

	rootSel := src.Find("#" + render.RootID)
	if rootSel.Length() == 0 {
		return "", &CaptureError{Message: "rendered root node #" + render.RootID + " not found"}
	}

	rootHTML, err := goquery.OuterHtml(rootSel.First())
	if err != nil {
		return "", &CaptureError{Message: "failed to clone rendered root", Cause: err}
	}

	var styles strings.Builder
	src.Find("style").Each(func(_ int, sel *goquery.Selection) {
		styles.WriteString("<style>")
		styles.WriteString(sel.Text())
		styles.WriteString("</style>")
	})

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html><html><head><meta charset=\"utf-8\">")
	sb.WriteString(styles.String())
	sb.WriteString("</head><body style=\"margin:0\">")
	fmt.Fprintf(&sb, "<div style=\"width:%dpx;overflow:hidden\">", A4PageWidthPx)
	sb.WriteString(rootHTML)
	sb.WriteString("</div></body></html>")
	return sb.String(), nil
}

// subImager is satisfied by the stdlib image types png.Decode produces.
type subImager interface {
	image.Image
	SubImage(r image.Rectangle) image.Image
}
