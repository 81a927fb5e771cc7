package export

import (
	"context"
	"log"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromeCapture returns a CaptureFunc backed by headless Chrome. The page
// is laid out at the requested viewport width and the full content height
// is captured in one screenshot with the clip scaled by the supersampling
// factor. Cross-origin images that the browser cannot load simply render as
// gaps; a partial page capture is not a failure.
func ChromeCapture(chromePath string) CaptureFunc {
	return func(ctx context.Context, pageURL string, widthPx int64, scale float64) ([]byte, error) {
		opts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)
		if chromePath != "" {
			opts = append(opts, chromedp.ExecPath(chromePath))
		}

		allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
		defer cancel()

		browserCtx, cancelCtx := chromedp.NewContext(allocCtx)
		defer cancelCtx()

		var buf []byte
		err := chromedp.Run(browserCtx,
			chromedp.EmulateViewport(widthPx, 1080),
			chromedp.Navigate(pageURL),
			chromedp.WaitReady("body", chromedp.ByQuery),
			chromedp.ActionFunc(func(ctx context.Context) error {
				_, _, _, _, _, cssContentSize, err := page.GetLayoutMetrics().Do(ctx)
				if err != nil {
					return err
				}
				log.Printf("[EXPORT] capturing %dx%d css px at %.1fx", int(cssContentSize.Width), int(cssContentSize.Height), scale)
				buf, err = page.CaptureScreenshot().
					WithFormat(page.CaptureScreenshotFormatPng).
					WithCaptureBeyondViewport(true).
					WithFromSurface(true).
					WithClip(&page.Viewport{
						X:      0,
						Y:      0,
						Width:  cssContentSize.Width,
						Height: cssContentSize.Height,
						Scale:  scale,
					}).
					Do(ctx)
				return err
			}),
		)
		if err != nil {
			return nil, err
		}
		return buf, nil
	}
}
