// Package browser fetches pages through a headless Chrome session, for the
// tables the site only renders with scripts enabled.
package browser

import (
	"context"

	"github.com/chromedp/chromedp"

	"github.com/draftscout/draftscout/pkg/scrape"
)

// Session holds one headless browser for the duration of a scraping run.
// It is acquired once with New and must be released with Close.
type Session struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
}

func New() (*Session, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.Headless,
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	ctx, cancel := chromedp.NewContext(allocCtx)

	// Start the browser now so a broken environment fails at construction,
	// not on the first page.
	if err := chromedp.Run(ctx); err != nil {
		cancel()
		allocCancel()
		return nil, err
	}

	return &Session{ctx: ctx, cancel: cancel, allocCancel: allocCancel}, nil
}

// FetchPage navigates the session to url and returns the rendered markup.
func (s *Session) FetchPage(url string) ([]byte, error) {
	var html string
	err := chromedp.Run(s.ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return nil, &scrape.FetchError{URL: url, Err: err}
	}
	return []byte(html), nil
}

func (s *Session) Close() {
	s.cancel()
	s.allocCancel()
}
