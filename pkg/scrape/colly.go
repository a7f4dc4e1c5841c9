package scrape

import (
	"github.com/gocolly/colly/v2"
)

// CollyFetcher fetches pages with a colly collector, keeping whatever cache
// directory and transport settings the collector was built with.
type CollyFetcher struct {
	c *colly.Collector
}

func NewCollyFetcher(c *colly.Collector) CollyFetcher {
	return CollyFetcher{c}
}

func (f CollyFetcher) FetchPage(url string) ([]byte, error) {
	var body []byte
	var fetchErr error

	c := f.c.Clone() // same collector but without old callbacks
	c.OnResponse(func(res *colly.Response) {
		body = res.Body
	})
	c.OnError(func(res *colly.Response, err error) {
		fetchErr = &FetchError{URL: url, StatusCode: res.StatusCode, Err: err}
	})

	if err := c.Visit(url); err != nil && fetchErr == nil {
		fetchErr = &FetchError{URL: url, Err: err}
	}
	if fetchErr != nil {
		return nil, fetchErr
	}
	return body, nil
}
