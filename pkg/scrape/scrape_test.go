package scrape

import "errors"

// stubFetcher serves canned pages by URL and records every fetch. URLs it
// has no page for come back as a 404 FetchError, like the live site.
type stubFetcher struct {
	pages   map[string]string
	fetched []string
}

func (f *stubFetcher) FetchPage(url string) ([]byte, error) {
	f.fetched = append(f.fetched, url)
	body, ok := f.pages[url]
	if !ok {
		return nil, &FetchError{URL: url, StatusCode: 404, Err: errors.New("Not Found")}
	}
	return []byte(body), nil
}
