package scrape

import "fmt"

// FetchError reports a transport failure or non-success response for a page.
// StatusCode is zero when the request failed before a response arrived.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError reports an expected table or column missing from an otherwise
// successful response, or a header/cell misalignment.
type ParseError struct {
	Table  string
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse table %q: %s", e.Table, e.Detail)
}
