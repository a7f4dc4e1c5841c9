package scrape

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gocolly/colly/v2"
)

func newTestCollector() *colly.Collector {
	c := colly.NewCollector()
	c.AllowURLRevisit = true
	return c
}

func TestCollyFetcherSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	f := NewCollyFetcher(newTestCollector())
	body, err := f.FetchPage(srv.URL)
	if err != nil {
		t.Fatalf("FetchPage failed: %v", err)
	}
	if !strings.Contains(string(body), "ok") {
		t.Errorf("body = %q", body)
	}
}

func TestCollyFetcherNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewCollyFetcher(newTestCollector())
	_, err := f.FetchPage(srv.URL)

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("err = %v, want FetchError", err)
	}
	if fetchErr.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", fetchErr.StatusCode)
	}
	if fetchErr.URL != srv.URL {
		t.Errorf("url = %q, want %q", fetchErr.URL, srv.URL)
	}
}

func TestCollyFetcherUnreachable(t *testing.T) {
	f := NewCollyFetcher(newTestCollector())
	_, err := f.FetchPage("http://127.0.0.1:1/unreachable")

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("err = %v, want FetchError", err)
	}
}
