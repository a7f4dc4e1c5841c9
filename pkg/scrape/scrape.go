package scrape

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
)

const (
	CombineBaseUrl = "https://www.pro-football-reference.com/draft/"
	PlayerBaseUrl  = "https://www.sports-reference.com"
)

// Fetcher retrieves the markup of a single page. Implementations decide how:
// a plain collector or a driven browser session.
type Fetcher interface {
	FetchPage(url string) ([]byte, error)
}

type Unmarshaler interface {
	UnmarshalDoc(doc *goquery.Document) error
}

type Scrapable interface {
	Urls() []string
	Unmarshaler
}

func Scrape(f Fetcher, s Scrapable) error {
	for _, url := range s.Urls() {
		body, err := f.FetchPage(url)
		if err != nil {
			return err
		}
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
		if err != nil {
			return err
		}
		if err := s.UnmarshalDoc(doc); err != nil {
			return err
		}
	}
	return nil
}
