package scrape

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Category names one of the college statistics tables on a player page.
type Category string

const (
	Passing   Category = "passing"
	Rushing   Category = "rushing"
	Receiving Category = "receiving"
	Defense   Category = "defense"
)

// AllCategories lists every category table a player page can carry.
var AllCategories = []Category{Passing, Rushing, Receiving, Defense}

func ParseCategory(s string) (Category, error) {
	for _, c := range AllCategories {
		if string(c) == strings.ToLower(s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%q is not a category (passing, rushing, receiving, defense)", s)
}

// PlayerLink points at a player's college stats page. ID is the player slug
// from the URL path (e.g. joe-burrow-1), used to tag the player's rows.
type PlayerLink struct {
	ID  string
	URL string
}

// PlayerLinks resolves the profile links out of a combine table. Rows whose
// college cell is blank have no profile page and are skipped; that is not an
// error.
func PlayerLinks(t Table) []PlayerLink {
	var links []PlayerLink
	for i := 0; i < t.Len(); i++ {
		href := t.Get(i, "college")
		if href == "" {
			continue
		}
		links = append(links, PlayerLink{ID: playerID(href), URL: absoluteURL(href)})
	}
	return links
}

func playerID(href string) string {
	return strings.TrimSuffix(path.Base(href), ".html")
}

func absoluteURL(href string) string {
	if u, err := url.Parse(href); err == nil && u.Host != "" {
		return href
	}
	return PlayerBaseUrl + href
}

// ScrapePlayer collects the requested category tables from one player page.
// All categories come out of the single fetched document; a category the
// player has no table for records a ParseError in Errs without failing the
// others.
type ScrapePlayer struct {
	Player     PlayerLink
	Categories []Category
	Data       map[Category]Table
	Errs       map[Category]error
}

func (s ScrapePlayer) Urls() []string {
	return []string{s.Player.URL}
}

func (s ScrapePlayer) UnmarshalDoc(doc *goquery.Document) error {
	for _, cat := range s.Categories {
		table := doc.Find("table#" + string(cat))
		if table.Length() == 0 {
			s.Errs[cat] = &ParseError{
				Table:  string(cat),
				Detail: fmt.Sprintf("not found for player %s", s.Player.ID),
			}
			continue
		}
		parsed, err := parseStatTable(string(cat), table.First(), textCell)
		if err != nil {
			s.Errs[cat] = err
			continue
		}
		s.Data[cat] = parsed.prepend("player_id", s.Player.ID)
	}
	return nil
}

// PlayerError pairs a player (and, for parse failures, a category) with the
// error that kept their rows out of the results. Category is empty when the
// page itself could not be fetched.
type PlayerError struct {
	Player   PlayerLink
	Category Category
	Err      error
}

func (e PlayerError) Error() string {
	if e.Category == "" {
		return fmt.Sprintf("player %s: %v", e.Player.ID, e.Err)
	}
	return fmt.Sprintf("player %s (%s): %v", e.Player.ID, e.Category, e.Err)
}

// GetPlayerStats fetches a player's page once and extracts every requested
// category table from it.
func GetPlayerStats(f Fetcher, player PlayerLink, categories ...Category) (map[Category]Table, []PlayerError) {
	if len(categories) == 0 {
		categories = AllCategories
	}

	s := ScrapePlayer{
		Player:     player,
		Categories: categories,
		Data:       make(map[Category]Table),
		Errs:       make(map[Category]error),
	}
	if err := Scrape(f, s); err != nil {
		return nil, []PlayerError{{Player: player, Err: err}}
	}

	var failed []PlayerError
	for _, cat := range categories {
		if err := s.Errs[cat]; err != nil {
			failed = append(failed, PlayerError{Player: player, Category: cat, Err: err})
		}
	}
	return s.Data, failed
}

// GetCollegeStats fetches college stats for a batch of players and merges
// them into one table per category, rows in player order. A failing player
// or absent category is collected, not fatal.
func GetCollegeStats(f Fetcher, players []PlayerLink, categories ...Category) (map[Category]Table, []PlayerError) {
	if len(categories) == 0 {
		categories = AllCategories
	}

	perCategory := make(map[Category][]Table)
	var failed []PlayerError
	for _, player := range players {
		data, errs := GetPlayerStats(f, player, categories...)
		failed = append(failed, errs...)
		for _, cat := range categories {
			if t, ok := data[cat]; ok {
				perCategory[cat] = append(perCategory[cat], t)
			}
		}
	}

	merged := make(map[Category]Table, len(categories))
	for _, cat := range categories {
		merged[cat] = Merge(perCategory[cat]...)
	}
	return merged, failed
}
