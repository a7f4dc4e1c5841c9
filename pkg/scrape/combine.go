package scrape

import (
	"fmt"
	"strconv"

	"github.com/PuerkitoBio/goquery"
)

// ScrapeCombine collects one year's combine results table into Data. Each
// row is tagged with a leading combine_year column.
type ScrapeCombine struct {
	Year int
	Data *Table
}

func (s ScrapeCombine) Urls() []string {
	return []string{fmt.Sprintf("%s%d-combine.htm", CombineBaseUrl, s.Year)}
}

func (s ScrapeCombine) UnmarshalDoc(doc *goquery.Document) error {
	table := doc.Find("table#combine")
	if table.Length() == 0 {
		return &ParseError{Table: "combine", Detail: fmt.Sprintf("not found for year %d", s.Year)}
	}

	parsed, err := parseStatTable("combine", table.First(), combineCell)
	if err != nil {
		return err
	}
	*s.Data = parsed.prepend("combine_year", strconv.Itoa(s.Year))
	return nil
}

// combineCell extracts a combine table cell. The college cell is a link to
// the player's college stats page, so its href is kept instead of its text;
// players without a profile page leave it blank.
func combineCell(column string, cell *goquery.Selection) string {
	if column != "college" {
		return textCell(column, cell)
	}
	if href, ok := cell.Find("a").First().Attr("href"); ok {
		return href
	}
	return ""
}

// GetCombine fetches and parses the combine results table for one year.
func GetCombine(f Fetcher, year int) (Table, error) {
	var t Table
	if err := Scrape(f, ScrapeCombine{Year: year, Data: &t}); err != nil {
		return Table{}, err
	}
	return t, nil
}

// YearError pairs a year with the error that kept it out of the results.
type YearError struct {
	Year int
	Err  error
}

func (e YearError) Error() string {
	return fmt.Sprintf("year %d: %v", e.Year, e.Err)
}

// GetCombineRange fetches combine results for every year in [start, end] and
// merges them into one table. A year that fails to fetch or parse does not
// abort the rest of the range; its error is collected and returned alongside
// whatever succeeded.
func GetCombineRange(f Fetcher, start, end int) (Table, []YearError) {
	var tables []Table
	var failed []YearError
	for year := start; year <= end; year++ {
		t, err := GetCombine(f, year)
		if err != nil {
			failed = append(failed, YearError{Year: year, Err: err})
			continue
		}
		tables = append(tables, t)
	}
	return Merge(tables...), failed
}
