package scrape

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractFunc pulls a cell value out of a th/td element. The default takes
// the trimmed text; the combine parser swaps in link extraction for the
// college column.
type extractFunc func(column string, cell *goquery.Selection) string

func textCell(_ string, cell *goquery.Selection) string {
	return strings.TrimSpace(cell.Text())
}

// parseStatTable parses a sports-reference stats table into a Table. Column
// names come from the data-stat attributes of the last header row. Body cells
// are mapped by position, but each cell's own data-stat attribute must agree
// with the header column at that position; a mismatch fails with a ParseError
// instead of silently misaligning values. Repeated in-body header rows
// (class "thead") are skipped.
func parseStatTable(id string, table *goquery.Selection, extract extractFunc) (Table, error) {
	var t Table

	table.Find("thead tr").Last().Find("th").Each(func(_ int, s *goquery.Selection) {
		name := s.AttrOr("data-stat", "")
		if name == "" {
			name = strings.TrimSpace(s.Text())
		}
		t.Columns = append(t.Columns, name)
	})
	if len(t.Columns) == 0 {
		return t, &ParseError{Table: id, Detail: "no header row"}
	}

	var parseErr error
	table.Find("tbody tr").Not(".thead").EachWithBreak(func(i int, s *goquery.Selection) bool {
		row := make([]string, len(t.Columns))
		cells := s.Find("th, td")
		if cells.Length() > len(t.Columns) {
			parseErr = &ParseError{
				Table:  id,
				Detail: fmt.Sprintf("row %d has %d cells for %d columns", i, cells.Length(), len(t.Columns)),
			}
			return false
		}
		cells.EachWithBreak(func(j int, cell *goquery.Selection) bool {
			if stat := cell.AttrOr("data-stat", ""); stat != "" && stat != t.Columns[j] {
				parseErr = &ParseError{
					Table:  id,
					Detail: fmt.Sprintf("row %d cell %d is %q, header says %q", i, j, stat, t.Columns[j]),
				}
				return false
			}
			row[j] = extract(t.Columns[j], cell)
			return true
		})
		if parseErr != nil {
			return false
		}
		t.Rows = append(t.Rows, row)
		return true
	})
	if parseErr != nil {
		return Table{}, parseErr
	}

	return t, nil
}
