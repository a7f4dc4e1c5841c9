package report

import (
	"fmt"
	"strconv"

	"cloud.google.com/go/bigquery"

	"github.com/draftscout/draftscout/pkg/scrape"
)

type combineView struct {
	Year      string `csv:"year"`
	Player    string `csv:"player"`
	Pos       string `csv:"pos"`
	School    string `csv:"school"`
	College   string `csv:"college_url"`
	Height    string `csv:"height"`
	Weight    string `csv:"weight"`
	FortyYard string `csv:"forty_yd"`
	Vertical  string `csv:"vertical"`
	BenchReps string `csv:"bench_reps"`
	BroadJump string `csv:"broad_jump"`
	Cone      string `csv:"cone"`
	Shuttle   string `csv:"shuttle"`
	DraftInfo string `csv:"draft_info"`
}

// WriteCombine writes typed combine rows to a CSV file, blanking the drills
// the source page had no value for.
func WriteCombine(name string, rows []scrape.CombineRow) error {
	views := make([]combineView, 0, len(rows))
	for _, r := range rows {
		views = append(views, combineView{
			Year:      strconv.Itoa(r.Year),
			Player:    r.Player,
			Pos:       r.Pos,
			School:    r.School,
			College:   parseNullString(r.College),
			Height:    parseNullString(r.Height),
			Weight:    parseNullInt64(r.Weight),
			FortyYard: parseNullFloat64(r.FortyYard),
			Vertical:  parseNullFloat64(r.Vertical),
			BenchReps: parseNullInt64(r.BenchReps),
			BroadJump: parseNullInt64(r.BroadJump),
			Cone:      parseNullFloat64(r.Cone),
			Shuttle:   parseNullFloat64(r.Shuttle),
			DraftInfo: parseNullString(r.DraftInfo),
		})
	}
	return WriteCsv(views, name+".csv")
}

func parseNullString(n bigquery.NullString) string {
	if !n.Valid {
		return ""
	}
	return n.StringVal
}

func parseNullInt64(n bigquery.NullInt64) string {
	if !n.Valid {
		return ""
	}
	return fmt.Sprint(n.Int64)
}

func parseNullFloat64(n bigquery.NullFloat64) string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatFloat(n.Float64, 'f', -1, 64)
}
