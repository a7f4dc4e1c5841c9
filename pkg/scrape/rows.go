package scrape

import (
	"strconv"

	"cloud.google.com/go/bigquery"
)

// CombineRow is one player's combine-day record. Drill results the source
// page did not list stay invalid rather than being fabricated.
type CombineRow struct {
	Year      int                  `db:"year"`
	Player    string               `db:"player"`
	Pos       string               `db:"pos"`
	School    string               `db:"school"`
	College   bigquery.NullString  `db:"college_url"`
	Height    bigquery.NullString  `db:"height"`
	Weight    bigquery.NullInt64   `db:"weight"`
	FortyYard bigquery.NullFloat64 `db:"forty_yd"`
	Vertical  bigquery.NullFloat64 `db:"vertical"`
	BenchReps bigquery.NullInt64   `db:"bench_reps"`
	BroadJump bigquery.NullInt64   `db:"broad_jump"`
	Cone      bigquery.NullFloat64 `db:"cone"`
	Shuttle   bigquery.NullFloat64 `db:"shuttle"`
	DraftInfo bigquery.NullString  `db:"draft_info"`
}

// CombineRows decodes a combine table into typed rows by column name.
func CombineRows(t Table) []CombineRow {
	rows := make([]CombineRow, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		year, _ := strconv.Atoi(t.Get(i, "combine_year"))
		rows = append(rows, CombineRow{
			Year:      year,
			Player:    t.Get(i, "player"),
			Pos:       t.Get(i, "pos"),
			School:    t.Get(i, "school_name"),
			College:   nullString(t.Get(i, "college")),
			Height:    nullString(t.Get(i, "ht")),
			Weight:    nullInt(t.Get(i, "wt")),
			FortyYard: nullFloat(t.Get(i, "forty_yd")),
			Vertical:  nullFloat(t.Get(i, "vertical")),
			BenchReps: nullInt(t.Get(i, "bench_reps")),
			BroadJump: nullInt(t.Get(i, "broad_jump")),
			Cone:      nullFloat(t.Get(i, "cone")),
			Shuttle:   nullFloat(t.Get(i, "shuttle")),
			DraftInfo: nullString(t.Get(i, "draft_info")),
		})
	}
	return rows
}

// PlayerSeason is the identity shared by every college stat row: which
// player, which season.
type PlayerSeason struct {
	PlayerID string             `db:"player_id"`
	Season   string             `db:"season"`
	School   string             `db:"school"`
	Class    string             `db:"class"`
	Pos      string             `db:"pos"`
	Games    bigquery.NullInt64 `db:"games"`
}

type PassingRow struct {
	PlayerSeason
	Completions bigquery.NullInt64 `db:"pass_cmp"`
	Attempts    bigquery.NullInt64 `db:"pass_att"`
	Yards       bigquery.NullInt64 `db:"pass_yds"`
	Touchdowns  bigquery.NullInt64 `db:"pass_td"`
	Ints        bigquery.NullInt64 `db:"pass_int"`
}

type RushingRow struct {
	PlayerSeason
	Carries    bigquery.NullInt64   `db:"rush_att"`
	Yards      bigquery.NullInt64   `db:"rush_yds"`
	Average    bigquery.NullFloat64 `db:"rush_avg"`
	Touchdowns bigquery.NullInt64   `db:"rush_td"`
}

type ReceivingRow struct {
	PlayerSeason
	Receptions bigquery.NullInt64   `db:"rec"`
	Yards      bigquery.NullInt64   `db:"rec_yds"`
	Average    bigquery.NullFloat64 `db:"rec_avg"`
	Touchdowns bigquery.NullInt64   `db:"rec_td"`
}

type DefenseRow struct {
	PlayerSeason
	SoloTackles  bigquery.NullInt64   `db:"tackles_solo"`
	AstTackles   bigquery.NullInt64   `db:"tackles_assists"`
	TacklesLoss  bigquery.NullFloat64 `db:"tackles_loss"`
	Sacks        bigquery.NullFloat64 `db:"sacks"`
	Ints         bigquery.NullInt64   `db:"def_int"`
	PassDefended bigquery.NullInt64   `db:"pass_defended"`
}

func playerSeason(t Table, i int) PlayerSeason {
	return PlayerSeason{
		PlayerID: t.Get(i, "player_id"),
		Season:   t.Get(i, "year_id"),
		School:   t.Get(i, "school_name"),
		Class:    t.Get(i, "class"),
		Pos:      t.Get(i, "pos"),
		Games:    nullInt(t.Get(i, "g")),
	}
}

func PassingRows(t Table) []PassingRow {
	rows := make([]PassingRow, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		rows = append(rows, PassingRow{
			PlayerSeason: playerSeason(t, i),
			Completions:  nullInt(t.Get(i, "pass_cmp")),
			Attempts:     nullInt(t.Get(i, "pass_att")),
			Yards:        nullInt(t.Get(i, "pass_yds")),
			Touchdowns:   nullInt(t.Get(i, "pass_td")),
			Ints:         nullInt(t.Get(i, "pass_int")),
		})
	}
	return rows
}

func RushingRows(t Table) []RushingRow {
	rows := make([]RushingRow, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		rows = append(rows, RushingRow{
			PlayerSeason: playerSeason(t, i),
			Carries:      nullInt(t.Get(i, "rush_att")),
			Yards:        nullInt(t.Get(i, "rush_yds")),
			Average:      nullFloat(t.Get(i, "rush_yds_per_att")),
			Touchdowns:   nullInt(t.Get(i, "rush_td")),
		})
	}
	return rows
}

func ReceivingRows(t Table) []ReceivingRow {
	rows := make([]ReceivingRow, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		rows = append(rows, ReceivingRow{
			PlayerSeason: playerSeason(t, i),
			Receptions:   nullInt(t.Get(i, "rec")),
			Yards:        nullInt(t.Get(i, "rec_yds")),
			Average:      nullFloat(t.Get(i, "rec_yds_per_rec")),
			Touchdowns:   nullInt(t.Get(i, "rec_td")),
		})
	}
	return rows
}

func DefenseRows(t Table) []DefenseRow {
	rows := make([]DefenseRow, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		rows = append(rows, DefenseRow{
			PlayerSeason: playerSeason(t, i),
			SoloTackles:  nullInt(t.Get(i, "tackles_solo")),
			AstTackles:   nullInt(t.Get(i, "tackles_assists")),
			TacklesLoss:  nullFloat(t.Get(i, "tackles_loss")),
			Sacks:        nullFloat(t.Get(i, "sacks")),
			Ints:         nullInt(t.Get(i, "def_int")),
			PassDefended: nullInt(t.Get(i, "pass_defended")),
		})
	}
	return rows
}

func nullString(s string) bigquery.NullString {
	if s == "" {
		return bigquery.NullString{}
	}
	return bigquery.NullString{StringVal: s, Valid: true}
}

func nullInt(s string) bigquery.NullInt64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return bigquery.NullInt64{}
	}
	return bigquery.NullInt64{Int64: n, Valid: true}
}

func nullFloat(s string) bigquery.NullFloat64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return bigquery.NullFloat64{}
	}
	return bigquery.NullFloat64{Float64: f, Valid: true}
}
