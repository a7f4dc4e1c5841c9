package scrape

import "testing"

func TestCombineRows(t *testing.T) {
	table := Table{
		Columns: []string{
			"combine_year", "player", "pos", "school_name", "college",
			"ht", "wt", "forty_yd", "vertical", "bench_reps",
			"broad_jump", "cone", "shuttle", "draft_info",
		},
		Rows: [][]string{
			{"2000", "John Abraham", "OLB", "South Carolina",
				"https://www.sports-reference.com/cfb/players/john-abraham-1.html",
				"6-4", "252", "4.55", "", "", "", "", "", "New York Jets / 1st / 13th pick / 2000"},
		},
	}

	rows := CombineRows(table)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}

	r := rows[0]
	if r.Year != 2000 || r.Player != "John Abraham" || r.School != "South Carolina" {
		t.Errorf("identity fields wrong: %+v", r)
	}
	if !r.FortyYard.Valid || r.FortyYard.Float64 != 4.55 {
		t.Errorf("forty = %+v, want 4.55", r.FortyYard)
	}
	if !r.Weight.Valid || r.Weight.Int64 != 252 {
		t.Errorf("weight = %+v, want 252", r.Weight)
	}
	if r.Vertical.Valid || r.BenchReps.Valid {
		t.Errorf("blank drills decoded as valid: %+v", r)
	}
	if !r.College.Valid {
		t.Error("college link should be valid")
	}
}

func TestPassingRows(t *testing.T) {
	table := Table{
		Columns: []string{
			"player_id", "year_id", "school_name", "class", "pos", "g",
			"pass_cmp", "pass_att", "pass_yds", "pass_td", "pass_int",
		},
		Rows: [][]string{
			{"drew-brees-1", "2000", "Purdue", "SR", "QB", "12",
				"309", "512", "3668", "26", "12"},
		},
	}

	rows := PassingRows(table)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}

	r := rows[0]
	if r.PlayerID != "drew-brees-1" || r.Season != "2000" {
		t.Errorf("identity fields wrong: %+v", r.PlayerSeason)
	}
	if !r.Yards.Valid || r.Yards.Int64 != 3668 {
		t.Errorf("yards = %+v, want 3668", r.Yards)
	}
}

func TestDefenseRowsMissingColumns(t *testing.T) {
	// A defense table without sack data: the column simply never appeared.
	table := Table{
		Columns: []string{"player_id", "year_id", "tackles_solo"},
		Rows:    [][]string{{"some-player-1", "1999", "58"}},
	}

	rows := DefenseRows(table)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Sacks.Valid {
		t.Errorf("sacks = %+v, want invalid", rows[0].Sacks)
	}
	if !rows[0].SoloTackles.Valid || rows[0].SoloTackles.Int64 != 58 {
		t.Errorf("solo tackles = %+v, want 58", rows[0].SoloTackles)
	}
}
