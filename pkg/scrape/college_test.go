package scrape

import (
	"errors"
	"testing"
)

const playerPage = `<html><body>
<table id="passing">
<thead>
<tr><th></th><th colspan="5">Passing</th></tr>
<tr>
<th data-stat="year_id">Year</th><th data-stat="school_name">School</th>
<th data-stat="class">Class</th><th data-stat="pos">Pos</th>
<th data-stat="g">G</th><th data-stat="pass_cmp">Cmp</th>
<th data-stat="pass_att">Att</th><th data-stat="pass_yds">Yds</th>
<th data-stat="pass_td">TD</th><th data-stat="pass_int">Int</th>
</tr>
</thead>
<tbody>
<tr>
<th data-stat="year_id">1999</th><td data-stat="school_name">Purdue</td>
<td data-stat="class">JR</td><td data-stat="pos">QB</td>
<td data-stat="g">12</td><td data-stat="pass_cmp">337</td>
<td data-stat="pass_att">554</td><td data-stat="pass_yds">3909</td>
<td data-stat="pass_td">25</td><td data-stat="pass_int">12</td>
</tr>
<tr>
<th data-stat="year_id">2000</th><td data-stat="school_name">Purdue</td>
<td data-stat="class">SR</td><td data-stat="pos">QB</td>
<td data-stat="g">12</td><td data-stat="pass_cmp">309</td>
<td data-stat="pass_att">512</td><td data-stat="pass_yds">3668</td>
<td data-stat="pass_td">26</td><td data-stat="pass_int">12</td>
</tr>
</tbody>
</table>
<table id="rushing">
<thead>
<tr>
<th data-stat="year_id">Year</th><th data-stat="school_name">School</th>
<th data-stat="class">Class</th><th data-stat="pos">Pos</th>
<th data-stat="g">G</th><th data-stat="rush_att">Att</th>
<th data-stat="rush_yds">Yds</th><th data-stat="rush_td">TD</th>
</tr>
</thead>
<tbody>
<tr>
<th data-stat="year_id">2000</th><td data-stat="school_name">Purdue</td>
<td data-stat="class">SR</td><td data-stat="pos">QB</td>
<td data-stat="g">12</td><td data-stat="rush_att">95</td>
<td data-stat="rush_yds">521</td><td data-stat="rush_td">5</td>
</tr>
</tbody>
</table>
</body></html>`

func TestPlayerLinks(t *testing.T) {
	table := Table{
		Columns: []string{"player", "college"},
		Rows: [][]string{
			{"Drew Brees", "https://www.sports-reference.com/cfb/players/drew-brees-1.html"},
			{"No Page Guy", ""},
			{"Relative Link", "/cfb/players/relative-link-1.html"},
		},
	}

	links := PlayerLinks(table)
	if len(links) != 2 {
		t.Fatalf("links = %v, want 2", links)
	}
	if links[0].ID != "drew-brees-1" {
		t.Errorf("ID = %q, want drew-brees-1", links[0].ID)
	}
	if links[1].URL != PlayerBaseUrl+"/cfb/players/relative-link-1.html" {
		t.Errorf("relative href not made absolute: %q", links[1].URL)
	}
}

func TestPlayerLinksNoColumn(t *testing.T) {
	table := Table{Columns: []string{"player"}, Rows: [][]string{{"Somebody"}}}
	if links := PlayerLinks(table); len(links) != 0 {
		t.Errorf("links = %v, want none", links)
	}
}

func TestGetPlayerStats(t *testing.T) {
	player := PlayerLink{ID: "drew-brees-1", URL: PlayerBaseUrl + "/cfb/players/drew-brees-1.html"}
	f := &stubFetcher{pages: map[string]string{player.URL: playerPage}}

	// Defense is missing from this player's page; rushing is not.
	data, failed := GetPlayerStats(f, player, Rushing, Defense)

	rushing, ok := data[Rushing]
	if !ok {
		t.Fatal("rushing table missing")
	}
	if rushing.Len() != 1 {
		t.Fatalf("rushing rows = %d, want 1", rushing.Len())
	}
	if got := rushing.Get(0, "player_id"); got != "drew-brees-1" {
		t.Errorf("player_id = %q", got)
	}
	if got := rushing.Get(0, "rush_yds"); got != "521" {
		t.Errorf("rush_yds = %q, want 521", got)
	}

	if len(failed) != 1 {
		t.Fatalf("failed = %v, want one entry", failed)
	}
	if failed[0].Category != Defense {
		t.Errorf("failed category = %q, want defense", failed[0].Category)
	}
	var parseErr *ParseError
	if !errors.As(failed[0].Err, &parseErr) {
		t.Errorf("err = %v, want ParseError", failed[0].Err)
	}
}

func TestGetPlayerStatsSingleFetch(t *testing.T) {
	player := PlayerLink{ID: "drew-brees-1", URL: PlayerBaseUrl + "/cfb/players/drew-brees-1.html"}
	f := &stubFetcher{pages: map[string]string{player.URL: playerPage}}

	if _, failed := GetPlayerStats(f, player); len(failed) != 2 {
		// passing and rushing succeed, receiving and defense are absent
		t.Errorf("failed = %v, want receiving and defense", failed)
	}
	if len(f.fetched) != 1 {
		t.Errorf("page fetched %d times for 4 categories, want 1", len(f.fetched))
	}
}

func TestGetCollegeStats(t *testing.T) {
	brees := PlayerLink{ID: "drew-brees-1", URL: PlayerBaseUrl + "/cfb/players/drew-brees-1.html"}
	ghost := PlayerLink{ID: "no-such-player-1", URL: PlayerBaseUrl + "/cfb/players/no-such-player-1.html"}
	f := &stubFetcher{pages: map[string]string{brees.URL: playerPage}}

	data, failed := GetCollegeStats(f, []PlayerLink{brees, ghost}, Passing)

	passing := data[Passing]
	if passing.Len() != 2 {
		t.Fatalf("passing rows = %d, want 2", passing.Len())
	}
	if got := passing.Get(1, "pass_yds"); got != "3668" {
		t.Errorf("pass_yds = %q, want 3668", got)
	}

	if len(failed) != 1 {
		t.Fatalf("failed = %v, want one entry", failed)
	}
	if failed[0].Player.ID != "no-such-player-1" || failed[0].Category != "" {
		t.Errorf("failed = %+v, want fetch failure for ghost player", failed[0])
	}
	var fetchErr *FetchError
	if !errors.As(failed[0].Err, &fetchErr) {
		t.Errorf("err = %v, want FetchError", failed[0].Err)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"passing", Passing, false},
		{"Rushing", Rushing, false},
		{"DEFENSE", Defense, false},
		{"receiving", Receiving, false},
		{"kicking", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if tt.wantErr != (err != nil) {
			t.Errorf("ParseCategory(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
