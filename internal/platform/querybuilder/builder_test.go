package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("t.id", "t.name", "l.name AS league_name").
		From("teams t").
		Join("leagues l", "l.id = t.league_id").
		LeftJoin("players p", "p.id = t.captain_player_id").
		Where(Eq("t.league_id", "la-liga"), IsNotNull("t.captain_player_id")).
		OrderBy("t.points DESC", "t.name COLLATE NOCASE ASC").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT t.id, t.name, l.name AS league_name FROM teams t JOIN leagues l ON l.id = t.league_id " +
		"LEFT JOIN players p ON p.id = t.captain_player_id WHERE t.league_id = ? AND t.captain_player_id IS NOT NULL " +
		"ORDER BY t.points DESC, t.name COLLATE NOCASE ASC LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "la-liga" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_OrAndIn(t *testing.T) {
	query, args, err := Select("id").
		From("matches").
		Where(
			Or(Eq("home_team_id", int64(4)), Eq("away_team_id", int64(4))),
			In("status", []any{"upcoming", "finished"}),
			Expr("match_date >= ?", "2025-01-01"),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM matches WHERE (home_team_id = ? OR away_team_id = ?) AND status IN (?, ?) AND match_date >= ?"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 5 || args[0] != int64(4) || args[2] != "upcoming" || args[4] != "2025-01-01" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyInMatchesNothing(t *testing.T) {
	query, args, err := Select("id").From("players").Where(In("id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM players WHERE 1=0" || len(args) != 0 {
		t.Fatalf("unexpected query=%s args=%+v", query, args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("teams").
		Columns("name", "league_id").
		Values("Alpha", "serie-a").
		Values("Beta", "serie-a").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO teams (name, league_id) VALUES (?, ?), (?, ?) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[0] != "Alpha" || args[3] != "serie-a" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("teams").Columns("name", "league_id").Values("Alpha").ToSQL()
	if err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("players").
		Set("team_id", int64(9)).
		SetExpr("email", "COALESCE(?, email)", nil).
		Where(Eq("id", int64(3)), IsNull("team_id")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE players SET team_id = ?, email = COALESCE(?, email) WHERE id = ? AND team_id IS NULL"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != int64(9) || args[1] != nil || args[2] != int64(3) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModels(t *testing.T) {
	type row struct {
		ID      int64  `db:"id"`
		Name    string `db:"name"`
		Ignored string `db:"-"`
		hidden  string
	}

	query, args, err := InsertModels("leagues", []row{{ID: 1, Name: "A"}, {ID: 2, Name: "B", hidden: "x"}})
	if err != nil {
		t.Fatalf("build insert models: %v", err)
	}
	if query != "INSERT INTO leagues (id, name) VALUES (?, ?), (?, ?)" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 4 || args[2] != int64(2) || args[3] != "B" {
		t.Fatalf("unexpected args: %+v", args)
	}
}
