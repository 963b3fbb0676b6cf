package usecase

import (
	"errors"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-league/internal/domain/match"
	leaguemock "github.com/riskibarqy/football-league/internal/mocks/domain/league"
	standingmock "github.com/riskibarqy/football-league/internal/mocks/domain/standing"
	"github.com/stretchr/testify/mock"
)

func newTestMatchService(t *testing.T) (*MatchService, fixtureRepos) {
	t.Helper()

	repos := newFixtureRepos(t)
	standings := NewStandingsService(repos.leagues, repos.standings, nil, 1, discardLogger())
	service := NewMatchService(repos.matches, repos.goals, repos.players, standings, discardLogger())
	return service, repos
}

func TestMatchService_GetMatchDetails(t *testing.T) {
	t.Parallel()

	service, _ := newTestMatchService(t)

	details, err := service.GetMatchDetails(t.Context(), finishedMatchID)
	if err != nil {
		t.Fatalf("get match details: %v", err)
	}
	if details.Match.HomeName != "Arsenal" || details.Match.AwayName != "Chelsea" {
		t.Fatalf("unexpected team names: %s vs %s", details.Match.HomeName, details.Match.AwayName)
	}
	if details.Match.LeagueName != "Premier League" || details.Match.LeagueCountry != "England" {
		t.Fatalf("unexpected league: %s/%s", details.Match.LeagueName, details.Match.LeagueCountry)
	}
	if len(details.Goals) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(details.Goals))
	}
	if details.Goals[0].Minute != 12 || details.Goals[0].PlayerName != "Cole Captain" {
		t.Fatalf("expected earliest goal first, got %+v", details.Goals[0])
	}
	if details.Goals[1].TeamName != "Arsenal" {
		t.Fatalf("unexpected scorer team: %q", details.Goals[1].TeamName)
	}

	upcoming, err := service.GetMatchDetails(t.Context(), upcomingMatchID)
	if err != nil {
		t.Fatalf("get upcoming match: %v", err)
	}
	if upcoming.Goals == nil || len(upcoming.Goals) != 0 {
		t.Fatalf("expected empty non-nil goal list, got %#v", upcoming.Goals)
	}

	_, err = service.GetMatchDetails(t.Context(), 999)
	if !errors.Is(err, ErrNotFound) || Message(err) != MsgMatchNotFound {
		t.Fatalf("expected match not found, got %v (%q)", err, Message(err))
	}
}

func TestMatchService_RecordResult_RecomputesStandings(t *testing.T) {
	t.Parallel()

	service, repos := newTestMatchService(t)

	updated, err := service.RecordResult(t.Context(), RecordResultInput{MatchID: upcomingMatchID, HomeScore: 1, AwayScore: 1})
	if err != nil {
		t.Fatalf("record result: %v", err)
	}
	if !updated.IsFinished() || *updated.HomeScore != 1 || *updated.AwayScore != 1 {
		t.Fatalf("unexpected match after result: %+v", updated)
	}

	arsenal, _, _ := repos.teams.GetByID(t.Context(), arsenalID)
	chelsea, _, _ := repos.teams.GetByID(t.Context(), chelseaID)
	if arsenal.Record.Matches != 2 || arsenal.Record.Points != 4 || arsenal.Record.Draws != 1 {
		t.Fatalf("unexpected arsenal record: %+v", arsenal.Record)
	}
	if chelsea.Record.Matches != 2 || chelsea.Record.Points != 1 || chelsea.Record.Losses != 1 {
		t.Fatalf("unexpected chelsea record: %+v", chelsea.Record)
	}
	for _, tm := range []struct {
		name string
		err  error
	}{
		{name: "arsenal", err: arsenal.Record.Validate()},
		{name: "chelsea", err: chelsea.Record.Validate()},
	} {
		if tm.err != nil {
			t.Fatalf("%s record breaks invariants: %v", tm.name, tm.err)
		}
	}
}

func TestMatchService_RecordResult_Failures(t *testing.T) {
	t.Parallel()

	service, _ := newTestMatchService(t)

	_, err := service.RecordResult(t.Context(), RecordResultInput{MatchID: upcomingMatchID, HomeScore: -1})
	if !errors.Is(err, ErrInvalidInput) || Message(err) != MsgInvalidScore {
		t.Fatalf("expected invalid score, got %v (%q)", err, Message(err))
	}

	_, err = service.RecordResult(t.Context(), RecordResultInput{MatchID: 999})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchService_RecordResult_StoreFailureLeavesNothingApplied(t *testing.T) {
	t.Parallel()

	repos := newFixtureRepos(t)
	standingRepo := standingmock.NewRepository(t)
	invalidator := &countingInvalidator{}
	standings := NewStandingsService(leaguemock.NewRepository(t), standingRepo, invalidator, 1, discardLogger())
	service := NewMatchService(repos.matches, repos.goals, repos.players, standings, discardLogger())

	standingRepo.
		On("SaveResult", mock.Anything, upcomingMatchID, 2, 2, mock.Anything).
		Return(match.Match{}, false, errors.New("database is locked")).
		Once()

	_, err := service.RecordResult(t.Context(), RecordResultInput{MatchID: upcomingMatchID, HomeScore: 2, AwayScore: 2})
	if !crerr.Is(err, ErrStore) || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected store failure, got %v", err)
	}
	if invalidator.calls.Load() != 0 {
		t.Fatalf("failed write must not invalidate listings")
	}
}

func TestMatchService_RecordGoal(t *testing.T) {
	t.Parallel()

	t.Run("valid goal", func(t *testing.T) {
		t.Parallel()

		service, repos := newTestMatchService(t)
		created, err := service.RecordGoal(t.Context(), RecordGoalInput{
			MatchID:  upcomingMatchID,
			TeamID:   arsenalID,
			PlayerID: memberID,
			Minute:   90,
		})
		if err != nil {
			t.Fatalf("record goal: %v", err)
		}
		if created.ID == 0 {
			t.Fatalf("expected goal id to be assigned")
		}

		count, _ := repos.goals.CountByPlayer(t.Context(), memberID)
		if count != 2 {
			t.Fatalf("expected 2 goals for member, got %d", count)
		}
	})

	tests := []struct {
		name    string
		input   RecordGoalInput
		wantErr error
	}{
		{name: "minute out of range", input: RecordGoalInput{MatchID: upcomingMatchID, TeamID: arsenalID, PlayerID: memberID, Minute: 131}, wantErr: ErrInvalidInput},
		{name: "missing player", input: RecordGoalInput{MatchID: upcomingMatchID, TeamID: arsenalID, Minute: 10}, wantErr: ErrInvalidInput},
		{name: "unknown match", input: RecordGoalInput{MatchID: 999, TeamID: arsenalID, PlayerID: memberID, Minute: 10}, wantErr: ErrNotFound},
		{name: "team not in match", input: RecordGoalInput{MatchID: upcomingMatchID, TeamID: 77, PlayerID: memberID, Minute: 10}, wantErr: ErrInvalidInput},
		{name: "unknown player", input: RecordGoalInput{MatchID: upcomingMatchID, TeamID: arsenalID, PlayerID: 999, Minute: 10}, wantErr: ErrNotFound},
		{name: "player not on team", input: RecordGoalInput{MatchID: upcomingMatchID, TeamID: chelseaID, PlayerID: memberID, Minute: 10}, wantErr: ErrInvalidInput},
		{name: "free agent", input: RecordGoalInput{MatchID: upcomingMatchID, TeamID: arsenalID, PlayerID: freeFredID, Minute: 10}, wantErr: ErrInvalidInput},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			service, _ := newTestMatchService(t)
			_, err := service.RecordGoal(t.Context(), tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}
