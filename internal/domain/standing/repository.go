package standing

import (
	"context"

	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/team"
)

// RecordsFunc derives the counters of teamIDs from a league's finished
// matches. Compute is the production implementation.
type RecordsFunc func(teamIDs []int64, finished []match.Match) map[int64]team.Record

// Repository rebuilds league tables as single read-modify-write
// transactions, so the stored counters always match the finished matches
// they were derived from.
type Repository interface {
	// Recompute reads the teams and finished matches of leagueID and stores
	// the records from compute in one write transaction.
	Recompute(ctx context.Context, leagueID string, compute RecordsFunc) error
	// SaveResult finishes the match and recomputes its league in the same
	// transaction. It reports false without writing when the match is missing.
	SaveResult(ctx context.Context, matchID int64, homeScore, awayScore int, compute RecordsFunc) (match.Match, bool, error)
}
