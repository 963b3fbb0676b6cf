package cache

import (
	"context"

	"github.com/riskibarqy/football-league/internal/domain/league"
	"github.com/riskibarqy/football-league/internal/domain/team"
	basecache "github.com/riskibarqy/football-league/internal/platform/cache"
)

const (
	leagueKeyPrefix = "league:"
	teamKeyPrefix   = "team:"
)

type LeagueRepository struct {
	next  league.Repository
	cache *basecache.Store
}

func NewLeagueRepository(next league.Repository, cache *basecache.Store) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	items, err := basecache.Load(ctx, r.cache, leagueKeyPrefix+"list", func(ctx context.Context) ([]league.League, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]league.League(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	return append([]league.League(nil), items...), nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, leagueKeyPrefix+"id:"+leagueID, func(ctx context.Context) (cachedLeagueByID, error) {
		item, exists, err := r.next.GetByID(ctx, leagueID)
		if err != nil {
			return cachedLeagueByID{}, err
		}
		return cachedLeagueByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return league.League{}, false, err
	}

	return cached.value, cached.exists, nil
}

type cachedLeagueByID struct {
	value  league.League
	exists bool
}

// TeamRepository caches the listings. Single-team lookups always go to the
// store because roster decisions depend on the current captain.
type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Summary, error) {
	items, err := basecache.Load(ctx, r.cache, teamKeyPrefix+"list", func(ctx context.Context) ([]team.Summary, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return cloneSummaries(items), nil
	})
	if err != nil {
		return nil, err
	}

	return cloneSummaries(items), nil
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	items, err := basecache.Load(ctx, r.cache, teamKeyPrefix+"league:"+leagueID, func(ctx context.Context) ([]team.Team, error) {
		items, err := r.next.ListByLeague(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return cloneTeams(items), nil
	})
	if err != nil {
		return nil, err
	}

	return cloneTeams(items), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	return r.next.GetByID(ctx, teamID)
}

// Invalidator drops every cached listing that embeds team data.
type Invalidator struct {
	cache *basecache.Store
}

func NewInvalidator(cache *basecache.Store) *Invalidator {
	return &Invalidator{cache: cache}
}

func (i *Invalidator) InvalidateListings(ctx context.Context) {
	i.cache.DeletePrefix(ctx, teamKeyPrefix)
}

// Captain pointers are copied so callers cannot mutate cached entries.
func cloneTeams(items []team.Team) []team.Team {
	out := make([]team.Team, len(items))
	for i, item := range items {
		out[i] = item
		if item.CaptainPlayerID != nil {
			id := *item.CaptainPlayerID
			out[i].CaptainPlayerID = &id
		}
	}
	return out
}

func cloneSummaries(items []team.Summary) []team.Summary {
	out := make([]team.Summary, len(items))
	for i, item := range items {
		out[i] = item
		if item.CaptainPlayerID != nil {
			id := *item.CaptainPlayerID
			out[i].CaptainPlayerID = &id
		}
	}
	return out
}
