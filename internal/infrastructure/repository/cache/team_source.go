package cache

import (
	"context"
	"strconv"

	basecache "github.com/riskibarqy/copa-admin/internal/platform/cache"
	"github.com/riskibarqy/copa-admin/internal/usecase"
)

// TeamSource caches provider team lists per season.
type TeamSource struct {
	next  usecase.ExternalTeamSource
	cache *basecache.Store[[]usecase.ExternalTeam]
}

func NewTeamSource(next usecase.ExternalTeamSource, cache *basecache.Store[[]usecase.ExternalTeam]) *TeamSource {
	return &TeamSource{next: next, cache: cache}
}

func (s *TeamSource) FetchTeamsBySeason(ctx context.Context, seasonID int64) ([]usecase.ExternalTeam, error) {
	key := "sportmonks:season:" + strconv.FormatInt(seasonID, 10) + ":teams"
	items, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) ([]usecase.ExternalTeam, error) {
		items, err := s.next.FetchTeamsBySeason(ctx, seasonID)
		if err != nil {
			return nil, err
		}
		return append([]usecase.ExternalTeam(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	return append([]usecase.ExternalTeam(nil), items...), nil
}
