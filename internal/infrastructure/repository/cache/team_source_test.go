package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	basecache "github.com/riskibarqy/copa-admin/internal/platform/cache"
	"github.com/riskibarqy/copa-admin/internal/usecase"
)

type countingSource struct {
	calls map[int64]int
	err   error
}

func (s *countingSource) FetchTeamsBySeason(_ context.Context, seasonID int64) ([]usecase.ExternalTeam, error) {
	s.calls[seasonID]++
	if s.err != nil {
		return nil, s.err
	}
	return []usecase.ExternalTeam{{ExternalID: seasonID * 10, Name: "Club Bolívar", CountryName: "Bolivia"}}, nil
}

func TestTeamSource_CachesPerSeason(t *testing.T) {
	t.Parallel()

	next := &countingSource{calls: map[int64]int{}}
	src := NewTeamSource(next, basecache.NewStore[[]usecase.ExternalTeam](time.Minute))

	for i := 0; i < 3; i++ {
		items, err := src.FetchTeamsBySeason(context.Background(), 23614)
		if err != nil {
			t.Fatalf("fetch: %v", err)
		}
		if len(items) != 1 || items[0].Name != "Club Bolívar" {
			t.Fatalf("unexpected items: %+v", items)
		}
	}
	if _, err := src.FetchTeamsBySeason(context.Background(), 99); err != nil {
		t.Fatalf("fetch other season: %v", err)
	}

	if next.calls[23614] != 1 {
		t.Fatalf("season 23614 fetched %d times, want 1", next.calls[23614])
	}
	if next.calls[99] != 1 {
		t.Fatalf("season 99 fetched %d times, want 1", next.calls[99])
	}
}

func TestTeamSource_ReturnsCopies(t *testing.T) {
	t.Parallel()

	next := &countingSource{calls: map[int64]int{}}
	src := NewTeamSource(next, basecache.NewStore[[]usecase.ExternalTeam](time.Minute))

	first, err := src.FetchTeamsBySeason(context.Background(), 1)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	first[0].Name = "mutated"

	second, err := src.FetchTeamsBySeason(context.Background(), 1)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if second[0].Name != "Club Bolívar" {
		t.Fatalf("cached slice was mutated by caller: %+v", second)
	}
}

func TestTeamSource_DoesNotCacheFailures(t *testing.T) {
	t.Parallel()

	next := &countingSource{calls: map[int64]int{}, err: errors.New("provider down")}
	src := NewTeamSource(next, basecache.NewStore[[]usecase.ExternalTeam](time.Minute))

	for i := 0; i < 2; i++ {
		if _, err := src.FetchTeamsBySeason(context.Background(), 5); err == nil {
			t.Fatalf("expected provider error")
		}
	}
	if next.calls[5] != 2 {
		t.Fatalf("expected every failed fetch to reach the provider, got %d", next.calls[5])
	}
}
