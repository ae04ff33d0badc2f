package sportmonks

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/copa-admin/internal/usecase"
)

const (
	includeTeamCountry = "country"
	teamsPerPage       = 50
	maxTeamPages       = 20
)

// FetchTeamsBySeason walks every page of /teams/seasons/{id}.
func (c *Client) FetchTeamsBySeason(ctx context.Context, seasonID int64) ([]usecase.ExternalTeam, error) {
	if seasonID <= 0 {
		return nil, crerr.New("season id must be greater than zero")
	}

	path := fmt.Sprintf("/teams/seasons/%d", seasonID)
	byID := make(map[int64]usecase.ExternalTeam, 64)
	for page := 1; page <= maxTeamPages; page++ {
		query := map[string]string{
			"include":  includeTeamCountry,
			"per_page": strconv.Itoa(teamsPerPage),
			"page":     strconv.Itoa(page),
		}

		var envelope teamsEnvelope
		if err := c.doJSON(ctx, path, query, &envelope); err != nil {
			return nil, crerr.Wrapf(err, "fetch teams season_id=%d page=%d", seasonID, page)
		}

		for _, item := range envelope.Data {
			mapped, ok := mapTeam(item)
			if !ok {
				continue
			}
			byID[mapped.ExternalID] = mapped
		}

		if !envelope.Pagination.HasMore {
			break
		}
	}

	out := make([]usecase.ExternalTeam, 0, len(byID))
	for _, item := range byID {
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ExternalID < out[j].ExternalID })
	return out, nil
}

func mapTeam(item teamItem) (usecase.ExternalTeam, bool) {
	name := strings.TrimSpace(item.Name)
	if item.ID <= 0 || name == "" || item.Placeholder {
		return usecase.ExternalTeam{}, false
	}
	return usecase.ExternalTeam{
		ExternalID:  item.ID,
		Name:        name,
		CountryName: strings.TrimSpace(item.Country.Data.Name),
		ImagePath:   strings.TrimSpace(item.ImagePath),
	}, true
}

type teamsEnvelope struct {
	Data       []teamItem `json:"data"`
	Pagination pagination `json:"pagination"`
}

type pagination struct {
	Count       int  `json:"count"`
	PerPage     int  `json:"per_page"`
	CurrentPage int  `json:"current_page"`
	HasMore     bool `json:"has_more"`
}

type teamItem struct {
	ID          int64                `json:"id"`
	CountryID   int64                `json:"country_id"`
	Name        string               `json:"name"`
	ShortCode   string               `json:"short_code"`
	ImagePath   string               `json:"image_path"`
	Type        string               `json:"type"`
	Placeholder bool                 `json:"placeholder"`
	Country     relation[countryRef] `json:"country"`
}

type countryRef struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ISO2      string `json:"iso2"`
	ImagePath string `json:"image_path"`
}

// relation accepts both {"data": {...}} and a bare object for included
// entities.
type relation[T any] struct {
	Data T
	Set  bool
}

func (r *relation[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		r.Set = false
		return nil
	}

	var wrapped struct {
		Data *T `json:"data"`
	}
	if err := sonic.Unmarshal(trimmed, &wrapped); err == nil && wrapped.Data != nil {
		r.Data = *wrapped.Data
		r.Set = true
		return nil
	}

	var direct T
	if err := sonic.Unmarshal(trimmed, &direct); err != nil {
		return err
	}
	r.Data = direct
	r.Set = true
	return nil
}
