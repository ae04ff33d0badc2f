package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/copa-admin/internal/domain/team"
	"github.com/riskibarqy/copa-admin/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

const defaultImportWorkers = 4

// ExternalTeam is a club as reported by the sports data provider.
type ExternalTeam struct {
	ExternalID  int64
	Name        string
	CountryName string
	ImagePath   string
}

type ExternalTeamSource interface {
	FetchTeamsBySeason(ctx context.Context, seasonID int64) ([]ExternalTeam, error)
}

type ImportTeamsInput struct {
	SeasonID int64
	Group    string
}

type ImportTeamsResult struct {
	SeasonID int64            `json:"season_id"`
	Fetched  int              `json:"fetched"`
	Created  int              `json:"created"`
	Skipped  int              `json:"skipped"`
	Failed   int              `json:"failed"`
	Items    []ImportTeamItem `json:"items"`
}

type ImportTeamItem struct {
	ExternalID int64  `json:"external_id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	TeamID     int64  `json:"team_id,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

const (
	importStatusCreated = "created"
	importStatusSkipped = "skipped"
	importStatusFailed  = "failed"
)

// Provider country names that do not normalize onto a tournament country.
var providerCountryAliases = map[string]team.Country{
	"brazil": team.CountryBrazil,
}

type TeamImportService struct {
	source          ExternalTeamSource
	teams           *TeamService
	defaultSeasonID int64
	workers         int
	logger          *logging.Logger
}

func NewTeamImportService(source ExternalTeamSource, teams *TeamService, defaultSeasonID int64, workers int, logger *logging.Logger) *TeamImportService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = defaultImportWorkers
	}
	return &TeamImportService{
		source:          source,
		teams:           teams,
		defaultSeasonID: defaultSeasonID,
		workers:         workers,
		logger:          logger,
	}
}

// ImportTeams creates every provider team of the season through the regular
// team create path. Duplicates and unsupported countries are skipped.
func (s *TeamImportService) ImportTeams(ctx context.Context, input ImportTeamsInput) (ImportTeamsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamImportService.ImportTeams")
	defer span.End()

	if s == nil || s.source == nil {
		return ImportTeamsResult{}, fmt.Errorf("%w: sports data provider is disabled", ErrDependencyUnavailable)
	}

	seasonID := input.SeasonID
	if seasonID <= 0 {
		seasonID = s.defaultSeasonID
	}
	if seasonID <= 0 {
		return ImportTeamsResult{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	group := strings.TrimSpace(input.Group)
	if group == "" {
		return ImportTeamsResult{}, fmt.Errorf("%w: group is required", ErrInvalidInput)
	}

	items, err := s.source.FetchTeamsBySeason(ctx, seasonID)
	if err != nil {
		if errors.Is(err, ErrDependencyUnavailable) {
			return ImportTeamsResult{}, err
		}
		return ImportTeamsResult{}, fmt.Errorf("%w: fetch provider teams: %v", ErrDependencyUnavailable, err)
	}

	workers := pool.NewWithResults[ImportTeamItem]().WithMaxGoroutines(s.workers)
	for _, item := range items {
		item := item
		workers.Go(func() ImportTeamItem {
			return s.importOne(ctx, item, group)
		})
	}
	rows := workers.Wait()

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ExternalID < rows[j].ExternalID
	})

	result := ImportTeamsResult{SeasonID: seasonID, Fetched: len(items), Items: rows}
	for _, row := range rows {
		switch row.Status {
		case importStatusCreated:
			result.Created++
		case importStatusSkipped:
			result.Skipped++
		default:
			result.Failed++
		}
	}

	s.logger.InfoContext(ctx, "provider teams imported",
		"season_id", seasonID,
		"fetched", result.Fetched,
		"created", result.Created,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)
	return result, nil
}

func (s *TeamImportService) importOne(ctx context.Context, item ExternalTeam, group string) ImportTeamItem {
	row := ImportTeamItem{ExternalID: item.ExternalID, Name: strings.TrimSpace(item.Name)}

	country, ok := resolveProviderCountry(item.CountryName)
	if !ok {
		row.Status = importStatusSkipped
		row.Reason = fmt.Sprintf("country %q is not part of the tournament", item.CountryName)
		return row
	}

	created, err := s.teams.Create(ctx, CreateTeamInput{
		Name:    row.Name,
		Country: country,
		Group:   group,
	})
	switch {
	case err == nil:
		row.Status = importStatusCreated
		row.TeamID = created.ID
	case errors.Is(err, ErrConflict), errors.Is(err, ErrInvalidInput):
		row.Status = importStatusSkipped
		row.Reason = err.Error()
	default:
		row.Status = importStatusFailed
		row.Reason = err.Error()
		s.logger.WarnContext(ctx, "provider team import failed", "external_id", item.ExternalID, "error", err)
	}
	return row
}

func resolveProviderCountry(raw string) (team.Country, bool) {
	if country, err := team.ParseCountry(raw); err == nil {
		return country, true
	}
	country, ok := providerCountryAliases[team.NormalizeName(raw)]
	return country, ok
}
