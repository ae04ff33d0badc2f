package usecase

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/riskibarqy/copa-admin/internal/domain/match"
	"github.com/riskibarqy/copa-admin/internal/domain/store"
	"github.com/riskibarqy/copa-admin/internal/domain/team"
	idgen "github.com/riskibarqy/copa-admin/internal/platform/id"
	"github.com/riskibarqy/copa-admin/internal/platform/logging"
)

type CreateTeamInput struct {
	Name    string
	Country team.Country
	Group   string
	Points  int
}

// UpdateTeamInput lists the only team fields a caller may change. Points and
// match-derived counters are owned by the match lifecycle.
type UpdateTeamInput struct {
	Name    *string
	Country *team.Country
	Group   *string
}

func (in UpdateTeamInput) empty() bool {
	return in.Name == nil && in.Country == nil && in.Group == nil
}

// LogoStorage persists team crest images and returns their public URL.
type LogoStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}

type UploadLogoInput struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type TeamService struct {
	tx     store.Transactor
	logos  LogoStorage
	ids    idgen.Generator
	logger *logging.Logger
	now    func() time.Time
}

func NewTeamService(tx store.Transactor, logos LogoStorage, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		tx:     tx,
		logos:  logos,
		ids:    idgen.NewRandomGenerator(),
		logger: logger,
		now:    time.Now,
	}
}

func (s *TeamService) Create(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	now := s.now().UTC()
	item := team.Team{
		Name:      strings.TrimSpace(input.Name),
		Country:   input.Country,
		Group:     strings.TrimSpace(input.Group),
		Points:    input.Points,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		if err := ensureNameAvailable(ctx, uow, item.NormalizedName(), 0); err != nil {
			return err
		}

		created, err := uow.Teams().Insert(ctx, item)
		if err != nil {
			return mapStoreError(err, "create team")
		}
		item = created

		refresh := newReportRefresh()
		refresh.country(item.Country)
		return refresh.flush(ctx, uow, now)
	})
	if err != nil {
		return team.Team{}, err
	}

	s.logger.InfoContext(ctx, "team created", "team_id", item.ID, "country", item.Country)
	return item, nil
}

func (s *TeamService) Update(ctx context.Context, id int64, input UpdateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update", teamIDAttr(id))
	defer span.End()

	if input.empty() {
		return team.Team{}, fmt.Errorf("%w: no updatable fields provided", ErrInvalidInput)
	}

	now := s.now().UTC()
	var out team.Team
	err := s.tx.WithinTx(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		current, err := loadActiveTeam(ctx, uow, id)
		if err != nil {
			return err
		}

		next := current
		if input.Name != nil {
			next.Name = strings.TrimSpace(*input.Name)
		}
		if input.Country != nil {
			next.Country = *input.Country
		}
		if input.Group != nil {
			next.Group = strings.TrimSpace(*input.Group)
		}
		if err := next.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if next.NormalizedName() != current.NormalizedName() {
			if err := ensureNameAvailable(ctx, uow, next.NormalizedName(), id); err != nil {
				return err
			}
		}

		next.UpdatedAt = now
		if err := uow.Teams().Update(ctx, next); err != nil {
			return mapStoreError(err, "update team")
		}
		out = next

		if next.Country == current.Country {
			return nil
		}
		refresh := newReportRefresh()
		refresh.country(current.Country)
		refresh.country(next.Country)
		return refresh.flush(ctx, uow, now)
	})
	if err != nil {
		return team.Team{}, err
	}

	s.logger.InfoContext(ctx, "team updated", "team_id", id)
	return out, nil
}

// SoftDelete deactivates the team and every active match it plays in.
// Each cascaded match takes back the points it awarded to both teams, so a
// later match Restore adds them again exactly once.
func (s *TeamService) SoftDelete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.SoftDelete", teamIDAttr(id))
	defer span.End()

	now := s.now().UTC()
	cascaded := 0
	err := s.tx.WithinTx(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		item, err := loadActiveTeam(ctx, uow, id)
		if err != nil {
			return err
		}

		item.Active = false
		item.UpdatedAt = now
		if err := uow.Teams().Update(ctx, item); err != nil {
			return fmt.Errorf("deactivate team team_id=%d: %w", id, err)
		}

		matches, err := uow.Matches().List(ctx, match.ListFilter{Active: true, TeamID: id})
		if err != nil {
			return fmt.Errorf("list matches for cascade team_id=%d: %w", id, err)
		}

		refresh := newReportRefresh()
		refresh.country(item.Country)
		for _, m := range matches {
			if _, err := setMatchActive(ctx, uow, m, false, refresh, now); err != nil {
				return err
			}
		}
		cascaded = len(matches)

		return refresh.flush(ctx, uow, now)
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "team deactivated", "team_id", id, "matches_deactivated", cascaded)
	return nil
}

// Restore reactivates a team. Matches deactivated by the cascade stay
// inactive and must be restored one by one.
func (s *TeamService) Restore(ctx context.Context, id int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Restore", teamIDAttr(id))
	defer span.End()

	now := s.now().UTC()
	var out team.Team
	err := s.tx.WithinTx(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		item, exists, err := uow.Teams().GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("get team team_id=%d: %w", id, err)
		}
		if !exists {
			return fmt.Errorf("%w: team %d", ErrNotFound, id)
		}
		if item.Active {
			out = item
			return nil
		}
		if err := ensureNameAvailable(ctx, uow, item.NormalizedName(), id); err != nil {
			return err
		}

		item.Active = true
		if err := syncStats(ctx, uow, &item); err != nil {
			return err
		}
		item.UpdatedAt = now
		if err := uow.Teams().Update(ctx, item); err != nil {
			return mapStoreError(err, "restore team")
		}
		out = item

		refresh := newReportRefresh()
		refresh.country(item.Country)
		return refresh.flush(ctx, uow, now)
	})
	if err != nil {
		return team.Team{}, err
	}

	s.logger.InfoContext(ctx, "team restored", "team_id", id)
	return out, nil
}

func (s *TeamService) Get(ctx context.Context, id int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get", teamIDAttr(id))
	defer span.End()

	var out team.Team
	err := s.tx.WithinTx(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		item, exists, err := uow.Teams().GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get team team_id=%d: %w", id, err)
		}
		if !exists || !item.Active {
			return fmt.Errorf("%w: team %d", ErrNotFound, id)
		}
		out = item
		return nil
	})
	if err != nil {
		return team.Team{}, err
	}
	return out, nil
}

func (s *TeamService) List(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	return s.list(ctx, team.ListFilter{Active: true})
}

func (s *TeamService) ListInactive(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListInactive")
	defer span.End()

	return s.list(ctx, team.ListFilter{Active: false})
}

func (s *TeamService) ListByCountry(ctx context.Context, country team.Country) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListByCountry")
	defer span.End()

	if !country.Valid() {
		return nil, fmt.Errorf("%w: unknown country %q", ErrInvalidInput, country)
	}
	return s.list(ctx, team.ListFilter{Active: true, Country: country})
}

// FindByName matches case- and accent-insensitively among active teams.
func (s *TeamService) FindByName(ctx context.Context, name string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.FindByName")
	defer span.End()

	normalized := team.NormalizeName(name)
	if normalized == "" {
		return team.Team{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	var out team.Team
	err := s.tx.WithinTx(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		item, exists, err := uow.Teams().FindActiveByNormalizedName(ctx, normalized)
		if err != nil {
			return fmt.Errorf("find team by name: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: team named %q", ErrNotFound, strings.TrimSpace(name))
		}
		out = item
		return nil
	})
	if err != nil {
		return team.Team{}, err
	}
	return out, nil
}

// UploadLogo stores the image first and then points the team at it.
func (s *TeamService) UploadLogo(ctx context.Context, id int64, input UploadLogoInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.UploadLogo", teamIDAttr(id))
	defer span.End()

	if s.logos == nil {
		return team.Team{}, fmt.Errorf("%w: logo storage is not configured", ErrDependencyUnavailable)
	}
	ext, err := logoExtension(input.ContentType)
	if err != nil {
		return team.Team{}, err
	}
	if input.Body == nil || input.Size <= 0 {
		return team.Team{}, fmt.Errorf("%w: logo file is empty", ErrInvalidInput)
	}
	if _, err := s.Get(ctx, id); err != nil {
		return team.Team{}, err
	}

	token, err := s.ids.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate logo key: %w", err)
	}
	now := s.now().UTC()
	key := path.Join("teams", fmt.Sprintf("%d", id), "logo-"+token+ext)
	url, err := s.logos.Upload(ctx, key, input.ContentType, input.Body, input.Size)
	if err != nil {
		return team.Team{}, fmt.Errorf("%w: upload logo: %v", ErrDependencyUnavailable, err)
	}

	var out team.Team
	err = s.tx.WithinTx(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		item, err := loadActiveTeam(ctx, uow, id)
		if err != nil {
			return err
		}
		item.LogoURL = url
		item.UpdatedAt = now
		if err := uow.Teams().Update(ctx, item); err != nil {
			return fmt.Errorf("update team logo team_id=%d: %w", id, err)
		}
		out = item
		return nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "logo stored but team not updated, object orphaned",
			"team_id", id,
			"key", key,
			"url", url,
			"error", err,
		)
		return team.Team{}, err
	}

	s.logger.InfoContext(ctx, "team logo uploaded", "team_id", id, "key", key, "size", input.Size)
	return out, nil
}

func (s *TeamService) list(ctx context.Context, filter team.ListFilter) ([]team.Team, error) {
	var out []team.Team
	err := s.tx.WithinTx(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		items, err := uow.Teams().List(ctx, filter)
		if err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		out = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func loadActiveTeam(ctx context.Context, uow store.UnitOfWork, id int64) (team.Team, error) {
	item, exists, err := uow.Teams().GetByIDForUpdate(ctx, id)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team team_id=%d: %w", id, err)
	}
	if !exists || !item.Active {
		return team.Team{}, fmt.Errorf("%w: team %d", ErrNotFound, id)
	}
	return item, nil
}

// ensureNameAvailable fails with ErrConflict when another active team already
// uses the normalized name. selfID is skipped so renames to the same name pass.
func ensureNameAvailable(ctx context.Context, uow store.UnitOfWork, normalized string, selfID int64) error {
	found, exists, err := uow.Teams().FindActiveByNormalizedName(ctx, normalized)
	if err != nil {
		return fmt.Errorf("find team by normalized name: %w", err)
	}
	if exists && found.ID != selfID {
		return fmt.Errorf("%w: team %q already exists", ErrConflict, found.Name)
	}
	return nil
}

var logoExtensions = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

func logoExtension(contentType string) (string, error) {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}
	ext, ok := logoExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("%w: unsupported logo content type %q", ErrInvalidInput, contentType)
	}
	return ext, nil
}
