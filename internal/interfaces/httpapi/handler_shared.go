package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/copa-admin/internal/domain/match"
	"github.com/riskibarqy/copa-admin/internal/domain/team"
	"github.com/riskibarqy/copa-admin/internal/platform/logging"
	"github.com/riskibarqy/copa-admin/internal/usecase"
)

const defaultLogoMaxBytes int64 = 2 << 20

type Handler struct {
	teamService       *usecase.TeamService
	matchService      *usecase.MatchService
	statisticsService *usecase.StatisticsService
	reportService     *usecase.ReportService
	teamImportService *usecase.TeamImportService
	logoMaxBytes      int64
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	matchService *usecase.MatchService,
	statisticsService *usecase.StatisticsService,
	reportService *usecase.ReportService,
	teamImportService *usecase.TeamImportService,
	logoMaxBytes int64,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if logoMaxBytes <= 0 {
		logoMaxBytes = defaultLogoMaxBytes
	}

	return &Handler{
		teamService:       teamService,
		matchService:      matchService,
		statisticsService: statisticsService,
		reportService:     reportService,
		teamImportService: teamImportService,
		logoMaxBytes:      logoMaxBytes,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeRequest rejects unknown keys and validates the decoded payload.
func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, payload any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is empty", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, payload)
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

func pathCountry(r *http.Request) (team.Country, error) {
	country, err := team.ParseCountry(r.PathValue("pais"))
	if err != nil {
		return "", fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return country, nil
}

func pathPhase(r *http.Request) (match.Phase, error) {
	phase, err := match.ParsePhase(r.PathValue("fase"))
	if err != nil {
		return "", fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return phase, nil
}

type createTeamRequest struct {
	Name    string `json:"nombre" validate:"required,min=3,max=50"`
	Country string `json:"pais" validate:"required"`
	Group   string `json:"grupo" validate:"required,min=1,max=10"`
	Points  int    `json:"puntos" validate:"gte=0,lte=2147483647"`
}

// updateTeamRequest carries no counters; those change only through matches.
type updateTeamRequest struct {
	Name    *string `json:"nombre" validate:"omitempty,min=3,max=50"`
	Country *string `json:"pais"`
	Group   *string `json:"grupo" validate:"omitempty,min=1,max=10"`
}

type createMatchRequest struct {
	HomeTeamID      int64  `json:"equipo_local_id" validate:"required,gt=0"`
	AwayTeamID      int64  `json:"equipo_visitante_id" validate:"required,gt=0"`
	HomeGoals       int    `json:"goles_local" validate:"gte=0,lte=2147483647"`
	AwayGoals       int    `json:"goles_visitante" validate:"gte=0,lte=2147483647"`
	HomeYellowCards int    `json:"tarjetas_amarillas_local" validate:"gte=0,lte=2147483647"`
	AwayYellowCards int    `json:"tarjetas_amarillas_visitante" validate:"gte=0,lte=2147483647"`
	HomeRedCards    int    `json:"tarjetas_rojas_local" validate:"gte=0,lte=2147483647"`
	AwayRedCards    int    `json:"tarjetas_rojas_visitante" validate:"gte=0,lte=2147483647"`
	HomeCorners     int    `json:"tiros_esquina_local" validate:"gte=0,lte=2147483647"`
	AwayCorners     int    `json:"tiros_esquina_visitante" validate:"gte=0,lte=2147483647"`
	HomeFreeKicks   int    `json:"tiros_libres_local" validate:"gte=0,lte=2147483647"`
	AwayFreeKicks   int    `json:"tiros_libres_visitante" validate:"gte=0,lte=2147483647"`
	HomeFouls       int    `json:"faltas_local" validate:"gte=0,lte=2147483647"`
	AwayFouls       int    `json:"faltas_visitante" validate:"gte=0,lte=2147483647"`
	HomeOffsides    int    `json:"fueras_de_juego_local" validate:"gte=0,lte=2147483647"`
	AwayOffsides    int    `json:"fueras_de_juego_visitante" validate:"gte=0,lte=2147483647"`
	HomePasses      int    `json:"pases_local" validate:"gte=0,lte=2147483647"`
	AwayPasses      int    `json:"pases_visitante" validate:"gte=0,lte=2147483647"`
	Phase           string `json:"fase"`
	PlayedOn        string `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
}

// updateMatchRequest cannot move a match to other teams.
type updateMatchRequest struct {
	HomeGoals       *int    `json:"goles_local" validate:"omitempty,gte=0,lte=2147483647"`
	AwayGoals       *int    `json:"goles_visitante" validate:"omitempty,gte=0,lte=2147483647"`
	HomeYellowCards *int    `json:"tarjetas_amarillas_local" validate:"omitempty,gte=0,lte=2147483647"`
	AwayYellowCards *int    `json:"tarjetas_amarillas_visitante" validate:"omitempty,gte=0,lte=2147483647"`
	HomeRedCards    *int    `json:"tarjetas_rojas_local" validate:"omitempty,gte=0,lte=2147483647"`
	AwayRedCards    *int    `json:"tarjetas_rojas_visitante" validate:"omitempty,gte=0,lte=2147483647"`
	HomeCorners     *int    `json:"tiros_esquina_local" validate:"omitempty,gte=0,lte=2147483647"`
	AwayCorners     *int    `json:"tiros_esquina_visitante" validate:"omitempty,gte=0,lte=2147483647"`
	HomeFreeKicks   *int    `json:"tiros_libres_local" validate:"omitempty,gte=0,lte=2147483647"`
	AwayFreeKicks   *int    `json:"tiros_libres_visitante" validate:"omitempty,gte=0,lte=2147483647"`
	HomeFouls       *int    `json:"faltas_local" validate:"omitempty,gte=0,lte=2147483647"`
	AwayFouls       *int    `json:"faltas_visitante" validate:"omitempty,gte=0,lte=2147483647"`
	HomeOffsides    *int    `json:"fueras_de_juego_local" validate:"omitempty,gte=0,lte=2147483647"`
	AwayOffsides    *int    `json:"fueras_de_juego_visitante" validate:"omitempty,gte=0,lte=2147483647"`
	HomePasses      *int    `json:"pases_local" validate:"omitempty,gte=0,lte=2147483647"`
	AwayPasses      *int    `json:"pases_visitante" validate:"omitempty,gte=0,lte=2147483647"`
	Phase           *string `json:"fase"`
	PlayedOn        *string `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
}

type importTeamsRequest struct {
	SeasonID int64  `json:"temporada_id" validate:"gte=0"`
	Group    string `json:"grupo" validate:"required,min=1,max=10"`
}

func (req createTeamRequest) toInput() (usecase.CreateTeamInput, error) {
	country, err := team.ParseCountry(req.Country)
	if err != nil {
		return usecase.CreateTeamInput{}, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return usecase.CreateTeamInput{
		Name:    req.Name,
		Country: country,
		Group:   req.Group,
		Points:  req.Points,
	}, nil
}

func (req updateTeamRequest) toInput() (usecase.UpdateTeamInput, error) {
	input := usecase.UpdateTeamInput{
		Name:  req.Name,
		Group: req.Group,
	}
	if req.Country != nil {
		country, err := team.ParseCountry(*req.Country)
		if err != nil {
			return usecase.UpdateTeamInput{}, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
		}
		input.Country = &country
	}
	return input, nil
}

func (req createMatchRequest) toInput() (usecase.CreateMatchInput, error) {
	phase := match.PhasePlayOff
	if strings.TrimSpace(req.Phase) != "" {
		parsed, err := match.ParsePhase(req.Phase)
		if err != nil {
			return usecase.CreateMatchInput{}, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
		}
		phase = parsed
	}
	playedOn, err := match.ParseDate(req.PlayedOn)
	if err != nil {
		return usecase.CreateMatchInput{}, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}

	return usecase.CreateMatchInput{
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		Home: match.SideStats{
			Goals:       req.HomeGoals,
			YellowCards: req.HomeYellowCards,
			RedCards:    req.HomeRedCards,
			Corners:     req.HomeCorners,
			FreeKicks:   req.HomeFreeKicks,
			Fouls:       req.HomeFouls,
			Offsides:    req.HomeOffsides,
			Passes:      req.HomePasses,
		},
		Away: match.SideStats{
			Goals:       req.AwayGoals,
			YellowCards: req.AwayYellowCards,
			RedCards:    req.AwayRedCards,
			Corners:     req.AwayCorners,
			FreeKicks:   req.AwayFreeKicks,
			Fouls:       req.AwayFouls,
			Offsides:    req.AwayOffsides,
			Passes:      req.AwayPasses,
		},
		Phase:    phase,
		PlayedOn: playedOn,
	}, nil
}

func (req updateMatchRequest) toInput() (usecase.UpdateMatchInput, error) {
	input := usecase.UpdateMatchInput{
		Home: usecase.SideStatsPatch{
			Goals:       req.HomeGoals,
			YellowCards: req.HomeYellowCards,
			RedCards:    req.HomeRedCards,
			Corners:     req.HomeCorners,
			FreeKicks:   req.HomeFreeKicks,
			Fouls:       req.HomeFouls,
			Offsides:    req.HomeOffsides,
			Passes:      req.HomePasses,
		},
		Away: usecase.SideStatsPatch{
			Goals:       req.AwayGoals,
			YellowCards: req.AwayYellowCards,
			RedCards:    req.AwayRedCards,
			Corners:     req.AwayCorners,
			FreeKicks:   req.AwayFreeKicks,
			Fouls:       req.AwayFouls,
			Offsides:    req.AwayOffsides,
			Passes:      req.AwayPasses,
		},
	}
	if req.Phase != nil {
		phase, err := match.ParsePhase(*req.Phase)
		if err != nil {
			return usecase.UpdateMatchInput{}, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
		}
		input.Phase = &phase
	}
	if req.PlayedOn != nil {
		playedOn, err := match.ParseDate(*req.PlayedOn)
		if err != nil {
			return usecase.UpdateMatchInput{}, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
		}
		input.PlayedOn = playedOn
	}
	return input, nil
}
