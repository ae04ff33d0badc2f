package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/riskibarqy/copa-admin/internal/domain/match"
	"github.com/riskibarqy/copa-admin/internal/domain/report"
	"github.com/riskibarqy/copa-admin/internal/domain/store"
	"github.com/riskibarqy/copa-admin/internal/domain/team"
	"github.com/riskibarqy/copa-admin/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/copa-admin/internal/platform/logging"
)

type lifecycleFixture struct {
	store   *memory.Store
	teams   *TeamService
	matches *MatchService
	stats   *StatisticsService
	reports *ReportService
}

func newLifecycleFixture(t *testing.T) lifecycleFixture {
	t.Helper()

	st := memory.NewStore()
	logger := logging.NewNop()
	now := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	f := lifecycleFixture{
		store:   st,
		teams:   NewTeamService(st, nil, logger),
		matches: NewMatchService(st, logger),
		stats:   NewStatisticsService(st, logger),
		reports: NewReportService(st, logger, 2),
	}
	f.teams.now = clock
	f.matches.now = clock
	f.stats.now = clock
	f.reports.now = clock
	return f
}

func (f lifecycleFixture) createTeam(t *testing.T, name string, country team.Country) team.Team {
	t.Helper()

	item, err := f.teams.Create(t.Context(), CreateTeamInput{Name: name, Country: country, Group: "A"})
	if err != nil {
		t.Fatalf("create team %s: %v", name, err)
	}
	return item
}

func (f lifecycleFixture) createMatch(t *testing.T, homeID, awayID int64, homeGoals, awayGoals int) match.Match {
	t.Helper()

	item, err := f.matches.Create(t.Context(), CreateMatchInput{
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		Home:       match.SideStats{Goals: homeGoals, YellowCards: 1, Passes: 300},
		Away:       match.SideStats{Goals: awayGoals, RedCards: 1, Passes: 250},
		Phase:      match.PhaseGroups,
	})
	if err != nil {
		t.Fatalf("create match %d-%d: %v", homeID, awayID, err)
	}
	return item
}

func (f lifecycleFixture) team(t *testing.T, id int64) team.Team {
	t.Helper()

	var out team.Team
	err := f.store.WithinTx(t.Context(), func(ctx context.Context, uow store.UnitOfWork) error {
		item, exists, err := uow.Teams().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return errors.New("team not stored")
		}
		out = item
		return nil
	})
	if err != nil {
		t.Fatalf("load team %d: %v", id, err)
	}
	return out
}

func (f lifecycleFixture) match(t *testing.T, id int64) match.Match {
	t.Helper()

	var out match.Match
	err := f.store.WithinTx(t.Context(), func(ctx context.Context, uow store.UnitOfWork) error {
		item, exists, err := uow.Matches().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return errors.New("match not stored")
		}
		out = item
		return nil
	})
	if err != nil {
		t.Fatalf("load match %d: %v", id, err)
	}
	return out
}

func TestLifecycle_ColombiaScenario(t *testing.T) {
	t.Parallel()

	f := newLifecycleFixture(t)
	a := f.createTeam(t, "Atlético Nacional", team.CountryColombia)
	b := f.createTeam(t, "Millonarios", team.CountryColombia)
	m := f.createMatch(t, a.ID, b.ID, 2, 1)

	gotA, gotB := f.team(t, a.ID), f.team(t, b.ID)
	if gotA.Points != 3 || gotA.Stats.GoalsFor != 2 || gotA.Stats.GoalsAgainst != 1 {
		t.Fatalf("unexpected home team after create: %+v", gotA)
	}
	if gotB.Points != 0 || gotB.Stats.GoalsAgainst != 2 || gotB.Stats.GoalsFor != 1 {
		t.Fatalf("unexpected away team after create: %+v", gotB)
	}

	countryReport, err := f.reports.GetCountry(t.Context(), team.CountryColombia)
	if err != nil {
		t.Fatalf("get country report: %v", err)
	}
	if countryReport.TotalTeams != 2 || countryReport.TotalPoints != 3 {
		t.Fatalf("unexpected report after create: %+v", countryReport)
	}
	if countryReport.AvgGoalsFor != 1.5 || countryReport.AvgGoalsAgainst != 1.5 {
		t.Fatalf("unexpected averages: %+v", countryReport)
	}

	if err := f.matches.SoftDelete(t.Context(), m.ID); err != nil {
		t.Fatalf("soft delete match: %v", err)
	}

	gotA = f.team(t, a.ID)
	if gotA.Points != 0 || gotA.Stats.GoalsFor != 0 {
		t.Fatalf("unexpected home team after delete: %+v", gotA)
	}
	countryReport, err = f.reports.GetCountry(t.Context(), team.CountryColombia)
	if err != nil {
		t.Fatalf("get country report: %v", err)
	}
	if countryReport.TotalTeams != 2 || countryReport.TotalPoints != 0 {
		t.Fatalf("unexpected report after delete: %+v", countryReport)
	}

	phaseReport, err := f.reports.GetPhase(t.Context(), match.PhaseGroups)
	if err != nil {
		t.Fatalf("get phase report: %v", err)
	}
	if phaseReport.TotalMatches != 0 || phaseReport.TotalGoals != 0 {
		t.Fatalf("unexpected phase report after delete: %+v", phaseReport)
	}
}

func TestLifecycle_NameUniquenessAmongActiveTeams(t *testing.T) {
	t.Parallel()

	f := newLifecycleFixture(t)
	original := f.createTeam(t, "Perú", team.CountryPeru)

	_, err := f.teams.Create(t.Context(), CreateTeamInput{Name: "peru", Country: team.CountryPeru, Group: "B"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for accent variant, got %v", err)
	}

	if err := f.teams.SoftDelete(t.Context(), original.ID); err != nil {
		t.Fatalf("soft delete team: %v", err)
	}

	replacement, err := f.teams.Create(t.Context(), CreateTeamInput{Name: "peru", Country: team.CountryPeru, Group: "B"})
	if err != nil {
		t.Fatalf("create after delete: %v", err)
	}
	if replacement.ID == original.ID {
		t.Fatalf("expected a new team id")
	}

	if _, err := f.teams.Restore(t.Context(), original.ID); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict restoring shadowed name, got %v", err)
	}
}

func TestLifecycle_RenameChecksUniquenessExcludingSelf(t *testing.T) {
	t.Parallel()

	f := newLifecycleFixture(t)
	a := f.createTeam(t, "Olimpia", team.CountryParaguay)
	f.createTeam(t, "Cerro Porteño", team.CountryParaguay)

	sameName := "OLIMPIA"
	renamed, err := f.teams.Update(t.Context(), a.ID, UpdateTeamInput{Name: &sameName})
	if err != nil {
		t.Fatalf("rename to own name: %v", err)
	}
	if renamed.Name != "OLIMPIA" {
		t.Fatalf("unexpected name: %s", renamed.Name)
	}

	taken := "cerro porteno"
	if _, err := f.teams.Update(t.Context(), a.ID, UpdateTeamInput{Name: &taken}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestLifecycle_CountryChangeRefreshesBothReports(t *testing.T) {
	t.Parallel()

	f := newLifecycleFixture(t)
	a := f.createTeam(t, "Always Ready", team.CountryBolivia)

	chile := team.CountryChile
	if _, err := f.teams.Update(t.Context(), a.ID, UpdateTeamInput{Country: &chile}); err != nil {
		t.Fatalf("update country: %v", err)
	}

	reports, err := f.reports.ListCountries(t.Context())
	if err != nil {
		t.Fatalf("list country reports: %v", err)
	}
	byCountry := make(map[team.Country]report.CountryReport, len(reports))
	for _, item := range reports {
		byCountry[item.Country] = item
	}
	if byCountry[team.CountryBolivia].TotalTeams != 0 {
		t.Fatalf("expected empty Bolivia report, got %+v", byCountry[team.CountryBolivia])
	}
	if byCountry[team.CountryChile].TotalTeams != 1 {
		t.Fatalf("expected one team in Chile report, got %+v", byCountry[team.CountryChile])
	}
}

func TestLifecycle_PointsFloorAtZero(t *testing.T) {
	t.Parallel()

	f := newLifecycleFixture(t)
	a := f.createTeam(t, "Emelec", team.CountryEcuador)
	b := f.createTeam(t, "Aucas", team.CountryEcuador)
	m := f.createMatch(t, a.ID, b.ID, 3, 1)

	if got := f.team(t, a.ID).Points; got != 3 {
		t.Fatalf("expected 3 points, got %d", got)
	}

	err := f.store.WithinTx(t.Context(), func(ctx context.Context, uow store.UnitOfWork) error {
		item, _, err := uow.Teams().GetByID(ctx, a.ID)
		if err != nil {
			return err
		}
		item.Points = 1
		return uow.Teams().Update(ctx, item)
	})
	if err != nil {
		t.Fatalf("lower points: %v", err)
	}

	if err := f.matches.SoftDelete(t.Context(), m.ID); err != nil {
		t.Fatalf("soft delete match: %v", err)
	}
	if got := f.team(t, a.ID).Points; got != 0 {
		t.Fatalf("expected floored points 0, got %d", got)
	}
}

func TestLifecycle_DrawGivesOnePointEach(t *testing.T) {
	t.Parallel()

	f := newLifecycleFixture(t)
	a := f.createTeam(t, "Deportivo Táchira", team.CountryVenezuela)
	b := f.createTeam(t, "Caracas FC", team.CountryVenezuela)
	f.createMatch(t, a.ID, b.ID, 1, 1)

	if f.team(t, a.ID).Points != 1 || f.team(t, b.ID).Points != 1 {
		t.Fatalf("expected one point each")
	}
}

func TestLifecycle_ConservationUnderDeleteRestore(t *testing.T) {
	t.Parallel()

	f := newLifecycleFixture(t)
	a := f.createTeam(t, "Peñarol", team.CountryUruguay)
	b := f.createTeam(t, "Nacional", team.CountryUruguay)
	m := f.createMatch(t, a.ID, b.ID, 2, 0)
	wantA, wantB := f.team(t, a.ID), f.team(t, b.ID)

	if err := f.teams.SoftDelete(t.Context(), b.ID); err != nil {
		t.Fatalf("soft delete team: %v", err)
	}
	if got := f.team(t, a.ID); got.Points != 0 || got.Stats != (team.Stats{}) {
		t.Fatalf("expected opponent reset after cascade, got %+v", got)
	}

	restoredTeam, err := f.teams.Restore(t.Context(), b.ID)
	if err != nil {
		t.Fatalf("restore team: %v", err)
	}
	if restoredTeam.Stats != (team.Stats{}) {
		t.Fatalf("expected restored team stats from active matches only, got %+v", restoredTeam.Stats)
	}
	if f.match(t, m.ID).Active {
		t.Fatalf("cascaded match must stay inactive after team restore")
	}

	if _, err := f.matches.Restore(t.Context(), m.ID); err != nil {
		t.Fatalf("restore match: %v", err)
	}

	gotA, gotB := f.team(t, a.ID), f.team(t, b.ID)
	if gotA.Points != wantA.Points || gotA.Stats != wantA.Stats {
		t.Fatalf("home team not conserved: got=%+v want=%+v", gotA, wantA)
	}
	if gotB.Points != wantB.Points || gotB.Stats != wantB.Stats {
		t.Fatalf("away team not conserved: got=%+v want=%+v", gotB, wantB)
	}
}

func TestLifecycle_CascadeCompleteness(t *testing.T) {
	t.Parallel()

	f := newLifecycleFixture(t)
	a := f.createTeam(t, "Universitario", team.CountryPeru)
	b := f.createTeam(t, "Sporting Cristal", team.CountryPeru)
	c := f.createTeam(t, "Melgar", team.CountryPeru)
	f.createMatch(t, a.ID, b.ID, 1, 0)
	f.createMatch(t, c.ID, a.ID, 2, 2)
	f.createMatch(t, a.ID, c.ID, 0, 1)
	untouched := f.createMatch(t, b.ID, c.ID, 3, 0)

	if err := f.teams.SoftDelete(t.Context(), a.ID); err != nil {
		t.Fatalf("soft delete team: %v", err)
	}

	err := f.store.WithinTx(t.Context(), func(ctx context.Context, uow store.UnitOfWork) error {
		active, err := uow.Matches().List(ctx, match.ListFilter{Active: true, TeamID: a.ID})
		if err != nil {
			return err
		}
		if len(active) != 0 {
			t.Errorf("expected no active matches for deleted team, got %d", len(active))
		}
		inactive, err := uow.Matches().List(ctx, match.ListFilter{Active: false, TeamID: a.ID})
		if err != nil {
			return err
		}
		if len(inactive) != 3 {
			t.Errorf("expected 3 cascaded matches, got %d", len(inactive))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("inspect matches: %v", err)
	}

	if !f.match(t, untouched.ID).Active {
		t.Fatalf("match without the deleted team must stay active")
	}
	gotB, gotC := f.team(t, b.ID), f.team(t, c.ID)
	if gotB.Points != 3 || gotB.Stats.GoalsFor != 3 || gotB.Stats.GoalsAgainst != 0 {
		t.Fatalf("unexpected opponent b: %+v", gotB)
	}
	if gotC.Points != 0 || gotC.Stats.GoalsFor != 0 || gotC.Stats.GoalsAgainst != 3 {
		t.Fatalf("unexpected opponent c: %+v", gotC)
	}
}

func TestLifecycle_MatchUpdateKeepsPoints(t *testing.T) {
	t.Parallel()

	f := newLifecycleFixture(t)
	a := f.createTeam(t, "Libertad", team.CountryParaguay)
	b := f.createTeam(t, "Guaraní", team.CountryParaguay)
	m := f.createMatch(t, a.ID, b.ID, 2, 1)

	homeGoals, awayGoals := 0, 3
	final := match.PhaseFinal
	updated, err := f.matches.Update(t.Context(), m.ID, UpdateMatchInput{
		Home:  SideStatsPatch{Goals: &homeGoals},
		Away:  SideStatsPatch{Goals: &awayGoals},
		Phase: &final,
	})
	if err != nil {
		t.Fatalf("update match: %v", err)
	}
	if updated.Home.Passes != 300 {
		t.Fatalf("unpatched counters must be kept, got %+v", updated.Home)
	}

	gotA, gotB := f.team(t, a.ID), f.team(t, b.ID)
	if gotA.Points != 3 || gotB.Points != 0 {
		t.Fatalf("points must not change on update: a=%d b=%d", gotA.Points, gotB.Points)
	}
	if gotA.Stats.GoalsFor != 0 || gotA.Stats.GoalsAgainst != 3 {
		t.Fatalf("stats must be recomputed on update: %+v", gotA.Stats)
	}

	groups, err := f.reports.GetPhase(t.Context(), match.PhaseGroups)
	if err != nil {
		t.Fatalf("get groups report: %v", err)
	}
	if groups.TotalMatches != 0 {
		t.Fatalf("old phase must be refreshed, got %+v", groups)
	}
	finals, err := f.reports.GetPhase(t.Context(), match.PhaseFinal)
	if err != nil {
		t.Fatalf("get final report: %v", err)
	}
	if finals.TotalMatches != 1 || finals.TotalGoals != 3 || finals.AvgGoalsPerMatch != 3 {
		t.Fatalf("new phase must be refreshed, got %+v", finals)
	}
}

func TestLifecycle_MatchPreconditions(t *testing.T) {
	t.Parallel()

	f := newLifecycleFixture(t)
	a := f.createTeam(t, "The Strongest", team.CountryBolivia)
	b := f.createTeam(t, "Wilstermann", team.CountryBolivia)

	_, err := f.matches.Create(t.Context(), CreateMatchInput{HomeTeamID: a.ID, AwayTeamID: a.ID, Phase: match.PhaseGroups})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for same team, got %v", err)
	}

	_, err = f.matches.Create(t.Context(), CreateMatchInput{HomeTeamID: a.ID, AwayTeamID: 999, Phase: match.PhaseGroups})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing team, got %v", err)
	}

	m := f.createMatch(t, a.ID, b.ID, 0, 0)
	if _, err := f.matches.Restore(t.Context(), m.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound restoring an active match, got %v", err)
	}
	if err := f.matches.SoftDelete(t.Context(), m.ID); err != nil {
		t.Fatalf("soft delete match: %v", err)
	}
	if err := f.matches.SoftDelete(t.Context(), m.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting twice, got %v", err)
	}

	if err := f.teams.SoftDelete(t.Context(), b.ID); err != nil {
		t.Fatalf("soft delete team: %v", err)
	}
	if _, err := f.matches.Restore(t.Context(), m.ID); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict restoring with inactive team, got %v", err)
	}
}

func TestLifecycle_RecalculationIsIdempotent(t *testing.T) {
	t.Parallel()

	f := newLifecycleFixture(t)
	a := f.createTeam(t, "Colo-Colo", team.CountryChile)
	b := f.createTeam(t, "Universidad de Chile", team.CountryChile)
	f.createMatch(t, a.ID, b.ID, 2, 2)
	f.createMatch(t, b.ID, a.ID, 1, 0)

	first, err := f.stats.Recalculate(t.Context(), a.ID)
	if err != nil {
		t.Fatalf("first recalculation: %v", err)
	}
	second, err := f.stats.Recalculate(t.Context(), a.ID)
	if err != nil {
		t.Fatalf("second recalculation: %v", err)
	}
	if first.Stats != second.Stats || first.Points != second.Points {
		t.Fatalf("recalculation not idempotent: %+v vs %+v", first, second)
	}
	want := team.Stats{GoalsFor: 2, GoalsAgainst: 3, YellowCards: 1, RedCards: 1, Passes: 550}
	if first.Stats != want {
		t.Fatalf("unexpected stats: got=%+v want=%+v", first.Stats, want)
	}

	if _, err := f.stats.Recalculate(t.Context(), 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLifecycle_InactiveTeamReadsAndWrites(t *testing.T) {
	t.Parallel()

	f := newLifecycleFixture(t)
	a := f.createTeam(t, "Barcelona SC", team.CountryEcuador)
	if err := f.teams.SoftDelete(t.Context(), a.ID); err != nil {
		t.Fatalf("soft delete team: %v", err)
	}

	if _, err := f.teams.Get(t.Context(), a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound reading inactive team, got %v", err)
	}
	group := "C"
	if _, err := f.teams.Update(t.Context(), a.ID, UpdateTeamInput{Group: &group}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound updating inactive team, got %v", err)
	}
	if err := f.teams.SoftDelete(t.Context(), a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting twice, got %v", err)
	}

	inactive, err := f.teams.ListInactive(t.Context())
	if err != nil {
		t.Fatalf("list inactive: %v", err)
	}
	if len(inactive) != 1 || inactive[0].ID != a.ID {
		t.Fatalf("unexpected inactive list: %+v", inactive)
	}

	restored, err := f.teams.Restore(t.Context(), a.ID)
	if err != nil {
		t.Fatalf("restore team: %v", err)
	}
	again, err := f.teams.Restore(t.Context(), a.ID)
	if err != nil {
		t.Fatalf("restore active team: %v", err)
	}
	if !restored.Active || again.UpdatedAt != restored.UpdatedAt {
		t.Fatalf("restore of an active team must be a no-op")
	}
	if _, err := f.teams.Restore(t.Context(), 77); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound restoring missing team, got %v", err)
	}
}

type failingCountryReports struct {
	report.Repository
}

func (failingCountryReports) UpsertCountry(context.Context, report.CountryReport) error {
	return errors.New("country report write failed")
}

type failingReportsUnitOfWork struct {
	store.UnitOfWork
}

func (u failingReportsUnitOfWork) Reports() report.Repository {
	return failingCountryReports{Repository: u.UnitOfWork.Reports()}
}

type failingReportsTransactor struct {
	inner store.Transactor
}

func (f failingReportsTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context, uow store.UnitOfWork) error) error {
	return f.inner.WithinTx(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		return fn(ctx, failingReportsUnitOfWork{UnitOfWork: uow})
	})
}

func TestLifecycle_FailureRollsBackCascade(t *testing.T) {
	t.Parallel()

	f := newLifecycleFixture(t)
	a := f.createTeam(t, "Racing Club", team.CountryArgentina)
	b := f.createTeam(t, "Independiente", team.CountryArgentina)
	m := f.createMatch(t, a.ID, b.ID, 1, 0)

	faulty := NewTeamService(failingReportsTransactor{inner: f.store}, nil, logging.NewNop())
	if err := faulty.SoftDelete(t.Context(), b.ID); err == nil {
		t.Fatalf("expected soft delete to fail")
	}

	if !f.team(t, b.ID).Active {
		t.Fatalf("team must stay active after rollback")
	}
	if !f.match(t, m.ID).Active {
		t.Fatalf("match must stay active after rollback")
	}
	if got := f.team(t, a.ID); got.Points != 3 || got.Stats.GoalsFor != 1 {
		t.Fatalf("opponent must be untouched after rollback: %+v", got)
	}
}

func TestLifecycle_ValidationAbortsBeforeMutation(t *testing.T) {
	t.Parallel()

	f := newLifecycleFixture(t)
	cases := []CreateTeamInput{
		{Name: "AB", Country: team.CountryChile, Group: "A"},
		{Name: "Huachipato", Country: team.Country("Mexico"), Group: "A"},
		{Name: "Huachipato", Country: team.CountryChile, Group: ""},
		{Name: "Huachipato", Country: team.CountryChile, Group: "A", Points: -1},
	}
	for _, input := range cases {
		if _, err := f.teams.Create(t.Context(), input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", input, err)
		}
	}

	items, err := f.teams.List(t.Context())
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no teams stored, got %d", len(items))
	}
}

func TestLifecycle_RejectsCountersPastStoredLimit(t *testing.T) {
	t.Parallel()

	f := newLifecycleFixture(t)
	ctx := t.Context()

	_, err := f.teams.Create(ctx, CreateTeamInput{Name: "Peñarol", Country: team.CountryUruguay, Group: "B", Points: math.MaxInt64 - 1})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for oversized points, got %v", err)
	}

	a := f.createTeam(t, "Nacional", team.CountryUruguay)
	b := f.createTeam(t, "Defensor Sporting", team.CountryUruguay)

	oversized := CreateMatchInput{
		HomeTeamID: a.ID,
		AwayTeamID: b.ID,
		Home:       match.SideStats{Passes: math.MaxInt64/2 + 1},
		Phase:      match.PhaseGroups,
	}
	if _, err := f.matches.Create(ctx, oversized); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for oversized match counter, got %v", err)
	}

	full := CreateMatchInput{
		HomeTeamID: a.ID,
		AwayTeamID: b.ID,
		Home:       match.SideStats{Passes: team.MaxCounter},
		Phase:      match.PhaseGroups,
	}
	first, err := f.matches.Create(ctx, full)
	if err != nil {
		t.Fatalf("create match at the limit: %v", err)
	}
	if _, err := f.matches.Create(ctx, full); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput when totals pass the limit, got %v", err)
	}

	got := f.team(t, a.ID)
	if got.Stats.Passes != team.MaxCounter || got.Points != 1 {
		t.Fatalf("rejected match leaked into team: passes=%d points=%d", got.Stats.Passes, got.Points)
	}
	active, err := f.matches.List(ctx)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected only the first match to be stored, got %d", len(active))
	}

	if err := f.matches.SoftDelete(ctx, first.ID); err != nil {
		t.Fatalf("soft delete match: %v", err)
	}
	if _, err := f.matches.Create(ctx, full); err != nil {
		t.Fatalf("create replacement match: %v", err)
	}
	if _, err := f.matches.Restore(ctx, first.ID); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput restoring past the limit, got %v", err)
	}
	if f.match(t, first.ID).Active {
		t.Fatalf("rejected restore left the match active")
	}

	got = f.team(t, a.ID)
	if got.Stats.Passes != team.MaxCounter || got.Points < 0 {
		t.Fatalf("unexpected counters after rejected restore: passes=%d points=%d", got.Stats.Passes, got.Points)
	}
}

func TestLifecycle_RejectsPointsPastStoredLimit(t *testing.T) {
	t.Parallel()

	f := newLifecycleFixture(t)
	ctx := t.Context()

	leader, err := f.teams.Create(ctx, CreateTeamInput{Name: "Independiente del Valle", Country: team.CountryEcuador, Group: "C", Points: team.MaxCounter})
	if err != nil {
		t.Fatalf("create team at the limit: %v", err)
	}
	rival := f.createTeam(t, "Barcelona SC", team.CountryEcuador)

	_, err = f.matches.Create(ctx, CreateMatchInput{
		HomeTeamID: leader.ID,
		AwayTeamID: rival.ID,
		Home:       match.SideStats{Goals: 2},
		Phase:      match.PhaseGroups,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput when a win passes the limit, got %v", err)
	}

	if got := f.team(t, leader.ID).Points; got != team.MaxCounter {
		t.Fatalf("expected points to stay at %d, got %d", team.MaxCounter, got)
	}
	if got := f.team(t, rival.ID).Stats.GoalsAgainst; got != 0 {
		t.Fatalf("rejected match leaked into rival stats: goals_against=%d", got)
	}
}
