package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/copa-admin/external/sportmonks"
	"github.com/riskibarqy/copa-admin/internal/config"
	"github.com/riskibarqy/copa-admin/internal/domain/store"
	repocache "github.com/riskibarqy/copa-admin/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/copa-admin/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/copa-admin/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/copa-admin/internal/infrastructure/storage"
	"github.com/riskibarqy/copa-admin/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/copa-admin/internal/platform/cache"
	"github.com/riskibarqy/copa-admin/internal/platform/logging"
	"github.com/riskibarqy/copa-admin/internal/platform/resilience"
	"github.com/riskibarqy/copa-admin/internal/usecase"
)

const localLogoPublicBase = "/logos"

// App owns the HTTP server and the resources it depends on.
type App struct {
	Server *http.Server

	closers []func() error
}

// New wires the store, services and router. Reports are rebuilt once before
// the server is returned so the report endpoints never start empty.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{}
	tx, err := a.openStore(ctx, cfg, logger)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	logos, logoDir, err := newLogoStorage(ctx, cfg, logger)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	teamSvc := usecase.NewTeamService(tx, logos, logger)
	matchSvc := usecase.NewMatchService(tx, logger)
	statsSvc := usecase.NewStatisticsService(tx, logger)
	reportSvc := usecase.NewReportService(tx, logger, cfg.ReportRebuildWorkers)
	importSvc := usecase.NewTeamImportService(newTeamSource(cfg, logger), teamSvc, cfg.SportMonksSeasonID, cfg.ImportWorkers, logger)

	result, err := reportSvc.RebuildAll(ctx)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("rebuild reports on startup: %w", err)
	}
	logger.InfoContext(ctx, "reports rebuilt on startup",
		"success_count", result.SuccessCount,
		"failed_count", result.FailedCount,
	)

	handler := httpapi.NewHandler(teamSvc, matchSvc, statsSvc, reportSvc, importSvc, cfg.LogoMaxBytes, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		LogoDir:            logoDir,
	})

	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return a, nil
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}

func (a *App) openStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (store.Transactor, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		if cfg.MemorySeed {
			seed := memory.SeedTeams()
			logger.InfoContext(ctx, "memory store seeded", "teams", len(seed))
			return memory.NewSeededStore(seed), nil
		}
		return memory.NewStore(), nil
	case config.StoreDriverPostgres:
		db, err := OpenPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)

		inserted, err := postgres.BootstrapSeed(ctx, db)
		if err != nil {
			return nil, fmt.Errorf("bootstrap seed: %w", err)
		}
		if inserted > 0 {
			logger.InfoContext(ctx, "postgres store seeded", "teams", inserted)
		}
		return postgres.NewStore(db), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}

// newLogoStorage returns the configured storage and, for local storage, the
// directory the router should serve under /logos/.
func newLogoStorage(ctx context.Context, cfg config.Config, logger *logging.Logger) (usecase.LogoStorage, string, error) {
	if cfg.LogoStorage == config.LogoStorageS3 {
		s3Storage, err := storage.NewS3LogoStorage(ctx, storage.S3Config{
			Endpoint:        cfg.LogoS3Endpoint,
			Region:          cfg.LogoS3Region,
			Bucket:          cfg.LogoS3Bucket,
			AccessKeyID:     cfg.LogoS3AccessKeyID,
			SecretAccessKey: cfg.LogoS3SecretAccessKey,
			PublicBaseURL:   cfg.LogoPublicBaseURL,
			Logger:          logger,
		})
		if err != nil {
			return nil, "", fmt.Errorf("init s3 logo storage: %w", err)
		}
		return s3Storage, "", nil
	}

	publicBase := cfg.LogoPublicBaseURL
	if publicBase == "" {
		publicBase = localLogoPublicBase
	}
	local, err := storage.NewLocalLogoStorage(cfg.LogoLocalDir, publicBase, logger)
	if err != nil {
		return nil, "", fmt.Errorf("init local logo storage: %w", err)
	}

	// An external public base means something else serves the files.
	if publicBase != localLogoPublicBase {
		return local, "", nil
	}
	return local, local.Dir(), nil
}

func newTeamSource(cfg config.Config, logger *logging.Logger) usecase.ExternalTeamSource {
	if !cfg.SportMonksEnabled {
		return nil
	}
	client := sportmonks.NewClient(sportmonks.ClientConfig{
		BaseURL:    cfg.SportMonksBaseURL,
		Token:      cfg.SportMonksToken,
		Timeout:    cfg.SportMonksTimeout,
		MaxRetries: cfg.SportMonksMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.SportMonksCircuitEnabled,
			FailureThreshold: cfg.SportMonksCircuitFailureCount,
			OpenTimeout:      cfg.SportMonksCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.SportMonksCircuitHalfOpenMaxReq,
		},
	})
	if cfg.SportMonksCacheTTL <= 0 {
		return client
	}
	return repocache.NewTeamSource(client, basecache.NewStore[[]usecase.ExternalTeam](cfg.SportMonksCacheTTL))
}
