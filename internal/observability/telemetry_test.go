package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/copa-admin/internal/config"
	"github.com/riskibarqy/copa-admin/internal/platform/logging"
)

func TestStart_AllDisabled(t *testing.T) {
	cfg := config.Config{
		ServiceName:    "copa-admin-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	tel, err := Start(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("start telemetry: %v", err)
	}
	if len(tel.stops) != 0 {
		t.Fatalf("expected no running backends, got %d", len(tel.stops))
	}
	if err := tel.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown telemetry: %v", err)
	}
}

func TestStart_UptraceWithoutDSNStaysOff(t *testing.T) {
	cfg := config.Config{UptraceEnabled: true, UptraceDSN: "  "}

	tel, err := Start(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("start telemetry: %v", err)
	}
	if len(tel.stops) != 0 {
		t.Fatalf("expected uptrace to stay off without a DSN")
	}
}

func TestStart_PprofServesAndStops(t *testing.T) {
	cfg := config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:0"}

	tel, err := Start(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("start telemetry: %v", err)
	}
	if len(tel.stops) != 1 || tel.stops[0].name != "pprof" {
		t.Fatalf("expected pprof backend, got %+v", tel.stops)
	}
	if err := tel.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown telemetry: %v", err)
	}
	if err := tel.Shutdown(context.Background()); err != nil {
		t.Fatalf("second shutdown should be a no-op: %v", err)
	}
}

func TestStart_PprofBadAddrFails(t *testing.T) {
	cfg := config.Config{PprofEnabled: true, PprofAddr: "bad-addr"}

	if _, err := Start(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for unusable pprof address")
	}
}

func TestPprofMux_ServesIndex(t *testing.T) {
	rec := httptest.NewRecorder()
	newPprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from pprof index, got %d", rec.Code)
	}
}

func TestPyroscopeConfig_Tags(t *testing.T) {
	got := pyroscopeConfig(config.Config{
		PyroscopeAppName: "copa-admin-api",
		AppEnv:           config.EnvProd,
		StoreDriver:      "postgres",
		ServiceVersion:   "1.2.0",
	})
	if got.ApplicationName != "copa-admin-api" {
		t.Fatalf("unexpected application name %q", got.ApplicationName)
	}
	if got.Tags["store"] != "postgres" || got.Tags["version"] != "1.2.0" {
		t.Fatalf("unexpected tags %+v", got.Tags)
	}
}

func TestTelemetryShutdown_Nil(t *testing.T) {
	var tel *Telemetry
	if err := tel.Shutdown(context.Background()); err != nil {
		t.Fatalf("nil telemetry shutdown: %v", err)
	}
}
