package observability

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/copa-admin/internal/config"
	"github.com/riskibarqy/copa-admin/internal/platform/logging"
)

type stopFunc func(context.Context) error

// Telemetry owns the tracing, profiling and debug endpoints started for the
// process. Shutdown stops them in reverse start order.
type Telemetry struct {
	logger *logging.Logger
	stops  []namedStop
}

type namedStop struct {
	name string
	stop stopFunc
}

// Start brings up every backend enabled in cfg. When one fails to start, the
// ones already running are stopped before the error is returned.
func Start(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = logging.Default()
	}

	t := &Telemetry{logger: logger}
	starters := []struct {
		name  string
		start func(config.Config, *logging.Logger) (stopFunc, error)
	}{
		{name: "uptrace", start: startUptrace},
		{name: "pyroscope", start: startPyroscope},
		{name: "pprof", start: startPprof},
	}

	for _, s := range starters {
		stop, err := s.start(cfg, logger)
		if err != nil {
			_ = t.Shutdown(ctx)
			return nil, fmt.Errorf("start %s: %w", s.name, err)
		}
		if stop != nil {
			t.stops = append(t.stops, namedStop{name: s.name, stop: stop})
		}
	}
	return t, nil
}

func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}

	var errs []error
	for i := len(t.stops) - 1; i >= 0; i-- {
		s := t.stops[i]
		if err := s.stop(ctx); err != nil {
			t.logger.WarnContext(ctx, "telemetry shutdown failed", "backend", s.name, "error", err)
			errs = append(errs, fmt.Errorf("stop %s: %w", s.name, err))
		}
	}
	t.stops = nil
	return errors.Join(errs...)
}
