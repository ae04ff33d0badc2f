package match

import (
	"fmt"

	"github.com/riskibarqy/copa-admin/internal/domain/team"
)

// Phase is a tournament stage. Declaration order is the stage order.
type Phase string

const (
	PhasePlayOff      Phase = "Play off"
	PhaseGroups       Phase = "Grupos"
	PhaseRepechage    Phase = "Repechaje"
	PhaseRoundOf16    Phase = "Octavos"
	PhaseQuarterfinal Phase = "Cuartos"
	PhaseSemifinal    Phase = "Semifinal"
	PhaseFinal        Phase = "Final"
)

var phases = []Phase{
	PhasePlayOff,
	PhaseGroups,
	PhaseRepechage,
	PhaseRoundOf16,
	PhaseQuarterfinal,
	PhaseSemifinal,
	PhaseFinal,
}

var phasesByKey = func() map[string]Phase {
	out := make(map[string]Phase, len(phases))
	for _, p := range phases {
		out[team.NormalizeName(string(p))] = p
	}
	return out
}()

func Phases() []Phase {
	return append([]Phase(nil), phases...)
}

func (p Phase) Valid() bool {
	known, ok := phasesByKey[team.NormalizeName(string(p))]
	return ok && known == p
}

// Order returns the zero-based stage index, or -1 for unknown phases.
func (p Phase) Order() int {
	for i, candidate := range phases {
		if candidate == p {
			return i
		}
	}
	return -1
}

func ParsePhase(raw string) (Phase, error) {
	p, ok := phasesByKey[team.NormalizeName(raw)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhase, raw)
	}
	return p, nil
}
