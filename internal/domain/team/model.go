package team

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrInvalidCountry  = errors.New("invalid country")
	ErrInvalidTeam     = errors.New("invalid team")
	ErrNegativeCounter = errors.New("team counters cannot be negative")
	ErrCounterOverflow = errors.New("team counters exceed the maximum")
)

const (
	NameMinLength  = 3
	NameMaxLength  = 50
	GroupMaxLength = 10

	// MaxCounter bounds points and every stat; they are stored as INTEGER.
	MaxCounter = math.MaxInt32
)

// Stats holds the counters derived from a team's active matches.
type Stats struct {
	GoalsFor     int
	GoalsAgainst int
	YellowCards  int
	RedCards     int
	Corners      int
	FreeKicks    int
	Fouls        int
	Offsides     int
	Passes       int
}

func (s Stats) Add(other Stats) Stats {
	return Stats{
		GoalsFor:     s.GoalsFor + other.GoalsFor,
		GoalsAgainst: s.GoalsAgainst + other.GoalsAgainst,
		YellowCards:  s.YellowCards + other.YellowCards,
		RedCards:     s.RedCards + other.RedCards,
		Corners:      s.Corners + other.Corners,
		FreeKicks:    s.FreeKicks + other.FreeKicks,
		Fouls:        s.Fouls + other.Fouls,
		Offsides:     s.Offsides + other.Offsides,
		Passes:       s.Passes + other.Passes,
	}
}

func (s Stats) hasNegative() bool {
	return s.GoalsFor < 0 || s.GoalsAgainst < 0 || s.YellowCards < 0 || s.RedCards < 0 ||
		s.Corners < 0 || s.FreeKicks < 0 || s.Fouls < 0 || s.Offsides < 0 || s.Passes < 0
}

func (s Stats) exceeds(limit int) bool {
	return s.GoalsFor > limit || s.GoalsAgainst > limit || s.YellowCards > limit || s.RedCards > limit ||
		s.Corners > limit || s.FreeKicks > limit || s.Fouls > limit || s.Offsides > limit || s.Passes > limit
}

// Team is a national club registered in the tournament.
type Team struct {
	ID        int64
	Name      string
	Country   Country
	Group     string
	Points    int
	Stats     Stats
	LogoURL   string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t Team) NormalizedName() string {
	return NormalizeName(t.Name)
}

func (t Team) Validate() error {
	name := strings.TrimSpace(t.Name)
	if n := utf8.RuneCountInString(name); n < NameMinLength || n > NameMaxLength {
		return fmt.Errorf("%w: name must be between %d and %d characters", ErrInvalidTeam, NameMinLength, NameMaxLength)
	}
	if !t.Country.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCountry, t.Country)
	}
	group := strings.TrimSpace(t.Group)
	if n := utf8.RuneCountInString(group); n < 1 || n > GroupMaxLength {
		return fmt.Errorf("%w: group must be between 1 and %d characters", ErrInvalidTeam, GroupMaxLength)
	}
	return t.CheckCounters()
}

// CheckCounters fails when points or any stat falls outside [0, MaxCounter].
func (t Team) CheckCounters() error {
	if t.Points < 0 || t.Stats.hasNegative() {
		return ErrNegativeCounter
	}
	if t.Points > MaxCounter || t.Stats.exceeds(MaxCounter) {
		return fmt.Errorf("%w: limit is %d", ErrCounterOverflow, MaxCounter)
	}
	return nil
}

// SubtractPoints removes points without going below zero.
func (t *Team) SubtractPoints(points int) {
	t.Points = FloorSub(t.Points, points)
}

// FloorSub subtracts b from a, clamped at zero.
func FloorSub(a, b int) int {
	if a-b < 0 {
		return 0
	}
	return a - b
}
