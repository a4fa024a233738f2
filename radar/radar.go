// Package radar simulates a rotating heading and reports which named arc
// sectors it points into.
//
// The rotation is driven by a kinematic body in a chipmunk physics space, so the
// heading accumulates over time and is never normalized. Sector membership is
// decided by gm.AngleRange, which does normalize.
package radar

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"deedles.dev/xiter"
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/arcs/gm"
)

var (
	ErrUnnamedSector   = errors.New("sector has no name")
	ErrDuplicateSector = errors.New("duplicate sector name")
)

// Sector is a named arc on the circle. Sectors may overlap.
type Sector struct {
	Name  string
	Range gm.AngleRange
}

type Config struct {
	// Heading is the initial heading.
	Heading gm.Angle

	// AngularVelocity is the rotation speed in radians per second.
	// Positive values rotate counter-clockwise.
	AngularVelocity float64

	Sectors []Sector

	// Logger receives sector transitions at debug level.
	// Defaults to slog.Default()
	Logger *slog.Logger
}

var compassNames = []string{"E", "NE", "N", "NW", "W", "SW", "S", "SE"}

// DefaultConfig returns a config with the eight compass sectors, each 45° wide
// and centered on its direction, rotating at one radian per second.
func DefaultConfig() Config {
	return Config{
		AngularVelocity: 1,
		Sectors:         CompassSectors(),
	}
}

// CompassSectors splits the circle into the eight compass directions,
// starting with E centered on 0 rad and continuing counter-clockwise.
func CompassSectors() []Sector {
	var sectors []Sector

	offset := gm.FromDegrees(-360.0 / float64(len(compassNames)) / 2)
	for idx, arc := range xiter.Enumerate(gm.SplitCircle(offset, len(compassNames))) {
		sectors = append(sectors, Sector{Name: compassNames[idx], Range: arc})
	}

	return sectors
}

// Transition describes a sector that the heading entered or left.
type Transition struct {
	Sector  string
	Entered bool
}

func (t Transition) String() string {
	if t.Entered {
		return "entered " + t.Sector
	}

	return "left " + t.Sector
}

type Radar struct {
	space *cp.Space
	body  *cp.Body

	sectors []Sector
	active  []bool

	logger *slog.Logger
}

// New creates a new radar from the given config. It fails if a sector has no
// name or if two sectors share a name.
func New(config Config) (*Radar, error) {
	seen := map[string]struct{}{}
	for idx, sector := range config.Sectors {
		if sector.Name == "" {
			return nil, fmt.Errorf("sector %d: %w", idx, ErrUnnamedSector)
		}

		if _, ok := seen[sector.Name]; ok {
			return nil, fmt.Errorf("sector %q: %w", sector.Name, ErrDuplicateSector)
		}

		seen[sector.Name] = struct{}{}
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})

	body := space.AddBody(cp.NewKinematicBody())
	body.SetAngle(config.Heading.Radians())
	body.SetAngularVelocity(config.AngularVelocity)

	r := &Radar{
		space:   space,
		body:    body,
		sectors: slices.Clone(config.Sectors),
		active:  make([]bool, len(config.Sectors)),
		logger:  logger,
	}

	for idx, sector := range r.sectors {
		r.active[idx] = sector.Range.Contains(config.Heading)
	}

	return r, nil
}

// Heading returns the current heading. It is not normalized and grows by a
// full turn with each revolution.
func (r *Radar) Heading() gm.Angle {
	return gm.Rad(r.body.Angle())
}

// SetHeading moves the heading without reporting transitions.
// The next call to Step reports sectors entered or left since the last step.
func (r *Radar) SetHeading(heading gm.Angle) {
	r.body.SetAngle(heading.Radians())
}

func (r *Radar) AngularVelocity() float64 {
	return r.body.AngularVelocity()
}

func (r *Radar) SetAngularVelocity(w float64) {
	r.body.SetAngularVelocity(w)
}

func (r *Radar) Sectors() []Sector {
	return slices.Clone(r.sectors)
}

// Step advances the simulation by dt seconds and returns the transitions
// caused by the change of heading, in sector order.
func (r *Radar) Step(dt float64) []Transition {
	if dt > 0 {
		r.space.Step(dt)
	}

	heading := r.Heading()

	var transitions []Transition
	for idx, sector := range r.sectors {
		active := sector.Range.Contains(heading)
		if active == r.active[idx] {
			continue
		}

		r.active[idx] = active

		r.logger.Debug("Sector transition",
			slog.String("sector", sector.Name),
			slog.Bool("entered", active),
			slog.Float64("heading", heading.Degrees()))

		transitions = append(transitions, Transition{Sector: sector.Name, Entered: active})
	}

	return transitions
}

// Active returns the names of the sectors that contained the heading
// when the radar was created or at the last call to Step.
func (r *Radar) Active() []string {
	var names []string
	for idx, sector := range r.sectors {
		if r.active[idx] {
			names = append(names, sector.Name)
		}
	}

	return names
}

// Close removes the body from the physics space. The radar must not be
// used afterward.
func (r *Radar) Close() {
	r.space.RemoveBody(r.body)
}
