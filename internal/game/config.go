package game

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// World defaults (in world units; the window maps them 1:1 to pixels).
const (
	WorldWidth  = 1000
	WorldHeight = 800
	FloorHeight = 100
)

// Physics defaults.
const (
	Gravity  = 9.8
	TimeStep = 0.01 // seconds per simulation step
)

// Aim and charge defaults.
const (
	MinAngle   = 20.0
	MaxAngle   = 160.0
	AngleStep  = 1.0
	MinPower   = 10.0 // a zero-speed shell would fall back into its own tank
	MaxPower   = 100.0
	ChargeStep = 2.0 // power gained per FireHeld tick
)

// Roster limits.
const (
	MinTanks      = 2
	MaxTanks      = 10
	MinTankRadius = 10.0
	MaxTankRadius = 30.0
)

var (
	ErrInvalidTankCount = errors.New("tank count must be a number in [2, 10]")
	ErrInvalidConfig    = errors.New("invalid config")
)

// Config is the overridable constant surface of a match.
type Config struct {
	Gravity     float64
	Width       float64
	Height      float64
	FloorHeight float64

	MinAngle  float64
	MaxAngle  float64
	AngleStep float64

	MinPower   float64
	MaxPower   float64
	ChargeStep float64

	TimeStep      float64
	StepsPerFrame int

	NumTanks      int
	MinTankRadius float64
	MaxTankRadius float64

	// PowerCharging: fire press starts a charge and release launches.
	// When off, fire press launches at the tank's current power.
	PowerCharging bool
	// Trail records every in-flight position for rendering.
	Trail bool

	Seed uint64
}

func DefaultConfig() Config {
	return Config{
		Gravity:       Gravity,
		Width:         WorldWidth,
		Height:        WorldHeight,
		FloorHeight:   FloorHeight,
		MinAngle:      MinAngle,
		MaxAngle:      MaxAngle,
		AngleStep:     AngleStep,
		MinPower:      MinPower,
		MaxPower:      MaxPower,
		ChargeStep:    ChargeStep,
		TimeStep:      TimeStep,
		StepsPerFrame: 1,
		NumTanks:      MinTanks,
		MinTankRadius: MinTankRadius,
		MaxTankRadius: MaxTankRadius,
		PowerCharging: true,
		Trail:         true,
	}
}

// Validate reports the first problem with c. Errors wrap ErrInvalidTankCount
// or ErrInvalidConfig.
func (c Config) Validate() error {
	if c.NumTanks < MinTanks || c.NumTanks > MaxTanks {
		return fmt.Errorf("%w: got %d", ErrInvalidTankCount, c.NumTanks)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"gravity", c.Gravity}, {"width", c.Width}, {"height", c.Height},
		{"floor height", c.FloorHeight}, {"min angle", c.MinAngle}, {"max angle", c.MaxAngle},
		{"angle step", c.AngleStep}, {"min power", c.MinPower}, {"max power", c.MaxPower},
		{"charge step", c.ChargeStep}, {"time step", c.TimeStep},
		{"min tank radius", c.MinTankRadius}, {"max tank radius", c.MaxTankRadius},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s %v is not finite", ErrInvalidConfig, f.name, f.v)
		}
	}
	switch {
	case c.Gravity <= 0:
		return fmt.Errorf("%w: gravity %v must be positive", ErrInvalidConfig, c.Gravity)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: world %vx%v", ErrInvalidConfig, c.Width, c.Height)
	case c.FloorHeight < 0 || c.FloorHeight >= c.Height:
		return fmt.Errorf("%w: floor height %v outside [0, %v)", ErrInvalidConfig, c.FloorHeight, c.Height)
	case c.MinAngle > c.MaxAngle:
		return fmt.Errorf("%w: angle range [%v, %v]", ErrInvalidConfig, c.MinAngle, c.MaxAngle)
	case c.AngleStep <= 0:
		return fmt.Errorf("%w: angle step %v", ErrInvalidConfig, c.AngleStep)
	case c.MinPower <= 0 || c.MinPower > c.MaxPower:
		return fmt.Errorf("%w: power range [%v, %v]", ErrInvalidConfig, c.MinPower, c.MaxPower)
	case c.ChargeStep <= 0:
		return fmt.Errorf("%w: charge step %v", ErrInvalidConfig, c.ChargeStep)
	case c.TimeStep <= 0:
		return fmt.Errorf("%w: time step %v", ErrInvalidConfig, c.TimeStep)
	case c.StepsPerFrame < 1:
		return fmt.Errorf("%w: steps per frame %d", ErrInvalidConfig, c.StepsPerFrame)
	case c.MinTankRadius <= 0 || c.MinTankRadius > c.MaxTankRadius:
		return fmt.Errorf("%w: tank radius range [%v, %v]", ErrInvalidConfig, c.MinTankRadius, c.MaxTankRadius)
	}
	return nil
}

// ParseTankCount parses a user-entered tank count.
func ParseTankCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidTankCount, strings.TrimSpace(s))
	}
	if n < MinTanks || n > MaxTanks {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidTankCount, n)
	}
	return n, nil
}
