package game

import "github.com/charmbracelet/log"

const spawnAttempts = 64

// SpawnTanks places cfg.NumTanks tanks on the floor with random x and
// radius. Overlapping placements are re-rolled; if the world is too
// crowded to find a free spot, every tank is laid out in evenly spaced
// slots instead. Tanks start aiming straight up at full power.
func SpawnTanks(cfg Config, r *Rand, logger *log.Logger) []Tank {
	logger = orDiscard(logger)
	n := cfg.NumTanks
	tanks := make([]Tank, 0, n)
	angle := (cfg.MinAngle + cfg.MaxAngle) / 2

	for i := 0; i < n; i++ {
		radius := r.RangeF(cfg.MinTankRadius, cfg.MaxTankRadius)
		placed := false
		for attempt := 0; attempt < spawnAttempts; attempt++ {
			x := r.RangeF(radius, cfg.Width-radius)
			if !overlapsAny(tanks, x, radius) {
				tanks = append(tanks, Tank{
					Index:  i,
					Pos:    Vec2{X: x, Y: cfg.FloorHeight},
					Radius: radius,
					Alive:  true,
					Angle:  angle,
					Power:  cfg.MaxPower,
				})
				placed = true
				break
			}
		}
		if !placed {
			logger.Warn("spawn crowded, using even layout", "tanks", n)
			tanks = evenLayout(cfg, r, angle)
			break
		}
	}

	for _, t := range tanks {
		logger.Info("tank spawned", "tank", t.Index+1, "radius", t.Radius, "x", t.Pos.X, "y", t.Pos.Y)
	}
	return tanks
}

func overlapsAny(tanks []Tank, x, radius float64) bool {
	for i := range tanks {
		dx := tanks[i].Pos.X - x
		if dx < 0 {
			dx = -dx
		}
		if dx < tanks[i].Radius+radius {
			return true
		}
	}
	return false
}

// evenLayout centres each tank in its own slot; radii shrink to fit the slot.
func evenLayout(cfg Config, r *Rand, angle float64) []Tank {
	n := cfg.NumTanks
	slot := cfg.Width / float64(n)
	maxR := cfg.MaxTankRadius
	if half := slot / 2 * 0.9; half < maxR {
		maxR = half
	}
	minR := cfg.MinTankRadius
	if minR > maxR {
		minR = maxR
	}
	tanks := make([]Tank, n)
	for i := range tanks {
		tanks[i] = Tank{
			Index:  i,
			Pos:    Vec2{X: slot * (float64(i) + 0.5), Y: cfg.FloorHeight},
			Radius: r.RangeF(minR, maxR),
			Alive:  true,
			Angle:  angle,
			Power:  cfg.MaxPower,
		}
	}
	return tanks
}
