package view

import (
	"math"

	"github.com/lallassu/tanks/internal/game"
)

// Camera maps the y-up world onto a y-down framebuffer.
type Camera struct {
	X, Y float64 // world-space centre
	Zoom float64 // screen pixels per world unit

	// Screen shake.
	ShakeX, ShakeY float64
	ShakeTimer     float64
	ShakeIntensity float64
}

// Fit centres the camera on a width×height world and zooms so the whole
// world is visible in a fbW×fbH framebuffer.
func (c *Camera) Fit(width, height float64, fbW, fbH int) {
	if fbW <= 0 || fbH <= 0 || width <= 0 || height <= 0 {
		return
	}
	c.Zoom = math.Min(float64(fbW)/width, float64(fbH)/height)
	c.X = width / 2
	c.Y = height / 2
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and picks a new offset.
func (c *Camera) UpdateShake(dt float64, seed uint64) {
	if c.ShakeTimer <= 0 {
		c.ShakeX, c.ShakeY, c.ShakeIntensity = 0, 0, 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	t := c.ShakeTimer
	rr := game.NewRand(seed ^ uint64(t*10000))
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = rr.RangeF(-mag, mag)
	c.ShakeY = rr.RangeF(-mag, mag)
}

// Shaken returns the camera with the shake offset applied.
func (c Camera) Shaken() Camera {
	c.X += c.ShakeX
	c.Y += c.ShakeY
	return c
}

// WorldToScreen converts a world point to framebuffer pixels (origin top-left).
func (c Camera) WorldToScreen(p game.Vec2, fbW, fbH int) (sx, sy float64) {
	sx = (p.X-c.X)*c.Zoom + float64(fbW)*0.5
	sy = float64(fbH)*0.5 - (p.Y-c.Y)*c.Zoom
	return sx, sy
}
