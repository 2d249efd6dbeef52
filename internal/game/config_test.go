package game

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"one tank", func(c *Config) { c.NumTanks = 1 }, ErrInvalidTankCount},
		{"eleven tanks", func(c *Config) { c.NumTanks = 11 }, ErrInvalidTankCount},
		{"ten tanks ok", func(c *Config) { c.NumTanks = 10 }, nil},
		{"negative gravity", func(c *Config) { c.Gravity = -1 }, ErrInvalidConfig},
		{"zero gravity", func(c *Config) { c.Gravity = 0 }, ErrInvalidConfig},
		{"NaN gravity", func(c *Config) { c.Gravity = math.NaN() }, ErrInvalidConfig},
		{"infinite width", func(c *Config) { c.Width = math.Inf(1) }, ErrInvalidConfig},
		{"NaN power", func(c *Config) { c.MaxPower = math.NaN() }, ErrInvalidConfig},
		{"zero min power", func(c *Config) { c.MinPower = 0 }, ErrInvalidConfig},
		{"zero time step", func(c *Config) { c.TimeStep = 0 }, ErrInvalidConfig},
		{"inverted angles", func(c *Config) { c.MinAngle, c.MaxAngle = 100, 50 }, ErrInvalidConfig},
		{"inverted power", func(c *Config) { c.MinPower = 200 }, ErrInvalidConfig},
		{"zero charge step", func(c *Config) { c.ChargeStep = 0 }, ErrInvalidConfig},
		{"floor above world", func(c *Config) { c.FloorHeight = 900 }, ErrInvalidConfig},
		{"no steps per frame", func(c *Config) { c.StepsPerFrame = 0 }, ErrInvalidConfig},
		{"zero radius", func(c *Config) { c.MinTankRadius = 0 }, ErrInvalidConfig},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParseTankCount(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"2", 2, false},
		{" 10\n", 10, false},
		{"5", 5, false},
		{"1", 0, true},
		{"11", 0, true},
		{"-3", 0, true},
		{"three", 0, true},
		{"", 0, true},
		{"4.5", 0, true},
	}
	for _, tc := range tests {
		got, err := ParseTankCount(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidTankCount) {
				t.Errorf("ParseTankCount(%q) err = %v, want ErrInvalidTankCount", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseTankCount(%q) = %d, %v; want %d", tc.in, got, err, tc.want)
		}
	}
}
