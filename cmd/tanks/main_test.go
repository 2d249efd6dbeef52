package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/lallassu/tanks/internal/game"
)

func env(vals map[string]string) func(string) string {
	return func(k string) string { return vals[k] }
}

func TestParseOptionsDefaults(t *testing.T) {
	o, err := parseOptions(nil, env(map[string]string{"TANKS_SEED": "77"}))
	if err != nil {
		t.Fatal(err)
	}
	if o.frontend != "gl" || o.tanks != 0 || o.steps != 1 || o.gravity != game.Gravity {
		t.Fatalf("defaults = %+v", o)
	}
	if o.seed != 77 {
		t.Fatalf("seed = %d, want TANKS_SEED 77", o.seed)
	}
}

func TestParseOptionsFlags(t *testing.T) {
	args := []string{"-tanks", "4", "-frontend", "term", "-seed", "9", "-no-charge", "-steps", "3"}
	o, err := parseOptions(args, env(map[string]string{"TANKS_SEED": "77"}))
	if err != nil {
		t.Fatal(err)
	}
	if o.tanks != 4 || o.frontend != "term" || o.seed != 9 || !o.noCharge || o.steps != 3 {
		t.Fatalf("options = %+v", o)
	}
}

func TestParseOptionsErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-frontend", "vulkan"},
		{"-volume", "2"},
		{"stray"},
		{"-tanks", "x"},
	} {
		if _, err := parseOptions(args, env(nil)); err == nil {
			t.Errorf("parseOptions(%v) accepted", args)
		}
	}
}

func TestSeedFromEnv(t *testing.T) {
	if got := seedFromEnv(env(map[string]string{"TANKS_SEED": "nope"}), 5); got != 5 {
		t.Fatalf("bad TANKS_SEED used: %d", got)
	}
	if got := seedFromEnv(env(nil), 5); got != 5 {
		t.Fatalf("fallback = %d", got)
	}
}

func TestReadTankCount(t *testing.T) {
	var out bytes.Buffer
	n, err := readTankCount(strings.NewReader("3\n"), &out)
	if err != nil || n != 3 {
		t.Fatalf("readTankCount = %d, %v", n, err)
	}
	if out.String() != tankPrompt {
		t.Fatalf("prompt = %q", out.String())
	}

	for _, in := range []string{"", "1\n", "eleven\n"} {
		if _, err := readTankCount(strings.NewReader(in), &out); !errors.Is(err, game.ErrInvalidTankCount) {
			t.Errorf("input %q: err = %v", in, err)
		}
	}
}

func TestBuildConfig(t *testing.T) {
	o := options{gravity: 5, steps: 2, noTrail: true, seed: 11}
	cfg, err := buildConfig(o, 6)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.NumTanks != 6 || cfg.Gravity != 5 || cfg.StepsPerFrame != 2 || cfg.Trail || !cfg.PowerCharging || cfg.Seed != 11 {
		t.Fatalf("config = %+v", cfg)
	}

	if _, err := buildConfig(o, 12); !errors.Is(err, game.ErrInvalidTankCount) {
		t.Fatalf("12 tanks: err = %v", err)
	}
	o.steps = 0
	if _, err := buildConfig(o, 2); !errors.Is(err, game.ErrInvalidConfig) {
		t.Fatalf("zero steps: err = %v", err)
	}
}

func TestRunRejectsBadInputBeforeStarting(t *testing.T) {
	var out bytes.Buffer
	err := run(options{frontend: "term", mute: true, steps: 1, gravity: game.Gravity}, log.New(io.Discard), strings.NewReader("12\n"), &out)
	if !errors.Is(err, game.ErrInvalidTankCount) {
		t.Fatalf("err = %v, want ErrInvalidTankCount", err)
	}
	if !strings.HasPrefix(out.String(), tankPrompt) {
		t.Fatalf("output = %q", out.String())
	}

	err = run(options{tanks: 2, frontend: "term", mute: true, steps: 1, gravity: 0}, log.New(io.Discard), strings.NewReader(""), &out)
	if !errors.Is(err, game.ErrInvalidConfig) {
		t.Fatalf("zero gravity: err = %v, want ErrInvalidConfig", err)
	}
}
