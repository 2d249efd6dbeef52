// Command tanks is a turn-based artillery duel for 2 to 10 tanks.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lallassu/tanks/internal/desktop"
	"github.com/lallassu/tanks/internal/game"
	"github.com/lallassu/tanks/internal/sound"
	"github.com/lallassu/tanks/internal/term"
	"github.com/lallassu/tanks/internal/view"
)

const tankPrompt = "Enter the number of tanks (2, 10): "

type options struct {
	tanks    int
	frontend string
	seed     uint64
	gravity  float64
	steps    int
	noCharge bool
	noTrail  bool
	debug    bool
	mute     bool
	volume   float64
	logFile  string
}

func parseOptions(args []string, getenv func(string) string) (options, error) {
	var o options
	fs := flag.NewFlagSet("tanks", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&o.tanks, "tanks", 0, "number of tanks (2-10); prompts when omitted")
	fs.StringVar(&o.frontend, "frontend", "gl", "frontend: gl or term")
	fs.Uint64Var(&o.seed, "seed", 0, "spawn seed (0 = TANKS_SEED or clock)")
	fs.Float64Var(&o.gravity, "gravity", game.Gravity, "gravity in world units/s²")
	fs.IntVar(&o.steps, "steps", 1, "simulation steps per rendered frame")
	fs.BoolVar(&o.noCharge, "no-charge", false, "fire at the preset power instead of charging")
	fs.BoolVar(&o.noTrail, "no-trail", false, "do not draw the shell trail")
	fs.BoolVar(&o.debug, "debug", false, "log every projectile step")
	fs.BoolVar(&o.mute, "mute", false, "disable sound")
	fs.Float64Var(&o.volume, "volume", 0.6, "sound volume (0-1)")
	fs.StringVar(&o.logFile, "log", "", "write logs to this file")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	switch o.frontend {
	case "gl", "term":
	default:
		return o, fmt.Errorf("unknown frontend %q (want gl or term)", o.frontend)
	}
	if o.volume < 0 || o.volume > 1 {
		return o, fmt.Errorf("volume %v outside [0,1]", o.volume)
	}
	if o.seed == 0 {
		o.seed = seedFromEnv(getenv, uint64(time.Now().UnixNano()))
	}
	return o, nil
}

// seedFromEnv returns TANKS_SEED when it parses, fallback otherwise.
func seedFromEnv(getenv func(string) string, fallback uint64) uint64 {
	if s := getenv("TANKS_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			return v
		}
	}
	return fallback
}

// readTankCount prompts on out and parses one line from in.
func readTankCount(in io.Reader, out io.Writer) (int, error) {
	fmt.Fprint(out, tankPrompt)
	sc := bufio.NewScanner(in)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("read tank count: %w", err)
		}
		return 0, fmt.Errorf("%w: no input", game.ErrInvalidTankCount)
	}
	return game.ParseTankCount(sc.Text())
}

func buildConfig(o options, tanks int) (game.Config, error) {
	cfg := game.DefaultConfig()
	cfg.NumTanks = tanks
	cfg.Gravity = o.gravity
	cfg.StepsPerFrame = o.steps
	cfg.PowerCharging = !o.noCharge
	cfg.Trail = !o.noTrail
	cfg.Seed = o.seed
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func newLogger(o options) (*log.Logger, func(), error) {
	w := io.Writer(os.Stderr)
	closeFn := func() {}
	if o.logFile != "" {
		f, err := os.Create(o.logFile)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "tanks",
	})
	if o.debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

func main() {
	o, err := parseOptions(os.Args[1:], os.Getenv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal("bad arguments", "err", err)
	}

	logger, closeLog, err := newLogger(o)
	if err != nil {
		log.Fatal("logging", "err", err)
	}
	err = run(o, logger, os.Stdin, os.Stdout)
	if err != nil {
		logger.Error("tanks failed", "err", err)
	}
	closeLog()
	if err != nil {
		os.Exit(1)
	}
}

// run plays one match. Errors come back wrapped so main can log them and
// still close the log file before exiting.
func run(o options, logger *log.Logger, in io.Reader, out io.Writer) error {
	tanks := o.tanks
	if tanks == 0 {
		n, err := readTankCount(in, out)
		if err != nil {
			return fmt.Errorf("invalid tank count: %w", err)
		}
		tanks = n
	}
	cfg, err := buildConfig(o, tanks)
	if err != nil {
		return err
	}

	// The terminal frontend owns the tty; keep log lines off it unless
	// they go to a file.
	matchLog := logger
	if o.frontend == "term" && o.logFile == "" {
		matchLog = log.New(io.Discard)
	}

	bus := game.NewEventBus()
	if !o.mute {
		player, err := sound.New(o.volume, matchLog)
		if err != nil {
			logger.Warn("audio init failed, continuing without sound", "err", err)
		} else {
			player.Attach(bus)
		}
	}

	matchLog.Info("starting match", "tanks", cfg.NumTanks, "seed", cfg.Seed, "frontend", o.frontend)
	m, err := game.NewRandomMatch(cfg, bus, matchLog)
	if err != nil {
		return fmt.Errorf("match setup: %w", err)
	}

	switch o.frontend {
	case "term":
		err = term.Run(m, bus, matchLog)
	default:
		err = desktop.Run(m, bus, matchLog)
	}
	if err != nil {
		return fmt.Errorf("%s frontend: %w", o.frontend, err)
	}

	if !m.Over() {
		logger.Info("match abandoned")
		return nil
	}
	fmt.Fprintf(out, "\n%s\n", view.WinnerText(m.Winner()))
	return nil
}
