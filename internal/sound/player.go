package sound

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/oto/v2"

	"github.com/lallassu/tanks/internal/game"
)

const channelCount = 2

// maxExplosions caps overlapping explosion sounds; more clips the speakers.
const maxExplosions = 2

// Player plays pre-rendered effects through an oto context. A nil *Player
// is valid and silent, so a failed audio init never stops the game.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	clips  map[Kind][]byte
	log    *log.Logger

	explosions atomic.Int32
}

// New opens the audio device and renders every effect up front.
func New(volume float64, logger *log.Logger) (*Player, error) {
	ctx, ready, err := oto.NewContext(int(SampleRate), channelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("sound: open audio device: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Player{
		ctx:    ctx,
		ready:  ready,
		volume: volume,
		clips:  make(map[Kind][]byte),
		log:    logger,
	}
	for _, k := range Kinds() {
		p.clips[k] = Render(k)
	}
	return p, nil
}

// Play starts kind on its own goroutine and returns immediately. Sounds
// requested before the device is ready are dropped.
func (p *Player) Play(kind Kind) {
	if p == nil {
		return
	}
	select {
	case <-p.ready:
	default:
		return
	}
	data := p.clips[kind]
	if len(data) == 0 {
		return
	}
	if kind == KindExplosion {
		if p.explosions.Add(1) > maxExplosions {
			p.explosions.Add(-1)
			return
		}
	}
	p.log.Debug("play", "sound", kind)
	go func() {
		if kind == KindExplosion {
			defer p.explosions.Add(-1)
		}
		pl := p.ctx.NewPlayer(&clipReader{data: data})
		pl.SetVolume(p.volume)
		pl.Play()
		for pl.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := pl.Close(); err != nil {
			p.log.Warn("close audio player", "err", err)
		}
	}()
}

// Attach plays the matching effect for every match event on bus.
func (p *Player) Attach(bus *game.EventBus) {
	bus.SubscribeAll(func(e game.Event) {
		if k, ok := KindFor(e.Type); ok {
			p.Play(k)
		}
	})
}

// KindFor maps a match event to its sound.
func KindFor(t game.EventType) (Kind, bool) {
	switch t {
	case game.EventFired:
		return KindFire, true
	case game.EventTankDestroyed:
		return KindExplosion, true
	case game.EventGroundImpact:
		return KindThud, true
	case game.EventOutOfBounds:
		return KindWhoosh, true
	case game.EventTurnChanged:
		return KindTurn, true
	case game.EventMatchOver:
		return KindGameOver, true
	}
	return 0, false
}

// clipReader feeds a rendered clip to an oto player.
type clipReader struct {
	data []byte
	pos  int
}

func (r *clipReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
