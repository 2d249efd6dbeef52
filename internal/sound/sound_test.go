package sound

import (
	"encoding/binary"
	"io"
	"math"
	"testing"
	"time"

	"github.com/lallassu/tanks/internal/game"
)

func TestRenderEveryKind(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			pcm := Render(k)
			if len(pcm) == 0 {
				t.Fatal("empty clip")
			}
			if len(pcm)%8 != 0 {
				t.Fatalf("clip length %d is not whole stereo frames", len(pcm))
			}
			fx, _ := build(k)
			if max := SampleRate.N(fx.length) * 8; len(pcm) > max {
				t.Fatalf("clip is %d bytes, longer than %d", len(pcm), max)
			}
			loud := false
			for i := 0; i+4 <= len(pcm); i += 4 {
				v := math.Float32frombits(binary.LittleEndian.Uint32(pcm[i:]))
				if math.IsNaN(float64(v)) || v < -1 || v > 1 {
					t.Fatalf("sample %d = %v out of range", i/4, v)
				}
				if math.Abs(float64(v)) > 0.01 {
					loud = true
				}
			}
			if !loud {
				t.Fatal("clip is silent")
			}
		})
	}
}

func TestRenderUnknownKind(t *testing.T) {
	if pcm := Render(Kind(99)); pcm != nil {
		t.Fatalf("unknown kind rendered %d bytes", len(pcm))
	}
	if Kind(99).String() != "unknown" {
		t.Fatal("unknown kind has a name")
	}
}

func TestVoiceDrains(t *testing.T) {
	v := newVoice(waveSine, 440, 440, 10*time.Millisecond, 1)
	want := SampleRate.N(10 * time.Millisecond)
	buf := make([][2]float64, 128)
	got := 0
	for {
		n, ok := v.Stream(buf)
		got += n
		if !ok {
			break
		}
	}
	if got != want {
		t.Fatalf("voice streamed %d samples, want %d", got, want)
	}
	if v.Err() != nil {
		t.Fatal(v.Err())
	}
}

func TestKindFor(t *testing.T) {
	tests := []struct {
		ev   game.EventType
		want Kind
	}{
		{game.EventFired, KindFire},
		{game.EventTankDestroyed, KindExplosion},
		{game.EventGroundImpact, KindThud},
		{game.EventOutOfBounds, KindWhoosh},
		{game.EventTurnChanged, KindTurn},
		{game.EventMatchOver, KindGameOver},
	}
	for _, tc := range tests {
		got, ok := KindFor(tc.ev)
		if !ok || got != tc.want {
			t.Errorf("KindFor(%v) = %v, %v; want %v", tc.ev, got, ok, tc.want)
		}
	}
}

func TestNilPlayerIsSilent(t *testing.T) {
	var p *Player
	p.Play(KindExplosion)
	bus := game.NewEventBus()
	p.Attach(bus)
	bus.Emit(game.Event{Type: game.EventFired})
}

func TestClipReader(t *testing.T) {
	r := &clipReader{data: []byte{1, 2, 3, 4, 5}}
	b, err := io.ReadAll(r)
	if err != nil || len(b) != 5 {
		t.Fatalf("ReadAll = %v, %v", b, err)
	}
}
