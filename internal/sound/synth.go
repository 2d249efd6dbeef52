package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is shared by the synth graph and the oto context.
const SampleRate beep.SampleRate = 44100

// Kind identifies a sound effect.
type Kind int

const (
	KindFire Kind = iota
	KindExplosion
	KindThud
	KindWhoosh
	KindTurn
	KindGameOver
)

var kindNames = [...]string{"fire", "explosion", "thud", "whoosh", "turn", "game-over"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds lists every effect, in declaration order.
func Kinds() []Kind {
	return []Kind{KindFire, KindExplosion, KindThud, KindWhoosh, KindTurn, KindGameOver}
}

type wave int

const (
	waveSine wave = iota
	waveFM
	waveNoise
)

// voice is one enveloped oscillator whose pitch glides from freq to freqEnd
// over its lifetime. Noise voices run through a one-pole lowpass.
type voice struct {
	wave     wave
	freq     float64
	freqEnd  float64
	modRatio float64
	modIdx   float64
	gain     float64
	env      [4]float64 // attack, decay, sustain, release
	lowpass  float64

	n        int
	pos      int
	phase    float64
	modPhase float64
	seed     uint64
	lp       float64
}

func newVoice(w wave, freq, freqEnd float64, d time.Duration, gain float64) *voice {
	return &voice{
		wave:    w,
		freq:    freq,
		freqEnd: freqEnd,
		gain:    gain,
		env:     [4]float64{0.01, 0.3, 0.5, 0.3},
		lowpass: 1,
		n:       SampleRate.N(d),
		seed:    uint64(freq*1000) + 1,
	}
}

func (v *voice) shape(attack, decay, sustain, release float64) *voice {
	v.env = [4]float64{attack, decay, sustain, release}
	return v
}

func (v *voice) fm(ratio, idx float64) *voice {
	v.modRatio, v.modIdx = ratio, idx
	return v
}

func (v *voice) filtered(amount float64) *voice {
	v.lowpass = amount
	return v
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if v.pos >= v.n {
			return i, i > 0
		}
		p := float64(v.pos) / float64(v.n)
		f := v.freq + (v.freqEnd-v.freq)*p

		var s float64
		switch v.wave {
		case waveSine:
			s = math.Sin(2 * math.Pi * v.phase)
		case waveFM:
			s = math.Sin(2*math.Pi*v.phase + v.modIdx*(1-p)*math.Sin(2*math.Pi*v.modPhase))
		case waveNoise:
			v.lp += (lcg(&v.seed) - v.lp) * v.lowpass
			s = v.lp
		}
		s *= adsr(p, v.env[0], v.env[1], v.env[2], v.env[3]) * v.gain
		samples[i][0], samples[i][1] = s, s

		v.phase += f / float64(SampleRate)
		v.phase -= math.Floor(v.phase)
		v.modPhase += f * v.modRatio / float64(SampleRate)
		v.modPhase -= math.Floor(v.modPhase)
		v.pos++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

// enveloped applies an adsr curve to a finite streamer of n samples.
type enveloped struct {
	s    beep.Streamer
	n    int
	pos  int
	gain float64
}

func (e *enveloped) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := adsr(float64(e.pos)/float64(e.n), 0.005, 0.4, 0.35, 0.4) * e.gain
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *enveloped) Err() error { return e.s.Err() }

// tone is a pure sine note from the beep generators, cut to d and shaped.
func tone(freq float64, d time.Duration, gain float64) beep.Streamer {
	n := SampleRate.N(d)
	sine, err := generators.SineTone(SampleRate, freq)
	if err != nil {
		return beep.Silence(n)
	}
	return &enveloped{s: beep.Take(n, sine), n: n, gain: gain}
}

func delayed(d time.Duration, s beep.Streamer) beep.Streamer {
	return beep.Seq(beep.Silence(SampleRate.N(d)), s)
}

// effect is a synth graph plus its total length.
type effect struct {
	graph  beep.Streamer
	length time.Duration
	volume float64 // in powers of two, 0 = unity
}

func build(kind Kind) (effect, bool) {
	ms := time.Millisecond
	switch kind {
	case KindFire:
		return effect{
			graph: beep.Mix(
				newVoice(waveNoise, 0, 0, 140*ms, 0.6).shape(0.005, 0.2, 0.4, 0.6).filtered(0.35),
				newVoice(waveSine, 160, 60, 140*ms, 0.5).shape(0.005, 0.3, 0.3, 0.5),
			),
			length: 140 * ms,
		}, true
	case KindExplosion:
		return effect{
			graph: beep.Mix(
				newVoice(waveNoise, 0, 0, 700*ms, 0.9).shape(0.004, 0.25, 0.45, 0.6).filtered(0.12),
				newVoice(waveSine, 90, 28, 700*ms, 0.7).shape(0.004, 0.3, 0.4, 0.5),
				newVoice(waveFM, 140, 50, 300*ms, 0.3).fm(1.41, 3.5),
			),
			length: 700 * ms,
		}, true
	case KindThud:
		return effect{
			graph: beep.Mix(
				newVoice(waveSine, 120, 45, 220*ms, 0.7).shape(0.005, 0.4, 0.2, 0.4),
				newVoice(waveNoise, 0, 0, 120*ms, 0.3).filtered(0.08),
			),
			length: 220 * ms,
			volume: -0.5,
		}, true
	case KindWhoosh:
		return effect{
			graph:  newVoice(waveNoise, 0, 0, 350*ms, 0.5).shape(0.3, 0.2, 0.6, 0.4).filtered(0.05),
			length: 350 * ms,
			volume: -1,
		}, true
	case KindTurn:
		return effect{
			graph: beep.Seq(
				tone(660, 90*ms, 0.35),
				tone(880, 140*ms, 0.35),
			),
			length: 230 * ms,
			volume: -1,
		}, true
	case KindGameOver:
		return effect{
			graph: beep.Mix(
				newVoice(waveFM, 329.63, 321, 900*ms, 0.32).fm(2, 2),
				delayed(140*ms, newVoice(waveFM, 261.63, 255, 760*ms, 0.32).fm(2, 2)),
				delayed(280*ms, newVoice(waveFM, 220, 214.5, 620*ms, 0.32).fm(2, 2)),
			),
			length: 900 * ms,
		}, true
	}
	return effect{}, false
}

// Render synthesizes kind into interleaved stereo float32 little-endian PCM,
// the layout oto.FormatFloat32LE expects. Unknown kinds render to nil.
func Render(kind Kind) []byte {
	fx, ok := build(kind)
	if !ok {
		return nil
	}
	total := SampleRate.N(fx.length)
	var s beep.Streamer = beep.Take(total, fx.graph)
	if fx.volume != 0 {
		s = &effects.Volume{Streamer: s, Base: 2, Volume: fx.volume}
	}

	out := make([]byte, total*8)
	chunk := make([][2]float64, 512)
	frame := 0
	for frame < total {
		n, ok := s.Stream(chunk)
		for i := 0; i < n && frame < total; i++ {
			putStereoF32LR(out, frame, softSat(chunk[i][0]), softSat(chunk[i][1]))
			frame++
		}
		if !ok || n == 0 {
			break
		}
	}
	return out[:frame*8]
}

func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}

// softSat bends peaks back under 1 instead of clipping.
func softSat(x float64) float64 {
	if x > 1 {
		return 1 - 0.5/x
	}
	if x < -1 {
		return -1 + 0.5/(-x)
	}
	return x - x*x*x/3
}

// adsr returns the envelope at progress in [0,1]; stage lengths are
// fractions of the whole sound.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1 - (progress-attack)/decay*(1-sustain)
	case progress < 1-release:
		return sustain
	default:
		return sustain * (1 - (progress-(1-release))/release)
	}
}

func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}
