package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator returns a streamer producing duration worth of a single tone.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a streamer out linearly over its duration.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

func newDecay(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, total: rate.N(duration)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(d.position)/float64(d.total)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales linearly; 0 or below is silent since Log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return newDecay(NewOscillator(freq, d, wave, rate), d, rate)
}

// NewSound builds the streamer for a sound effect at the given volume.
func NewSound(s Sound, volume float64, rate beep.SampleRate) beep.Streamer {
	var st beep.Streamer
	switch s {
	case SoundBrick:
		st = tone(660, 60*time.Millisecond, WaveSquare, rate)
	case SoundPaddle:
		st = tone(330, 50*time.Millisecond, WaveTriangle, rate)
	case SoundWall:
		st = tone(220, 30*time.Millisecond, WaveTriangle, rate)
	case SoundBallLost:
		st = beep.Seq(
			tone(196, 120*time.Millisecond, WaveSquare, rate),
			tone(147, 180*time.Millisecond, WaveSquare, rate),
		)
	case SoundPowerUp:
		st = beep.Seq(
			tone(523.25, 70*time.Millisecond, WaveSine, rate),
			tone(659.25, 70*time.Millisecond, WaveSine, rate),
			tone(783.99, 110*time.Millisecond, WaveSine, rate),
		)
	case SoundLevelUp:
		st = beep.Mix(
			newVolume(tone(523.25, 400*time.Millisecond, WaveSine, rate), 0.6),
			newVolume(tone(1046.5, 400*time.Millisecond, WaveSine, rate), 0.4),
		)
	case SoundGameOver:
		st = beep.Seq(
			tone(392, 200*time.Millisecond, WaveTriangle, rate),
			tone(311.13, 200*time.Millisecond, WaveTriangle, rate),
			tone(261.63, 400*time.Millisecond, WaveTriangle, rate),
		)
	default:
		return nil
	}
	return newVolume(st, volume)
}
