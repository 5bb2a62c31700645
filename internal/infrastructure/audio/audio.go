// Package audio synthesises the game's sound effects at start-up and plays
// them through an ebiten audio context.
package audio

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate is the rate every clip is synthesised at
const SampleRate = 44100

// Sound names one effect in the bank
type Sound int

const (
	SoundShoot Sound = iota
	SoundPickup
	SoundBoost
	SoundSlow
	SoundShrink
	SoundExplode
	SoundBossHit
	SoundBossDefeated
	SoundGameOver
	SoundConfirm
	soundCount
)

// Waveform is the oscillator shape of a tone
type Waveform int

const (
	Sine Waveform = iota
	Square
)

// Tone describes one synthesised clip: a frequency sweep from Freq to
// EndFreq over Duration seconds under an exponential decay.
type Tone struct {
	Wave     Waveform
	Freq     float64
	EndFreq  float64
	Duration float64
	Volume   float64 // 0..1
	Decay    float64 // envelope rate, larger fades faster
}

var tones = [soundCount]Tone{
	SoundShoot:        {Wave: Square, Freq: 880, EndFreq: 660, Duration: 0.06, Volume: 0.12, Decay: 30},
	SoundPickup:       {Wave: Sine, Freq: 660, EndFreq: 1320, Duration: 0.15, Volume: 0.3, Decay: 8},
	SoundBoost:        {Wave: Sine, Freq: 440, EndFreq: 1200, Duration: 0.25, Volume: 0.3, Decay: 6},
	SoundSlow:         {Wave: Sine, Freq: 600, EndFreq: 200, Duration: 0.3, Volume: 0.3, Decay: 5},
	SoundShrink:       {Wave: Sine, Freq: 1200, EndFreq: 1800, Duration: 0.2, Volume: 0.25, Decay: 8},
	SoundExplode:      {Wave: Square, Freq: 120, EndFreq: 40, Duration: 0.35, Volume: 0.3, Decay: 9},
	SoundBossHit:      {Wave: Square, Freq: 300, EndFreq: 250, Duration: 0.05, Volume: 0.15, Decay: 40},
	SoundBossDefeated: {Wave: Sine, Freq: 220, EndFreq: 880, Duration: 0.8, Volume: 0.35, Decay: 3},
	SoundGameOver:     {Wave: Square, Freq: 330, EndFreq: 110, Duration: 0.7, Volume: 0.3, Decay: 3},
	SoundConfirm:      {Wave: Sine, Freq: 988, EndFreq: 988, Duration: 0.08, Volume: 0.25, Decay: 20},
}

// Synthesize renders a tone as 16-bit little-endian stereo PCM
func Synthesize(t Tone) []byte {
	n := int(float64(SampleRate) * t.Duration)
	buf := make([]byte, n*4)

	phase := 0.0
	for i := range n {
		sec := float64(i) / SampleRate
		progress := float64(i) / float64(max(n, 1))
		freq := t.Freq + (t.EndFreq-t.Freq)*progress
		phase += 2 * math.Pi * freq / SampleRate

		v := math.Sin(phase)
		if t.Wave == Square {
			if v >= 0 {
				v = 1
			} else {
				v = -1
			}
		}
		envelope := math.Exp(-t.Decay * sec)
		s := int16(v * t.Volume * envelope * math.MaxInt16)

		for ch := range 2 {
			idx := i*4 + ch*2
			buf[idx] = byte(s)
			buf[idx+1] = byte(s >> 8)
		}
	}
	return buf
}

// Bank holds the synthesised clips. A bank without a context is silent.
type Bank struct {
	ctx   *audio.Context
	clips [soundCount][]byte
	muted bool
}

// NewBank synthesises every clip. ctx may be nil.
func NewBank(ctx *audio.Context) *Bank {
	b := &Bank{ctx: ctx}
	for s, t := range tones {
		b.clips[s] = Synthesize(t)
	}
	if ctx == nil {
		log.Printf("[Audio] No audio context, sound disabled")
	}
	return b
}

// Clip returns the PCM data of a sound
func (b *Bank) Clip(s Sound) []byte {
	if s < 0 || s >= soundCount {
		return nil
	}
	return b.clips[s]
}

// SetMuted turns playback off or on
func (b *Bank) SetMuted(muted bool) {
	b.muted = muted
}

// Muted reports whether playback is off
func (b *Bank) Muted() bool {
	return b.muted
}

// Enabled reports whether Play would make a sound
func (b *Bank) Enabled() bool {
	return b.ctx != nil && !b.muted
}

// Play starts a sound. It is a no-op when muted or without a context.
func (b *Bank) Play(s Sound) {
	if !b.Enabled() {
		return
	}
	clip := b.Clip(s)
	if len(clip) == 0 {
		return
	}
	b.ctx.NewPlayerFromBytes(clip).Play()
}
