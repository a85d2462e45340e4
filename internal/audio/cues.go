// internal/audio/cues.go
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// Cue — короткий звуковой сигнал на игровое событие.
type Cue int

const (
	CueKill Cue = iota
	CueEscape
	CueWave
	CueGameOver
	CueBuild
	CueUpgrade
)

type note struct {
	freq     float64
	duration time.Duration
}

// cueNotes — мелодии сигналов: последовательность синусов.
var cueNotes = map[Cue][]note{
	CueKill:     {{880, 60 * time.Millisecond}},
	CueEscape:   {{220, 150 * time.Millisecond}, {165, 150 * time.Millisecond}},
	CueWave:     {{523.25, 80 * time.Millisecond}, {659.25, 80 * time.Millisecond}, {783.99, 80 * time.Millisecond}},
	CueGameOver: {{392, 200 * time.Millisecond}, {329.63, 200 * time.Millisecond}, {261.63, 200 * time.Millisecond}, {196, 300 * time.Millisecond}},
	CueBuild:    {{660, 50 * time.Millisecond}},
	CueUpgrade:  {{660, 60 * time.Millisecond}, {990, 60 * time.Millisecond}},
}

// NewCue собирает поток сигнала с громкостью volume (0..1, log2-шкала beep).
func NewCue(cue Cue, sr beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes, ok := cueNotes[cue]
	if !ok {
		return nil, fmt.Errorf("unknown cue %d", cue)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("cue %d: %w", cue, err)
		}
		parts = append(parts, beep.Take(sr.N(n.duration), tone))
	}
	return newVolume(beep.Seq(parts...), volume), nil
}

// CueLength — длина сигнала в сэмплах.
func CueLength(cue Cue, sr beep.SampleRate) int {
	total := 0
	for _, n := range cueNotes[cue] {
		total += sr.N(n.duration)
	}
	return total
}

// newVolume переводит линейную громкость в effects.Volume; 0 — тишина.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
