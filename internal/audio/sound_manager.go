// internal/audio/sound_manager.go
package audio

import (
	"sync"
	"time"

	"go-defense-tower/internal/event"
	"go-defense-tower/internal/logger"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

const (
	defaultVolume = 0.35
	maxVoices     = 8 // На x4 убийства идут очередями, лишние сигналы глушим
)

// SoundManager играет сигналы на события игры. Реализует event.Listener.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool

	// play отдаёт поток в вывод; в тестах подменяется
	play func(beep.Streamer)
	// voices — сколько потоков сейчас звучит
	voices func() int
}

// NewSoundManager creates a new sound manager
func NewSoundManager(muted bool) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: defaultVolume,
		muted:  muted,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || sm.muted {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)

	sm.play = func(s beep.Streamer) {
		speaker.Lock()
		sm.mixer.Add(s)
		speaker.Unlock()
	}
	sm.voices = func() int {
		speaker.Lock()
		defer speaker.Unlock()
		return sm.mixer.Len()
	}
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
	sm.play = nil
	sm.voices = nil
}

// SetMuted включает и выключает звук на лету.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Play проигрывает сигнал, если звук включён.
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.muted || sm.play == nil {
		return
	}
	if sm.voices != nil && sm.voices() >= maxVoices {
		return
	}
	s, err := NewCue(cue, sampleRate, sm.volume)
	if err != nil {
		logger.Log.Warn("sound cue failed", zap.Int("cue", int(cue)), zap.Error(err))
		return
	}
	sm.play(s)
}

// OnEvent реализует интерфейс event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	if cue, ok := cueFor(e); ok {
		sm.Play(cue)
	}
}

func cueFor(e event.Event) (Cue, bool) {
	switch e.Type {
	case event.EnemyKilled:
		return CueKill, true
	case event.EnemyEscaped:
		return CueEscape, true
	case event.WaveStarted:
		return CueWave, true
	case event.GameOver:
		return CueGameOver, true
	case event.TowerPlaced:
		return CueBuild, true
	case event.ObjectUpgraded:
		return CueUpgrade, true
	}
	return 0, false
}
