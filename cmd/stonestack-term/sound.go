package main

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays short generated tones through a single mixer.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker. The game runs silently if this fails.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

func (sm *SoundManager) tone(freq float64, d time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(beep.Take(sampleRate.N(d), sine))
	speaker.Unlock()
}

// PlayClear rises in pitch with the number of lines cleared at once.
func (sm *SoundManager) PlayClear(lines int) {
	sm.tone(660+110*float64(min(lines, 4)), 80*time.Millisecond)
}

// PlayGarbage is a low thud for an injected garbage row.
func (sm *SoundManager) PlayGarbage() {
	sm.tone(140, 120*time.Millisecond)
}

func (sm *SoundManager) PlayMove() {
	sm.tone(440, 25*time.Millisecond)
}

func (sm *SoundManager) PlayFinish() {
	sm.tone(330, 400*time.Millisecond)
}
