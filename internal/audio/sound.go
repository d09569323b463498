// Package audio plays the game's sound effects through beep.
package audio

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// DefaultDeathSound is looked up next to the binary's working directory.
const DefaultDeathSound = "end_game.wav"

// SoundManager plays the "player died" effect. A manager that failed to
// load or initialize stays silent.
type SoundManager struct {
	mu          sync.Mutex
	death       *beep.Buffer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{}
}

// Load decodes the wav file at path and opens the speaker at its sample
// rate. Errors leave the manager silent.
func (sm *SoundManager) Load(path string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	buf, err := decodeWAV(path)
	if err != nil {
		return err
	}

	rate := buf.Format().SampleRate
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	sm.death = buf
	sm.initialized = true
	return nil
}

func decodeWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sound: %w", err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return buf, nil
}

// PlayerDied plays the death effect once.
func (sm *SoundManager) PlayerDied() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Play(sm.death.Streamer(0, sm.death.Len()))
}

// Cleanup stops anything still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.initialized = false
}
