package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/bomber/session"
)

const sampleRate = beep.SampleRate(44100)

type Cue int

const (
	CUE_CLICK Cue = iota + 1
	CUE_BOOM
	CUE_CHIME
	CUE_HIT
	CUE_LOSE
	CUE_WIN
)

func (c Cue) Name() string {
	switch c {
	case CUE_CLICK:
		return "CLICK"
	case CUE_BOOM:
		return "BOOM"
	case CUE_CHIME:
		return "CHIME"
	case CUE_HIT:
		return "HIT"
	case CUE_LOSE:
		return "LOSE"
	case CUE_WIN:
		return "WIN"
	default:
		return fmt.Sprintf("n/a:%d", c)
	}
}

// CueFor maps a game event to its sound; zero means silence.
func CueFor(k session.EventKind) Cue {
	switch k {
	case session.EV_PLANT:
		return CUE_CLICK
	case session.EV_DETONATE:
		return CUE_BOOM
	case session.EV_PICKUP_TAKEN:
		return CUE_CHIME
	case session.EV_PLAYER_HIT:
		return CUE_HIT
	case session.EV_GAME_OVER:
		return CUE_LOSE
	case session.EV_VICTORY:
		return CUE_WIN
	default:
		return 0
	}
}

// Streamer builds a fresh, finite stream for the cue.
func Streamer(c Cue, seed int64) beep.Streamer {
	switch c {
	case CUE_CLICK:
		sine, err := generators.SineTone(sampleRate, 1200)
		if err != nil {
			return nil
		}
		return beep.Take(sampleRate.N(40*time.Millisecond), sine)
	case CUE_BOOM:
		return beep.Take(sampleRate.N(600*time.Millisecond), NewBoomGenerator(sampleRate, seed))
	case CUE_CHIME:
		return NewSweepGenerator(sampleRate, 660, 1320, 180*time.Millisecond)
	case CUE_HIT:
		return NewSweepGenerator(sampleRate, 300, 120, 250*time.Millisecond)
	case CUE_LOSE:
		return beep.Seq(
			NewSweepGenerator(sampleRate, 440, 330, 300*time.Millisecond),
			NewSweepGenerator(sampleRate, 330, 220, 500*time.Millisecond))
	case CUE_WIN:
		return beep.Seq(
			NewSweepGenerator(sampleRate, 523, 523, 150*time.Millisecond),
			NewSweepGenerator(sampleRate, 659, 659, 150*time.Millisecond),
			NewSweepGenerator(sampleRate, 784, 1046, 400*time.Millisecond))
	default:
		return nil
	}
}

// SoundManager mixes cues onto the speaker. Until Initialize succeeds every call is a
// no-op, so a machine without audio still runs the game.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	seed        int64
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.seed = time.Now().UnixNano()
	sm.initialized = true
	return nil
}

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

func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized || c == 0 {
		return
	}
	sm.seed++
	s := Streamer(c, sm.seed)
	if s == nil {
		log.Warnf("no streamer for cue %s", c.Name())
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayEvents plays one cue per distinct sound among events.
func (sm *SoundManager) PlayEvents(events []session.Event) {
	played := map[Cue]bool{}
	for _, ev := range events {
		c := CueFor(ev.Kind)
		if c == 0 || played[c] {
			continue
		}
		played[c] = true
		sm.Play(c)
	}
}
