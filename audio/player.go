package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/shapecraft/config"
	"github.com/lixenwraith/shapecraft/event"
)

const sampleRate = beep.SampleRate(48000)

// Player plays signal cues through a shared mixer on the speaker
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	enabled     bool
	initialized bool
	log         *logrus.Entry
}

// NewPlayer creates a player; nothing reaches the speaker until Init
func NewPlayer(cfg config.AudioConfig, log *logrus.Entry) *Player {
	return &Player{
		mixer:   &beep.Mixer{},
		volume:  cfg.Volume,
		enabled: cfg.Enabled,
		log:     log,
	}
}

// Init opens the speaker; disabled players stay silent
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.log.WithField("rate", int(sampleRate)).Debug("audio ready")
	return nil
}

// Close silences the mixer
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

func (p *Player) SetMuted(m bool) {
	p.mu.Lock()
	p.muted = m
	p.mu.Unlock()
}

func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Handle plays the cues of a signal batch, each distinct cue at most once
// It returns the cues selected, whether or not a speaker is attached
func (p *Player) Handle(signals []event.GameEvent) []Cue {
	var cues []Cue
	seen := make(map[Cue]bool)
	for _, ev := range signals {
		c := CueFor(ev)
		if c == CueNone || seen[c] {
			continue
		}
		seen[c] = true
		cues = append(cues, c)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || p.muted {
		return cues
	}
	speaker.Lock()
	for _, c := range cues {
		p.mixer.Add(c.Streamer(sampleRate, p.volume))
	}
	speaker.Unlock()
	return cues
}
