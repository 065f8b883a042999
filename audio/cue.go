package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/shapecraft/event"
)

// Cue names a sound effect
type Cue uint8

const (
	CueNone Cue = iota
	CueDeath
	CueExplosion
	CueCraft
	CuePlayerDied
	CueHeal
)

var cueNames = [...]string{"none", "death", "explosion", "craft", "player_died", "heal"}

func (c Cue) String() string {
	if int(c) < len(cueNames) {
		return cueNames[c]
	}
	return "unknown"
}

// CueFor maps a presentation signal to its cue
// Player deaths map to CueNone on EntityDied because PlayerDied carries the cue
func CueFor(ev event.GameEvent) Cue {
	switch ev.Type {
	case event.EventEntityDied:
		if p, ok := ev.Payload.(*event.EntityDiedPayload); ok && p.Player {
			return CueNone
		}
		return CueDeath
	case event.EventExploded:
		return CueExplosion
	case event.EventCrafted:
		return CueCraft
	case event.EventPlayerDied:
		return CuePlayerDied
	case event.EventHealed:
		return CueHeal
	default:
		return CueNone
	}
}

// Streamer builds a fresh finite streamer for c at the given linear volume
func (c Cue) Streamer(rate beep.SampleRate, vol float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueDeath:
		s = tone(220, 120*time.Millisecond, WaveSaw, rate)
	case CueExplosion:
		d := 400 * time.Millisecond
		s = NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 5*time.Millisecond, 350*time.Millisecond, rate)
	case CueCraft:
		s = beep.Seq(
			tone(660, 90*time.Millisecond, WaveSine, rate),
			tone(990, 140*time.Millisecond, WaveSine, rate),
		)
	case CuePlayerDied:
		s = beep.Seq(
			tone(440, 200*time.Millisecond, WaveSquare, rate),
			tone(330, 200*time.Millisecond, WaveSquare, rate),
			tone(220, 400*time.Millisecond, WaveSquare, rate),
		)
	case CueHeal:
		s = newVolume(tone(1320, 40*time.Millisecond, WaveSine, rate), 0.3)
	default:
		return nil
	}
	return newVolume(s, vol)
}
