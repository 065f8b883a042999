package component

import "time"

// TimedEffect is implemented by every active effect with a lifetime
// TickEffect advances internal timers and reports whether the effect just expired
type TimedEffect interface {
	TickEffect(dt time.Duration) bool
}

// EffectKind identifies an effect for signals and telemetry
type EffectKind uint8

const (
	EffectFreeze EffectKind = iota
	EffectBurn
	EffectParalyze
	EffectHeal
)

func (k EffectKind) String() string {
	switch k {
	case EffectFreeze:
		return "freeze"
	case EffectBurn:
		return "burn"
	case EffectParalyze:
		return "paralyze"
	case EffectHeal:
		return "heal"
	default:
		return "unknown"
	}
}

// FreezeSourceComponent freezes eligible contact partners
type FreezeSourceComponent struct {
	Scale    float64
	Duration time.Duration
}

// Effect builds a fresh Frozen for a contact partner
func (s FreezeSourceComponent) Effect() FrozenComponent {
	return FrozenComponent{Scale: s.Scale, Timer: NewTimer(s.Duration)}
}

// FrozenComponent damps linear and angular velocity by Scale every tick
type FrozenComponent struct {
	Scale float64
	Timer Timer
}

func (f *FrozenComponent) TickEffect(dt time.Duration) bool {
	return f.Timer.Tick(dt)
}

// BurnSourceComponent burns any contact partner that is not itself a burn source
type BurnSourceComponent struct {
	Damage   int
	Duration time.Duration
	Interval time.Duration
}

// Effect builds a fresh Burned for a contact partner
func (s BurnSourceComponent) Effect() BurnedComponent {
	return BurnedComponent{
		Damage:   s.Damage,
		Duration: NewTimer(s.Duration),
		Interval: NewRepeatingTimer(s.Interval),
	}
}

// BurnedComponent deals Damage at each Interval until Duration finishes
type BurnedComponent struct {
	Damage   int
	Duration Timer
	Interval Timer
}

// TickEffect advances both timers; only Duration governs expiry
func (b *BurnedComponent) TickEffect(dt time.Duration) bool {
	b.Interval.Tick(dt)
	return b.Duration.Tick(dt)
}

// ParalyzeSourceComponent paralyzes players on contact
type ParalyzeSourceComponent struct {
	Duration time.Duration
}

func (s ParalyzeSourceComponent) Effect() ParalyzedComponent {
	return ParalyzedComponent{Timer: NewTimer(s.Duration)}
}

// ParalyzedComponent zeroes velocity once when first added and blocks movement while present
type ParalyzedComponent struct {
	Timer Timer
}

func (p *ParalyzedComponent) TickEffect(dt time.Duration) bool {
	return p.Timer.Tick(dt)
}

// HealComponent adds HP to the holder at every Timer completion while the carrier is held
// HP may be negative
type HealComponent struct {
	HP    int
	Timer Timer
}

// NewHeal creates a heal modifier firing every interval
func NewHeal(hp int, interval time.Duration) HealComponent {
	return HealComponent{HP: hp, Timer: NewRepeatingTimer(interval)}
}

// TickEffect advances the pulse timer; heal never expires on its own
func (h *HealComponent) TickEffect(dt time.Duration) bool {
	h.Timer.Tick(dt)
	return false
}
