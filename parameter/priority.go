package parameter

// System execution priorities (lower runs first)
// Priorities only break ties; hard ordering is declared through After/Before
const (
	PrioritySynthesis   = 5 // Command handler, no per-tick work
	PrioritySpawn       = 10
	PriorityRotate      = 20
	PriorityMovement    = 30
	PriorityPhysics     = 100 // Contact list is final after this
	PriorityDetect      = 110
	PriorityGrab        = 120
	PriorityThrow       = 130
	PriorityHighlight   = 140
	PriorityFreeze      = 200 // Sources scan contacts before timers tick
	PriorityBurn        = 205
	PriorityParalyze    = 210
	PriorityEffectTimer = 220
	PriorityHeal        = 240
	PriorityEffect      = 250 // Active effect behaviour after sources
	PrioritySight       = 260
	PriorityContact     = 300
	PriorityExplosion   = 310
	PriorityDeath       = 400
	PriorityGameState   = 410
	PriorityInvariant   = 900
)

// System names used in ordering declarations
const (
	SystemSynthesis      = "synthesis"
	SystemSpawn          = "spawn"
	SystemRotate         = "rotate"
	SystemMovement       = "movement"
	SystemPhysics        = "physics"
	SystemDetect         = "detect"
	SystemGrab           = "grab"
	SystemThrow          = "throw"
	SystemHighlight      = "highlight"
	SystemFrozenTimer    = "frozen_timer"
	SystemBurnedTimer    = "burned_timer"
	SystemParalyzedTimer = "paralyzed_timer"
	SystemHealTimer      = "heal_timer"
	SystemFreeze         = "freeze_source"
	SystemBurn           = "burn_source"
	SystemParalyze       = "paralyze_source"
	SystemHeal           = "heal"
	SystemEffect         = "effect"
	SystemSight          = "sight"
	SystemContact        = "contact_damage"
	SystemExplosion      = "explosion"
	SystemDeath          = "death"
	SystemGameState      = "game_state"
	SystemInvariant      = "invariant"
)
