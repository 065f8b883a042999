package parameter

import "time"

// Simulation
const (
	// TickRate is the fixed simulation rate in Hz
	TickRate = 60

	// MaxCatchUpTicks bounds ticks run in one wake-up after a stall
	MaxCatchUpTicks = 5
)

// Health
const (
	MaxHealth = 100

	PlayerHealth = 100
	PlayerDamage = 1

	ObjectHealth   = 2
	ObjectDamage   = 1
	SquareHealth   = 10
	TriangleHealth = 1

	WallHealth = 0
	WallDamage = 1
)

// Inventory
const (
	StorageSize   = 8
	BlueprintSize = 4
)

// Combat
const (
	// ContactDamageThreshold is the relative speed above which contacts deal damage
	ContactDamageThreshold = 80.0

	ExplodeRadius = 20.0
	ExplodeDamage = 20
)

// Effects
const (
	FreezeScale    = 0.97
	FreezeDuration = 2 * time.Second

	BurnDamage   = 1
	BurnDuration = 5 * time.Second
	BurnInterval = 500 * time.Millisecond

	ParalyzeDuration = time.Second

	HealAmount   = 1
	HealInterval = 100 * time.Millisecond

	SightScale = 1.5
)

// Interaction
const (
	// RayOffset is the ray origin distance from the player center, just outside its collider
	RayOffset = 2.1
	RayLength = 4.0

	JointMin = 4.0
	JointMax = 7.0

	// InitialJointMin/Max constrain the object the player starts with
	InitialJointMin = 7.0
	InitialJointMax = 8.0
	InitialOffset   = 10.0

	ThrowImpulse = 1000.0

	// HoldDistance is how far in front of the player a recalled item appears
	HoldDistance = 5.0
)

// Movement
const (
	MoveForce      = 2000.0
	MoveFriction   = 600.0
	MoveStopSpeed  = 0.01
	RotateGain     = 20.0
	ObjectDensity  = 0.4
	RustDensity    = 0.1
	PlayerDensity  = 1.0
	LinearDamping  = 0.5
	AngularDamping = 2.0
)

// Spawning
const (
	SpawnInterval   = time.Second
	SpawnMaxObjects = 10
	SpawnX          = -50.0
	SpawnY          = 50.0
	PlayerX         = 0.0
	PlayerY         = -10.0
)

// Arena
const (
	ArenaWidth   = 192.0
	ArenaHeight  = 108.0
	ArenaOffsetX = 50.0
	ArenaOffsetY = 50.0
)

// Camera
const (
	ZoomMin   = 1.0
	ZoomSpeed = 0.01
)
