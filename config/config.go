package config

import (
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/shapecraft/parameter"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Duration decodes TOML strings such as "500ms" or "2s"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrapf(err, "duration %q", string(text))
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// D wraps a time.Duration
func D(v time.Duration) Duration {
	return Duration{Duration: v}
}

// Config is the full simulation configuration
type Config struct {
	Sim         SimConfig         `toml:"sim"`
	Inventory   InventoryConfig   `toml:"inventory"`
	Combat      CombatConfig      `toml:"combat"`
	Effects     EffectsConfig     `toml:"effects"`
	Interaction InteractionConfig `toml:"interaction"`
	Movement    MovementConfig    `toml:"movement"`
	Spawn       SpawnConfig       `toml:"spawn"`
	Camera      CameraConfig      `toml:"camera"`
	Log         LogConfig         `toml:"log"`
	Audio       AudioConfig       `toml:"audio"`
	Keys        map[string]string `toml:"keys"`
}

type SimConfig struct {
	TickRate   int   `toml:"tick_rate"`
	MaxCatchUp int   `toml:"max_catch_up"`
	Seed       int64 `toml:"seed"` // 0 picks a time-based seed
}

type InventoryConfig struct {
	StorageSize   int `toml:"storage_size"`
	BlueprintSize int `toml:"blueprint_size"`
}

type CombatConfig struct {
	DamageThreshold float64 `toml:"damage_threshold"`
}

type EffectsConfig struct {
	FreezeScale      float64  `toml:"freeze_scale"`
	FreezeDuration   Duration `toml:"freeze_duration"`
	BurnDamage       int      `toml:"burn_damage"`
	BurnDuration     Duration `toml:"burn_duration"`
	BurnInterval     Duration `toml:"burn_interval"`
	ParalyzeDuration Duration `toml:"paralyze_duration"`
	HealAmount       int      `toml:"heal_amount"`
	HealInterval     Duration `toml:"heal_interval"`
	SightScale       float64  `toml:"sight_scale"`
	ExplodeRadius    float64  `toml:"explode_radius"`
	ExplodeDamage    int      `toml:"explode_damage"`
}

type InteractionConfig struct {
	RayOffset    float64 `toml:"ray_offset"`
	RayLength    float64 `toml:"ray_length"`
	JointMin     float64 `toml:"joint_min"`
	JointMax     float64 `toml:"joint_max"`
	ThrowImpulse float64 `toml:"throw_impulse"`
	HoldDistance float64 `toml:"hold_distance"`
}

type MovementConfig struct {
	Force      float64 `toml:"force"`
	Friction   float64 `toml:"friction"`
	RotateGain float64 `toml:"rotate_gain"`
}

type SpawnConfig struct {
	Interval   Duration `toml:"interval"`
	MaxObjects int      `toml:"max_objects"`
	X          float64  `toml:"x"`
	Y          float64  `toml:"y"`
}

type CameraConfig struct {
	ZoomMin   float64 `toml:"zoom_min"`
	ZoomSpeed float64 `toml:"zoom_speed"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // text or json
	File   string `toml:"file"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Default returns the reference configuration
func Default() *Config {
	return &Config{
		Sim: SimConfig{
			TickRate:   parameter.TickRate,
			MaxCatchUp: parameter.MaxCatchUpTicks,
		},
		Inventory: InventoryConfig{
			StorageSize:   parameter.StorageSize,
			BlueprintSize: parameter.BlueprintSize,
		},
		Combat: CombatConfig{DamageThreshold: parameter.ContactDamageThreshold},
		Effects: EffectsConfig{
			FreezeScale:      parameter.FreezeScale,
			FreezeDuration:   D(parameter.FreezeDuration),
			BurnDamage:       parameter.BurnDamage,
			BurnDuration:     D(parameter.BurnDuration),
			BurnInterval:     D(parameter.BurnInterval),
			ParalyzeDuration: D(parameter.ParalyzeDuration),
			HealAmount:       parameter.HealAmount,
			HealInterval:     D(parameter.HealInterval),
			SightScale:       parameter.SightScale,
			ExplodeRadius:    parameter.ExplodeRadius,
			ExplodeDamage:    parameter.ExplodeDamage,
		},
		Interaction: InteractionConfig{
			RayOffset:    parameter.RayOffset,
			RayLength:    parameter.RayLength,
			JointMin:     parameter.JointMin,
			JointMax:     parameter.JointMax,
			ThrowImpulse: parameter.ThrowImpulse,
			HoldDistance: parameter.HoldDistance,
		},
		Movement: MovementConfig{
			Force:      parameter.MoveForce,
			Friction:   parameter.MoveFriction,
			RotateGain: parameter.RotateGain,
		},
		Spawn: SpawnConfig{
			Interval:   D(parameter.SpawnInterval),
			MaxObjects: parameter.SpawnMaxObjects,
			X:          parameter.SpawnX,
			Y:          parameter.SpawnY,
		},
		Camera: CameraConfig{
			ZoomMin:   parameter.ZoomMin,
			ZoomSpeed: parameter.ZoomSpeed,
		},
		Log:   LogConfig{Level: "info", Format: "text"},
		Audio: AudioConfig{Enabled: true, Volume: 0.5},
		Keys:  DefaultKeys(),
	}
}

// DefaultKeys maps action names to key names
func DefaultKeys() map[string]string {
	return map[string]string{
		"up":         "w",
		"down":       "s",
		"left":       "a",
		"right":      "d",
		"throw":      "space",
		"store":      "f",
		"hold":       "h",
		"clear":      "c",
		"synthesize": "enter",
		"pause":      "p",
		"mute":       "m",
		"quit":       "q",
	}
}

// Load overlays a TOML file on the defaults and validates the result
// Unknown keys are rejected
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	return Parse(string(data))
}

// Parse overlays TOML text on the defaults and validates the result
func Parse(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Wrapf(ErrInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	// Partial [keys] tables extend the defaults
	for action, key := range DefaultKeys() {
		if _, ok := cfg.Keys[action]; !ok {
			cfg.Keys[action] = key
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	var problems []string
	check := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, msg)
		}
	}

	check(c.Sim.TickRate > 0, "sim.tick_rate must be positive")
	check(c.Sim.MaxCatchUp > 0, "sim.max_catch_up must be positive")
	check(c.Inventory.StorageSize >= 1, "inventory.storage_size must be at least 1")
	check(c.Inventory.BlueprintSize >= 1, "inventory.blueprint_size must be at least 1")
	check(c.Combat.DamageThreshold >= 0, "combat.damage_threshold must not be negative")
	check(c.Effects.FreezeScale > 0 && c.Effects.FreezeScale < 1, "effects.freeze_scale must be in (0,1)")
	check(c.Effects.BurnInterval.Duration > 0, "effects.burn_interval must be positive")
	check(c.Effects.HealInterval.Duration > 0, "effects.heal_interval must be positive")
	check(c.Effects.ExplodeRadius > 0, "effects.explode_radius must be positive")
	check(c.Interaction.RayLength > 0, "interaction.ray_length must be positive")
	check(c.Interaction.JointMin <= c.Interaction.JointMax, "interaction.joint_min must not exceed joint_max")
	check(c.Spawn.Interval.Duration > 0, "spawn.interval must be positive")
	check(c.Spawn.MaxObjects >= 0, "spawn.max_objects must not be negative")
	check(c.Camera.ZoomMin > 0, "camera.zoom_min must be positive")
	check(c.Log.Format == "text" || c.Log.Format == "json", "log.format must be text or json")
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be in [0,1]")

	if len(problems) > 0 {
		return errors.Wrap(ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
