package component

import "github.com/lixenwraith/shapecraft/parameter"

// HealthComponent holds hit points; dead at HP <= 0
type HealthComponent struct {
	HP int
}

// Heal adds delta and clamps to [0, MaxHealth]; delta may be negative
func (h *HealthComponent) Heal(delta int) {
	hp := h.HP + delta
	if hp < 0 {
		hp = 0
	}
	if hp > parameter.MaxHealth {
		hp = parameter.MaxHealth
	}
	h.HP = hp
}

// Damage subtracts amount without clamping
func (h *HealthComponent) Damage(amount int) {
	h.HP -= amount
}

func (h HealthComponent) Dead() bool {
	return h.HP <= 0
}

// DmgComponent is the contact damage an entity inflicts on impact
type DmgComponent struct {
	Amount int
}

// ExplodeComponent fires once, when health first reaches zero, before despawn
type ExplodeComponent struct {
	Radius float64
	Damage int
}

// UndeadComponent marks static geometry that ignores health
type UndeadComponent struct{}
