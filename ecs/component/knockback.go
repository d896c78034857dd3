package component

// Knockback is a decaying impulse vector imposed after a collision. While
// active it owns the entity's body velocity; the KnockbackSystem decays it
// toward zero at Decay px/s^2 and deactivates it near zero.
type Knockback struct {
	X      float64
	Y      float64
	Decay  float64
	Active bool
}

var KnockbackComponent = NewComponent[Knockback]()
