package component

// Hitbox represents an offensive AABB relative to the entity transform.
// An empty Anim means the hitbox is always active (contact damage); otherwise
// it is active only while the named animation plays the listed frames.
// KnockbackX/Y carry the direction imposed on whatever the hitbox lands on.
type Hitbox struct {
	Width      float64
	Height     float64
	OffsetX    float64
	OffsetY    float64
	Damage     int
	Anim       string
	Frames     []int
	KnockbackX float64
	KnockbackY float64
	HitTargets map[uint64]bool
}

var HitboxComponent = NewComponent[[]Hitbox]()
