package component

type Health struct {
	Initial int
	Current int
}

var HealthComponent = NewComponent[Health]()

// Invulnerable is a frame countdown during which an entity ignores hits.
type Invulnerable struct {
	Frames int
}

var InvulnerableComponent = NewComponent[Invulnerable]()
