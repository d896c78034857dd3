package component

// Bat stores behavior tuning for the bat enemy.
type Bat struct {
	KnockbackMultiplier float64
	WanderSpeed         float64
	ChaseSpeed          float64
	FollowRange         float64
}

var BatComponent = NewComponent[Bat]()
