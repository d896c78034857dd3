package component

import "github.com/mossvale/grotto/common"

// Player stores movement tuning and the cached roll direction.
type Player struct {
	MaxSpeed     float64
	Acceleration float64
	Friction     float64
	RollSpeed    float64

	// RollVector is the last nonzero movement direction; rolls dash along it
	// and directional animations aim with it. Defaults to down.
	RollVector common.Vec2
}

var PlayerComponent = NewComponent[Player]()
