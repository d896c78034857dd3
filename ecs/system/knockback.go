package system

import (
	"github.com/mossvale/grotto/common"
	"github.com/mossvale/grotto/ecs"
	"github.com/mossvale/grotto/ecs/component"
)

// knockbackEpsilon is the speed below which a knockback is considered spent.
const knockbackEpsilon = 1.0

// KnockbackSystem decays active knockback vectors toward zero and drives the
// physics body with them. The vector is re-read from the body each tick, so
// the collision-adjusted velocity from the previous physics step becomes the
// knockback carried into this one.
type KnockbackSystem struct{}

func NewKnockbackSystem() *KnockbackSystem {
	return &KnockbackSystem{}
}

func (k *KnockbackSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.KnockbackComponent.Kind(), func(e ecs.Entity, kb *component.Knockback) {
		if !kb.Active {
			return
		}

		vel := common.Vec2{X: kb.X, Y: kb.Y}
		bodyComp, hasBody := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if hasBody && bodyComp.Body != nil {
			bv := bodyComp.Body.Velocity()
			vel = common.Vec2{X: bv.X, Y: bv.Y}
		}

		vel = common.MoveToward(vel, common.Vec2{}, kb.Decay*common.TickDelta)
		kb.X = vel.X
		kb.Y = vel.Y

		if vel.Length() < knockbackEpsilon {
			kb.X = 0
			kb.Y = 0
			kb.Active = false
			vel = common.Vec2{}
		}

		if hasBody && bodyComp.Body != nil {
			bodyComp.Body.SetVelocity(vel.X, vel.Y)
		}
	})
}
