package system

import (
	"math"

	"github.com/mossvale/grotto/common"
	"github.com/mossvale/grotto/ecs"
	"github.com/mossvale/grotto/ecs/component"
)

// PlayerControllerSystem drives the player state machine once per tick.
// Each tick it builds a context bridging the states to the entity's input,
// physics body, and animation, then runs HandleInput and Update on the
// current state. State changes requested by either phase are applied with
// Exit/Enter between phases and before the next tick.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w,
		component.PlayerComponent.Kind(),
		component.PlayerStateMachineComponent.Kind(),
		component.InputComponent.Kind(),
		func(e ecs.Entity, player *component.Player, machine *component.PlayerStateMachine, input *component.Input) {
			if machine.State == nil {
				machine.State = playerStateMove
			}

			ctx := p.buildContext(w, e, player, machine, input)

			machine.State.HandleInput(ctx)
			applyPending(machine, ctx)

			machine.State.Update(ctx)
			applyPending(machine, ctx)
		})
}

func applyPending(machine *component.PlayerStateMachine, ctx *component.PlayerStateContext) {
	if machine == nil || machine.Pending == nil || machine.Pending == machine.State {
		machine.Pending = nil
		return
	}
	if machine.State != nil {
		machine.State.Exit(ctx)
	}
	machine.State = machine.Pending
	machine.Pending = nil
	machine.State.Enter(ctx)
}

func (p *PlayerControllerSystem) buildContext(w *ecs.World, e ecs.Entity, player *component.Player, machine *component.PlayerStateMachine, input *component.Input) *component.PlayerStateContext {
	return &component.PlayerStateContext{
		Input:  input,
		Player: player,
		Delta:  common.TickDelta,

		GetVelocity: func() (float64, float64) {
			bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
			if !ok || bodyComp.Body == nil {
				return 0, 0
			}
			vel := bodyComp.Body.Velocity()
			return vel.X, vel.Y
		},
		SetVelocity: func(x, y float64) {
			bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
			if !ok || bodyComp.Body == nil {
				return
			}
			bodyComp.Body.SetVelocity(x, y)
			bodyComp.Body.SetAngle(0)
			bodyComp.Body.SetAngularVelocity(0)
		},
		ChangeState: func(state component.PlayerState) {
			machine.Pending = state
		},
		ChangeAnimation: func(name string) {
			anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
			if !ok {
				return
			}
			resolved := directionalAnimation(anim, name, player.RollVector)
			if anim.Current == resolved && anim.Playing {
				return
			}
			anim.Current = resolved
			anim.Frame = 0
			anim.FrameTimer = 0
			anim.Playing = true
		},
		AnimationFinished: func(name string) bool {
			finished, ok := ecs.Get(w, e, component.AnimationFinishedComponent.Kind())
			if !ok {
				return false
			}
			if baseAnimationName(finished.Name) != name {
				return false
			}
			ecs.Remove(w, e, component.AnimationFinishedComponent.Kind())
			return true
		},
		SetSwordKnockback: func(x, y float64) {
			hitboxes, ok := ecs.Get(w, e, component.HitboxComponent.Kind())
			if !ok {
				return
			}
			for i := range *hitboxes {
				(*hitboxes)[i].KnockbackX = x
				(*hitboxes)[i].KnockbackY = y
			}
		},
		FacingLeft: func(facingLeft bool) {
			sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
			if !ok {
				return
			}
			sprite.FacingLeft = facingLeft
		},
	}
}

// directionalAnimation resolves a base animation name to the directional
// variant facing along dir, falling back to the base name when the sheet
// doesn't define variants.
func directionalAnimation(anim *component.Animation, name string, dir common.Vec2) string {
	if anim == nil || anim.Defs == nil {
		return name
	}
	variant := name + directionSuffix(dir)
	if _, ok := anim.Defs[variant]; ok {
		return variant
	}
	return name
}

func directionSuffix(dir common.Vec2) string {
	if dir.IsZero() {
		return "_down"
	}
	if math.Abs(dir.X) >= math.Abs(dir.Y) {
		if dir.X < 0 {
			return "_left"
		}
		return "_right"
	}
	if dir.Y < 0 {
		return "_up"
	}
	return "_down"
}

// baseAnimationName strips a directional suffix so states can match on the
// logical animation ("attack" matches "attack_left").
func baseAnimationName(name string) string {
	for _, suffix := range []string{"_down", "_up", "_left", "_right"} {
		if len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix {
			return name[:len(name)-len(suffix)]
		}
	}
	return name
}
