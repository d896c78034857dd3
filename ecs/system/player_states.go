package system

import (
	"github.com/mossvale/grotto/common"
	"github.com/mossvale/grotto/ecs/component"
)

// Player state singletons (avoid allocations on transitions).
var (
	playerStateMove   component.PlayerState = &playerMoveState{}
	playerStateAttack component.PlayerState = &playerAttackState{}
	playerStateRoll   component.PlayerState = &playerRollState{}
)

type playerMoveState struct{}

type playerAttackState struct{}

type playerRollState struct{}

func (playerMoveState) Name() string { return "move" }
func (playerMoveState) Enter(ctx *component.PlayerStateContext) {
	if ctx == nil || ctx.ChangeAnimation == nil {
		return
	}
	ctx.ChangeAnimation("idle")
}
func (playerMoveState) Exit(ctx *component.PlayerStateContext) {}
func (playerMoveState) HandleInput(ctx *component.PlayerStateContext) {
	if ctx == nil || ctx.Input == nil || ctx.ChangeState == nil {
		return
	}
	if ctx.Input.AttackPressed {
		ctx.ChangeState(playerStateAttack)
		return
	}
	if ctx.Input.RollPressed {
		ctx.ChangeState(playerStateRoll)
	}
}
func (playerMoveState) Update(ctx *component.PlayerStateContext) {
	if ctx == nil || ctx.Input == nil || ctx.Player == nil || ctx.SetVelocity == nil || ctx.GetVelocity == nil {
		return
	}

	input := common.Vec2{X: ctx.Input.MoveX, Y: ctx.Input.MoveY}.Normalize()
	x, y := ctx.GetVelocity()
	vel := common.Vec2{X: x, Y: y}

	if !input.IsZero() {
		ctx.Player.RollVector = input
		if ctx.SetSwordKnockback != nil {
			ctx.SetSwordKnockback(input.X, input.Y)
		}
		if ctx.FacingLeft != nil && input.X != 0 {
			ctx.FacingLeft(input.X < 0)
		}
		if ctx.ChangeAnimation != nil {
			ctx.ChangeAnimation("run")
		}
		vel = common.MoveToward(vel, input.Scale(ctx.Player.MaxSpeed), ctx.Player.Acceleration*ctx.Delta)
	} else {
		if ctx.ChangeAnimation != nil {
			ctx.ChangeAnimation("idle")
		}
		vel = common.MoveToward(vel, common.Vec2{}, ctx.Player.Friction*ctx.Delta)
	}

	ctx.SetVelocity(vel.X, vel.Y)
}

func (playerAttackState) Name() string { return "attack" }
func (playerAttackState) Enter(ctx *component.PlayerStateContext) {
	if ctx == nil {
		return
	}
	if ctx.SetVelocity != nil {
		ctx.SetVelocity(0, 0)
	}
	if ctx.ChangeAnimation != nil {
		ctx.ChangeAnimation("attack")
	}
}
func (playerAttackState) Exit(ctx *component.PlayerStateContext)        {}
func (playerAttackState) HandleInput(ctx *component.PlayerStateContext) {}
func (playerAttackState) Update(ctx *component.PlayerStateContext) {
	if ctx == nil || ctx.SetVelocity == nil {
		return
	}
	ctx.SetVelocity(0, 0)
	if ctx.AnimationFinished != nil && ctx.AnimationFinished("attack") && ctx.ChangeState != nil {
		ctx.ChangeState(playerStateMove)
	}
}

func (playerRollState) Name() string { return "roll" }
func (playerRollState) Enter(ctx *component.PlayerStateContext) {
	if ctx == nil {
		return
	}
	if ctx.Player != nil && ctx.SetVelocity != nil {
		dash := ctx.Player.RollVector.Scale(ctx.Player.RollSpeed)
		ctx.SetVelocity(dash.X, dash.Y)
	}
	if ctx.ChangeAnimation != nil {
		ctx.ChangeAnimation("roll")
	}
}
func (playerRollState) Exit(ctx *component.PlayerStateContext)        {}
func (playerRollState) HandleInput(ctx *component.PlayerStateContext) {}
func (playerRollState) Update(ctx *component.PlayerStateContext) {
	if ctx == nil || ctx.Player == nil || ctx.SetVelocity == nil {
		return
	}
	dash := ctx.Player.RollVector.Scale(ctx.Player.RollSpeed)
	ctx.SetVelocity(dash.X, dash.Y)

	if ctx.AnimationFinished != nil && ctx.AnimationFinished("roll") {
		// Keep some momentum out of the roll so stopping doesn't feel abrupt.
		ctx.SetVelocity(dash.X*0.8, dash.Y*0.8)
		if ctx.ChangeState != nil {
			ctx.ChangeState(playerStateMove)
		}
	}
}
