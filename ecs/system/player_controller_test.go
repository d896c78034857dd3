package system

import (
	"testing"

	"github.com/mossvale/grotto/common"
	"github.com/mossvale/grotto/ecs/component"
)

func TestDirectionSuffix(t *testing.T) {
	cases := []struct {
		name string
		dir  common.Vec2
		want string
	}{
		{"zero_defaults_down", common.Vec2{}, "_down"},
		{"right", common.Vec2{X: 1}, "_right"},
		{"left", common.Vec2{X: -1}, "_left"},
		{"up", common.Vec2{Y: -1}, "_up"},
		{"down", common.Vec2{Y: 1}, "_down"},
		{"horizontal_wins_ties", common.Vec2{X: 1, Y: 1}, "_right"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := directionSuffix(c.dir); got != c.want {
				t.Fatalf("directionSuffix(%v) = %q, want %q", c.dir, got, c.want)
			}
		})
	}
}

func TestDirectionalAnimationFallsBack(t *testing.T) {
	anim := &component.Animation{Defs: map[string]component.AnimationDef{
		"run_left": {FrameCount: 1, FrameW: 16, FrameH: 16, FPS: 10},
		"roll":     {FrameCount: 1, FrameW: 16, FrameH: 16, FPS: 10},
	}}

	if got := directionalAnimation(anim, "run", common.Vec2{X: -1}); got != "run_left" {
		t.Fatalf("got %q, want run_left", got)
	}
	if got := directionalAnimation(anim, "roll", common.Vec2{X: -1}); got != "roll" {
		t.Fatalf("got %q, want roll fallback", got)
	}
}

func TestBaseAnimationName(t *testing.T) {
	cases := map[string]string{
		"attack_left": "attack",
		"attack":      "attack",
		"roll_down":   "roll",
		"_down":       "_down",
	}
	for in, want := range cases {
		if got := baseAnimationName(in); got != want {
			t.Fatalf("baseAnimationName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestApplyPendingRunsExitAndEnter(t *testing.T) {
	machine := &component.PlayerStateMachine{State: playerStateMove, Pending: playerStateAttack}
	h := newStateHarness()
	applyPending(machine, h.ctx())

	if machine.State != playerStateAttack {
		t.Fatalf("state = %s, want attack", machine.State.Name())
	}
	if machine.Pending != nil {
		t.Fatalf("pending not cleared")
	}
	if len(h.anims) == 0 || h.anims[len(h.anims)-1] != "attack" {
		t.Fatalf("attack Enter did not request attack animation: %v", h.anims)
	}
}
