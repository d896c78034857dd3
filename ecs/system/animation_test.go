package system

import (
	"testing"

	"github.com/mossvale/grotto/ecs"
	"github.com/mossvale/grotto/ecs/component"
)

func newAnimatedEntity(t *testing.T, w *ecs.World, defs map[string]component.AnimationDef, current string) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	for _, err := range []error{
		ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
			Defs:    defs,
			Current: current,
			Playing: true,
		}),
		ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{}),
	} {
		if err != nil {
			t.Fatalf("build animated entity: %v", err)
		}
	}
	return e
}

func TestNonLoopingAnimationMarksFinished(t *testing.T) {
	w := ecs.NewWorld()
	defs := map[string]component.AnimationDef{
		"attack": {FrameCount: 3, FrameW: 16, FrameH: 16, FPS: 60},
	}
	e := newAnimatedEntity(t, w, defs, "attack")

	sys := NewAnimationSystem()
	for i := 0; i < 3; i++ {
		if ecs.Has(w, e, component.AnimationFinishedComponent.Kind()) {
			t.Fatalf("finished marker attached early on tick %d", i)
		}
		sys.Update(w)
	}

	finished, ok := ecs.Get(w, e, component.AnimationFinishedComponent.Kind())
	if !ok {
		t.Fatalf("no finished marker after final frame")
	}
	if finished.Name != "attack" {
		t.Fatalf("finished marker name = %q, want attack", finished.Name)
	}

	anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
	if anim.Playing {
		t.Fatalf("non-looping animation still playing")
	}
	if anim.Frame != 2 {
		t.Fatalf("frame = %d, want 2 (held on last frame)", anim.Frame)
	}
}

func TestLoopingAnimationWraps(t *testing.T) {
	w := ecs.NewWorld()
	defs := map[string]component.AnimationDef{
		"fly": {FrameCount: 2, FrameW: 16, FrameH: 16, FPS: 60, Loop: true},
	}
	e := newAnimatedEntity(t, w, defs, "fly")

	sys := NewAnimationSystem()
	for i := 0; i < 10; i++ {
		sys.Update(w)
	}

	if ecs.Has(w, e, component.AnimationFinishedComponent.Kind()) {
		t.Fatalf("looping animation marked finished")
	}
	anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !anim.Playing {
		t.Fatalf("looping animation stopped")
	}
}

func TestFrameRateDividesTickRate(t *testing.T) {
	w := ecs.NewWorld()
	defs := map[string]component.AnimationDef{
		"run": {FrameCount: 6, FrameW: 16, FrameH: 16, FPS: 10, Loop: true},
	}
	e := newAnimatedEntity(t, w, defs, "run")

	sys := NewAnimationSystem()
	// 10 FPS at 60 TPS advances a frame every 6 ticks.
	for i := 0; i < 6; i++ {
		sys.Update(w)
	}
	anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
	if anim.Frame != 1 {
		t.Fatalf("frame = %d after 6 ticks at 10 FPS, want 1", anim.Frame)
	}
}
