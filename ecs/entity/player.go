package entity

import (
	"fmt"

	"github.com/mossvale/grotto/common"
	"github.com/mossvale/grotto/ecs"
	"github.com/mossvale/grotto/ecs/component"
	"github.com/mossvale/grotto/prefabs"
)

// NewPlayer assembles the player entity from its prefab spec.
func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	return newPlayerFromSpec(w, spec, spec.Transform.X, spec.Transform.Y)
}

// NewPlayerAt assembles the player entity at an explicit position.
func NewPlayerAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	return newPlayerFromSpec(w, spec, x, y)
}

func newPlayerFromSpec(w *ecs.World, spec *prefabs.PlayerSpec, x, y float64) (ecs.Entity, error) {
	if w == nil || spec == nil {
		return 0, fmt.Errorf("player: nil world or spec")
	}

	anim, err := buildAnimation(spec.Animation)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	transform := buildTransform(spec.Transform)
	transform.X = x
	transform.Y = y

	e := ecs.CreateEntity(w)
	steps := []struct {
		name string
		add  func() error
	}{
		{"tag", func() error {
			return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
		}},
		{"player", func() error {
			return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
				MaxSpeed:     spec.MaxSpeed,
				Acceleration: spec.Acceleration,
				Friction:     spec.Friction,
				RollSpeed:    spec.RollSpeed,
				RollVector:   common.Vec2{Y: 1},
			})
		}},
		{"state machine", func() error {
			return ecs.Add(w, e, component.PlayerStateMachineComponent.Kind(), &component.PlayerStateMachine{})
		}},
		{"input", func() error {
			return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
		}},
		{"transform", func() error {
			return ecs.Add(w, e, component.TransformComponent.Kind(), transform)
		}},
		{"sprite", func() error {
			return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
				OriginX: spec.Sprite.OriginX,
				OriginY: spec.Sprite.OriginY,
			})
		}},
		{"animation", func() error {
			return ecs.Add(w, e, component.AnimationComponent.Kind(), anim)
		}},
		{"physics body", func() error {
			return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
				Width:  spec.Collider.Width,
				Height: spec.Collider.Height,
				Mass:   1,
			})
		}},
		{"health", func() error {
			return ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{
				Initial: spec.Health,
				Current: spec.Health,
			})
		}},
		{"hitboxes", func() error {
			hitboxes := buildHitboxes(spec.Hitboxes)
			return ecs.Add(w, e, component.HitboxComponent.Kind(), &hitboxes)
		}},
		{"hurtboxes", func() error {
			hurtboxes := buildHurtboxes(spec.Hurtboxes)
			return ecs.Add(w, e, component.HurtboxComponent.Kind(), &hurtboxes)
		}},
	}
	for _, step := range steps {
		if err := step.add(); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("player: add %s: %w", step.name, err)
		}
	}

	return e, nil
}
