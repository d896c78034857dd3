package entity

import (
	"fmt"

	"github.com/mossvale/grotto/ecs"
	"github.com/mossvale/grotto/ecs/component"
	"github.com/mossvale/grotto/prefabs"
)

// NewBatAt assembles a bat enemy at the given position from its prefab spec.
func NewBatAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	spec, err := prefabs.LoadBatSpec()
	if err != nil {
		return 0, fmt.Errorf("bat: %w", err)
	}
	return newBatFromSpec(w, spec, x, y)
}

func newBatFromSpec(w *ecs.World, spec *prefabs.BatSpec, x, y float64) (ecs.Entity, error) {
	if w == nil || spec == nil {
		return 0, fmt.Errorf("bat: nil world or spec")
	}

	anim, err := buildAnimation(spec.Animation)
	if err != nil {
		return 0, fmt.Errorf("bat: %w", err)
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
			return ecs.Add(w, e, component.BatTagComponent.Kind(), &component.BatTag{})
		}},
		{"bat", func() error {
			return ecs.Add(w, e, component.BatComponent.Kind(), &component.Bat{
				KnockbackMultiplier: spec.KnockbackMultiplier,
				WanderSpeed:         spec.WanderSpeed,
				ChaseSpeed:          spec.ChaseSpeed,
				FollowRange:         spec.FollowRange,
			})
		}},
		{"ai state", func() error {
			return ecs.Add(w, e, component.AIStateComponent.Kind(), &component.AIState{
				Script: spec.Script,
			})
		}},
		{"knockback", func() error {
			return ecs.Add(w, e, component.KnockbackComponent.Kind(), &component.Knockback{
				Decay: spec.KnockbackDecay,
			})
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
			return 0, fmt.Errorf("bat: add %s: %w", step.name, err)
		}
	}

	return e, nil
}
