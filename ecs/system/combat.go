package system

import (
	"github.com/mossvale/grotto/common"
	"github.com/mossvale/grotto/ecs"
	"github.com/mossvale/grotto/ecs/component"
)

// hitInvulnerableFrames is how long the player ignores repeat hits.
const hitInvulnerableFrames = 30

// CombatSystem overlaps active hitboxes with hurtboxes, applies damage, and
// hands the impact direction to the target's knockback.
type CombatSystem struct{}

func NewCombatSystem() *CombatSystem { return &CombatSystem{} }

func intersects(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}

func frameActive(frames []int, frame int) bool {
	if len(frames) == 0 {
		return true
	}
	for _, f := range frames {
		if f == frame {
			return true
		}
	}
	return false
}

func (s *CombatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	s.tickInvulnerability(w)

	ecs.ForEach2(w, component.HitboxComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, hitboxes *[]component.Hitbox, transform *component.Transform) {
		anim, hasAnim := ecs.Get(w, e, component.AnimationComponent.Kind())
		sprite, hasSprite := ecs.Get(w, e, component.SpriteComponent.Kind())
		facingLeft := hasSprite && sprite.FacingLeft

		for i := range *hitboxes {
			hb := &(*hitboxes)[i]

			active := hb.Anim == ""
			if !active && hasAnim && anim.Playing &&
				baseAnimationName(anim.Current) == hb.Anim &&
				frameActive(hb.Frames, anim.Frame) {
				active = true
			}
			if !active {
				// A finished swing may hit the same target again next time.
				if hb.Anim != "" && hb.HitTargets != nil {
					hb.HitTargets = nil
				}
				continue
			}

			hx := transform.X + hb.OffsetX
			if facingLeft {
				hx = transform.X - hb.OffsetX - hb.Width
			}
			hy := transform.Y + hb.OffsetY

			s.resolveHitbox(w, e, hb, hx, hy)
		}
	})
}

func (s *CombatSystem) resolveHitbox(w *ecs.World, attacker ecs.Entity, hb *component.Hitbox, hx, hy float64) {
	ecs.ForEach2(w, component.HurtboxComponent.Kind(), component.TransformComponent.Kind(), func(target ecs.Entity, hurtboxes *[]component.Hurtbox, tTransform *component.Transform) {
		if target == attacker {
			return
		}
		if sameFaction(w, attacker, target) {
			return
		}
		// Contact hitboxes rely on invulnerability frames instead of
		// per-swing dedup since they never deactivate.
		if hb.Anim != "" && hb.HitTargets[uint64(target)] {
			return
		}

		hit := false
		for _, hurt := range *hurtboxes {
			if intersects(hx, hy, hb.Width, hb.Height, tTransform.X+hurt.OffsetX, tTransform.Y+hurt.OffsetY, hurt.Width, hurt.Height) {
				hit = true
				break
			}
		}
		if !hit {
			return
		}

		if inv, ok := ecs.Get(w, target, component.InvulnerableComponent.Kind()); ok && inv.Frames > 0 {
			return
		}

		if hb.Anim != "" {
			if hb.HitTargets == nil {
				hb.HitTargets = make(map[uint64]bool)
			}
			hb.HitTargets[uint64(target)] = true
		}

		s.applyKnockback(w, target, hb)

		if ecs.Has(w, target, component.PlayerTagComponent.Kind()) {
			if err := ecs.Add(w, target, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: hitInvulnerableFrames}); err != nil {
				panic("combat system: add invulnerability: " + err.Error())
			}
		}

		w.Events().Push(ecs.Event{Type: ecs.EventHit, Data: ecs.HitEvent{
			Attacker: attacker,
			Target:   target,
			Damage:   hb.Damage,
		}})

		if health, ok := ecs.Get(w, target, component.HealthComponent.Kind()); ok {
			health.Current -= hb.Damage
			if health.Current <= 0 {
				health.Current = 0
				w.Events().Push(ecs.Event{Type: ecs.EventDefeated, Data: ecs.DefeatedEvent{Entity: target}})
				if ecs.Has(w, target, component.BatTagComponent.Kind()) {
					ecs.DestroyEntity(w, target)
				}
			}
		}
	})
}

// sameFaction reports whether attacker and target are on the same side, so
// flocking bats don't erase each other with their contact hitboxes.
func sameFaction(w *ecs.World, attacker, target ecs.Entity) bool {
	if ecs.Has(w, attacker, component.BatTagComponent.Kind()) && ecs.Has(w, target, component.BatTagComponent.Kind()) {
		return true
	}
	if ecs.Has(w, attacker, component.PlayerTagComponent.Kind()) && ecs.Has(w, target, component.PlayerTagComponent.Kind()) {
		return true
	}
	return false
}

// applyKnockback launches the target along the hitbox's impact direction,
// scaled by the target's own knockback multiplier.
func (s *CombatSystem) applyKnockback(w *ecs.World, target ecs.Entity, hb *component.Hitbox) {
	kb, ok := ecs.Get(w, target, component.KnockbackComponent.Kind())
	if !ok {
		return
	}

	multiplier := 1.0
	if bat, ok := ecs.Get(w, target, component.BatComponent.Kind()); ok {
		multiplier = bat.KnockbackMultiplier
	}

	dir := common.Vec2{X: hb.KnockbackX, Y: hb.KnockbackY}.Normalize()
	if dir.IsZero() {
		return
	}

	impulse := dir.Scale(multiplier)
	kb.X = impulse.X
	kb.Y = impulse.Y
	kb.Active = true

	if anim, ok := ecs.Get(w, target, component.AnimationComponent.Kind()); ok {
		if _, exists := anim.Defs["hit"]; exists && anim.Current != "hit" {
			anim.Current = "hit"
			anim.Frame = 0
			anim.FrameTimer = 0
			anim.Playing = true
		}
	}

	// Write the body immediately so the next physics step carries the hit.
	if bodyComp, ok := ecs.Get(w, target, component.PhysicsBodyComponent.Kind()); ok && bodyComp.Body != nil {
		bodyComp.Body.SetVelocity(impulse.X, impulse.Y)
	}
}

func (s *CombatSystem) tickInvulnerability(w *ecs.World) {
	ecs.ForEach(w, component.InvulnerableComponent.Kind(), func(e ecs.Entity, inv *component.Invulnerable) {
		if inv.Frames > 0 {
			inv.Frames--
			return
		}
		ecs.Remove(w, e, component.InvulnerableComponent.Kind())
	})
}
