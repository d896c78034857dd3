package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mossvale/grotto/ecs"
	"github.com/mossvale/grotto/ecs/component"
	"golang.org/x/image/colornames"
)

// drawDebugBoxes outlines colliders, hurtboxes, and hitboxes.
func drawDebugBoxes(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		x := t.X + body.OffsetX - body.Width/2
		y := t.Y + body.OffsetY - body.Height/2
		vector.StrokeRect(screen, float32(x), float32(y), float32(body.Width), float32(body.Height), 1, colornames.Lime, false)
	})

	ecs.ForEach2(w, component.HurtboxComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, hurtboxes *[]component.Hurtbox, t *component.Transform) {
		for _, hb := range *hurtboxes {
			vector.StrokeRect(screen, float32(t.X+hb.OffsetX), float32(t.Y+hb.OffsetY), float32(hb.Width), float32(hb.Height), 1, colornames.Yellow, false)
		}
	})

	ecs.ForEach2(w, component.HitboxComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, hitboxes *[]component.Hitbox, t *component.Transform) {
		facingLeft := false
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			facingLeft = sprite.FacingLeft
		}
		for _, hb := range *hitboxes {
			x := t.X + hb.OffsetX
			if facingLeft {
				x = t.X - hb.OffsetX - hb.Width
			}
			vector.StrokeRect(screen, float32(x), float32(t.Y+hb.OffsetY), float32(hb.Width), float32(hb.Height), 1, colornames.Red, false)
		}
	})
}
