package system

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mossvale/grotto/ecs"
	"github.com/mossvale/grotto/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 {
			return
		}

		if anim.Playing {
			// Advance frame every N ticks based on FPS and 60 TPS
			ticksPerFrame := int(60.0 / def.FPS)
			if ticksPerFrame < 1 {
				ticksPerFrame = 1
			}

			anim.FrameTimer++
			if anim.FrameTimer >= ticksPerFrame {
				anim.FrameTimer = 0
				anim.Frame++
				if anim.Frame >= def.FrameCount {
					if def.Loop {
						anim.Frame = 0
					} else {
						anim.Frame = def.FrameCount - 1
						anim.Playing = false
						finished := &component.AnimationFinished{Name: anim.Current}
						if err := ecs.Add(w, e, component.AnimationFinishedComponent.Kind(), finished); err != nil {
							panic("animation system: mark finished: " + err.Error())
						}
					}
				}
			}
		}

		if anim.Sheet == nil {
			return
		}

		// Calculate subimage rect
		x := def.ColStart*def.FrameW + anim.Frame*def.FrameW
		y := def.Row * def.FrameH
		rect := image.Rect(x, y, x+def.FrameW, y+def.FrameH)
		sprite.Image = anim.Sheet.SubImage(rect).(*ebiten.Image)
	})
}
