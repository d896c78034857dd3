package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mossvale/grotto/ecs"
	"github.com/mossvale/grotto/ecs/component"
)

// RenderSystem draws animated sprites. Entities are ordered by Y so things
// lower in the arena draw over things above them.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	type drawable struct {
		transform *component.Transform
		sprite    *component.Sprite
	}
	var drawables []drawable
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, t *component.Transform, s *component.Sprite) {
		if s.Image == nil {
			return
		}
		drawables = append(drawables, drawable{transform: t, sprite: s})
	})

	sort.SliceStable(drawables, func(i, j int) bool {
		return drawables[i].transform.Y < drawables[j].transform.Y
	})

	for _, d := range drawables {
		t := d.transform
		s := d.sprite
		img := s.Image

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)

		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		if s.FacingLeft {
			sx = -sx
			op.GeoM.Translate(float64(-img.Bounds().Dx()), 0)
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}

		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(t.Rotation)
		op.GeoM.Translate(t.X, t.Y)

		screen.DrawImage(img, op)
	}
}
