package entity

import (
	"fmt"

	"github.com/mossvale/grotto/assets"
	"github.com/mossvale/grotto/ecs"
	"github.com/mossvale/grotto/ecs/component"
	"github.com/mossvale/grotto/prefabs"
)

func buildTransform(spec prefabs.TransformSpec) *component.Transform {
	scaleX := spec.ScaleX
	if scaleX == 0 {
		scaleX = 1
	}
	scaleY := spec.ScaleY
	if scaleY == 0 {
		scaleY = 1
	}
	return &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   scaleX,
		ScaleY:   scaleY,
		Rotation: spec.Rotation,
	}
}

func buildAnimation(spec prefabs.AnimationSpec) (*component.Animation, error) {
	sheet, err := assets.LoadImage(spec.Sheet)
	if err != nil {
		return nil, fmt.Errorf("load sheet %q: %w", spec.Sheet, err)
	}

	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, d := range spec.Defs {
		if d.FrameCount <= 0 || d.FrameW <= 0 || d.FrameH <= 0 {
			return nil, fmt.Errorf("animation %q: invalid frame geometry", name)
		}
		fps := d.FPS
		if fps <= 0 {
			fps = 10
		}
		defs[name] = component.AnimationDef{
			Row:        d.Row,
			ColStart:   d.ColStart,
			FrameCount: d.FrameCount,
			FrameW:     d.FrameW,
			FrameH:     d.FrameH,
			FPS:        fps,
			Loop:       d.Loop,
		}
	}

	current := spec.Current
	if _, ok := defs[current]; !ok {
		return nil, fmt.Errorf("animation: unknown initial animation %q", current)
	}

	return &component.Animation{
		Sheet:   sheet,
		Defs:    defs,
		Current: current,
		Playing: true,
	}, nil
}

func buildHitboxes(specs []prefabs.HitboxSpec) []component.Hitbox {
	hitboxes := make([]component.Hitbox, 0, len(specs))
	for _, s := range specs {
		hitboxes = append(hitboxes, component.Hitbox{
			Width:   s.Width,
			Height:  s.Height,
			OffsetX: s.OffsetX,
			OffsetY: s.OffsetY,
			Damage:  s.Damage,
			Anim:    s.Anim,
			Frames:  append([]int(nil), s.Frames...),
		})
	}
	return hitboxes
}

func buildHurtboxes(specs []prefabs.HurtboxSpec) []component.Hurtbox {
	hurtboxes := make([]component.Hurtbox, 0, len(specs))
	for _, s := range specs {
		hurtboxes = append(hurtboxes, component.Hurtbox{
			Width:   s.Width,
			Height:  s.Height,
			OffsetX: s.OffsetX,
			OffsetY: s.OffsetY,
		})
	}
	return hurtboxes
}

// NewArenaBounds creates the static walls entity the physics system builds
// its boundary segments from.
func NewArenaBounds(w *ecs.World, width, height float64) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("arena bounds: nil world")
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ArenaBoundsComponent.Kind(), &component.ArenaBounds{Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("arena bounds: %w", err)
	}
	return e, nil
}
