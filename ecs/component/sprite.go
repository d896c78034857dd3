package component

import "github.com/hajimehoshi/ebiten/v2"

// Sprite holds the current drawable frame. The AnimationSystem updates Image
// from the sheet each tick.
type Sprite struct {
	Image      *ebiten.Image
	OriginX    float64
	OriginY    float64
	FacingLeft bool
}

var SpriteComponent = NewComponent[Sprite]()
