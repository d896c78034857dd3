package component

import "github.com/hajimehoshi/ebiten/v2"

type AnimationDef struct {
	Row        int
	ColStart   int // start column (frame 0)
	FrameCount int
	FrameW     int
	FrameH     int
	FPS        float64
	Loop       bool
}

type Animation struct {
	Sheet      *ebiten.Image
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer int
	Playing    bool
}

var AnimationComponent = NewComponent[Animation]()

// AnimationFinished is a transient marker attached when a non-looping
// animation reaches its final frame. The consumer removes it.
type AnimationFinished struct {
	Name string
}

var AnimationFinishedComponent = NewComponent[AnimationFinished]()
