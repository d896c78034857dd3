package common

// Base logical resolution. The window scales this up; gameplay math works in
// these units.
const (
	BaseWidth  = 320
	BaseHeight = 180
)

// TickDelta is the fixed simulation step in seconds (Ebitengine runs the
// update loop at 60 TPS).
const TickDelta = 1.0 / 60.0
