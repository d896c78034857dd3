package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Body and Shape are nil until the PhysicsSystem creates them.
type PhysicsBody struct {
	Body       *cp.Body
	Shape      *cp.Shape
	Width      float64
	Height     float64
	OffsetX    float64
	OffsetY    float64
	Mass       float64
	Friction   float64
	Elasticity float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// ArenaBounds marks the playable area; the PhysicsSystem builds static walls
// around it so move-and-collide has something to slide against.
type ArenaBounds struct {
	Width  float64
	Height float64
}

var ArenaBoundsComponent = NewComponent[ArenaBounds]()
