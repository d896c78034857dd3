package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/mossvale/grotto/common"
	"github.com/mossvale/grotto/ecs"
	"github.com/mossvale/grotto/ecs/component"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeEnemy
	collisionTypeSolid
)

// PhysicsSystem owns the Chipmunk space for a top-down arena: no gravity,
// no body rotation, static segment walls around the arena bounds. Controllers
// write velocities; the space resolves them against the walls each step.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool

	entities map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	shapes []*cp.Shape
	static bool
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:    newArenaSpace(),
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func newArenaSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	if ps.space == nil {
		ps.space = newArenaSpace()
		ps.handlersReady = false
	}

	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.syncArenaBounds(w)

	ps.space.Step(common.TickDelta)

	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	// Player and enemies overlap rather than shove each other; contact
	// damage and knockback are resolved by the combat system.
	handler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeEnemy)
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		return false
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	if ps.space == nil {
		return
	}

	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if info := ps.entities[e]; info != nil {
			if bodyComp.Body == nil || bodyComp.Shape == nil {
				bodyComp.Body = info.body
				bodyComp.Shape = info.shape
			}
			return
		}

		info := ps.createBodyInfo(transform, bodyComp, ecs.Has(w, e, component.PlayerTagComponent.Kind()), ecs.Has(w, e, component.BatTagComponent.Kind()))
		if info == nil || info.shape == nil {
			return
		}

		ps.entities[e] = info
		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
	})
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody, isPlayer, isEnemy bool) *bodyInfo {
	if ps.space == nil || transform == nil || bodyComp == nil {
		return nil
	}

	width := bodyComp.Width
	height := bodyComp.Height
	if width <= 0 || height <= 0 {
		width = 16
		height = 16
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}

	// Infinite moment: arena bodies never rotate.
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: transform.X + bodyComp.OffsetX, Y: transform.Y + bodyComp.OffsetY})
	body.SetAngle(0)
	body.SetAngularVelocity(0)

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetCollisionType(collisionTypeSolid)
	if isPlayer {
		shape.SetCollisionType(collisionTypePlayer)
	} else if isEnemy {
		shape.SetCollisionType(collisionTypeEnemy)
	}

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	return &bodyInfo{
		body:   body,
		shape:  shape,
		shapes: []*cp.Shape{shape},
	}
}

func (ps *PhysicsSystem) syncArenaBounds(w *ecs.World) {
	if ps.space == nil || w == nil {
		return
	}
	boundsEntity, bounds, ok := ecs.First(w, component.ArenaBoundsComponent.Kind())
	if !ok {
		return
	}
	if _, exists := ps.entities[boundsEntity]; exists {
		return
	}

	arenaW := bounds.Width
	arenaH := bounds.Height
	if arenaW <= 0 || arenaH <= 0 {
		return
	}

	thickness := 1.0
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: arenaW, Y: 0}},           // top
		{a: cp.Vector{X: 0, Y: arenaH}, b: cp.Vector{X: arenaW, Y: arenaH}}, // bottom
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: arenaH}},           // left
		{a: cp.Vector{X: arenaW, Y: 0}, b: cp.Vector{X: arenaW, Y: arenaH}}, // right
	}

	info := &bodyInfo{static: true, body: ps.space.StaticBody}
	for _, seg := range segments {
		shape := cp.NewSegment(ps.space.StaticBody, seg.a, seg.b, thickness)
		shape.SetFriction(0.8)
		shape.SetCollisionType(collisionTypeSolid)
		ps.space.AddShape(shape)
		info.shapes = append(info.shapes, shape)
	}

	ps.entities[boundsEntity] = info
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Body == nil {
			return
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X - bodyComp.OffsetX
		transform.Y = pos.Y - bodyComp.OffsetY
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.IsAlive(w, e) && (ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) || ecs.Has(w, e, component.ArenaBoundsComponent.Kind())) {
			continue
		}

		for _, shape := range info.shapes {
			if shape == nil || ps.space == nil {
				continue
			}
			ps.space.RemoveShape(shape)
		}
		if info.body != nil && !info.static && ps.space != nil {
			ps.space.RemoveBody(info.body)
		}

		delete(ps.entities, e)
	}
}
