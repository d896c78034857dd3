package system

import (
	"errors"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/mossvale/grotto/common"
	"github.com/mossvale/grotto/ecs"
	"github.com/mossvale/grotto/ecs/component"
	"github.com/mossvale/grotto/prefabs"
)

// BatAISystem drives scripted enemy behavior. Each bat carries a Tengo script
// defining onEnter/update/onExit per state; the system compiles it once,
// keeps per-entity script state, and dispatches lifecycle phases through a
// small appended driver.
type BatAISystem struct {
	scriptCache map[ecs.Entity]*batScriptRuntime
}

func NewBatAISystem() *BatAISystem {
	return &BatAISystem{scriptCache: map[ecs.Entity]*batScriptRuntime{}}
}

// Invalidate drops compiled scripts so edited ones are recompiled on the
// next tick. Script-local state is reset too.
func (b *BatAISystem) Invalidate() {
	if b == nil {
		return
	}
	b.scriptCache = map[ecs.Entity]*batScriptRuntime{}
}

type batScriptRuntime struct {
	scriptPath  string
	compiled    *tengo.Compiled
	stateData   *tengo.Map
	initial     string
	initialized bool
	pending     string
}

var errNilScriptRuntime = errors.New("nil script runtime")

const batLifecycleDispatchScript = `
if __phase == "enter" {
	onEnter(__engine, __state, __current_state)
} else if __phase == "update" {
	update(__engine, __state, __current_state)
} else if __phase == "exit" {
	onExit(__engine, __state, __current_state)
}
`

// batActionContext bridges one bat's components to its script for a tick.
type batActionContext struct {
	world   *ecs.World
	entity  ecs.Entity
	bat     *component.Bat
	state   *component.AIState
	playerX float64
	playerY float64

	getPosition  func() (x, y float64)
	setVelocity  func(x, y float64)
	setAnimation func(name string)
}

func (b *BatAISystem) Update(w *ecs.World) {
	if b == nil || w == nil {
		return
	}

	playerX, playerY := 0.0, 0.0
	if playerEnt, _, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if t, ok := ecs.Get(w, playerEnt, component.TransformComponent.Kind()); ok {
			playerX = t.X
			playerY = t.Y
		}
	}

	ecs.ForEach3(w, component.BatComponent.Kind(), component.AIStateComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bat *component.Bat, state *component.AIState, transform *component.Transform) {
		// A bat being knocked back surrenders control to the knockback.
		if kb, ok := ecs.Get(w, e, component.KnockbackComponent.Kind()); ok && kb.Active {
			return
		}

		ctx := &batActionContext{
			world:   w,
			entity:  e,
			bat:     bat,
			state:   state,
			playerX: playerX,
			playerY: playerY,
			getPosition: func() (float64, float64) {
				return transform.X, transform.Y
			},
			setVelocity: func(x, y float64) {
				if bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && bodyComp.Body != nil {
					bodyComp.Body.SetVelocity(x, y)
				}
				if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok && x != 0 {
					sprite.FacingLeft = x < 0
				}
			},
			setAnimation: func(name string) {
				anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
				if !ok {
					return
				}
				if _, exists := anim.Defs[name]; !exists || (anim.Current == name && anim.Playing) {
					return
				}
				anim.Current = name
				anim.Frame = 0
				anim.FrameTimer = 0
				anim.Playing = true
			},
		}

		b.updateFromScript(ctx)
	})

	// Defeated bats leave stale runtimes behind.
	for ent := range b.scriptCache {
		if !ecs.IsAlive(w, ent) {
			delete(b.scriptCache, ent)
		}
	}
}

func (b *BatAISystem) updateFromScript(ctx *batActionContext) {
	if b == nil || ctx == nil || ctx.state == nil {
		return
	}

	rt, err := b.getScriptRuntime(ctx.entity, ctx.state.Script)
	if err != nil {
		log.Printf("bat ai: entity=%d load script error: %v", ctx.entity, err)
		return
	}

	if ctx.state.Current == "" {
		ctx.state.Current = rt.initial
	}

	engine := buildBatScriptEngine(ctx, rt)
	if !rt.initialized {
		if err := rt.runPhase("enter", ctx.state.Current, engine); err != nil {
			log.Printf("bat ai: entity=%d script onEnter error: %v", ctx.entity, err)
			return
		}
		rt.initialized = true
	}

	if err := rt.runPhase("update", ctx.state.Current, engine); err != nil {
		log.Printf("bat ai: entity=%d script update error: %v", ctx.entity, err)
		return
	}

	if rt.pending == "" || rt.pending == ctx.state.Current {
		rt.pending = ""
		return
	}

	prev := ctx.state.Current
	if err := rt.runPhase("exit", prev, engine); err != nil {
		log.Printf("bat ai: entity=%d script onExit error: %v", ctx.entity, err)
		return
	}

	ctx.state.Current = rt.pending
	rt.pending = ""

	if err := rt.runPhase("enter", ctx.state.Current, engine); err != nil {
		log.Printf("bat ai: entity=%d script onEnter error: %v", ctx.entity, err)
	}
}

func (b *BatAISystem) getScriptRuntime(ent ecs.Entity, scriptPath string) (*batScriptRuntime, error) {
	if b.scriptCache == nil {
		b.scriptCache = map[ecs.Entity]*batScriptRuntime{}
	}

	if rt, ok := b.scriptCache[ent]; ok && rt != nil && rt.scriptPath == scriptPath {
		return rt, nil
	}

	scriptBytes, err := prefabs.LoadScript(scriptPath)
	if err != nil {
		return nil, err
	}

	src := string(scriptBytes) + "\n" + batLifecycleDispatchScript
	script := tengo.NewScript([]byte(src))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__current_state", "")

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}

	rt := &batScriptRuntime{
		scriptPath: scriptPath,
		compiled:   compiled,
		stateData:  &tengo.Map{Value: map[string]tengo.Object{}},
		initial:    "wander",
	}

	// Resolve optional initial state from script global `initial_state`.
	noop := &tengo.ImmutableMap{Value: map[string]tengo.Object{}}
	if err := rt.runPhase("noop", rt.initial, noop); err != nil {
		return nil, err
	}
	if compiled.IsDefined("initial_state") {
		s := strings.TrimSpace(compiled.Get("initial_state").String())
		if s != "" {
			rt.initial = s
		}
	}

	b.scriptCache[ent] = rt
	return rt, nil
}

func (rt *batScriptRuntime) runPhase(phase, current string, engine *tengo.ImmutableMap) error {
	if rt == nil || rt.compiled == nil {
		return errNilScriptRuntime
	}
	if engine == nil {
		engine = &tengo.ImmutableMap{Value: map[string]tengo.Object{}}
	}
	if err := rt.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := rt.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", rt.stateData); err != nil {
		return err
	}
	if err := rt.compiled.Set("__current_state", current); err != nil {
		return err
	}
	return rt.compiled.Run()
}

func buildBatScriptEngine(ctx *batActionContext, rt *batScriptRuntime) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["transition"] = &tengo.UserFunction{Name: "transition", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if rt == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		name := strings.TrimSpace(objectAsString(args[0]))
		if name == "" {
			return tengo.FalseValue, nil
		}
		rt.pending = name
		return tengo.TrueValue, nil
	}}

	values["get_position"] = &tengo.UserFunction{Name: "get_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil || ctx.getPosition == nil {
			return vec2Object(0, 0), nil
		}
		x, y := ctx.getPosition()
		return vec2Object(x, y), nil
	}}

	values["get_player_position"] = &tengo.UserFunction{Name: "get_player_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil {
			return vec2Object(0, 0), nil
		}
		return vec2Object(ctx.playerX, ctx.playerY), nil
	}}

	values["distance_to_player"] = &tengo.UserFunction{Name: "distance_to_player", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil || ctx.getPosition == nil {
			return &tengo.Float{Value: 0}, nil
		}
		x, y := ctx.getPosition()
		d := common.Vec2{X: ctx.playerX - x, Y: ctx.playerY - y}.Length()
		return &tengo.Float{Value: d}, nil
	}}

	values["follow_range"] = &tengo.UserFunction{Name: "follow_range", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil || ctx.bat == nil {
			return &tengo.Float{Value: 0}, nil
		}
		return &tengo.Float{Value: ctx.bat.FollowRange}, nil
	}}

	values["wander_speed"] = &tengo.UserFunction{Name: "wander_speed", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil || ctx.bat == nil {
			return &tengo.Float{Value: 0}, nil
		}
		return &tengo.Float{Value: ctx.bat.WanderSpeed}, nil
	}}

	values["chase_speed"] = &tengo.UserFunction{Name: "chase_speed", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil || ctx.bat == nil {
			return &tengo.Float{Value: 0}, nil
		}
		return &tengo.Float{Value: ctx.bat.ChaseSpeed}, nil
	}}

	values["set_velocity"] = &tengo.UserFunction{Name: "set_velocity", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil || ctx.setVelocity == nil || len(args) < 2 {
			return tengo.FalseValue, nil
		}
		x, okX := objectAsFloat(args[0])
		y, okY := objectAsFloat(args[1])
		if !okX || !okY {
			return tengo.FalseValue, nil
		}
		ctx.setVelocity(x, y)
		return tengo.TrueValue, nil
	}}

	values["set_animation"] = &tengo.UserFunction{Name: "set_animation", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil || ctx.setAnimation == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		name := strings.TrimSpace(objectAsString(args[0]))
		if name == "" {
			return tengo.FalseValue, nil
		}
		ctx.setAnimation(name)
		return tengo.TrueValue, nil
	}}

	values["move_towards_player"] = &tengo.UserFunction{Name: "move_towards_player", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil || ctx.getPosition == nil || ctx.setVelocity == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		speed, ok := objectAsFloat(args[0])
		if !ok {
			return tengo.FalseValue, nil
		}
		x, y := ctx.getPosition()
		dir := common.Vec2{X: ctx.playerX - x, Y: ctx.playerY - y}.Normalize()
		ctx.setVelocity(dir.X*speed, dir.Y*speed)
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func vec2Object(x, y float64) *tengo.Array {
	return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: x}, &tengo.Float{Value: y}}}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}

func objectAsFloat(obj tengo.Object) (float64, bool) {
	switch v := obj.(type) {
	case *tengo.Float:
		return v.Value, true
	case *tengo.Int:
		return float64(v.Value), true
	default:
		return 0, false
	}
}
