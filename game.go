package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/mossvale/grotto/common"
	"github.com/mossvale/grotto/ecs"
	"github.com/mossvale/grotto/ecs/component"
	"github.com/mossvale/grotto/ecs/entity"
	"github.com/mossvale/grotto/ecs/system"
	"github.com/mossvale/grotto/prefabs"
)

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	batAI     *system.BatAISystem

	player ecs.Entity

	debug   bool
	paused  bool
	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher

	frames int
}

func NewGame(debug bool, bats int) (*Game, error) {
	w := ecs.NewWorld()

	if _, err := entity.NewArenaBounds(w, common.BaseWidth, common.BaseHeight); err != nil {
		return nil, err
	}

	player, err := entity.NewPlayerAt(w, common.BaseWidth/2.0, common.BaseHeight/2.0)
	if err != nil {
		return nil, err
	}

	spawns := batSpawnPositions(bats)
	for _, pos := range spawns {
		if _, err := entity.NewBatAt(w, pos.X, pos.Y); err != nil {
			return nil, err
		}
	}

	batAI := system.NewBatAISystem()
	scheduler := ecs.NewScheduler(
		system.NewInputSystem(),
		batAI,
		system.NewPlayerControllerSystem(),
		system.NewCombatSystem(),
		system.NewKnockbackSystem(),
		system.NewAnimationSystem(),
		system.NewPhysicsSystem(),
	)

	g := &Game{
		world:     w,
		scheduler: scheduler,
		render:    system.NewRenderSystem(),
		batAI:     batAI,
		player:    player,
		debug:     debug,
	}
	g.pauseUI = NewPauseUI(g)

	watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
	if err != nil {
		// Hot reload is a dev convenience; the embedded specs still work.
		log.Printf("prefab watcher disabled: %v", err)
	} else {
		g.watcher = watcher
	}

	return g, nil
}

func batSpawnPositions(count int) []common.Vec2 {
	anchors := []common.Vec2{
		{X: common.BaseWidth * 0.25, Y: common.BaseHeight * 0.25},
		{X: common.BaseWidth * 0.75, Y: common.BaseHeight * 0.25},
		{X: common.BaseWidth * 0.25, Y: common.BaseHeight * 0.75},
		{X: common.BaseWidth * 0.75, Y: common.BaseHeight * 0.75},
	}
	positions := make([]common.Vec2, 0, count)
	for i := 0; i < count; i++ {
		pos := anchors[i%len(anchors)]
		pos.X += float64(i/len(anchors)) * 12
		positions = append(positions, pos)
	}
	return positions
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.drainWatcher()
	g.scheduler.Update(g.world)
	g.drainEvents()

	return nil
}

// drainWatcher applies prefab edits to live entities so tuning changes show
// up without restarting.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab changed: %s", path)
			changed = true
		case err := <-g.watcher.Errors:
			if err != nil {
				log.Printf("prefab watcher: %v", err)
			}
		default:
			if changed {
				g.reloadTuning()
			}
			return
		}
	}
}

func (g *Game) reloadTuning() {
	if playerSpec, err := prefabs.LoadPlayerSpec(); err != nil {
		log.Printf("reload player spec: %v", err)
	} else {
		ecs.ForEach(g.world, component.PlayerComponent.Kind(), func(e ecs.Entity, p *component.Player) {
			p.MaxSpeed = playerSpec.MaxSpeed
			p.Acceleration = playerSpec.Acceleration
			p.Friction = playerSpec.Friction
			p.RollSpeed = playerSpec.RollSpeed
		})
	}

	if batSpec, err := prefabs.LoadBatSpec(); err != nil {
		log.Printf("reload bat spec: %v", err)
	} else {
		ecs.ForEach2(g.world, component.BatComponent.Kind(), component.KnockbackComponent.Kind(), func(e ecs.Entity, b *component.Bat, kb *component.Knockback) {
			b.KnockbackMultiplier = batSpec.KnockbackMultiplier
			b.WanderSpeed = batSpec.WanderSpeed
			b.ChaseSpeed = batSpec.ChaseSpeed
			b.FollowRange = batSpec.FollowRange
			kb.Decay = batSpec.KnockbackDecay
		})
	}

	if g.batAI != nil {
		g.batAI.Invalidate()
	}
}

func (g *Game) drainEvents() {
	for _, evt := range g.world.Events().Drain() {
		switch data := evt.Data.(type) {
		case ecs.HitEvent:
			if g.debug {
				log.Printf("hit: attacker=%s target=%s damage=%d", data.Attacker, data.Target, data.Damage)
			}
		case ecs.DefeatedEvent:
			log.Printf("defeated: %s", data.Entity)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	if g.debug {
		g.drawDebug(screen)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	stateName := "?"
	if machine, ok := ecs.Get(g.world, g.player, component.PlayerStateMachineComponent.Kind()); ok && machine.State != nil {
		stateName = machine.State.Name()
	}
	velX, velY := 0.0, 0.0
	if bodyComp, ok := ecs.Get(g.world, g.player, component.PhysicsBodyComponent.Kind()); ok && bodyComp.Body != nil {
		vel := bodyComp.Body.Velocity()
		velX, velY = vel.X, vel.Y
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  state: %s  vel: (%.1f, %.1f)", ebiten.ActualFPS(), stateName, velX, velY))

	drawDebugBoxes(g.world, screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
