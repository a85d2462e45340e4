// internal/app/game.go
package app

import (
	"go-defense-tower/internal/component"
	"go-defense-tower/internal/config"
	"go-defense-tower/internal/entity"
	"go-defense-tower/internal/event"
	"go-defense-tower/internal/logger"
	"go-defense-tower/internal/system"
	"go-defense-tower/internal/types"

	"go.uber.org/zap"
)

// Game holds the main game state and logic.
type Game struct {
	Balance          *config.Balance
	World            *entity.World
	Path             []component.Position
	Layout           Layout
	EventDispatcher  *event.Dispatcher
	EconomySystem    *system.EconomySystem
	WaveSystem       *system.WaveSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	MovementSystem   *system.MovementSystem
	Stats            *Stats

	Money    int
	Lives    int
	Level    int // Уровень врагов
	Wave     int // Сколько волн уже начато
	State    component.GameState
	GameOver bool

	SelectedTowerType component.TowerType // Башня, которую поставит следующий клик; "" — никакая
	SelectedID        types.EntityID      // Выбранная башня или дерево для улучшения

	speedIndex int
}

// NewGame initializes a new game instance.
func NewGame(balance *config.Balance) *Game {
	if balance == nil {
		panic("balance cannot be nil")
	}

	world := entity.NewWorld()
	eventDispatcher := event.NewDispatcher()
	path := system.PathPositions(balance.Path)
	projectiles := system.NewProjectileSystem(world, balance)

	g := &Game{
		Balance:          balance,
		World:            world,
		Path:             path,
		Layout:           NewLayout(balance),
		EventDispatcher:  eventDispatcher,
		EconomySystem:    system.NewEconomySystem(world, eventDispatcher),
		WaveSystem:       system.NewWaveSystem(world, balance, path, eventDispatcher),
		ProjectileSystem: projectiles,
		CombatSystem:     system.NewCombatSystem(world, balance, projectiles, eventDispatcher),
		MovementSystem:   system.NewMovementSystem(world, path),
		Stats:            &Stats{},
	}
	eventDispatcher.SubscribeAll(g.Stats)
	eventDispatcher.SubscribeAll(&eventLogger{})

	g.reset()
	return g
}

// Update progresses the game state by one tick.
func (g *Game) Update() {
	if g.State != component.Playing {
		return
	}
	g.World.Tick++

	g.Money += g.EconomySystem.Update()

	if len(g.World.Enemies) == 0 && !g.World.Wave.Spawning() {
		g.StartWave()
	}
	g.WaveSystem.Update()

	// Башни стреляют и ведут свои снаряды
	g.CombatSystem.Update()
	g.MovementSystem.Update()
	g.cleanupEnemies()

	if g.Lives <= 0 {
		g.Lives = 0
		g.GameOver = true
		g.setState(component.Stopped)
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver})
	}
}

// Advance — один кадр фронтенда: столько тиков, сколько задаёт множитель скорости.
func (g *Game) Advance() {
	for i := 0; i < g.SpeedMultiplier(); i++ {
		g.Update()
	}
}

// StartWave begins the next enemy wave.
func (g *Game) StartWave() {
	completed := g.Wave
	g.Wave++

	// Каждая N-я волна уже идёт с врагами следующего уровня
	if g.Wave%g.Balance.Waves.WavesPerLevel == 0 {
		g.Level++
		g.EventDispatcher.Dispatch(event.Event{Type: event.LevelUp, Data: g.Level})
	}

	wave := g.WaveSystem.StartWave(completed, g.Level)
	g.EventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: wave})
}

func (g *Game) cleanupEnemies() {
	g.World.RemoveEnemies(func(e *component.Enemy) bool {
		switch {
		case e.Escaped:
			g.Lives--
			g.EventDispatcher.Dispatch(event.Event{
				Type: event.EnemyEscaped,
				Data: event.EnemyRemoved{EnemyID: e.ID, Level: e.Level, OnReturn: true},
			})
			return true
		case !e.Alive:
			reward := 0
			if !e.ReturnPath {
				reward = e.Reward
				g.Money += reward
			}
			g.EventDispatcher.Dispatch(event.Event{
				Type: event.EnemyKilled,
				Data: event.EnemyRemoved{EnemyID: e.ID, Level: e.Level, Reward: reward, OnReturn: e.ReturnPath},
			})
			return true
		}
		return false
	})
}

// --- Управление состоянием ---

// Start запускает или продолжает игру. После поражения сначала сбрасывает её.
func (g *Game) Start() {
	if g.GameOver {
		g.Reset()
	}
	g.setState(component.Playing)
}

// TogglePause переключает Playing <-> Paused; в Stopped ничего не делает.
func (g *Game) TogglePause() {
	switch g.State {
	case component.Playing:
		g.setState(component.Paused)
	case component.Paused:
		g.setState(component.Playing)
	}
}

// Stop останавливает игру и возвращает всё к началу.
func (g *Game) Stop() {
	g.Reset()
}

// Reset возвращает деньги, жизни, волны и поле к начальному состоянию.
func (g *Game) Reset() {
	g.reset()
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameReset})
}

func (g *Game) reset() {
	g.World.Clear()
	g.Money = g.Balance.Economy.StartMoney
	g.Lives = g.Balance.Economy.StartLives
	g.Level = 1
	g.Wave = 0
	g.GameOver = false
	g.SelectedTowerType = ""
	g.SelectedID = 0
	g.plantTrees()
	g.setState(component.Stopped)
}

func (g *Game) plantTrees() {
	tb := g.Balance.Trees
	for _, p := range tb.Positions {
		g.World.Trees = append(g.World.Trees, &component.Tree{
			ID:          g.World.NewEntity(),
			Pos:         component.Position{X: p.X(), Y: p.Y()},
			Level:       1,
			Income:      tb.Income,
			Interval:    tb.Interval,
			UpgradeCost: tb.UpgradeCost,
			Radius:      config.TreeRadius,
		})
	}
}

func (g *Game) setState(s component.GameState) {
	if g.State == s {
		return
	}
	from := g.State
	g.State = s
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.StateChanged,
		Data: event.StateChange{From: from, To: s},
	})
}

// --- Скорость ---

// SpeedIndex — номер текущей скорости в config.SpeedMultipliers.
func (g *Game) SpeedIndex() int {
	return g.speedIndex
}

func (g *Game) SpeedMultiplier() int {
	return config.SpeedMultipliers[g.speedIndex]
}

// CycleSpeed переключает x1 -> x2 -> x4 -> x1.
func (g *Game) CycleSpeed() {
	g.speedIndex = (g.speedIndex + 1) % len(config.SpeedMultipliers)
	logger.Log.Debug("speed changed", zap.Int("multiplier", g.SpeedMultiplier()))
}

// --- Public Accessors ---

// SelectedTower — выбранная башня или nil.
func (g *Game) SelectedTower() *component.Tower {
	if g.SelectedID == 0 {
		return nil
	}
	return g.World.Tower(g.SelectedID)
}

// SelectedTree — выбранное дерево или nil.
func (g *Game) SelectedTree() *component.Tree {
	if g.SelectedID == 0 {
		return nil
	}
	return g.World.Tree(g.SelectedID)
}

// SelectedUpgrade — уровень и цена улучшения выбранного объекта.
func (g *Game) SelectedUpgrade() (level, cost int, ok bool) {
	if t := g.SelectedTower(); t != nil {
		return t.Level, t.UpgradeCost, true
	}
	if t := g.SelectedTree(); t != nil {
		return t.Level, t.NextUpgradeCost(), true
	}
	return 0, 0, false
}
