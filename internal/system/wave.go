// internal/system/wave.go
package system

import (
	"go-defense-tower/internal/component"
	"go-defense-tower/internal/config"
	"go-defense-tower/internal/entity"
	"go-defense-tower/internal/event"
)

// WaveSystem создаёт волны и постепенно выпускает врагов.
type WaveSystem struct {
	world           *entity.World
	balance         *config.Balance
	path            []component.Position
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(world *entity.World, balance *config.Balance, path []component.Position, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		world:           world,
		balance:         balance,
		path:            path,
		eventDispatcher: eventDispatcher,
	}
}

// WaveSize — сколько врагов в волне, если до неё прошло completed волн.
func (s *WaveSystem) WaveSize(completed int) int {
	return s.balance.Waves.InitialSize + completed*s.balance.Waves.SizeIncrement
}

// StartWave готовит волну номер completed+1 для врагов уровня level.
func (s *WaveSystem) StartWave(completed, level int) *component.Wave {
	wave := &component.Wave{
		Number:         completed + 1,
		Level:          level,
		EnemiesToSpawn: s.WaveSize(completed),
		SpawnTimer:     0,
		SpawnInterval:  s.balance.Waves.SpawnInterval,
	}
	s.world.Wave = wave
	return wave
}

// Update выпускает следующего врага, когда истёк интервал.
func (s *WaveSystem) Update() {
	wave := s.world.Wave
	if !wave.Spawning() {
		return
	}
	wave.SpawnTimer++
	if wave.SpawnTimer >= wave.SpawnInterval {
		s.spawnEnemy(wave.Level)
		wave.EnemiesToSpawn--
		wave.SpawnTimer = 0
	}
}

// NewEnemy собирает врага уровня level в начале пути.
func (s *WaveSystem) NewEnemy(level int) *component.Enemy {
	eb := s.balance.Enemy
	maxHP := eb.BaseHP + (level-1)*eb.HPPerLevel
	return &component.Enemy{
		ID:     s.world.NewEntity(),
		Pos:    s.path[0],
		Level:  level,
		MaxHP:  maxHP,
		HP:     maxHP,
		Speed:  eb.BaseSpeed + float64(level)*eb.SpeedPerLevel,
		Reward: eb.BaseReward + level*eb.RewardPerLevel,
		Alive:  true,
	}
}

func (s *WaveSystem) spawnEnemy(level int) {
	enemy := s.NewEnemy(level)
	s.world.Enemies = append(s.world.Enemies, enemy)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: enemy.ID})
}
