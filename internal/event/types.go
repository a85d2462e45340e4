// internal/event/types.go
package event

import (
	"go-defense-tower/internal/component"
	"go-defense-tower/internal/types"
)

const (
	StateChanged    EventType = "StateChanged"    // Data: StateChange
	WaveStarted     EventType = "WaveStarted"     // Data: *component.Wave
	LevelUp         EventType = "LevelUp"         // Data: int, новый уровень
	EnemySpawned    EventType = "EnemySpawned"    // Data: types.EntityID
	EnemyKilled     EventType = "EnemyKilled"     // Data: EnemyRemoved
	EnemyEscaped    EventType = "EnemyEscaped"    // Data: EnemyRemoved
	ProjectileFired EventType = "ProjectileFired" // Data: Shot
	TreeHarvested   EventType = "TreeHarvested"   // Data: Harvest
	TowerPlaced     EventType = "TowerPlaced"     // Data: Purchase
	ObjectUpgraded  EventType = "ObjectUpgraded"  // Data: Purchase
	GameOver        EventType = "GameOver"        // Data: nil
	GameReset       EventType = "GameReset"       // Data: nil
)

// StateChange — смена состояния игры.
type StateChange struct {
	From, To component.GameState
}

// EnemyRemoved — враг покинул поле (убит или ушёл с деревом).
type EnemyRemoved struct {
	EnemyID  types.EntityID
	Level    int
	Reward   int // Фактически начисленная награда, 0 для несущих дерево
	OnReturn bool
}

// Shot — выстрел башни.
type Shot struct {
	TowerID      types.EntityID
	TargetID     types.EntityID
	ProjectileID types.EntityID
}

// Harvest — сбор дохода с дерева.
type Harvest struct {
	TreeID types.EntityID
	Amount int
}

// Purchase — трата денег на постройку или улучшение.
type Purchase struct {
	EntityID types.EntityID
	Cost     int
	Level    int
}
