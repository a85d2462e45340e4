// internal/system/economy.go
package system

import (
	"go-defense-tower/internal/entity"
	"go-defense-tower/internal/event"
)

// EconomySystem тикает таймеры деревьев и собирает с них доход.
type EconomySystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewEconomySystem(world *entity.World, eventDispatcher *event.Dispatcher) *EconomySystem {
	return &EconomySystem{world: world, eventDispatcher: eventDispatcher}
}

// Update продвигает таймеры на один тик и возвращает собранные за тик деньги.
func (s *EconomySystem) Update() int {
	total := 0
	for _, tree := range s.world.Trees {
		tree.Timer++
		if tree.Timer < tree.Interval {
			continue
		}
		tree.Timer = 0
		amount := tree.Income * tree.Level
		total += amount
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.TreeHarvested,
			Data: event.Harvest{TreeID: tree.ID, Amount: amount},
		})
	}
	return total
}
