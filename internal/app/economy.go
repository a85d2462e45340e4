// internal/app/economy.go
package app

import (
	"errors"
	"fmt"
	"go-defense-tower/internal/component"
	"go-defense-tower/internal/config"
	"go-defense-tower/internal/event"
	"go-defense-tower/internal/utils"
)

var (
	ErrInsufficientFunds = errors.New("not enough money")
	ErrBlocked           = errors.New("position is blocked")
	ErrOutOfBounds       = errors.New("position is outside the field")
	ErrNothingSelected   = errors.New("nothing selected")
	ErrUnknownTowerType  = errors.New("unknown tower type")
)

// CanPlace проверяет, можно ли поставить башню в точку: поле, не дорога, не занято.
func (g *Game) CanPlace(pos component.Position) error {
	if pos.Y <= config.HUDHeight || pos.Y > config.ScreenHeight || pos.X < 0 || pos.X > config.ScreenWidth {
		return ErrOutOfBounds
	}
	for i := 0; i+1 < len(g.Path); i++ {
		if utils.DistanceToSegment(pos, g.Path[i], g.Path[i+1]) < config.RoadWidth/2+config.TowerRadius {
			return fmt.Errorf("%w: on the road", ErrBlocked)
		}
	}
	for _, t := range g.World.Towers {
		if pos.DistanceTo(t.Pos) < 2*config.TowerRadius {
			return fmt.Errorf("%w: overlaps tower %d", ErrBlocked, t.ID)
		}
	}
	for _, t := range g.World.Trees {
		if pos.DistanceTo(t.Pos) < t.Radius+config.TowerRadius {
			return fmt.Errorf("%w: overlaps tree %d", ErrBlocked, t.ID)
		}
	}
	return nil
}

// PlaceTower покупает и ставит башню типа towerType в (x, y).
func (g *Game) PlaceTower(towerType component.TowerType, x, y float64) (*component.Tower, error) {
	spec, ok := g.Balance.Tower(string(towerType))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTowerType, towerType)
	}
	pos := component.Position{X: x, Y: y}
	if err := g.CanPlace(pos); err != nil {
		return nil, err
	}
	if g.Money < spec.Cost {
		return nil, fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientFunds, spec.ID, spec.Cost, g.Money)
	}

	tower := g.newTower(spec, pos)
	g.Money -= spec.Cost
	g.World.Towers = append(g.World.Towers, tower)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.Purchase{EntityID: tower.ID, Cost: spec.Cost, Level: tower.Level},
	})
	return tower, nil
}

func (g *Game) newTower(spec config.TowerSpec, pos component.Position) *component.Tower {
	return &component.Tower{
		ID:              g.World.NewEntity(),
		Pos:             pos,
		Type:            component.TowerType(spec.ID),
		Level:           1,
		Damage:          spec.Damage,
		FireRate:        spec.FireRate,
		Range:           spec.Range,
		ProjectileSpeed: spec.ProjectileSpeed,
		UpgradeCost:     g.Balance.TowerUpgrade.BaseCost,
		Color:           spec.Color.RGBA(),
	}
}

// UpgradeSelected улучшает выбранную башню или дерево.
func (g *Game) UpgradeSelected() error {
	if t := g.SelectedTower(); t != nil {
		return g.UpgradeTower(t)
	}
	if t := g.SelectedTree(); t != nil {
		return g.UpgradeTree(t)
	}
	return ErrNothingSelected
}

// UpgradeTower платит текущую цену улучшения и усиливает башню.
// При нехватке денег башня не меняется.
func (g *Game) UpgradeTower(t *component.Tower) error {
	cost := t.UpgradeCost
	if g.Money < cost {
		return fmt.Errorf("%w: upgrade costs %d, have %d", ErrInsufficientFunds, cost, g.Money)
	}
	ub := g.Balance.TowerUpgrade
	g.Money -= cost
	t.Level++
	t.Damage = int(float64(t.Damage) * ub.DamageFactor)
	t.Range = float64(int(t.Range * ub.RangeFactor))
	t.UpgradeCost = int(float64(t.UpgradeCost) * ub.CostFactor)

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.ObjectUpgraded,
		Data: event.Purchase{EntityID: t.ID, Cost: cost, Level: t.Level},
	})
	return nil
}

// UpgradeTree платит UpgradeCost*(Level+1) и поднимает доход дерева.
func (g *Game) UpgradeTree(t *component.Tree) error {
	cost := t.NextUpgradeCost()
	if g.Money < cost {
		return fmt.Errorf("%w: upgrade costs %d, have %d", ErrInsufficientFunds, cost, g.Money)
	}
	tb := g.Balance.Trees
	g.Money -= cost
	t.Level++
	t.Income = tb.Income + (t.Level-1)*tb.IncomePerLevel

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.ObjectUpgraded,
		Data: event.Purchase{EntityID: t.ID, Cost: cost, Level: t.Level},
	})
	return nil
}
