// internal/scenario/scenario.go
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"go-defense-tower/internal/app"
	"go-defense-tower/internal/component"
	"go-defense-tower/internal/config"
	"go-defense-tower/internal/logger"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// TowerOrder — башня, которую надо поставить на тике AtTick (0 — до старта).
type TowerOrder struct {
	Type   string  `yaml:"type"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	AtTick int     `yaml:"at_tick"`
}

// UpgradeOrder — улучшение объекта под точкой (X, Y) на тике AtTick.
type UpgradeOrder struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	AtTick int     `yaml:"at_tick"`
}

// Scenario — сценарий прогона без окна.
type Scenario struct {
	Ticks          int            `yaml:"ticks"`
	StopOnGameOver bool           `yaml:"stop_on_game_over"`
	Towers         []TowerOrder   `yaml:"towers"`
	Upgrades       []UpgradeOrder `yaml:"upgrades"`
}

type TowerSummary struct {
	Type   string  `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Level  int     `json:"level"`
	Damage int     `json:"damage"`
	Range  float64 `json:"range"`
}

// Summary — итог прогона, сериализуется в JSON.
type Summary struct {
	Ticks    int            `json:"ticks"`
	Money    int            `json:"money"`
	Lives    int            `json:"lives"`
	Wave     int            `json:"wave"`
	Level    int            `json:"level"`
	GameOver bool           `json:"game_over"`
	Stats    app.Stats      `json:"stats"`
	Towers   []TowerSummary `json:"towers"`
	Failed   []string       `json:"failed,omitempty"` // Не состоявшиеся покупки
}

// Load читает сценарий из YAML-файла.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

// Parse разбирает и проверяет сценарий. Неизвестные ключи — ошибка.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scenario) Validate() error {
	var errs []error
	if sc.Ticks <= 0 {
		errs = append(errs, errors.New("ticks must be > 0"))
	}
	for i, t := range sc.Towers {
		if t.Type == "" {
			errs = append(errs, fmt.Errorf("towers[%d]: type is required", i))
		}
		if t.AtTick < 0 || t.AtTick >= sc.Ticks && sc.Ticks > 0 {
			errs = append(errs, fmt.Errorf("towers[%d]: at_tick out of range", i))
		}
	}
	for i, u := range sc.Upgrades {
		if u.AtTick < 0 || u.AtTick >= sc.Ticks && sc.Ticks > 0 {
			errs = append(errs, fmt.Errorf("upgrades[%d]: at_tick out of range", i))
		}
		// Выше поля лежат кнопки START/PAUSE/STOP
		if u.Y <= config.HUDHeight || u.Y > config.ScreenHeight || u.X < 0 || u.X > config.ScreenWidth {
			errs = append(errs, fmt.Errorf("upgrades[%d]: (%.0f, %.0f) is outside the field", i, u.X, u.Y))
		}
	}
	return errors.Join(errs...)
}

type order struct {
	atTick  int
	tower   *TowerOrder
	upgrade *UpgradeOrder
}

// Run прогоняет сценарий на игре g. Неудачная покупка (нет денег, занято) не
// прерывает прогон, а попадает в Summary.Failed; неизвестный тип башни — ошибка.
func Run(g *app.Game, sc *Scenario) (Summary, error) {
	if err := sc.Validate(); err != nil {
		return Summary{}, err
	}
	orders := make([]order, 0, len(sc.Towers)+len(sc.Upgrades))
	for i := range sc.Towers {
		if _, ok := g.Balance.Tower(sc.Towers[i].Type); !ok {
			return Summary{}, fmt.Errorf("towers[%d]: %w: %q", i, app.ErrUnknownTowerType, sc.Towers[i].Type)
		}
		orders = append(orders, order{atTick: sc.Towers[i].AtTick, tower: &sc.Towers[i]})
	}
	for i := range sc.Upgrades {
		orders = append(orders, order{atTick: sc.Upgrades[i].AtTick, upgrade: &sc.Upgrades[i]})
	}
	// Башни раньше улучшений на том же тике
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].atTick < orders[j].atTick
	})

	var failed []string
	next := 0
	g.Start()
	ticks := 0
	for ticks < sc.Ticks {
		for next < len(orders) && orders[next].atTick <= ticks {
			if err := apply(g, orders[next]); err != nil {
				logger.Log.Debug("scenario order failed", zap.Int("tick", ticks), zap.Error(err))
				failed = append(failed, fmt.Sprintf("tick %d: %v", ticks, err))
			}
			next++
		}
		g.Update()
		ticks++
		if g.GameOver && sc.StopOnGameOver {
			break
		}
	}

	s := Summarize(g)
	s.Ticks = ticks
	s.Failed = failed
	return s, nil
}

func apply(g *app.Game, o order) error {
	if t := o.tower; t != nil {
		_, err := g.PlaceTower(component.TowerType(t.Type), t.X, t.Y)
		return err
	}
	u := o.upgrade
	g.SelectAt(u.X, u.Y)
	if err := g.UpgradeSelected(); err != nil {
		return fmt.Errorf("upgrade at (%.0f, %.0f): %w", u.X, u.Y, err)
	}
	return nil
}

// Summarize снимает сводку с текущего состояния игры.
func Summarize(g *app.Game) Summary {
	s := Summary{
		Ticks:    int(g.World.Tick),
		Money:    g.Money,
		Lives:    g.Lives,
		Wave:     g.Wave,
		Level:    g.Level,
		GameOver: g.GameOver,
		Stats:    *g.Stats,
		Towers:   make([]TowerSummary, 0, len(g.World.Towers)),
	}
	for _, t := range g.World.Towers {
		s.Towers = append(s.Towers, TowerSummary{
			Type:   string(t.Type),
			X:      t.Pos.X,
			Y:      t.Pos.Y,
			Level:  t.Level,
			Damage: t.Damage,
			Range:  t.Range,
		})
	}
	return s
}
