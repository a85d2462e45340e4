// internal/config/balance.go
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed balance.yaml
var defaultBalance []byte

// Point — точка на поле в пикселях. В YAML записывается как [x, y].
type Point [2]float64

func (p Point) X() float64 { return p[0] }
func (p Point) Y() float64 { return p[1] }

// RGB — цвет в YAML, [r, g, b].
type RGB [3]uint8

// RGBA переводит цвет в непрозрачный color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{c[0], c[1], c[2], 255}
}

type EconomyBalance struct {
	StartMoney int `yaml:"start_money"`
	StartLives int `yaml:"start_lives"`
}

type WaveBalance struct {
	InitialSize   int `yaml:"initial_size"`
	SizeIncrement int `yaml:"size_increment"`
	WavesPerLevel int `yaml:"waves_per_level"`
	SpawnInterval int `yaml:"spawn_interval"`
}

type EnemyBalance struct {
	BaseHP         int     `yaml:"base_hp"`
	HPPerLevel     int     `yaml:"hp_per_level"`
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedPerLevel  float64 `yaml:"speed_per_level"`
	BaseReward     int     `yaml:"base_reward"`
	RewardPerLevel int     `yaml:"reward_per_level"`
}

type ProjectileBalance struct {
	HitRadius   float64 `yaml:"hit_radius"`
	MaxPerTower int     `yaml:"max_per_tower"`
}

// TowerSpec описывает один тип башни.
type TowerSpec struct {
	ID              string  `yaml:"id"`
	Name            string  `yaml:"name"`
	Cost            int     `yaml:"cost"`
	Damage          int     `yaml:"damage"`
	FireRate        int     `yaml:"fire_rate"` // тиков между выстрелами
	Range           float64 `yaml:"range"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	Color           RGB     `yaml:"color"`
}

type TowerUpgradeBalance struct {
	BaseCost     int     `yaml:"base_cost"`
	DamageFactor float64 `yaml:"damage_factor"`
	RangeFactor  float64 `yaml:"range_factor"`
	CostFactor   float64 `yaml:"cost_factor"`
}

type TreeBalance struct {
	Income         int     `yaml:"income"`
	IncomePerLevel int     `yaml:"income_per_level"`
	Interval       int     `yaml:"interval"`
	UpgradeCost    int     `yaml:"upgrade_cost"`
	Positions      []Point `yaml:"positions"`
}

// Balance — все настраиваемые числа игры.
type Balance struct {
	Economy      EconomyBalance      `yaml:"economy"`
	Waves        WaveBalance         `yaml:"waves"`
	Enemy        EnemyBalance        `yaml:"enemy"`
	Projectile   ProjectileBalance   `yaml:"projectile"`
	Towers       []TowerSpec         `yaml:"towers"`
	TowerUpgrade TowerUpgradeBalance `yaml:"tower_upgrade"`
	Trees        TreeBalance         `yaml:"trees"`
	Path         []Point             `yaml:"path"`
}

// DefaultBalance возвращает встроенный баланс.
func DefaultBalance() *Balance {
	b, err := ParseBalance(defaultBalance)
	if err != nil {
		// Встроенный файл проверяется тестами, сюда попасть нельзя.
		panic(err)
	}
	return b
}

// LoadBalance читает баланс из файла. Пустой путь — встроенный баланс.
func LoadBalance(path string) (*Balance, error) {
	if path == "" {
		return DefaultBalance(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance file: %w", err)
	}
	b, err := ParseBalance(data)
	if err != nil {
		return nil, fmt.Errorf("balance %s: %w", path, err)
	}
	return b, nil
}

// ParseBalance разбирает YAML поверх встроенных значений и проверяет результат.
// Незаданные в data поля остаются встроенными; неизвестные ключи — ошибка.
func ParseBalance(data []byte) (*Balance, error) {
	var b Balance
	if err := yaml.Unmarshal(defaultBalance, &b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal default balance: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal balance: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Validate проверяет, что с балансом вообще можно играть.
func (b *Balance) Validate() error {
	var errs []error
	if b.Economy.StartMoney < 0 {
		errs = append(errs, errors.New("economy.start_money must be >= 0"))
	}
	if b.Economy.StartLives <= 0 {
		errs = append(errs, errors.New("economy.start_lives must be > 0"))
	}
	if b.Waves.InitialSize <= 0 {
		errs = append(errs, errors.New("waves.initial_size must be > 0"))
	}
	if b.Waves.WavesPerLevel <= 0 {
		errs = append(errs, errors.New("waves.waves_per_level must be > 0"))
	}
	if b.Waves.SpawnInterval <= 0 {
		errs = append(errs, errors.New("waves.spawn_interval must be > 0"))
	}
	if b.Enemy.BaseHP <= 0 || b.Enemy.BaseSpeed <= 0 {
		errs = append(errs, errors.New("enemy.base_hp and enemy.base_speed must be > 0"))
	}
	if b.Projectile.HitRadius <= 0 || b.Projectile.MaxPerTower <= 0 {
		errs = append(errs, errors.New("projectile.hit_radius and projectile.max_per_tower must be > 0"))
	}
	if len(b.Towers) == 0 {
		errs = append(errs, errors.New("at least one tower type is required"))
	}
	seen := make(map[string]bool, len(b.Towers))
	for _, t := range b.Towers {
		if t.ID == "" {
			errs = append(errs, errors.New("tower id must not be empty"))
			continue
		}
		if seen[t.ID] {
			errs = append(errs, fmt.Errorf("duplicate tower id %q", t.ID))
		}
		seen[t.ID] = true
		if t.Cost < 0 || t.Damage <= 0 || t.FireRate <= 0 || t.Range <= 0 || t.ProjectileSpeed <= 0 {
			errs = append(errs, fmt.Errorf("tower %q: cost must be >= 0, other stats > 0", t.ID))
		}
	}
	if b.Trees.Interval <= 0 {
		errs = append(errs, errors.New("trees.interval must be > 0"))
	}
	if len(b.Path) < 2 {
		errs = append(errs, errors.New("path needs at least two points"))
	}
	return errors.Join(errs...)
}

// Tower ищет описание башни по ID.
func (b *Balance) Tower(id string) (TowerSpec, bool) {
	for _, t := range b.Towers {
		if t.ID == id {
			return t, true
		}
	}
	return TowerSpec{}, false
}
