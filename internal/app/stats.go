// internal/app/stats.go
package app

import "go-defense-tower/internal/event"

// Stats — сводка партии, собирается из событий.
type Stats struct {
	Kills        int `json:"kills"`
	CarrierKills int `json:"carrier_kills"` // Убиты на обратном пути, без награды
	Escapes      int `json:"escapes"`
	Spawned      int `json:"spawned"`
	ShotsFired   int `json:"shots_fired"`
	WavesStarted int `json:"waves_started"`
	Bounty       int `json:"bounty"`      // Деньги за убийства
	TreeIncome   int `json:"tree_income"` // Деньги с деревьев
	Spent        int `json:"spent"`
}

// OnEvent реализует интерфейс event.Listener.
func (s *Stats) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		s.Kills++
		if r, ok := e.Data.(event.EnemyRemoved); ok {
			s.Bounty += r.Reward
			if r.OnReturn {
				s.CarrierKills++
			}
		}
	case event.EnemyEscaped:
		s.Escapes++
	case event.EnemySpawned:
		s.Spawned++
	case event.ProjectileFired:
		s.ShotsFired++
	case event.WaveStarted:
		s.WavesStarted++
	case event.TreeHarvested:
		if h, ok := e.Data.(event.Harvest); ok {
			s.TreeIncome += h.Amount
		}
	case event.TowerPlaced, event.ObjectUpgraded:
		if p, ok := e.Data.(event.Purchase); ok {
			s.Spent += p.Cost
		}
	case event.GameReset:
		*s = Stats{}
	}
}
