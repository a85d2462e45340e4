// internal/app/event_logger.go
package app

import (
	"go-defense-tower/internal/component"
	"go-defense-tower/internal/event"
	"go-defense-tower/internal/logger"

	"go.uber.org/zap"
)

// eventLogger пишет важные события в лог. Частые (выстрелы, сборы) — только на debug.
type eventLogger struct{}

func (eventLogger) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		if w, ok := e.Data.(*component.Wave); ok {
			logger.Log.Info("wave started",
				zap.Int("wave", w.Number), zap.Int("level", w.Level), zap.Int("enemies", w.EnemiesToSpawn))
		}
	case event.LevelUp:
		logger.Log.Info("enemy level up", zap.Any("level", e.Data))
	case event.StateChanged:
		if c, ok := e.Data.(event.StateChange); ok {
			logger.Log.Info("state changed", zap.Stringer("from", c.From), zap.Stringer("to", c.To))
		}
	case event.GameOver:
		logger.Log.Info("game over")
	case event.EnemyEscaped:
		logger.Log.Debug("enemy escaped", zap.Any("enemy", e.Data))
	default:
		logger.Log.Debug("event", zap.String("type", string(e.Type)), zap.Any("data", e.Data))
	}
}
