// internal/component/wave.go
package component

// Wave — текущая волна и прогресс её появления.
type Wave struct {
	Number         int
	Level          int // Уровень врагов этой волны
	EnemiesToSpawn int
	SpawnTimer     int
	SpawnInterval  int
}

// Spawning — остались ли враги, которых ещё предстоит выпустить.
func (w *Wave) Spawning() bool {
	return w != nil && w.EnemiesToSpawn > 0
}
