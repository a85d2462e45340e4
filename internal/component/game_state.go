// internal/component/game_state.go
package component

// GameState — компонент для хранения состояния игры
type GameState int

const (
	Stopped GameState = iota
	Playing
	Paused
)

func (s GameState) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	}
	return "unknown"
}
