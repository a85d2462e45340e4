// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"os"

	"go-defense-tower/internal/audio"
	"go-defense-tower/internal/config"
	"go-defense-tower/internal/logger"
	"go-defense-tower/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// options — флаги запуска; значения по умолчанию берутся из окружения.
type options struct {
	balancePath string
	skipMenu    bool
	mute        bool
}

func parseOptions(env config.Env, args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("game", flag.ContinueOnError)
	fs.StringVar(&opts.balancePath, "balance", env.BalancePath, "path to a balance YAML file (empty: built-in)")
	fs.BoolVar(&opts.skipMenu, "skip-menu", false, "start straight from the game screen")
	fs.BoolVar(&opts.mute, "mute", env.Mute, "disable sound")
	err := fs.Parse(args)
	return opts, err
}

func main() {
	env := config.LoadEnv()

	opts, err := parseOptions(env, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	if err := logger.Init(env.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Sync()

	balance, err := config.LoadBalance(opts.balancePath)
	if err != nil {
		logger.Log.Fatal("failed to load balance", zap.Error(err))
	}

	sound := audio.NewSoundManager(opts.mute)
	if err := sound.Initialize(); err != nil {
		// Без звуковой карты играем молча
		logger.Log.Warn("audio disabled", zap.Error(err))
	}
	defer sound.Cleanup()

	sm := state.NewStateMachine() // Создаём машину состояний
	if opts.skipMenu {
		sm.SetState(state.NewGameState(sm, balance, sound)) // Устанавливаем состояние игры
	} else {
		sm.SetState(state.NewMenuState(sm, balance, sound)) // Устанавливаем состояние меню
	}
	app := &AppGame{stateMachine: sm}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Defense Tower")
	ebiten.SetTPS(config.TicksPerSecond)
	if err := ebiten.RunGame(app); err != nil {
		logger.Log.Fatal("game stopped", zap.Error(err))
	}
}
