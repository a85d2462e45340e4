// cmd/tui/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	game "go-defense-tower/internal/app"
	"go-defense-tower/internal/audio"
	"go-defense-tower/internal/config"
	"go-defense-tower/internal/logger"
	"go-defense-tower/internal/tui"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

func main() {
	env := config.LoadEnv()

	balancePath := flag.String("balance", env.BalancePath, "path to a balance YAML file (empty: built-in)")
	logPath := flag.String("log", "defense-tower.log", "log file (the terminal is busy with the game)")
	mute := flag.Bool("mute", env.Mute, "disable sound")
	flag.Parse()

	if err := logger.InitFile(env.LogLevel, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	balance, err := config.LoadBalance(*balancePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load balance: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	g := game.NewGame(balance)

	sound := audio.NewSoundManager(*mute)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		logger.Log.Warn("audio disabled", zap.Error(err))
	}
	defer sound.Cleanup()
	g.EventDispatcher.SubscribeAll(sound)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := tui.New(screen, g).Run(ctx, config.TicksPerSecond); err != nil && ctx.Err() == nil {
		logger.Log.Error("terminal frontend stopped", zap.Error(err))
	}
}
