// cmd/simulate/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go-defense-tower/internal/app"
	"go-defense-tower/internal/config"
	"go-defense-tower/internal/logger"
	"go-defense-tower/internal/scenario"
	"go-defense-tower/internal/snapshot"

	"go.uber.org/zap"
)

func main() {
	env := config.LoadEnv()

	var balancePath, scenarioPath, out, pngPath string
	var ticks, pngWidth int
	flag.StringVar(&balancePath, "balance", env.BalancePath, "path to a balance YAML file (empty: built-in)")
	flag.StringVar(&scenarioPath, "scenario", "scenarios/default.yaml", "scenario YAML file")
	flag.IntVar(&ticks, "ticks", 0, "override the scenario tick budget")
	flag.StringVar(&out, "out", "", "JSON summary file (empty: stdout)")
	flag.StringVar(&pngPath, "png", "", "save the final board as PNG")
	flag.IntVar(&pngWidth, "png-width", 0, "PNG width in pixels (0: full size)")
	flag.Parse()

	if err := logger.Init(env.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Sync()

	balance, err := config.LoadBalance(balancePath)
	if err != nil {
		logger.Log.Fatal("failed to load balance", zap.Error(err))
	}
	sc, err := scenario.Load(scenarioPath)
	if err != nil {
		logger.Log.Fatal("failed to load scenario", zap.Error(err))
	}
	if ticks > 0 {
		sc.Ticks = ticks
	}

	g := app.NewGame(balance)
	summary, err := scenario.Run(g, sc)
	if err != nil {
		logger.Log.Fatal("scenario failed", zap.Error(err))
	}
	logger.Log.Info("simulation finished",
		zap.Int("ticks", summary.Ticks),
		zap.Int("wave", summary.Wave),
		zap.Int("lives", summary.Lives),
		zap.Bool("game_over", summary.GameOver))

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		logger.Log.Fatal("failed to encode summary", zap.Error(err))
	}
	if out == "" {
		fmt.Println(string(data))
	} else if err := os.WriteFile(out, data, 0644); err != nil {
		logger.Log.Fatal("failed to write summary", zap.String("path", out), zap.Error(err))
	}

	if pngPath != "" {
		if err := snapshot.SavePNG(g, pngPath, pngWidth); err != nil {
			logger.Log.Fatal("failed to save snapshot", zap.Error(err))
		}
		logger.Log.Info("snapshot saved", zap.String("path", pngPath))
	}
}
