// internal/config/env.go
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvBalance  = "DEFENSE_TOWER_BALANCE"
	EnvLogLevel = "DEFENSE_TOWER_LOG_LEVEL"
	EnvMute     = "DEFENSE_TOWER_MUTE"
)

// Env — параметры запуска, общие для всех бинарников.
type Env struct {
	BalancePath string
	LogLevel    string
	Mute        bool
}

// LoadEnv читает переменные окружения, предварительно подмешав файлы .env (если есть).
// Уже выставленные переменные процесса не перезаписываются.
func LoadEnv(files ...string) Env {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		// Отсутствующий .env — нормальная ситуация
		_ = godotenv.Load(f)
	}

	env := Env{
		BalancePath: os.Getenv(EnvBalance),
		LogLevel:    os.Getenv(EnvLogLevel),
	}
	if env.LogLevel == "" {
		env.LogLevel = "info"
	}
	if v, err := strconv.ParseBool(os.Getenv(EnvMute)); err == nil {
		env.Mute = v
	}
	return env
}
