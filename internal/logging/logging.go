// Package logging создаёт логгер приложения на базе go-hclog.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// EnvLevel - переменная окружения с уровнем логирования.
const EnvLevel = "HOTSAVE_LOG_LEVEL"

// DefaultLevel используется, если уровень не задан или не распознан.
const DefaultLevel = hclog.Info

// Config хранит настройки логгера.
type Config struct {
	// Level - минимальный уровень (trace, debug, info, warn, error).
	Level string
	// Output - куда писать, по умолчанию os.Stderr.
	Output io.Writer
}

// New создаёт именованный логгер hotsave.
func New(cfg Config) hclog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       "hotsave",
		Level:      ParseLevel(cfg.Level),
		Output:     out,
		TimeFormat: "15:04:05",
	})
}

// ParseLevel разбирает имя уровня. Пустая строка и неизвестные
// значения дают DefaultLevel.
func ParseLevel(s string) hclog.Level {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultLevel
	}
	level := hclog.LevelFromString(s)
	if level == hclog.NoLevel {
		return DefaultLevel
	}
	return level
}
