// Package config загружает настройки hotsave: клавиши сохранения и
// восстановления, уведомления и язык сообщений.
//
// Источники в порядке приоритета (поздние перекрывают ранние):
//
//  1. Значения по умолчанию (F4 / F5)
//  2. Файл $HOME/.config/hotsave/hotsave.yaml, если он есть
//  3. Переменные окружения HOTSAVE_*
//
// Настройки читаются один раз при запуске и дальше не меняются.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"hotsave/internal/i18n"
)

// DefaultEnvPrefix - префикс переменных окружения.
const DefaultEnvPrefix = "HOTSAVE_"

var (
	ErrUnknownKey      = errors.New("config: неизвестная клавиша")
	ErrSameKeys        = errors.New("config: клавиши сохранения и восстановления совпадают")
	ErrUnknownLanguage = errors.New("config: неподдерживаемый язык")
)

// Bindings - пара горячих клавиш.
type Bindings struct {
	Save    Key
	Restore Key
}

// String возвращает строковое представление пары клавиш.
func (b Bindings) String() string {
	return "save=" + b.Save.String() + " restore=" + b.Restore.String()
}

// Config хранит настройки приложения.
type Config struct {
	Bindings      Bindings
	Notifications bool
	Language      i18n.Language
}

// configData структура для десериализации.
type configData struct {
	SaveFileKey    string `koanf:"save_file_key"`
	RestoreFileKey string `koanf:"restore_file_key"`
	Notifications  bool   `koanf:"notifications"`
	Language       string `koanf:"language"`
}

func defaults() map[string]any {
	return map[string]any{
		"save_file_key":    "F4",
		"restore_file_key": "F5",
		"notifications":    true,
		"language":         string(i18n.RU),
	}
}

type loader struct {
	filePath  string
	envPrefix string
}

// Option настраивает загрузку конфигурации.
type Option func(*loader)

// WithConfigFile задаёт путь к файлу конфигурации.
// Пустой путь отключает чтение файла.
func WithConfigFile(path string) Option {
	return func(l *loader) {
		l.filePath = path
	}
}

// WithEnvPrefix задаёт префикс переменных окружения.
func WithEnvPrefix(prefix string) Option {
	return func(l *loader) {
		l.envPrefix = prefix
	}
}

// DefaultPath возвращает путь к файлу конфигурации по умолчанию.
// Если домашний каталог неизвестен, возвращает пустую строку.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "hotsave", "hotsave.yaml")
}

// Load собирает конфигурацию из всех источников и проверяет её.
func Load(opts ...Option) (*Config, error) {
	l := &loader{
		filePath:  DefaultPath(),
		envPrefix: DefaultEnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}

	k := koanf.New(".")

	if err := k.Load(mapProvider(defaults()), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if l.filePath != "" {
		if _, err := os.Stat(l.filePath); err == nil {
			if err := k.Load(file.Provider(l.filePath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("load config file %s: %w", l.filePath, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("stat config file %s: %w", l.filePath, err)
		}
	}

	// HOTSAVE_SAVE_FILE_KEY -> save_file_key
	prefix := l.envPrefix
	transform := func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, prefix))
	}
	if err := k.Load(env.Provider(prefix, ".", transform), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	var data configData
	if err := k.Unmarshal("", &data); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return data.build()
}

// build превращает сырые строки в проверенную конфигурацию.
func (d configData) build() (*Config, error) {
	save, err := ParseKey(d.SaveFileKey)
	if err != nil {
		return nil, fmt.Errorf("save_file_key: %w", err)
	}
	restore, err := ParseKey(d.RestoreFileKey)
	if err != nil {
		return nil, fmt.Errorf("restore_file_key: %w", err)
	}
	if save == restore {
		return nil, fmt.Errorf("%w: %s", ErrSameKeys, save)
	}

	lang := i18n.Language(strings.ToLower(strings.TrimSpace(d.Language)))
	if !supported(lang) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, d.Language)
	}

	return &Config{
		Bindings:      Bindings{Save: save, Restore: restore},
		Notifications: d.Notifications,
		Language:      lang,
	}, nil
}

func supported(lang i18n.Language) bool {
	for _, l := range i18n.AvailableLanguages() {
		if l == lang {
			return true
		}
	}
	return false
}
