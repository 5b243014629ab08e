// Package app содержит основную логику приложения.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/hashicorp/go-hclog"

	"hotsave/internal/config"
	"hotsave/internal/hotkey"
	"hotsave/internal/i18n"
	"hotsave/internal/mirror"
	"hotsave/internal/notify"
)

var (
	ErrConfig = errors.New("некорректная конфигурация")
	ErrTarget = errors.New("некорректный целевой файл")
)

// Options - параметры запуска.
type Options struct {
	// Path - файл, который сохраняем и восстанавливаем.
	Path string
	// ConfigFile переопределяет путь к файлу конфигурации.
	ConfigFile string
	Logger     hclog.Logger
	// Notifier по умолчанию создаётся по настройке notifications.
	Notifier *notify.Notifier
	// HotkeyOptions передаются в hotkey.New после стандартных.
	HotkeyOptions []hotkey.Option
}

// App представляет главное приложение.
type App struct {
	config   *config.Config
	mirror   *mirror.Mirror
	notifier *notify.Notifier
	hotkey   *hotkey.Listener
	logger   hclog.Logger
}

// New загружает конфигурацию и проверяет целевой файл.
// Перехват клавиш здесь ещё не устанавливается.
func New(opts Options) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	var loadOpts []config.Option
	if opts.ConfigFile != "" {
		loadOpts = append(loadOpts, config.WithConfigFile(opts.ConfigFile))
	}
	cfg, err := config.Load(loadOpts...)
	if err != nil {
		logger.Error("не удалось загрузить конфигурацию", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	logger.Debug("конфигурация загружена",
		"bindings", cfg.Bindings.String(),
		"notifications", cfg.Notifications,
		"language", i18n.LanguageName(cfg.Language))

	i18n.SetLanguage(cfg.Language)

	logger.Debug("указан файл", "path", opts.Path)
	m, err := mirror.New(opts.Path)
	if err != nil {
		logger.Error("некорректный целевой файл", "path", opts.Path, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrTarget, err)
	}
	logger.Debug("файл снимка", "target", m.Target(), "backup", m.Backup())

	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.New(cfg.Notifications)
	}

	a := &App{
		config:   cfg,
		mirror:   m,
		notifier: notifier,
		logger:   logger,
	}

	hkOpts := []hotkey.Option{
		hotkey.WithLogger(logger.Named("hotkey")),
		hotkey.WithReady(func() {
			a.notifier.Ready(cfg.Bindings.Save.String(), cfg.Bindings.Restore.String())
		}),
	}
	hkOpts = append(hkOpts, opts.HotkeyOptions...)
	a.hotkey = hotkey.New(cfg.Bindings, a.onSave, a.onRestore, hkOpts...)

	return a, nil
}

// Run перехватывает клавиши и блокируется до отмены ctx.
// Ошибка перехвата фатальна.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("клавиша сохранения текущей версии файла", "key", a.config.Bindings.Save.String())
	a.logger.Info("клавиша восстановления сохранённой версии", "key", a.config.Bindings.Restore.String())
	a.logger.Debug("язык уведомлений", "language", i18n.LanguageName(i18n.GetLanguage()))

	if err := a.hotkey.Run(ctx); err != nil {
		a.logger.Error("ошибка перехвата клавиш", "error", err)
		a.notifier.Error(i18n.T("notify_hotkey_failed"))
		return err
	}

	a.logger.Info("завершение работы")
	return nil
}

// Ошибки копирования не фатальны: логируем, показываем уведомление
// и продолжаем слушать клавиши.
func (a *App) onSave() {
	a.logger.Info("сохраняю текущую версию файла")
	if err := a.mirror.Save(); err != nil {
		a.logger.Error("не удалось сохранить файл", "error", err)
		a.notifier.Error(i18n.T("notify_save_failed") + ": " + err.Error())
		return
	}
	a.notifier.Saved(a.mirror.Target())
}

func (a *App) onRestore() {
	a.logger.Info("восстанавливаю сохранённую версию файла")
	if err := a.mirror.Restore(); err != nil {
		a.logger.Error("не удалось восстановить файл", "error", err)
		if errors.Is(err, fs.ErrNotExist) {
			a.notifier.NoBackup()
		} else {
			a.notifier.Error(i18n.T("notify_restore_fail") + ": " + err.Error())
		}
		return
	}
	a.notifier.Restored(a.mirror.Target())
}
