// Package command собирает CLI hotsave: разбор флагов, запуск приложения и
// коды завершения.
package command

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"hotsave/internal/app"
	"hotsave/internal/hotkey"
	"hotsave/internal/logging"
)

// Коды завершения.
const (
	ExitOK     = 0
	ExitTarget = 1
	ExitConfig = 2
	ExitHotkey = 3
)

// App создаёт CLI-приложение. hkOpts передаются в hotkey.Listener, через
// них задаётся перехват клавиш.
func App(version string, stdout, stderr io.Writer, hkOpts []hotkey.Option) *cli.App {
	return &cli.App{
		Name:      "hotsave",
		Usage:     "save and restore a file with global hotkeys",
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.PathFlag{
				Name:     "path",
				Aliases:  []string{"p"},
				Usage:    "The path to the file to save/restore using the global hotkeys",
				Required: true,
			},
			&cli.PathFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file (default: $HOME/.config/hotsave/hotsave.yaml)",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level: trace, debug, info, warn, error",
				EnvVars: []string{logging.EnvLevel},
				Value:   "info",
			},
		},
		// Коды завершения обрабатываются в run, а не через os.Exit внутри cli.
		ExitErrHandler: func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			logger := logging.New(logging.Config{
				Level:  c.String("log-level"),
				Output: stderr,
			})
			logger.Debug("hotsave запускается", "version", version)

			a, err := app.New(app.Options{
				Path:          c.Path("path"),
				ConfigFile:    c.Path("config"),
				Logger:        logger,
				HotkeyOptions: hkOpts,
			})
			if err != nil {
				if errors.Is(err, app.ErrConfig) {
					return cli.Exit(err, ExitConfig)
				}
				return cli.Exit(err, ExitTarget)
			}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := a.Run(ctx); err != nil {
				return cli.Exit(err, ExitHotkey)
			}
			return nil
		},
	}
}

// Run разбирает аргументы, запускает приложение и возвращает код завершения.
func Run(version string, args []string, stdout, stderr io.Writer, hkOpts ...hotkey.Option) int {
	err := App(version, stdout, stderr, hkOpts).Run(args)
	if err == nil {
		return ExitOK
	}

	fmt.Fprintf(stderr, "error: %v\n", err)

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return ExitTarget
}
