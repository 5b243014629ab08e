// hotsave - сохраняет и восстанавливает файл по глобальным горячим клавишам.
//
// F4 копирует файл в соседний {имя}_tmp_save.{расширение}, F5 возвращает
// сохранённую версию обратно. Клавиши настраиваются в
// ~/.config/hotsave/hotsave.yaml.
package main

import (
	"os"

	"hotsave/internal/cli/command"
	"hotsave/internal/hotkey"
	"hotsave/internal/hotkey/osgrab"
)

// Version устанавливается при сборке через -ldflags.
var Version = "dev"

func main() {
	code := command.ExitOK
	// Запускаем в главном потоке (требование для macOS)
	osgrab.RunOnMainThread(func() {
		code = command.Run(Version, os.Args, os.Stdout, os.Stderr, hotkey.WithGrabber(osgrab.Grab))
	})
	os.Exit(code)
}
