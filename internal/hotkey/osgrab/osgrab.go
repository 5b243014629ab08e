// Package osgrab перехватывает клавиши на уровне ОС через golang.design/x/hotkey.
//
// На Linux библиотека при инициализации пакета открывает X11-дисплей и
// паникует, если его нет. Поэтому osgrab импортирует только cmd/hotsave, а
// остальные пакеты работают с интерфейсом hotkey.Grabber.
package osgrab

import (
	"fmt"

	xhotkey "golang.design/x/hotkey"
	"golang.design/x/hotkey/mainthread"

	"hotsave/internal/config"
	"hotsave/internal/hotkey"
)

// Grab регистрирует key во всех вариантах модификаторов-замков платформы
// и возвращает их как один hotkey.Grabber.
func Grab(key config.Key) (hotkey.Grabber, error) {
	k, ok := keyMap[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", hotkey.ErrUnsupportedKey, key)
	}

	parts := make([]hotkey.Grabber, 0, len(lockVariants))
	for _, mods := range lockVariants {
		parts = append(parts, &systemKey{
			hk:   xhotkey.New(mods, k),
			down: make(chan hotkey.Event),
			up:   make(chan hotkey.Event),
		})
	}
	return hotkey.Combine(parts...), nil
}

// RunOnMainThread запускает функцию в главном потоке (требование для macOS).
func RunOnMainThread(fn func()) {
	mainthread.Init(fn)
}

// systemKey переводит события библиотеки в hotkey.Event.
type systemKey struct {
	hk   *xhotkey.Hotkey
	down chan hotkey.Event
	up   chan hotkey.Event
	stop chan struct{}
}

func (s *systemKey) Register() error {
	if err := s.hk.Register(); err != nil {
		return err
	}
	s.stop = make(chan struct{})
	go relay(s.hk.Keydown(), s.down, s.stop)
	go relay(s.hk.Keyup(), s.up, s.stop)
	return nil
}

// Unregister на Linux блокируется до следующего отпускания клавиши.
func (s *systemKey) Unregister() error {
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
	return s.hk.Unregister()
}

func (s *systemKey) Keydown() <-chan hotkey.Event { return s.down }
func (s *systemKey) Keyup() <-chan hotkey.Event   { return s.up }

func relay(in <-chan xhotkey.Event, out chan<- hotkey.Event, stop <-chan struct{}) {
	for {
		select {
		case _, ok := <-in:
			if !ok {
				return
			}
			select {
			case out <- hotkey.Event{}:
			case <-stop:
				return
			}
		case <-stop:
			return
		}
	}
}
