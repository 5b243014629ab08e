package hotkey

import (
	"errors"
	"sync"
)

// Combine объединяет несколько перехватов одной клавиши в один Grabber.
// Нужен, когда ОС различает нажатия по состоянию NumLock/CapsLock и одну
// клавишу приходится регистрировать в нескольких вариантах.
func Combine(parts ...Grabber) Grabber {
	if len(parts) == 1 {
		return parts[0]
	}
	return &multiGrabber{
		parts: parts,
		down:  make(chan Event),
		up:    make(chan Event),
	}
}

type multiGrabber struct {
	parts []Grabber
	down  chan Event
	up    chan Event
	stop  chan struct{}
}

func (m *multiGrabber) Register() error {
	for i, g := range m.parts {
		if err := g.Register(); err != nil {
			// Unregister может ждать отпускания клавиши, не блокируемся
			for _, done := range m.parts[:i] {
				go done.Unregister()
			}
			return err
		}
	}

	m.stop = make(chan struct{})
	for _, g := range m.parts {
		go forward(g.Keydown(), m.down, m.stop)
		go forward(g.Keyup(), m.up, m.stop)
	}
	return nil
}

func (m *multiGrabber) Unregister() error {
	if m.stop != nil {
		close(m.stop)
		m.stop = nil
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, g := range m.parts {
		wg.Add(1)
		go func(g Grabber) {
			defer wg.Done()
			if err := g.Unregister(); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}(g)
	}
	wg.Wait()
	return errors.Join(errs...)
}

func (m *multiGrabber) Keydown() <-chan Event { return m.down }
func (m *multiGrabber) Keyup() <-chan Event   { return m.up }

func forward(in <-chan Event, out chan<- Event, stop <-chan struct{}) {
	for {
		select {
		case _, ok := <-in:
			if !ok {
				return
			}
			select {
			case out <- Event{}:
			case <-stop:
				return
			}
		case <-stop:
			return
		}
	}
}
