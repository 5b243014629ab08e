// Package hotkey перехватывает глобальные горячие клавиши сохранения и
// восстановления.
//
// Перехватываются только две привязанные клавиши: система не передаёт их
// другим приложениям, а все остальные нажатия проходят мимо без изменений.
// Сам перехват на уровне ОС живёт в подпакете osgrab, этот пакет с
// системной библиотекой не связан.
package hotkey

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	"hotsave/internal/config"
)

const (
	// DefaultDebounce - защита от автоповтора зажатой клавиши.
	DefaultDebounce = 300 * time.Millisecond
	// DefaultReleaseTimeout ограничивает ожидание Unregister при остановке.
	DefaultReleaseTimeout = 500 * time.Millisecond
)

var (
	ErrGrab           = errors.New("hotkey: не удалось перехватить клавишу")
	ErrUnsupportedKey = errors.New("hotkey: клавиша не поддерживается")
	ErrStreamClosed   = errors.New("hotkey: поток событий закрыт")
	ErrNoGrabber      = errors.New("hotkey: источник перехвата не задан")
)

// Event - нажатие или отпускание перехваченной клавиши.
type Event struct{}

// Grabber - перехват одной клавиши на уровне ОС.
type Grabber interface {
	Register() error
	Unregister() error
	Keydown() <-chan Event
	Keyup() <-chan Event
}

// GrabFunc создаёт Grabber для клавиши.
type GrabFunc func(key config.Key) (Grabber, error)

// Listener слушает две клавиши и вызывает обработчики последовательно,
// в той же горутине, что и Run.
type Listener struct {
	bindings       config.Bindings
	onSave         func()
	onRestore      func()
	grab           GrabFunc
	debounce       time.Duration
	releaseTimeout time.Duration
	logger         hclog.Logger
	onReady        func()

	lastKeydown map[config.Key]time.Time
}

// Option настраивает Listener.
type Option func(*Listener)

// WithGrabber задаёт перехват клавиш. Без него Run возвращает ErrNoGrabber.
func WithGrabber(fn GrabFunc) Option {
	return func(l *Listener) {
		l.grab = fn
	}
}

// WithDebounce задаёт окно подавления автоповтора. 0 отключает подавление.
func WithDebounce(d time.Duration) Option {
	return func(l *Listener) {
		l.debounce = d
	}
}

// WithReleaseTimeout задаёт, сколько ждать освобождения клавиши при остановке.
func WithReleaseTimeout(d time.Duration) Option {
	return func(l *Listener) {
		l.releaseTimeout = d
	}
}

// WithLogger задаёт логгер.
func WithLogger(logger hclog.Logger) Option {
	return func(l *Listener) {
		l.logger = logger
	}
}

// WithReady задаёт функцию, вызываемую после перехвата обеих клавиш.
func WithReady(fn func()) Option {
	return func(l *Listener) {
		l.onReady = fn
	}
}

// New создаёт Listener. onSave и onRestore вызываются синхронно.
func New(bindings config.Bindings, onSave, onRestore func(), opts ...Option) *Listener {
	l := &Listener{
		bindings:       bindings,
		onSave:         onSave,
		onRestore:      onRestore,
		debounce:       DefaultDebounce,
		releaseTimeout: DefaultReleaseTimeout,
		logger:         hclog.NewNullLogger(),
		lastKeydown:    make(map[config.Key]time.Time),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run перехватывает обе клавиши и обрабатывает нажатия до отмены ctx.
// Ошибка перехвата возвращается сразу, уже занятые клавиши освобождаются.
func (l *Listener) Run(ctx context.Context) error {
	if l.grab == nil {
		return ErrNoGrabber
	}

	save, err := l.register(l.bindings.Save)
	if err != nil {
		return err
	}
	defer l.release(l.bindings.Save, save)

	restore, err := l.register(l.bindings.Restore)
	if err != nil {
		return err
	}
	defer l.release(l.bindings.Restore, restore)

	l.logger.Info("горячие клавиши перехвачены", "save", l.bindings.Save.String(), "restore", l.bindings.Restore.String())
	if l.onReady != nil {
		l.onReady()
	}

	saveDown, restoreDown := save.Keydown(), restore.Keydown()
	saveUp, restoreUp := save.Keyup(), restore.Keyup()

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-saveDown:
			if !ok {
				return fmt.Errorf("%w: %s", ErrStreamClosed, l.bindings.Save)
			}
			l.keydown(l.bindings.Save)
		case _, ok := <-restoreDown:
			if !ok {
				return fmt.Errorf("%w: %s", ErrStreamClosed, l.bindings.Restore)
			}
			l.keydown(l.bindings.Restore)
		case _, ok := <-saveUp:
			// keyup не нужен, но канал надо вычитывать
			if !ok {
				saveUp = nil
			}
		case _, ok := <-restoreUp:
			if !ok {
				restoreUp = nil
			}
		}
	}
}

// Dispatch обрабатывает нажатие key. Возвращает true, если нажатие
// поглощено (это одна из двух клавиш), и false, если его надо пропустить.
// Клавиша сохранения проверяется первой.
func (l *Listener) Dispatch(key config.Key) bool {
	switch key {
	case l.bindings.Save:
		if l.repeated(key) {
			return true
		}
		l.logger.Debug("нажата клавиша сохранения", "key", key.String())
		if l.onSave != nil {
			l.onSave()
		}
		return true
	case l.bindings.Restore:
		if l.repeated(key) {
			return true
		}
		l.logger.Debug("нажата клавиша восстановления", "key", key.String())
		if l.onRestore != nil {
			l.onRestore()
		}
		return true
	default:
		l.logger.Debug("клавиша проигнорирована", "key", key.String())
		return false
	}
}

// keydown обрабатывает событие перехвата. ОС уже поглотила нажатие,
// поэтому клавиша вне привязок здесь означает ошибку источника.
func (l *Listener) keydown(key config.Key) {
	if !l.Dispatch(key) {
		l.logger.Warn("перехвачена клавиша вне привязок", "key", key.String())
	}
}

func (l *Listener) repeated(key config.Key) bool {
	if l.debounce <= 0 {
		return false
	}
	now := time.Now()
	if last, ok := l.lastKeydown[key]; ok && now.Sub(last) < l.debounce {
		l.logger.Trace("автоповтор подавлен", "key", key.String())
		return true
	}
	l.lastKeydown[key] = now
	return false
}

func (l *Listener) register(key config.Key) (Grabber, error) {
	g, err := l.grab(key)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrGrab, key, err)
	}
	if err := g.Register(); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrGrab, key, err)
	}
	l.logger.Debug("клавиша зарегистрирована", "key", key.String())
	return g, nil
}

// release освобождает клавишу. На Linux Unregister ждёт следующего
// отпускания клавиши, поэтому ожидание ограничено releaseTimeout.
func (l *Listener) release(key config.Key, g Grabber) {
	done := make(chan error, 1)
	go func() {
		done <- g.Unregister()
	}()

	select {
	case err := <-done:
		if err != nil {
			l.logger.Warn("не удалось освободить клавишу", "key", key.String(), "error", err)
		}
	case <-time.After(l.releaseTimeout):
		l.logger.Warn("таймаут освобождения клавиши", "key", key.String(), "timeout", l.releaseTimeout)
	}
}
