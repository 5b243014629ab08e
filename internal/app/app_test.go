package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"

	"hotsave/internal/config"
	"hotsave/internal/hotkey"
	"hotsave/internal/mirror"
	"hotsave/internal/notify"
)

type fakeGrabber struct {
	down chan hotkey.Event
	up   chan hotkey.Event
	err  error
}

func (g *fakeGrabber) Register() error              { return g.err }
func (g *fakeGrabber) Unregister() error            { return nil }
func (g *fakeGrabber) Keydown() <-chan hotkey.Event { return g.down }
func (g *fakeGrabber) Keyup() <-chan hotkey.Event   { return g.up }

type keyboard struct {
	grabbers map[config.Key]*fakeGrabber
	grabbed  int
}

func newKeyboard() *keyboard {
	kb := &keyboard{grabbers: make(map[config.Key]*fakeGrabber)}
	for _, k := range []config.Key{config.KeyF4, config.KeyF5} {
		kb.grabbers[k] = &fakeGrabber{
			down: make(chan hotkey.Event),
			up:   make(chan hotkey.Event),
		}
	}
	return kb
}

func (kb *keyboard) grab(key config.Key) (hotkey.Grabber, error) {
	kb.grabbed++
	g, ok := kb.grabbers[key]
	if !ok {
		return nil, hotkey.ErrUnsupportedKey
	}
	return g, nil
}

// press блокируется, пока Run не примет событие, поэтому после него
// обработчик уже выполнен или выполняется в единственной горутине Run.
func (kb *keyboard) press(t *testing.T, key config.Key) {
	t.Helper()
	select {
	case kb.grabbers[key].down <- hotkey.Event{}:
	case <-time.After(time.Second):
		t.Fatalf("press %s: listener is not receiving", key)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func newTestApp(t *testing.T, target string, kb *keyboard) (*App, error) {
	t.Helper()
	return New(Options{
		Path:       target,
		ConfigFile: filepath.Join(t.TempDir(), "absent.yaml"),
		Notifier:   notify.New(false),
		HotkeyOptions: []hotkey.Option{
			hotkey.WithGrabber(kb.grab),
			hotkey.WithDebounce(0),
		},
	})
}

// start запускает приложение и возвращает функцию остановки.
func start(t *testing.T, a *App) func() {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	return func() {
		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("Run() error = %v", err)
			}
		case <-time.After(time.Second):
			t.Error("Run() did not stop")
		}
	}
}

// settle дожидается, пока предыдущее нажатие полностью обработано:
// keyup принимается той же горутиной только после возврата обработчика.
func (kb *keyboard) settle(t *testing.T) {
	t.Helper()
	select {
	case kb.grabbers[config.KeyF4].up <- hotkey.Event{}:
	case <-time.After(time.Second):
		t.Fatal("listener is stuck")
	}
}

func TestApp_SaveRestoreScenario(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "doc.txt")
	writeFile(t, target, "v1")

	kb := newKeyboard()
	a, err := newTestApp(t, target, kb)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	stop := start(t, a)
	defer stop()

	backup := filepath.Join(dir, "doc_tmp_save.txt")

	kb.press(t, config.KeyF4)
	kb.settle(t)
	if got := readFile(t, backup); got != "v1" {
		t.Fatalf("backup = %q, want %q", got, "v1")
	}

	writeFile(t, target, "v2")

	kb.press(t, config.KeyF5)
	kb.settle(t)
	if got := readFile(t, target); got != "v1" {
		t.Errorf("target = %q, want %q", got, "v1")
	}
}

func TestApp_RestoreBeforeSaveKeepsListening(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "notes.md")
	writeFile(t, target, "original")

	kb := newKeyboard()
	a, err := newTestApp(t, target, kb)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	stop := start(t, a)
	defer stop()

	kb.press(t, config.KeyF5)
	kb.settle(t)
	if got := readFile(t, target); got != "original" {
		t.Errorf("target = %q, want %q", got, "original")
	}

	// Цикл продолжает работать после ошибки копирования.
	kb.press(t, config.KeyF4)
	kb.settle(t)
	backup, err := mirror.BackupPath(target)
	if err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, backup); got != "original" {
		t.Errorf("backup = %q, want %q", got, "original")
	}
}

func TestApp_InvalidTargetInstallsNoHook(t *testing.T) {
	dir := t.TempDir()
	noExt := filepath.Join(dir, "hosts")
	writeFile(t, noExt, "x")

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "missing.txt")},
		{"directory", dir},
		{"no extension", noExt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := newKeyboard()
			a, err := newTestApp(t, tt.path, kb)
			if !errors.Is(err, ErrTarget) {
				t.Fatalf("New(%q) error = %v, want ErrTarget", tt.path, err)
			}
			if a != nil {
				t.Error("New() returned an app for an invalid target")
			}
			if kb.grabbed != 0 {
				t.Errorf("grabbed %d keys, want 0", kb.grabbed)
			}
		})
	}
}

func TestApp_NoExtensionIsTargetError(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, ".profile")
	writeFile(t, target, "x")

	_, err := newTestApp(t, target, newKeyboard())
	if !errors.Is(err, mirror.ErrNoExtension) {
		t.Errorf("New() error = %v, want mirror.ErrNoExtension", err)
	}
}

func TestApp_InvalidTargetLogsCause(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, ".profile")
	writeFile(t, target, "x")

	var logs bytes.Buffer
	_, err := New(Options{
		Path:       target,
		ConfigFile: filepath.Join(dir, "absent.yaml"),
		Logger:     hclog.New(&hclog.LoggerOptions{Output: &logs}),
		Notifier:   notify.New(false),
	})
	if !errors.Is(err, ErrTarget) {
		t.Fatalf("New() error = %v, want ErrTarget", err)
	}

	out := logs.String()
	if !strings.Contains(out, mirror.ErrNoExtension.Error()) {
		t.Errorf("log = %q, want it to name the cause %q", out, mirror.ErrNoExtension)
	}
	if strings.Contains(out, "нет файла") {
		t.Errorf("log = %q, must not claim the file is missing", out)
	}
}

func TestApp_ConfigError(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "doc.txt")
	writeFile(t, target, "x")

	cfgPath := filepath.Join(dir, "hotsave.yaml")
	writeFile(t, cfgPath, "save_file_key: F7\nrestore_file_key: f7\n")

	_, err := New(Options{Path: target, ConfigFile: cfgPath, Notifier: notify.New(false)})
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("New() error = %v, want ErrConfig", err)
	}
	if !errors.Is(err, config.ErrSameKeys) {
		t.Errorf("New() error = %v, want config.ErrSameKeys", err)
	}
}

func TestApp_GrabFailureIsFatal(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "doc.txt")
	writeFile(t, target, "x")

	kb := newKeyboard()
	kb.grabbers[config.KeyF4].err = errors.New("no X display")

	a, err := newTestApp(t, target, kb)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := a.Run(context.Background()); !errors.Is(err, hotkey.ErrGrab) {
		t.Fatalf("Run() error = %v, want hotkey.ErrGrab", err)
	}
}
