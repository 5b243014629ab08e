// Package notify предоставляет системные уведомления.
package notify

import (
	"fmt"
	"path/filepath"

	"github.com/gen2brain/beeep"

	"hotsave/internal/i18n"
)

// Notifier отправляет системные уведомления.
type Notifier struct {
	enabled bool
	send    func(title, message string) error
}

// New создаёт новый Notifier.
func New(enabled bool) *Notifier {
	return &Notifier{
		enabled: enabled,
		send: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
}

// Ready сообщает, что клавиши перехвачены.
func (n *Notifier) Ready(saveKey, restoreKey string) {
	n.notify(i18n.T("notify_ready"), fmt.Sprintf(i18n.T("notify_ready_hint"), saveKey, restoreKey))
}

// Saved показывает уведомление об успешном сохранении.
func (n *Notifier) Saved(path string) {
	n.notify(i18n.T("notify_saved"), filepath.Base(path))
}

// Restored показывает уведомление об успешном восстановлении.
func (n *Notifier) Restored(path string) {
	n.notify(i18n.T("notify_restored"), filepath.Base(path))
}

// NoBackup сообщает, что восстанавливать ещё нечего.
func (n *Notifier) NoBackup() {
	n.notify(i18n.T("notify_restore_fail"), i18n.T("notify_no_backup"))
}

// Error показывает уведомление об ошибке.
func (n *Notifier) Error(msg string) {
	n.notify(i18n.T("notify_error"), msg)
}

func (n *Notifier) notify(title, message string) {
	if !n.enabled {
		return
	}
	// Игнорируем ошибки уведомлений - они не критичны
	_ = n.send(i18n.T("app_name")+": "+title, message)
}
