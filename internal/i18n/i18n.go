// Package i18n provides internationalization support.
package i18n

import "sync"

// Language represents a UI language.
type Language string

const (
	RU Language = "ru"
	EN Language = "en"
)

var (
	mu      sync.RWMutex
	current = RU // Default language
)

// Translations for all supported languages.
var translations = map[Language]map[string]string{
	RU: {
		// App
		"app_name": "hotsave",

		// Notifications
		"notify_ready":         "Клавиши активны",
		"notify_ready_hint":    "%s - сохранить, %s - восстановить",
		"notify_saved":         "Сохранено",
		"notify_restored":      "Восстановлено",
		"notify_error":         "Ошибка",
		"notify_save_failed":   "Не удалось сохранить файл",
		"notify_restore_fail":  "Не удалось восстановить файл",
		"notify_no_backup":     "Сохранённой версии ещё нет",
		"notify_hotkey_failed": "Не удалось перехватить горячие клавиши",
	},

	EN: {
		// App
		"app_name": "hotsave",

		// Notifications
		"notify_ready":         "Hotkeys active",
		"notify_ready_hint":    "%s - save, %s - restore",
		"notify_saved":         "Saved",
		"notify_restored":      "Restored",
		"notify_error":         "Error",
		"notify_save_failed":   "Could not save file",
		"notify_restore_fail":  "Could not restore file",
		"notify_no_backup":     "Nothing has been saved yet",
		"notify_hotkey_failed": "Could not grab hotkeys",
	},
}

// T returns the translation for the given key.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if strings, ok := translations[current]; ok {
		if s, ok := strings[key]; ok {
			return s
		}
	}
	// Fallback to key itself
	return key
}

// SetLanguage sets the current UI language.
func SetLanguage(lang Language) {
	mu.Lock()
	defer mu.Unlock()
	current = lang
}

// GetLanguage returns the current UI language.
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// AvailableLanguages returns list of supported languages.
func AvailableLanguages() []Language {
	return []Language{RU, EN}
}

// LanguageName returns display name for a language.
func LanguageName(lang Language) string {
	switch lang {
	case RU:
		return "Русский"
	case EN:
		return "English"
	default:
		return string(lang)
	}
}
