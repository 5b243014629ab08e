package config

import (
	"fmt"
	"strings"
)

// Key представляет клавишу.
type Key string

const (
	KeySpace  Key = "space"
	KeyReturn Key = "return"
	KeyTab    Key = "tab"
	KeyEscape Key = "escape"
	KeyDelete Key = "delete"
	KeyLeft   Key = "left"
	KeyRight  Key = "right"
	KeyUp     Key = "up"
	KeyDown   Key = "down"
	Key0      Key = "0"
	Key1      Key = "1"
	Key2      Key = "2"
	Key3      Key = "3"
	Key4      Key = "4"
	Key5      Key = "5"
	Key6      Key = "6"
	Key7      Key = "7"
	Key8      Key = "8"
	Key9      Key = "9"
	KeyA      Key = "a"
	KeyB      Key = "b"
	KeyC      Key = "c"
	KeyD      Key = "d"
	KeyE      Key = "e"
	KeyF      Key = "f"
	KeyG      Key = "g"
	KeyH      Key = "h"
	KeyI      Key = "i"
	KeyJ      Key = "j"
	KeyK      Key = "k"
	KeyL      Key = "l"
	KeyM      Key = "m"
	KeyN      Key = "n"
	KeyO      Key = "o"
	KeyP      Key = "p"
	KeyQ      Key = "q"
	KeyR      Key = "r"
	KeyS      Key = "s"
	KeyT      Key = "t"
	KeyU      Key = "u"
	KeyV      Key = "v"
	KeyW      Key = "w"
	KeyX      Key = "x"
	KeyY      Key = "y"
	KeyZ      Key = "z"
	KeyF1     Key = "f1"
	KeyF2     Key = "f2"
	KeyF3     Key = "f3"
	KeyF4     Key = "f4"
	KeyF5     Key = "f5"
	KeyF6     Key = "f6"
	KeyF7     Key = "f7"
	KeyF8     Key = "f8"
	KeyF9     Key = "f9"
	KeyF10    Key = "f10"
	KeyF11    Key = "f11"
	KeyF12    Key = "f12"
)

// AvailableKeys возвращает список доступных клавиш.
func AvailableKeys() []Key {
	return []Key{
		KeySpace, KeyReturn, KeyTab, KeyEscape, KeyDelete,
		KeyLeft, KeyRight, KeyUp, KeyDown,
		Key0, Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9,
		KeyA, KeyB, KeyC, KeyD, KeyE, KeyF, KeyG, KeyH, KeyI, KeyJ, KeyK, KeyL, KeyM,
		KeyN, KeyO, KeyP, KeyQ, KeyR, KeyS, KeyT, KeyU, KeyV, KeyW, KeyX, KeyY, KeyZ,
		KeyF1, KeyF2, KeyF3, KeyF4, KeyF5, KeyF6, KeyF7, KeyF8, KeyF9, KeyF10, KeyF11, KeyF12,
	}
}

// aliases - другие распространённые имена клавиш, в том числе имена
// rdev (KeyS, Num1, LeftArrow), которые встречаются в старых конфигах.
var aliases = map[string]Key{
	"enter":      KeyReturn,
	"esc":        KeyEscape,
	"del":        KeyDelete,
	"leftarrow":  KeyLeft,
	"rightarrow": KeyRight,
	"uparrow":    KeyUp,
	"downarrow":  KeyDown,
}

// ParseKey разбирает человекочитаемое имя клавиши ("F4", "space", "A",
// "KeyS", "Num1", "Escape"). Регистр не учитывается.
func ParseKey(name string) (Key, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if k, ok := aliases[s]; ok {
		return k, nil
	}
	if rest, ok := strings.CutPrefix(s, "key"); ok && len(rest) == 1 {
		s = rest
	}
	if rest, ok := strings.CutPrefix(s, "num"); ok && len(rest) == 1 {
		s = rest
	}

	k := Key(s)
	for _, known := range AvailableKeys() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// String возвращает имя клавиши в том виде, в каком его пишет пользователь.
func (k Key) String() string {
	switch k {
	case KeySpace:
		return "Space"
	case KeyReturn:
		return "Return"
	case KeyTab:
		return "Tab"
	case KeyEscape:
		return "Escape"
	case KeyDelete:
		return "Delete"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	}
	return strings.ToUpper(string(k))
}
