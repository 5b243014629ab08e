package osgrab

import (
	xhotkey "golang.design/x/hotkey"

	"hotsave/internal/config"
)

// keyMap маппинг config.Key -> код клавиши платформы
var keyMap = buildKeyMap()

func buildKeyMap() map[config.Key]xhotkey.Key {
	m := map[config.Key]xhotkey.Key{
		config.KeySpace:  xhotkey.KeySpace,
		config.KeyReturn: xhotkey.KeyReturn,
		config.KeyEscape: xhotkey.KeyEscape,
		config.KeyDelete: xhotkey.KeyDelete,
		config.KeyLeft:   xhotkey.KeyLeft,
		config.KeyRight:  xhotkey.KeyRight,
		config.KeyUp:     xhotkey.KeyUp,
		config.KeyDown:   xhotkey.KeyDown,
		config.KeyA:      xhotkey.KeyA,
		config.KeyB:      xhotkey.KeyB,
		config.KeyC:      xhotkey.KeyC,
		config.KeyD:      xhotkey.KeyD,
		config.KeyE:      xhotkey.KeyE,
		config.KeyF:      xhotkey.KeyF,
		config.KeyG:      xhotkey.KeyG,
		config.KeyH:      xhotkey.KeyH,
		config.KeyI:      xhotkey.KeyI,
		config.KeyJ:      xhotkey.KeyJ,
		config.KeyK:      xhotkey.KeyK,
		config.KeyL:      xhotkey.KeyL,
		config.KeyM:      xhotkey.KeyM,
		config.KeyN:      xhotkey.KeyN,
		config.KeyO:      xhotkey.KeyO,
		config.KeyP:      xhotkey.KeyP,
		config.KeyQ:      xhotkey.KeyQ,
		config.KeyR:      xhotkey.KeyR,
		config.KeyS:      xhotkey.KeyS,
		config.KeyT:      xhotkey.KeyT,
		config.KeyU:      xhotkey.KeyU,
		config.KeyV:      xhotkey.KeyV,
		config.KeyW:      xhotkey.KeyW,
		config.KeyX:      xhotkey.KeyX,
		config.KeyY:      xhotkey.KeyY,
		config.KeyZ:      xhotkey.KeyZ,
		config.KeyF1:     xhotkey.KeyF1,
		config.KeyF2:     xhotkey.KeyF2,
		config.KeyF3:     xhotkey.KeyF3,
		config.KeyF4:     xhotkey.KeyF4,
		config.KeyF5:     xhotkey.KeyF5,
		config.KeyF6:     xhotkey.KeyF6,
		config.KeyF7:     xhotkey.KeyF7,
		config.KeyF8:     xhotkey.KeyF8,
		config.KeyF9:     xhotkey.KeyF9,
		config.KeyF10:    xhotkey.KeyF10,
		config.KeyF11:    xhotkey.KeyF11,
		config.KeyF12:    xhotkey.KeyF12,
	}
	for k, code := range platformKeys {
		m[k] = code
	}
	return m
}
