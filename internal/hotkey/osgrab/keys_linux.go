//go:build linux

package osgrab

import (
	xhotkey "golang.design/x/hotkey"

	"hotsave/internal/config"
)

// В x/hotkey v0.4.1 для X11 цифры сдвинуты на единицу (Key1 = XK_0), а
// KeyTab совпадает с KeyEscape. Берём keysym из X11/keysymdef.h напрямую.
var platformKeys = map[config.Key]xhotkey.Key{
	config.KeyTab: 0xff09,
	config.Key0:   0x0030,
	config.Key1:   0x0031,
	config.Key2:   0x0032,
	config.Key3:   0x0033,
	config.Key4:   0x0034,
	config.Key5:   0x0035,
	config.Key6:   0x0036,
	config.Key7:   0x0037,
	config.Key8:   0x0038,
	config.Key9:   0x0039,
}
