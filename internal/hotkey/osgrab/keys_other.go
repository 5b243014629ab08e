//go:build !linux

package osgrab

import (
	xhotkey "golang.design/x/hotkey"

	"hotsave/internal/config"
)

var platformKeys = map[config.Key]xhotkey.Key{
	config.KeyTab: xhotkey.KeyTab,
	config.Key0:   xhotkey.Key0,
	config.Key1:   xhotkey.Key1,
	config.Key2:   xhotkey.Key2,
	config.Key3:   xhotkey.Key3,
	config.Key4:   xhotkey.Key4,
	config.Key5:   xhotkey.Key5,
	config.Key6:   xhotkey.Key6,
	config.Key7:   xhotkey.Key7,
	config.Key8:   xhotkey.Key8,
	config.Key9:   xhotkey.Key9,
}
