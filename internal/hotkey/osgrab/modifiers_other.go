//go:build !linux

package osgrab

import xhotkey "golang.design/x/hotkey"

// RegisterHotKey и Carbon не учитывают NumLock/CapsLock, достаточно
// одного захвата без модификаторов.
var lockVariants = [][]xhotkey.Modifier{
	{},
}
