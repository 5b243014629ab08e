//go:build linux

package osgrab

import xhotkey "golang.design/x/hotkey"

// capsLock - LockMask из X11/X.h, своей константы в библиотеке нет.
const capsLock = xhotkey.Modifier(1 << 1)

// XGrabKey требует точного совпадения модификаторов: при включённом
// NumLock (Mod2) или CapsLock нажатие без них не совпадёт с захватом.
// Поэтому клавиша регистрируется во всех сочетаниях замков.
var lockVariants = [][]xhotkey.Modifier{
	{},
	{xhotkey.Mod2},
	{capsLock},
	{xhotkey.Mod2, capsLock},
}
