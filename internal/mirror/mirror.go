// Package mirror копирует целевой файл в соседний файл-снимок и обратно.
//
// Снимок лежит в том же каталоге и называется {stem}_tmp_save.{ext}.
// Копирование целиком, без атомарной замены: падение посреди записи
// может оставить обрезанный файл.
package mirror

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BackupSuffix добавляется к имени файла перед расширением.
const BackupSuffix = "_tmp_save"

var (
	ErrNotRegularFile = errors.New("mirror: путь не указывает на обычный файл")
	ErrNoStem         = errors.New("mirror: у файла нет имени")
	ErrNoExtension    = errors.New("mirror: у файла нет расширения")
)

// Mirror хранит пару путей: целевой файл и его снимок.
type Mirror struct {
	target string
	backup string
}

// New проверяет целевой файл и вычисляет путь снимка.
// Файл должен существовать, быть обычным файлом (симлинки разрешаются)
// и иметь непустые имя и расширение.
func New(target string) (*Mirror, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotRegularFile, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, target)
	}

	backup, err := BackupPath(target)
	if err != nil {
		return nil, err
	}

	return &Mirror{target: target, backup: backup}, nil
}

// BackupPath возвращает путь снимка для target: doc.txt -> doc_tmp_save.txt.
func BackupPath(target string) (string, error) {
	stem, ext, err := SplitName(filepath.Base(target))
	if err != nil {
		return "", fmt.Errorf("%s: %w", target, err)
	}
	return filepath.Join(filepath.Dir(target), stem+BackupSuffix+"."+ext), nil
}

// SplitName делит имя файла по последней точке.
// Точка в начале имени (".bashrc") расширением не считается.
func SplitName(name string) (stem, ext string, err error) {
	if name == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		return "", "", ErrNoStem
	}

	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, "", ErrNoExtension
	}

	stem, ext = name[:i], name[i+1:]
	if ext == "" {
		return stem, "", ErrNoExtension
	}
	return stem, ext, nil
}

// Target возвращает путь целевого файла.
func (m *Mirror) Target() string { return m.target }

// Backup возвращает путь снимка.
func (m *Mirror) Backup() string { return m.backup }

// Save копирует целевой файл в снимок, перезаписывая предыдущий.
func (m *Mirror) Save() error {
	if err := copyFile(m.target, m.backup); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// Restore копирует снимок обратно в целевой файл.
// Если снимка ещё нет, целевой файл не трогается.
func (m *Mirror) Restore() error {
	if err := copyFile(m.backup, m.target); err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	return nil
}

// copyFile читает src целиком до того, как открыть dst.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
