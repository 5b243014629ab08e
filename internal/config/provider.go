package config

import "errors"

var errReadBytes = errors.New("config: map provider не поддерживает ReadBytes")

// mapProvider отдаёт koanf готовую карту значений (используется для defaults).
type mapProvider map[string]any

func (m mapProvider) ReadBytes() ([]byte, error) {
	return nil, errReadBytes
}

func (m mapProvider) Read() (map[string]any, error) {
	return m, nil
}
