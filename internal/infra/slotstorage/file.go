package slotstorage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileStorage хранит каждый слот отдельным файлом <dir>/<name>.json
type FileStorage struct {
	dir string
}

// NewFileStorage создает файловое хранилище, создавая каталог при необходимости
func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create dir %s: %v", ErrWrite, dir, err)
	}
	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) Get(_ context.Context, name string) ([]byte, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - read %s: %v", ErrRead, path, err)
	}
	return data, nil
}

// Set пишет во временный файл и переименовывает его,
// чтобы читатель никогда не увидел частично записанный слот
func (s *FileStorage) Set(_ context.Context, name string, value []byte) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: Set - create temp file: %v", ErrWrite, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: Set - write temp file: %v", ErrWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: Set - close temp file: %v", ErrWrite, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: Set - rename %s: %v", ErrWrite, path, err)
	}
	return nil
}

func (s *FileStorage) path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlotName, name)
	}
	return filepath.Join(s.dir, name+".json"), nil
}
