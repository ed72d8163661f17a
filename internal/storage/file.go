package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// File is a Store persisted as one JSON object per origin under a directory.
// Every Set rewrites the file atomically.
type File struct {
	path string
	data map[string]string
}

// OpenFile loads the store for origin from dir. A missing file is an empty
// store; an unreadable or corrupt one is an error.
func OpenFile(dir, origin string) (*File, error) {
	f := &File{
		path: filepath.Join(dir, originFileName(origin)),
		data: make(map[string]string),
	}

	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read storage: %w", err)
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(raw, &f.data); err != nil {
		return nil, fmt.Errorf("corrupt storage file %s: %w", f.path, err)
	}
	if f.data == nil {
		f.data = make(map[string]string)
	}
	return f, nil
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

// Get implements Store.
func (f *File) Get(key string) (string, bool, error) {
	v, ok := f.data[key]
	return v, ok, nil
}

// Set implements Store.
func (f *File) Set(key, value string) error {
	prev, had := f.data[key]
	f.data[key] = value
	if err := f.flush(); err != nil {
		if had {
			f.data[key] = prev
		} else {
			delete(f.data, key)
		}
		return err
	}
	return nil
}

// Clear implements Store.
func (f *File) Clear() error {
	f.data = make(map[string]string)
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear storage: %w", err)
	}
	return nil
}

func (f *File) flush() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}
	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".storage-*")
	if err != nil {
		return fmt.Errorf("write storage: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write storage: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("write storage: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write storage: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("write storage: %w", err)
	}
	return nil
}

// originFileName maps an origin to a file name. The mapping is reversible
// (url.QueryUnescape), so distinct origins never share a file. Path
// separators are always escaped.
func originFileName(origin string) string {
	if origin == "" {
		origin = "default"
	}
	return url.QueryEscape(origin) + ".json"
}
