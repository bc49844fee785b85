package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path"
)

const indexDocument = "index.html"

// DiskStore serves files beneath a root directory.
type DiskStore struct {
	dir http.Dir
}

func NewDiskStore(root string) *DiskStore {
	return &DiskStore{dir: http.Dir(root)}
}

// Open returns the named file. A directory resolves to its index.html.
func (s *DiskStore) Open(_ context.Context, name string) (*File, error) {
	clean, ok := cleanName(name)
	if !ok {
		return nil, ErrNotFound
	}

	f, err := s.open("/" + clean)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", clean, err)
	}
	if !st.IsDir() {
		return &File{Content: f, Name: st.Name(), ModTime: st.ModTime()}, nil
	}
	f.Close()

	index := path.Join("/", clean, indexDocument)
	f, err = s.open(index)
	if err != nil {
		return nil, err
	}
	st, err = f.Stat()
	if err != nil || st.IsDir() {
		f.Close()
		return nil, ErrNotFound
	}
	return &File{Content: f, Name: st.Name(), ModTime: st.ModTime()}, nil
}

func (s *DiskStore) open(name string) (http.File, error) {
	f, err := s.dir.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return f, nil
}
