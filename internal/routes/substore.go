package routes

import (
	"context"
	"path"

	"tvshop_back_end/internal/assets"
)

// subStore scopes a store to one directory.
type subStore struct {
	store assets.Store
	dir   string
}

func (s subStore) Open(ctx context.Context, name string) (*assets.File, error) {
	return s.store.Open(ctx, path.Join(s.dir, path.Clean("/"+name)))
}
