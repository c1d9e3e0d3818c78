package store

import "errors"

var (
	ErrStoreNotFound   = errors.New("store not found")
	ErrStoreNameExists = errors.New("store name already exists")
	ErrStoreInUse      = errors.New("store still has employees assigned")
)
