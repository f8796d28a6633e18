package store

import "errors"

var (
	// ErrConfig means the storage location could not be resolved.
	ErrConfig = errors.New("store: configuration error")
	// ErrIO wraps failures creating, reading or writing the storage file.
	ErrIO = errors.New("store: i/o error")
	// ErrDecode means the stored bytes are not a valid journal.
	ErrDecode = errors.New("store: decode error")
	// ErrEncode means the collection could not be serialized.
	ErrEncode = errors.New("store: encode error")
)
