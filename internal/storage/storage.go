package storage

import (
	"context"
	"io"
	"time"
)

// Package storage contains the object storage abstraction used for binary
// assets (logos, avatars). Implementations must avoid local disk and rely on
// streaming I/O only.

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1 and
// the implementation will buffer/chunk as supported by the backend.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Store is the asset storage contract. PreviewURL and InitialsURL are pure
// URL derivations with no network failure path; the only failure mode is an
// absent key or name, which yields an empty URL.
type Store interface {
	// Put uploads an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// PreviewURL derives the public preview URL for a stored asset at the
	// given square size in pixels.
	PreviewURL(key string, size int) string
	// InitialsURL derives a generated initials-avatar URL for records without
	// an uploaded asset.
	InitialsURL(name string) string
}
