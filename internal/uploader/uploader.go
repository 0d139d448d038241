// Package uploader talks to the external image CDN. Assets are addressed by
// the URL they are served from plus an opaque file ID needed for deletion.
package uploader

import "context"

type Asset struct {
	URL    string `json:"url"`
	FileID string `json:"fileId"`
}

// File is an in-memory upload candidate, typically read from a multipart form.
type File struct {
	Name string
	Data []byte
}

type Uploader interface {
	Upload(ctx context.Context, file File, folder string) (*Asset, error)
	Delete(ctx context.Context, fileID string) error
}
