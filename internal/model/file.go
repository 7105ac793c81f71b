package model

import "time"

// File represents uploaded-file metadata. The bytes themselves live in
// external storage; only the name and resolved URL are tracked here.
type File struct {
	ID        int64
	Name      string
	URL       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FileRequest creates or renames a file record.
type FileRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// FileResponse represents a file record in API responses.
type FileResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
