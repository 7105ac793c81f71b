package service

import (
	"context"
	"errors"

	"github.com/tylerhq/tyler-go/internal/model"
)

var ErrFileNameRequired = errors.New("file name is required")

// FileStore is the file-metadata persistence surface.
// *repository.FileRepository satisfies it.
type FileStore interface {
	Create(ctx context.Context, file *model.File) error
	List(ctx context.Context) ([]model.File, error)
	GetByID(ctx context.Context, id int64) (*model.File, error)
	Update(ctx context.Context, id int64, name, url string) (*model.File, error)
	Delete(ctx context.Context, id int64) error
}

// FileService handles uploaded-file metadata. The file bytes live in
// external storage; this service only tracks name and URL.
type FileService struct {
	files FileStore
}

// NewFileService creates a new FileService.
func NewFileService(files FileStore) *FileService {
	return &FileService{files: files}
}

// Create records a new file.
func (s *FileService) Create(ctx context.Context, req model.FileRequest) (model.FileResponse, error) {
	if req.Name == "" {
		return model.FileResponse{}, ErrFileNameRequired
	}

	file := &model.File{Name: req.Name, URL: req.URL}
	if err := s.files.Create(ctx, file); err != nil {
		return model.FileResponse{}, err
	}
	return publicFile(file), nil
}

// List returns all file records.
func (s *FileService) List(ctx context.Context) ([]model.FileResponse, error) {
	files, err := s.files.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.FileResponse, 0, len(files))
	for i := range files {
		out = append(out, publicFile(&files[i]))
	}
	return out, nil
}

// Update renames a file record.
func (s *FileService) Update(ctx context.Context, id int64, req model.FileRequest) (model.FileResponse, error) {
	if req.Name == "" {
		return model.FileResponse{}, ErrFileNameRequired
	}

	file, err := s.files.Update(ctx, id, req.Name, req.URL)
	if err != nil {
		return model.FileResponse{}, err
	}
	return publicFile(file), nil
}

// Delete removes a file record.
func (s *FileService) Delete(ctx context.Context, id int64) error {
	return s.files.Delete(ctx, id)
}

func publicFile(f *model.File) model.FileResponse {
	return model.FileResponse{
		ID:        f.ID,
		Name:      f.Name,
		URL:       f.URL,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
