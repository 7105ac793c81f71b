package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tylerhq/tyler-go/internal/model"
)

var ErrFileNotFound = errors.New("file not found")

// FileRepository handles uploaded-file metadata persistence.
type FileRepository struct {
	db *sql.DB
}

// NewFileRepository creates a new FileRepository.
func NewFileRepository(db *sql.DB) *FileRepository {
	return &FileRepository{db: db}
}

// Create inserts a new file record and sets the generated ID.
func (r *FileRepository) Create(ctx context.Context, file *model.File) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO files (name, url) VALUES (?, ?)`, file.Name, file.URL)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	file.ID = id
	return nil
}

// List returns all file records, newest first.
func (r *FileRepository) List(ctx context.Context) ([]model.File, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, url, created_at, updated_at FROM files ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []model.File
	for rows.Next() {
		var f model.File
		if err := rows.Scan(&f.ID, &f.Name, &f.URL, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

// GetByID retrieves a single file record.
func (r *FileRepository) GetByID(ctx context.Context, id int64) (*model.File, error) {
	file := &model.File{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, url, created_at, updated_at FROM files WHERE id = ?`, id).
		Scan(&file.ID, &file.Name, &file.URL, &file.CreatedAt, &file.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return file, nil
}

// Update renames a file record and returns the updated row.
func (r *FileRepository) Update(ctx context.Context, id int64, name, url string) (*model.File, error) {
	_, err := r.db.ExecContext(ctx,
		`UPDATE files SET name = ?, url = ? WHERE id = ?`, name, url, id)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a file record.
func (r *FileRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM files WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrFileNotFound
	}
	return nil
}
