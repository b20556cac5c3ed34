package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pldash/internal/model"
)

const uploadColumns = `id, filename, file_size, sheet_name, row_count, status, error_message, created_at`

// CreateUpload 创建上传记录，状态为 processing
func (s *Store) CreateUpload(u model.Upload) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	_, err := s.db.Exec(`
		INSERT INTO uploads (id, filename, file_size, sheet_name, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, u.ID, u.Filename, u.FileSize, u.SheetName, string(model.UploadProcessing), u.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to create upload: %w", err)
	}
	return nil
}

// FinishUpload 完成上传记录更新
func (s *Store) FinishUpload(id, sheetName string, rowCount int, status model.UploadStatus, errorMessage string) error {
	res, err := s.db.Exec(`
		UPDATE uploads SET
			sheet_name = ?,
			row_count = ?,
			status = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, sheetName, rowCount, string(status), errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to update upload: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("upload %s: %w", id, ErrNotFound)
	}
	return nil
}

// GetUpload 按 ID 获取上传记录
func (s *Store) GetUpload(id string) (model.Upload, error) {
	row := s.db.QueryRow(`SELECT `+uploadColumns+` FROM uploads WHERE id = ?`, id)
	return scanUpload(row)
}

// LatestUpload 最近一次成功的上传
func (s *Store) LatestUpload() (model.Upload, error) {
	row := s.db.QueryRow(`
		SELECT `+uploadColumns+` FROM uploads
		WHERE status = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`, string(model.UploadSucceeded))
	return scanUpload(row)
}

// ListUploads 按时间倒序列出上传记录
func (s *Store) ListUploads(limit int) ([]model.Upload, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT `+uploadColumns+` FROM uploads
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list uploads: %w", err)
	}
	defer rows.Close()

	out := make([]model.Upload, 0)
	for rows.Next() {
		u, err := scanUpload(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUpload(r rowScanner) (model.Upload, error) {
	var (
		u      model.Upload
		status string
	)
	err := r.Scan(&u.ID, &u.Filename, &u.FileSize, &u.SheetName, &u.RowCount, &status, &u.ErrorMessage, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Upload{}, ErrNotFound
	}
	if err != nil {
		return model.Upload{}, fmt.Errorf("failed to scan upload: %w", err)
	}
	u.Status = model.UploadStatus(status)
	return u, nil
}
