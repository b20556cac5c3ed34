package store

import (
	"encoding/json"
	"fmt"

	"pldash/internal/model"
)

// SaveMatrix 保存上传的行矩阵，覆盖同一上传的旧数据
func (s *Store) SaveMatrix(uploadID string, m model.Matrix) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM upload_rows WHERE upload_id = ?`, uploadID); err != nil {
		return fmt.Errorf("failed to clear rows: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO upload_rows (upload_id, row_no, cells_json) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range m {
		cells := r.Cells
		if cells == nil {
			cells = []model.Cell{}
		}
		data, err := json.Marshal(cells)
		if err != nil {
			return fmt.Errorf("failed to encode row %d: %w", i, err)
		}
		if _, err := stmt.Exec(uploadID, i, string(data)); err != nil {
			return fmt.Errorf("failed to insert row %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// LoadMatrix 按行号顺序读取上传的行矩阵
func (s *Store) LoadMatrix(uploadID string) (model.Matrix, error) {
	rows, err := s.db.Query(`
		SELECT cells_json FROM upload_rows
		WHERE upload_id = ?
		ORDER BY row_no
	`, uploadID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rows: %w", err)
	}
	defer rows.Close()

	m := make(model.Matrix, 0)
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		var cells []model.Cell
		if err := json.Unmarshal([]byte(raw), &cells); err != nil {
			return nil, fmt.Errorf("failed to decode row %d: %w", len(m), err)
		}
		m = append(m, model.NewRow(cells...))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(m) == 0 {
		return nil, fmt.Errorf("rows of upload %s: %w", uploadID, ErrNotFound)
	}
	return m, nil
}
