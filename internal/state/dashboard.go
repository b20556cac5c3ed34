package state

import (
	"errors"
	"sync"

	"pldash/internal/model"
)

// ErrNoUpload 尚未上传任何损益表
var ErrNoUpload = errors.New("no P&L uploaded yet")

// Dataset 当前看板使用的数据集
type Dataset struct {
	Upload model.Upload
	Matrix model.Matrix
}

// Dashboard 看板应用状态，替换时整体切换，读者不会看到半更新的矩阵
type Dashboard struct {
	mu      sync.RWMutex
	current *Dataset
	version uint64
}

// NewDashboard 创建空看板
func NewDashboard() *Dashboard {
	return &Dashboard{}
}

// Replace 用新上传整体替换当前数据集
func (d *Dashboard) Replace(upload model.Upload, m model.Matrix) {
	ds := &Dataset{Upload: upload, Matrix: cloneMatrix(m)}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.current = ds
	d.version++
}

// Snapshot 返回当前数据集的副本
func (d *Dashboard) Snapshot() (Dataset, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.current == nil {
		return Dataset{}, ErrNoUpload
	}
	return Dataset{Upload: d.current.Upload, Matrix: cloneMatrix(d.current.Matrix)}, nil
}

// Loaded 是否已有数据
func (d *Dashboard) Loaded() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.current != nil
}

// Version 每次 Replace / Clear 递增
func (d *Dashboard) Version() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.version
}

// Clear 清空当前数据集
func (d *Dashboard) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.current = nil
	d.version++
}

func cloneMatrix(m model.Matrix) model.Matrix {
	if m == nil {
		return nil
	}
	out := make(model.Matrix, len(m))
	for i, r := range m {
		out[i] = model.Row{Label: r.Label, Cells: append([]model.Cell(nil), r.Cells...)}
	}
	return out
}
