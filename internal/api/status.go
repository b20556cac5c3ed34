package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pldash/internal/calculator"
	"pldash/internal/model"
	"pldash/internal/state"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Uploaded bool                `json:"uploaded"`
	Upload   *model.Upload       `json:"upload,omitempty"`
	RowCount int                 `json:"rowCount"`
	Columns  *calculator.Columns `json:"columns,omitempty"`
	Header   []string            `json:"header,omitempty"`
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	ds, err := h.dashboard.Snapshot()
	if err != nil {
		c.JSON(http.StatusOK, StatusResponse{Uploaded: false})
		return
	}

	cols := calculator.ResolveColumns(ds.Matrix.Header())
	header := make([]string, 0, ds.Matrix.Header().Len())
	for _, cell := range ds.Matrix.Header().Cells {
		header = append(header, cell.String())
	}

	c.JSON(http.StatusOK, StatusResponse{
		Uploaded: true,
		Upload:   &ds.Upload,
		RowCount: len(ds.Matrix),
		Columns:  &cols,
		Header:   header,
	})
}

// snapshot 读取当前数据集，未上传时写 404
func (h *Handler) snapshot(c *gin.Context) (state.Dataset, bool) {
	ds, err := h.dashboard.Snapshot()
	if errors.Is(err, state.ErrNoUpload) {
		c.JSON(http.StatusNotFound, gin.H{"error": "尚未上传损益表"})
		return state.Dataset{}, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return state.Dataset{}, false
	}
	return ds, true
}
