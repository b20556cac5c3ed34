package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pldash/internal/calculator"
	"pldash/internal/model"
)

// RowsResponse 原始行预览
type RowsResponse struct {
	Total int            `json:"total"`
	Rows  [][]model.Cell `json:"rows"`
}

// GetCOGSTable 销售成本明细
// GET /api/tables/cogs
func (h *Handler) GetCOGSTable(c *gin.Context) {
	ds, ok := h.snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, calculator.BuildCOGSTable(ds.Matrix))
}

// GetControllablesTable 可控费用明细
// GET /api/tables/controllables
func (h *Handler) GetControllablesTable(c *gin.Context) {
	ds, ok := h.snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, calculator.BuildControllablesTable(ds.Matrix))
}

// GetCOGSComparison 销售成本本期 vs 同期
// GET /api/tables/cogs-comparison
func (h *Handler) GetCOGSComparison(c *gin.Context) {
	ds, ok := h.snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"tables": calculator.BuildCOGSComparison(ds.Matrix)})
}

// GetRows 前 limit 行原始数据（含表头）
// GET /api/rows?limit=20
func (h *Handler) GetRows(c *gin.Context) {
	ds, ok := h.snapshot(c)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit 必须为正整数"})
		return
	}
	if limit > len(ds.Matrix) {
		limit = len(ds.Matrix)
	}

	rows := make([][]model.Cell, 0, limit)
	for _, r := range ds.Matrix[:limit] {
		cells := r.Cells
		if cells == nil {
			cells = []model.Cell{}
		}
		rows = append(rows, cells)
	}
	c.JSON(http.StatusOK, RowsResponse{Total: len(ds.Matrix), Rows: rows})
}
