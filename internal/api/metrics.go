package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pldash/internal/calculator"
	"pldash/internal/model"
	"pldash/internal/present"
)

// MetricsResponse 指标响应
type MetricsResponse struct {
	Upload   *model.Upload        `json:"upload,omitempty"`
	Columns  calculator.Columns   `json:"columns"`
	Schema   calculator.Schema    `json:"schema"`
	Metrics  model.PLMetrics      `json:"metrics"`
	Warnings []calculator.Warning `json:"warnings"`
}

// CardsResponse 指标卡片响应
type CardsResponse struct {
	Upload   *model.Upload        `json:"upload,omitempty"`
	Sections []present.Section    `json:"sections"`
	Warnings []calculator.Warning `json:"warnings"`
}

// CalculateRequest 无状态计算请求：rows[0] 为表头
type CalculateRequest struct {
	Rows  [][]any `json:"rows" binding:"required"`
	Cards bool    `json:"cards"`
}

// GetMetrics 当前上传的全部指标
// GET /api/metrics
func (h *Handler) GetMetrics(c *gin.Context) {
	ds, ok := h.snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, metricsResponse(&ds.Upload, calculator.Calculate(ds.Matrix)))
}

// GetCards 指标卡片
// GET /api/metrics/cards
func (h *Handler) GetCards(c *gin.Context) {
	ds, ok := h.snapshot(c)
	if !ok {
		return
	}
	res := calculator.Calculate(ds.Matrix)
	c.JSON(http.StatusOK, CardsResponse{
		Upload:   &ds.Upload,
		Sections: present.BuildSections(res.Metrics, h.opts.Thresholds),
		Warnings: nonNilWarnings(res.Warnings),
	})
}

// Calculate 对请求体中的行矩阵直接计算，不改变看板状态
// POST /api/metrics/calculate
func (h *Handler) Calculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求体: " + err.Error()})
		return
	}
	m, err := model.MatrixFromValues(req.Rows)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := calculator.Calculate(m)
	if req.Cards {
		c.JSON(http.StatusOK, CardsResponse{
			Sections: present.BuildSections(res.Metrics, h.opts.Thresholds),
			Warnings: nonNilWarnings(res.Warnings),
		})
		return
	}
	c.JSON(http.StatusOK, metricsResponse(nil, res))
}

func metricsResponse(upload *model.Upload, res calculator.Result) MetricsResponse {
	metrics := res.Metrics
	roundMetricsInPlace(&metrics)
	return MetricsResponse{
		Upload:   upload,
		Columns:  res.Columns,
		Schema:   res.Schema,
		Metrics:  metrics,
		Warnings: nonNilWarnings(res.Warnings),
	}
}

func nonNilWarnings(ws []calculator.Warning) []calculator.Warning {
	if ws == nil {
		return []calculator.Warning{}
	}
	return ws
}
