package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"pldash/internal/calculator"
	"pldash/internal/exporter"
	"pldash/internal/present"
)

// Export 导出看板工作簿
// GET /api/export
func (h *Handler) Export(c *gin.Context) {
	ds, ok := h.snapshot(c)
	if !ok {
		return
	}

	res := calculator.Calculate(ds.Matrix)
	file, err := exporter.Export(exporter.Report{
		Upload:        ds.Upload,
		Sections:      present.BuildSections(res.Metrics, h.opts.Thresholds),
		COGS:          calculator.BuildCOGSTable(ds.Matrix),
		Controllables: calculator.BuildControllablesTable(ds.Matrix),
		Comparison:    calculator.BuildCOGSComparison(ds.Matrix),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "导出失败: " + err.Error()})
		return
	}
	defer func() { _ = file.Close() }()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", exporter.Filename(ds.Upload)))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := file.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "写入文件失败"})
		return
	}
}
