package calculator

import (
	"regexp"

	"pldash/internal/model"
)

var (
	reActual    = regexp.MustCompile(`(?i)actual`)
	reYTD       = regexp.MustCompile(`(?i)ytd`)
	rePriorYear = regexp.MustCompile(`(?i)prior year`)
)

// DefaultValueColumn 表头未识别出 Actual 列时的本期值列
const DefaultValueColumn = 1

// Columns 表头识别结果，未找到为 -1
type Columns struct {
	ActualIdx int `json:"actualIdx"`
	PriorIdx  int `json:"priorIdx"`
}

// HasActual Actual 列是否可用
func (c Columns) HasActual() bool { return c.ActualIdx >= 0 }

// HasPrior Prior Year 列是否可用
func (c Columns) HasPrior() bool { return c.PriorIdx >= 0 }

// ResolveColumns 按表头文本识别 Actual（排除 YTD）与 Prior Year 列
func ResolveColumns(header model.Row) Columns {
	cols := Columns{ActualIdx: -1, PriorIdx: -1}
	for i, c := range header.Cells {
		if c.Kind != model.CellText {
			continue
		}
		if cols.ActualIdx < 0 && reActual.MatchString(c.Text) && !reYTD.MatchString(c.Text) {
			cols.ActualIdx = i
		}
		if cols.PriorIdx < 0 && rePriorYear.MatchString(c.Text) {
			cols.PriorIdx = i
		}
	}
	return cols
}

// Schema 各调用点使用的列约定：本期值列与同期值列
type Schema struct {
	ActualCol int `json:"actualCol"`
	PriorCol  int `json:"priorCol"`
}

// SchemaFor 由表头识别结果生成列约定；Actual 未识别时退回第 1 列
func SchemaFor(cols Columns) Schema {
	s := Schema{ActualCol: DefaultValueColumn, PriorCol: cols.PriorIdx}
	if cols.ActualIdx >= 1 {
		s.ActualCol = cols.ActualIdx
	}
	return s
}
