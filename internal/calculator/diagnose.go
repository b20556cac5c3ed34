package calculator

import (
	"fmt"

	"pldash/internal/model"
)

// WarningCode 告警类型
type WarningCode string

const (
	WarnMissingColumn   WarningCode = "missing_column"
	WarnMissingLineItem WarningCode = "missing_line_item"
	WarnMissingPrior    WarningCode = "missing_prior"
	WarnDuplicateLabel  WarningCode = "duplicate_label"
)

// Warning 计算过程中被静默置零或取舍的输入
type Warning struct {
	Code    WarningCode `json:"code"`
	Label   string      `json:"label"`
	Message string      `json:"message"`
}

// Diagnose 检查表头列、核心科目与重复科目；不影响计算结果
func Diagnose(m model.Matrix, cols Columns) []Warning {
	out := make([]Warning, 0)

	if !cols.HasActual() {
		out = append(out, Warning{
			Code:    WarnMissingColumn,
			Label:   "Actual",
			Message: "表头中未找到 Actual 列，本期值按第 2 列读取，Advertising 按 0 计",
		})
	}
	if !cols.HasPrior() {
		out = append(out, Warning{
			Code:    WarnMissingColumn,
			Label:   "Prior Year",
			Message: "表头中未找到 Prior Year 列",
		})
	}

	for _, label := range requiredLabels {
		if FindRowIndex(m, label) < 0 {
			out = append(out, Warning{
				Code:    WarnMissingLineItem,
				Label:   label,
				Message: fmt.Sprintf("未找到科目 %q，按 0 计", label),
			})
		}
	}

	if FindRowIndex(m, PriorPrefix+LabelNetSales) < 0 && !cols.HasPrior() {
		out = append(out, Warning{
			Code:    WarnMissingPrior,
			Label:   LabelNetSales,
			Message: "没有同期净销售额来源，同比指标按 0 计",
		})
	}

	seen := make(map[string]int)
	for _, r := range m.Data() {
		if !r.HasLabel() || r.Label == "" {
			continue
		}
		seen[r.Label]++
		if seen[r.Label] == 2 && !repeatableLabels[r.Label] {
			out = append(out, Warning{
				Code:    WarnDuplicateLabel,
				Label:   r.Label,
				Message: fmt.Sprintf("科目 %q 重复出现，使用第一行", r.Label),
			})
		}
	}

	return out
}
