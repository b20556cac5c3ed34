package calculator

import (
	"strings"

	"pldash/internal/model"
)

// Direction 扫描方向
type Direction int

const (
	Backward Direction = iota
	Forward
)

// FindRowIndex 返回首个科目名（去空白后精确匹配）等于 label 的数据行下标，未找到返回 -1
func FindRowIndex(m model.Matrix, label string) int {
	label = strings.TrimSpace(label)
	for i := 1; i < len(m); i++ {
		if m[i].HasLabel() && m[i].Label == label {
			return i
		}
	}
	return -1
}

// FindRow 按科目名查找数据行，重复时取第一行；未找到返回空行（所有单元格为空白）
func FindRow(m model.Matrix, label string) (model.Row, bool) {
	idx := FindRowIndex(m, label)
	if idx < 0 {
		return model.Row{}, false
	}
	return m[idx], true
}

// ScanFrom 从首个 stopLabel 行出发按方向线性扫描，返回遇到的第一行 searchLabel
func ScanFrom(m model.Matrix, stopLabel, searchLabel string, dir Direction) (model.Row, bool) {
	stop := FindRowIndex(m, stopLabel)
	if stop < 0 {
		return model.Row{}, false
	}
	searchLabel = strings.TrimSpace(searchLabel)

	switch dir {
	case Backward:
		for i := stop - 1; i >= 1; i-- {
			if m[i].HasLabel() && m[i].Label == searchLabel {
				return m[i], true
			}
		}
	case Forward:
		for i := stop + 1; i < len(m); i++ {
			if m[i].HasLabel() && m[i].Label == searchLabel {
				return m[i], true
			}
		}
	}
	return model.Row{}, false
}

// LastBefore 取 stopLabel 之前最近一行 searchLabel 在 col 列的值；列不可用或未找到时为 0
func LastBefore(m model.Matrix, searchLabel, stopLabel string, col int) float64 {
	// 第 0 列是科目名，不是数值列
	if col < 1 {
		return 0
	}
	row, ok := ScanFrom(m, stopLabel, searchLabel, Backward)
	if !ok {
		return 0
	}
	return Safe(row.Cell(col))
}

// AdvertisingBeforeCP Controllable Profit 之前最后一行 Advertising 的本期值
func AdvertisingBeforeCP(m model.Matrix, actualIdx int) float64 {
	return LastBefore(m, LabelAdvertising, LabelControllableProfit, actualIdx)
}
