package model

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// groupedNumber 合法的千分位数值文本，如 1,234,567.89
var groupedNumber = regexp.MustCompile(`^[-+]?\d{1,3}(,\d{3})+(\.\d+)?$`)

// StripGrouping 去除千分位分隔符；含逗号但分组不合法时 ok 为 false
func StripGrouping(s string) (string, bool) {
	if !strings.Contains(s, ",") {
		return s, true
	}
	if !groupedNumber.MatchString(s) {
		return s, false
	}
	return strings.ReplaceAll(s, ",", ""), true
}

// CellKind 单元格类型
type CellKind int

const (
	CellBlank  CellKind = iota // 空白
	CellNumber                 // 数值
	CellText                   // 文本
)

// Cell 表格单元格（数值 / 文本 / 空白）
type Cell struct {
	Kind CellKind
	Num  float64
	Text string
}

// NumberCell 创建数值单元格
func NumberCell(v float64) Cell {
	return Cell{Kind: CellNumber, Num: v}
}

// TextCell 创建文本单元格
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// BlankCell 创建空白单元格
func BlankCell() Cell {
	return Cell{}
}

// IsBlank 是否为空白
func (c Cell) IsBlank() bool {
	return c.Kind == CellBlank
}

// String 原样输出单元格内容（空白返回空串）
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case CellText:
		return c.Text
	default:
		return ""
	}
}

// MarshalJSON 空白 → null，数值 → number，文本 → string
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case CellNumber:
		if math.IsNaN(c.Num) || math.IsInf(c.Num, 0) {
			return []byte("null"), nil
		}
		return json.Marshal(c.Num)
	case CellText:
		return json.Marshal(c.Text)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON 与 MarshalJSON 对应
func (c *Cell) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	cell, err := CellFromValue(v)
	if err != nil {
		return err
	}
	*c = cell
	return nil
}

// CellFromValue 将任意值转换为单元格
// 数值字符串保持为文本，数值转换统一由计算引擎负责
func CellFromValue(v any) (Cell, error) {
	switch x := v.(type) {
	case nil:
		return BlankCell(), nil
	case Cell:
		return x, nil
	case float64:
		return NumberCell(x), nil
	case float32:
		return NumberCell(float64(x)), nil
	case int:
		return NumberCell(float64(x)), nil
	case int64:
		return NumberCell(float64(x)), nil
	case int32:
		return NumberCell(float64(x)), nil
	case int16:
		return NumberCell(float64(x)), nil
	case int8:
		return NumberCell(float64(x)), nil
	case uint:
		return NumberCell(float64(x)), nil
	case uint64:
		return NumberCell(float64(x)), nil
	case uint32:
		return NumberCell(float64(x)), nil
	case uint16:
		return NumberCell(float64(x)), nil
	case uint8:
		return NumberCell(float64(x)), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return TextCell(x.String()), nil
		}
		return NumberCell(f), nil
	case string:
		if x == "" {
			return BlankCell(), nil
		}
		return TextCell(x), nil
	case bool:
		return TextCell(strconv.FormatBool(x)), nil
	default:
		return Cell{}, fmt.Errorf("unsupported cell value %T", v)
	}
}

// Row 一行数据；Cells 包含第 0 列，下标与表头列对齐
type Row struct {
	Label string
	Cells []Cell
}

// NewRow 由单元格构建行，Label 取第 0 列文本（去除首尾空白）
func NewRow(cells ...Cell) Row {
	r := Row{Cells: cells}
	if len(cells) > 0 && cells[0].Kind == CellText {
		r.Label = strings.TrimSpace(cells[0].Text)
	}
	return r
}

// HasLabel 第 0 列是否为非空白文本
func (r Row) HasLabel() bool {
	return len(r.Cells) > 0 && r.Cells[0].Kind == CellText && r.Label != ""
}

// Cell 按列取值，越界（参差行）视为空白
func (r Row) Cell(idx int) Cell {
	if idx < 0 || idx >= len(r.Cells) {
		return BlankCell()
	}
	return r.Cells[idx]
}

// Len 列数
func (r Row) Len() int {
	return len(r.Cells)
}

// Matrix 上传表格的行矩阵，第 0 行为表头
type Matrix []Row

// Header 表头行；空矩阵返回空行
func (m Matrix) Header() Row {
	if len(m) == 0 {
		return Row{}
	}
	return m[0]
}

// Data 数据行（表头之后）
func (m Matrix) Data() []Row {
	if len(m) <= 1 {
		return nil
	}
	return m[1:]
}

// Width 最宽一行的列数
func (m Matrix) Width() int {
	w := 0
	for _, r := range m {
		if len(r.Cells) > w {
			w = len(r.Cells)
		}
	}
	return w
}

// MatrixFromValues 将二维异构值转换为矩阵
func MatrixFromValues(values [][]any) (Matrix, error) {
	m := make(Matrix, 0, len(values))
	for i, raw := range values {
		cells := make([]Cell, 0, len(raw))
		for j, v := range raw {
			c, err := CellFromValue(v)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i, j, err)
			}
			cells = append(cells, c)
		}
		m = append(m, NewRow(cells...))
	}
	return m, nil
}
