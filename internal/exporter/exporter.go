package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"pldash/internal/model"
	"pldash/internal/present"
)

// 输出工作表名称
const (
	SheetSummary       = "Summary"
	SheetCOGS          = "Cost of Goods"
	SheetControllables = "Controllables"
	SheetComparison    = "COGS Comparison"
)

// Report 导出内容
type Report struct {
	Upload        model.Upload
	Sections      []present.Section
	COGS          model.DisplayTable
	Controllables model.DisplayTable
	Comparison    []model.ComparisonTable
}

// Export 生成看板工作簿，调用方负责 Close
func Export(r Report) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		_ = f.Close()
		return nil, err
	}
	for _, name := range []string{SheetCOGS, SheetControllables, SheetComparison} {
		if _, err := f.NewSheet(name); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	w := &sheetWriter{f: f, bold: bold}
	w.summary(r)
	w.displayTable(SheetCOGS, r.COGS)
	w.displayTable(SheetControllables, r.Controllables)
	w.comparison(r.Comparison)
	if w.err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("写入工作簿失败: %w", w.err)
	}

	f.SetActiveSheet(0)
	return f, nil
}

// Filename 下载文件名
func Filename(u model.Upload) string {
	if u.CreatedAt.IsZero() {
		return "pl-dashboard.xlsx"
	}
	return fmt.Sprintf("pl-dashboard-%s.xlsx", u.CreatedAt.Format("20060102-150405"))
}

// sheetWriter 记录第一个错误，后续写入直接跳过
type sheetWriter struct {
	f    *excelize.File
	bold int
	err  error
}

func (w *sheetWriter) row(sheet string, rowNo int, values []any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, rowNo)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetSheetRow(sheet, cell, &values)
}

func (w *sheetWriter) header(sheet string, rowNo int, values []any) {
	w.row(sheet, rowNo, values)
	if w.err == nil {
		w.err = w.f.SetRowStyle(sheet, rowNo, rowNo, w.bold)
	}
}

func (w *sheetWriter) width(sheet, from, to string, width float64) {
	if w.err == nil {
		w.err = w.f.SetColWidth(sheet, from, to, width)
	}
}

func (w *sheetWriter) summary(r Report) {
	rowNo := 1
	if r.Upload.Filename != "" {
		w.row(SheetSummary, rowNo, []any{"File", r.Upload.Filename, "Sheet", r.Upload.SheetName})
		rowNo += 2
	}
	w.header(SheetSummary, rowNo, []any{"Section", "Metric", "Value", "Detail", "Delta", "Formula", "Badge"})
	rowNo++
	for _, s := range r.Sections {
		for _, c := range s.Cards {
			w.row(SheetSummary, rowNo, []any{s.Title, c.Label, c.Value, c.Detail, c.Delta, c.Formula, c.Badge})
			rowNo++
		}
	}
	w.width(SheetSummary, "A", "B", 26)
	w.width(SheetSummary, "C", "E", 22)
	w.width(SheetSummary, "F", "F", 60)
}

func (w *sheetWriter) displayTable(sheet string, t model.DisplayTable) {
	head := make([]any, 0, len(t.Columns))
	for _, c := range t.Columns {
		head = append(head, c)
	}
	w.header(sheet, 1, head)
	for i, r := range t.Rows {
		values := make([]any, 0, len(r.Cells)+1)
		values = append(values, r.Label)
		for _, c := range r.Cells {
			values = append(values, cellValue(c))
		}
		w.row(sheet, i+2, values)
	}
	w.width(sheet, "A", "A", 34)
}

func (w *sheetWriter) comparison(tables []model.ComparisonTable) {
	rowNo := 1
	for _, t := range tables {
		w.header(SheetComparison, rowNo, []any{t.Title, "Actual", "Prior", "Diff"})
		rowNo++
		if !t.Available {
			w.row(SheetComparison, rowNo, []any{"Actual / Prior Year column not found"})
			rowNo++
		}
		for _, r := range t.Rows {
			w.row(SheetComparison, rowNo, []any{r.Label, r.Actual, r.Prior, r.Diff})
			rowNo++
		}
		rowNo++
	}
	w.width(SheetComparison, "A", "A", 28)
}

func cellValue(c model.Cell) any {
	switch c.Kind {
	case model.CellNumber:
		return c.Num
	case model.CellText:
		return c.Text
	default:
		return nil
	}
}
