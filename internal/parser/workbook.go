package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"pldash/internal/model"
)

// DefaultMaxRows 单个工作表允许读取的最大行数
const DefaultMaxRows = 100000

var (
	ErrNoWorksheet    = errors.New("no worksheet found")
	ErrEmptyWorksheet = errors.New("worksheet is empty")
	ErrSheetNotFound  = errors.New("worksheet not found")
	ErrTooManyRows    = errors.New("worksheet has too many rows")
)

// ReadOptions 读取选项
type ReadOptions struct {
	SheetName   string // 为空时读取第一个工作表
	HeaderLabel string // 第 0 列等于该值的行视为表头，之前的行丢弃
	MaxRows     int
}

// Sheet 读取结果
type Sheet struct {
	Name        string       `json:"name"`
	Sheets      []string     `json:"sheets"`
	Matrix      model.Matrix `json:"-"`
	SkippedRows int          `json:"skippedRows"` // 表头之前被丢弃的行数
}

// ReadWorkbook 读取 .xls / .xlsx 工作簿为行矩阵
func ReadWorkbook(r io.Reader, filename string, opts ReadOptions) (*Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if opts.MaxRows <= 0 {
		opts.MaxRows = DefaultMaxRows
	}

	var sheet *Sheet
	var raw [][]string
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xls":
		sheet, raw, err = readXLS(data, opts)
	default:
		sheet, raw, err = readXLSX(data, opts)
	}
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, ErrEmptyWorksheet
	}
	if len(raw) > opts.MaxRows {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyRows, len(raw), opts.MaxRows)
	}

	start := locateHeader(raw, opts.HeaderLabel)
	sheet.SkippedRows = start
	sheet.Matrix = buildMatrix(raw[start:])
	return sheet, nil
}

func readXLSX(data []byte, opts ReadOptions) (*Sheet, [][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer func() { _ = file.Close() }()

	names := file.GetSheetList()
	if len(names) == 0 {
		return nil, nil, ErrNoWorksheet
	}
	name, err := pickSheet(names, opts.SheetName)
	if err != nil {
		return nil, nil, err
	}

	// 读取原始值，避免千分位、货币符号等显示格式进入计算
	rows, err := file.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
	}
	return &Sheet{Name: name, Sheets: names}, rows, nil
}

func readXLS(data []byte, opts ReadOptions) (*Sheet, [][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open xls: %w", err)
	}
	if wb.NumSheets() == 0 {
		return nil, nil, ErrNoWorksheet
	}

	names := make([]string, 0, wb.NumSheets())
	for i := 0; i < wb.NumSheets(); i++ {
		if ws := wb.GetSheet(i); ws != nil {
			names = append(names, ws.Name)
		}
	}
	name, err := pickSheet(names, opts.SheetName)
	if err != nil {
		return nil, nil, err
	}

	var ws *xls.WorkSheet
	for i := 0; i < wb.NumSheets(); i++ {
		if s := wb.GetSheet(i); s != nil && s.Name == name {
			ws = s
			break
		}
	}
	if ws == nil {
		return nil, nil, ErrSheetNotFound
	}

	rows := make([][]string, 0, int(ws.MaxRow)+1)
	for i := 0; i <= int(ws.MaxRow); i++ {
		row := ws.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, 0, row.LastCol())
		for j := 0; j < row.LastCol(); j++ {
			cells = append(cells, row.Col(j))
		}
		rows = append(rows, cells)
	}
	return &Sheet{Name: name, Sheets: names}, trimTrailingEmpty(rows), nil
}

func pickSheet(names []string, want string) (string, error) {
	if want == "" {
		if names[0] == "" {
			return "", ErrNoWorksheet
		}
		return names[0], nil
	}
	for _, n := range names {
		if n == want {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrSheetNotFound, want)
}

// locateHeader 返回表头所在行；未配置或未找到时为 0
func locateHeader(rows [][]string, headerLabel string) int {
	headerLabel = strings.TrimSpace(headerLabel)
	if headerLabel == "" {
		return 0
	}
	for i, row := range rows {
		if len(row) > 0 && strings.TrimSpace(row[0]) == headerLabel {
			return i
		}
	}
	return 0
}

func buildMatrix(rows [][]string) model.Matrix {
	m := make(model.Matrix, 0, len(rows))
	for i, raw := range rows {
		cells := make([]model.Cell, 0, len(raw))
		for _, s := range raw {
			if i == 0 {
				cells = append(cells, headerCell(s))
				continue
			}
			cells = append(cells, ParseCellValue(s))
		}
		m = append(m, model.NewRow(trimTrailingBlank(cells)...))
	}
	return m
}

func headerCell(s string) model.Cell {
	s = NormalizeHeader(s)
	if s == "" {
		return model.BlankCell()
	}
	return model.TextCell(s)
}

func trimTrailingBlank(cells []model.Cell) []model.Cell {
	end := len(cells)
	for end > 0 && cells[end-1].IsBlank() {
		end--
	}
	return cells[:end]
}

func trimTrailingEmpty(rows [][]string) [][]string {
	end := len(rows)
	for end > 0 && isEmptyRow(rows[end-1]) {
		end--
	}
	return rows[:end]
}

func isEmptyRow(row []string) bool {
	for _, s := range row {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}
