package parser

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"pldash/internal/model"
)

// buildWorkbook 在内存中生成 xlsx
func buildWorkbook(t *testing.T, sheets map[string][][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })

	first := true
	for name, rows := range sheets {
		if first {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
			first = false
		} else if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("new sheet: %v", err)
		}
		for i, row := range rows {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			r := row
			if err := f.SetSheetRow(name, cell, &r); err != nil {
				t.Fatalf("set row: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestReadWorkbook_LocatesHeader(t *testing.T) {
	t.Parallel()

	data := buildWorkbook(t, map[string][][]any{
		"P&L": {
			{"Panda Restaurant Group"},
			{"Period 10"},
			{"Ledger Account", "Actual", "Prior Year\nActual"},
			{"Net Sales", 500000, 450000},
			{"Advertising", ""},
			{"Notes", "n/a"},
		},
	})

	sheet, err := ReadWorkbook(bytes.NewReader(data), "pl.xlsx", ReadOptions{HeaderLabel: "Ledger Account"})
	if err != nil {
		t.Fatalf("ReadWorkbook: %v", err)
	}
	if sheet.Name != "P&L" || sheet.SkippedRows != 2 {
		t.Fatalf("unexpected sheet: name=%q skipped=%d", sheet.Name, sheet.SkippedRows)
	}

	m := sheet.Matrix
	if len(m) != 4 {
		t.Fatalf("rows = %d, want 4", len(m))
	}
	if got := m.Header().Cell(2).String(); got != "Prior Year Actual" {
		t.Fatalf("header not normalized: %q", got)
	}
	if c := m[1].Cell(1); c.Kind != model.CellNumber || c.Num != 500000 {
		t.Fatalf("Net Sales actual = %+v", c)
	}
	if m[2].Label != "Advertising" || !m[2].Cell(1).IsBlank() {
		t.Fatalf("Advertising row = %+v", m[2])
	}
	if c := m[3].Cell(1); c.Kind != model.CellText || c.Text != "n/a" {
		t.Fatalf("text cell = %+v", c)
	}
}

func TestReadWorkbook_NoHeaderLabelKeepsAllRows(t *testing.T) {
	t.Parallel()

	data := buildWorkbook(t, map[string][][]any{
		"Sheet": {
			{"Title"},
			{"Ledger Account", "Actual"},
		},
	})
	sheet, err := ReadWorkbook(bytes.NewReader(data), "pl.xlsx", ReadOptions{})
	if err != nil {
		t.Fatalf("ReadWorkbook: %v", err)
	}
	if sheet.SkippedRows != 0 || len(sheet.Matrix) != 2 {
		t.Fatalf("unexpected: skipped=%d rows=%d", sheet.SkippedRows, len(sheet.Matrix))
	}
}

func TestReadWorkbook_SheetSelection(t *testing.T) {
	t.Parallel()

	data := buildWorkbook(t, map[string][][]any{
		"Only": {{"Ledger Account", "Actual"}, {"Net Sales", 1}},
	})

	if _, err := ReadWorkbook(bytes.NewReader(data), "pl.xlsx", ReadOptions{SheetName: "Missing"}); !errors.Is(err, ErrSheetNotFound) {
		t.Fatalf("want ErrSheetNotFound, got %v", err)
	}
	sheet, err := ReadWorkbook(bytes.NewReader(data), "pl.xlsx", ReadOptions{SheetName: "Only"})
	if err != nil {
		t.Fatalf("ReadWorkbook: %v", err)
	}
	if len(sheet.Sheets) != 1 || sheet.Sheets[0] != "Only" {
		t.Fatalf("sheets = %v", sheet.Sheets)
	}
}

func TestReadWorkbook_Errors(t *testing.T) {
	t.Parallel()

	empty := buildWorkbook(t, map[string][][]any{"Empty": nil})
	if _, err := ReadWorkbook(bytes.NewReader(empty), "pl.xlsx", ReadOptions{}); !errors.Is(err, ErrEmptyWorksheet) {
		t.Fatalf("want ErrEmptyWorksheet, got %v", err)
	}

	big := buildWorkbook(t, map[string][][]any{
		"Big": {{"Ledger Account"}, {"a"}, {"b"}, {"c"}},
	})
	if _, err := ReadWorkbook(bytes.NewReader(big), "pl.xlsx", ReadOptions{MaxRows: 3}); !errors.Is(err, ErrTooManyRows) {
		t.Fatalf("want ErrTooManyRows, got %v", err)
	}

	if _, err := ReadWorkbook(bytes.NewReader([]byte("not a workbook")), "pl.xlsx", ReadOptions{}); err == nil {
		t.Fatalf("garbage xlsx should fail")
	}
	if _, err := ReadWorkbook(bytes.NewReader(make([]byte, 1024)), "pl.xls", ReadOptions{}); err == nil {
		t.Fatalf("garbage xls should fail")
	}
}

func TestParseCellValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want model.Cell
	}{
		{"空白", "   ", model.BlankCell()},
		{"整数", "500000", model.NumberCell(500000)},
		{"负小数", "-12.5", model.NumberCell(-12.5)},
		{"科学计数", "1.5E3", model.NumberCell(1500)},
		{"千分位", "1,234,567.89", model.NumberCell(1234567.89)},
		{"错误千分位", "12,34", model.TextCell("12,34")},
		{"文本", "Net Sales", model.TextCell("Net Sales")},
		{"NaN 视为文本", "NaN", model.TextCell("NaN")},
		{"十六进制视为文本", "0x1F", model.TextCell("0x1F")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseCellValue(tt.in); got != tt.want {
				t.Fatalf("ParseCellValue(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeHeader(t *testing.T) {
	t.Parallel()

	if got := NormalizeHeader("  Prior\r\nYear \t Actual "); got != "Prior Year Actual" {
		t.Fatalf("NormalizeHeader = %q", got)
	}
}
