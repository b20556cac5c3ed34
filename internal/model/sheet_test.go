package model

import (
	"encoding/json"
	"testing"
)

func TestCellJSON(t *testing.T) {
	cells := []Cell{NumberCell(1250.5), TextCell("n/a"), BlankCell()}
	data, err := json.Marshal(cells)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `[1250.5,"n/a",null]` {
		t.Fatalf("marshal = %s", data)
	}

	var back []Cell
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for i := range cells {
		if back[i] != cells[i] {
			t.Errorf("cell %d = %+v, want %+v", i, back[i], cells[i])
		}
	}
}

func TestCellFromValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Cell
	}{
		{"nil", nil, BlankCell()},
		{"空串", "", BlankCell()},
		{"整数", 42, NumberCell(42)},
		{"数值字符串保持文本", "1,000", TextCell("1,000")},
		{"json.Number", json.Number("3.5"), NumberCell(3.5)},
		{"布尔", true, TextCell("true")},
		{"uint", uint(7), NumberCell(7)},
		{"uint64", uint64(1 << 40), NumberCell(1 << 40)},
		{"uint32", uint32(9), NumberCell(9)},
		{"int8", int8(-8), NumberCell(-8)},
		{"int16", int16(300), NumberCell(300)},
	}
	for _, tt := range tests {
		got, err := CellFromValue(tt.in)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: got %+v, want %+v", tt.name, got, tt.want)
		}
	}

	if _, err := CellFromValue(map[string]int{"x": 1}); err == nil {
		t.Errorf("map should be rejected")
	}
}

func TestMatrixFromValues(t *testing.T) {
	m, err := MatrixFromValues([][]any{
		{"Ledger Account", "Actual"},
		{"  Net Sales ", 100.0},
		{nil, 5},
		{"Short"},
	})
	if err != nil {
		t.Fatalf("MatrixFromValues: %v", err)
	}
	if m.Header().Label != "Ledger Account" || len(m.Data()) != 3 || m.Width() != 2 {
		t.Fatalf("unexpected matrix: %+v", m)
	}
	if m[1].Label != "Net Sales" {
		t.Errorf("label should be trimmed, got %q", m[1].Label)
	}
	if m[2].HasLabel() {
		t.Errorf("row without text label reported HasLabel")
	}
	blank := NewRow(TextCell("   "), NumberCell(1))
	if blank.HasLabel() || blank.Label != "" {
		t.Errorf("whitespace label reported HasLabel: %+v", blank)
	}
	if !m[3].Cell(1).IsBlank() || !m[3].Cell(-1).IsBlank() {
		t.Errorf("out of range cells must be blank")
	}

	if _, err := MatrixFromValues([][]any{{struct{}{}}}); err == nil {
		t.Errorf("unsupported value should fail")
	}

	var empty Matrix
	if empty.Header().Len() != 0 || empty.Data() != nil {
		t.Errorf("empty matrix accessors")
	}
}

func TestStripGrouping(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"1234.5", "1234.5", true},
		{"1,234", "1234", true},
		{"-1,234,567.89", "-1234567.89", true},
		{"12,5", "12,5", false},
		{"1,2,3", "1,2,3", false},
		{"1,,000", "1,,000", false},
		{",5", ",5", false},
		{"1,0000", "1,0000", false},
	}
	for _, tt := range tests {
		got, ok := StripGrouping(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("StripGrouping(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
