package calculator

import (
	"testing"

	"pldash/internal/model"
)

// samplePL 一张典型的门店 P&L 表
func samplePL(t *testing.T) model.Matrix {
	t.Helper()
	return mustMatrix(t, [][]any{
		{"Ledger Account", "Actual", "Prior Year Actual", "YTD Actual"},
		{"Net Sales", 500000, 450000, 3000000},
		{"Total Transactions", 40000, 38000, 240000},
		{"3rd Party Digital Sales", 30000, 25000},
		{"Panda Digital Sales", 20000, 15000},
		{"Breakfast %", 5},
		{"Lunch %", 40},
		{"Afternoon %", 15},
		{"Evening %", 40},
		{"Grocery", 20000, 18000},
		{"Meat", 60000, 55000},
		{"Produce", 25000, 24000},
		{"Sea Food", 15000, 14000},
		{"Drinks", 10000, 9000},
		{"Paper Goods", 12000, 12000},
		{"Other", 8000, 8000},
		{"Cost of Goods Sold", 150000, 140000},
		{"Direct Labor", 100000, 95000},
		{"Management Labor", 25000, 24000},
		{"Taxes and Benefits", 15000, 14000},
		{"Total Labor", 139000, 133000},
		{"Average Hourly Wage", 20},
		{"Overtime Hours", 3},
		{"Repairs", 4000, 5000},
		{"Maintenance", 3000, 0},
		{"Total Controllables", 60000, 58000},
		{"Profit Before Adv", 150000, 127000},
		{"Advertising", nil},
		{"Corporate Advertising", 6000, 5500},
		{"Media", 4000, 4000},
		{"Advertising", 10000, 9500},
		{"Controllable Profit", 140000, 120000},
		{"Bonus", 2000},
		{"Workers Comp", 1000},
		{"Rent - MIN", 20000, 19000},
		{"Rent - Percent", 5000, 5000},
		{"Total Fixed Cost", 50000, 48000},
		{"Amortization", 3000},
		{"Depreciation", 7000},
	})
}

func mustMatrix(t *testing.T, values [][]any) model.Matrix {
	t.Helper()
	m, err := model.MatrixFromValues(values)
	if err != nil {
		t.Fatalf("MatrixFromValues: %v", err)
	}
	return m
}

// floatEquals 浮点数近似相等判断
func floatEquals(a, b float64) bool {
	const epsilon = 1e-9
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < epsilon
}
