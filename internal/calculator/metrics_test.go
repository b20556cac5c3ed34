package calculator

import (
	"testing"

	"pldash/internal/model"
)

func valuesOf(t *testing.T, m model.Matrix) Values {
	t.Helper()
	return NewValues(m, SchemaFor(ResolveColumns(m.Header())))
}

func TestCalcNetSales(t *testing.T) {
	tests := []struct {
		name   string
		actual any
		prior  any
		want   model.Comparison
	}{
		{"正增长", 110000, 100000, model.Comparison{Actual: 110000, Prior: 100000, Delta: 10000, DeltaPercent: 10}},
		{"负增长", 90000, 100000, model.Comparison{Actual: 90000, Prior: 100000, Delta: -10000, DeltaPercent: -10}},
		{"同期为零", 5000, 0, model.Comparison{Actual: 5000, Delta: 5000}},
		{"同期非法", 5000, "n/a", model.Comparison{Actual: 5000, Delta: 5000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustMatrix(t, [][]any{
				{"Ledger Account", "Actual"},
				{"Net Sales", tt.actual},
				{"Prior Net Sales", tt.prior},
			})
			got := CalcNetSales(valuesOf(t, m))
			if !floatEquals(got.Actual, tt.want.Actual) || !floatEquals(got.Prior, tt.want.Prior) ||
				!floatEquals(got.Delta, tt.want.Delta) || !floatEquals(got.DeltaPercent, tt.want.DeltaPercent) {
				t.Errorf("CalcNetSales = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCalcSSTAndCheckAverage(t *testing.T) {
	m := mustMatrix(t, [][]any{
		{"Ledger Account", "Actual", "Prior Year"},
		{"Net Sales", 500000, 450000},
		{"Total Transactions", 40000, 38000},
	})
	v := valuesOf(t, m)

	sst := CalcSST(v)
	if !floatEquals(sst.Delta, 2000) || !floatEquals(sst.DeltaPercent, 2000.0/38000*100) {
		t.Errorf("CalcSST = %+v", sst)
	}

	ca := CalcCheckAverage(v)
	if !floatEquals(ca.CheckAvg, 12.5) || ca.Transactions != 40000 {
		t.Errorf("CalcCheckAverage = %+v", ca)
	}

	zero := mustMatrix(t, [][]any{
		{"Ledger Account", "Actual"},
		{"Net Sales", 500000},
		{"Total Transactions", 0},
	})
	if got := CalcCheckAverage(valuesOf(t, zero)); got.CheckAvg != 0 {
		t.Errorf("zero transactions should give 0 check average, got %v", got.CheckAvg)
	}
	if got := CalcSST(valuesOf(t, zero)); got.DeltaPercent != 0 {
		t.Errorf("zero prior transactions should give 0, got %v", got.DeltaPercent)
	}
}

func TestCalcOLO(t *testing.T) {
	tests := []struct {
		name     string
		netSales any
		want     float64
	}{
		{"正常", 500000, 10},
		{"净销售额为零", 0, 0},
		{"净销售额为负", -100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustMatrix(t, [][]any{
				{"Ledger Account", "Actual"},
				{"Net Sales", tt.netSales},
				{"3rd Party Digital Sales", 30000},
				{"Panda Digital Sales", 20000},
			})
			got := CalcOLO(valuesOf(t, m))
			if !floatEquals(got.OLOPercent, tt.want) {
				t.Errorf("OLOPercent = %v, want %v", got.OLOPercent, tt.want)
			}
			if got.ThirdParty != 30000 || got.PandaDigital != 20000 {
				t.Errorf("components = %+v", got)
			}
		})
	}
}

func TestCalcDayparts(t *testing.T) {
	tests := []struct {
		name      string
		values    []any
		wantLabel string
		wantValue float64
	}{
		{"午餐最忙", []any{10, 45, 15, 30}, "Lunch %", 45},
		{"并列取靠前", []any{5, 40, 15, 40}, "Lunch %", 40},
		{"全为零", []any{nil, nil, nil, nil}, "Breakfast %", 0},
		{"晚餐最忙", []any{1, 2, 3, 4}, "Evening %", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := [][]any{{"Ledger Account", "Actual"}}
			for i, label := range DaypartLabels {
				rows = append(rows, []any{label, tt.values[i]})
			}
			got := CalcDayparts(valuesOf(t, mustMatrix(t, rows)))
			if got.BusiestLabel != tt.wantLabel || got.BusiestValue != tt.wantValue {
				t.Errorf("busiest = %s/%v, want %s/%v", got.BusiestLabel, got.BusiestValue, tt.wantLabel, tt.wantValue)
			}
			if len(got.Dayparts) != len(DaypartLabels) {
				t.Errorf("dayparts len = %d", len(got.Dayparts))
			}
		})
	}
}

func TestCalcLabor(t *testing.T) {
	v := valuesOf(t, samplePL(t))
	got := CalcLabor(v)

	if got.TotalLabor != 140000 {
		t.Fatalf("TotalLabor = %v, want sum of sub-items 140000", got.TotalLabor)
	}
	if !floatEquals(got.LaborPercent, 28) {
		t.Errorf("LaborPercent = %v, want 28", got.LaborPercent)
	}
	if !floatEquals(got.TotalHours, 7000) {
		t.Errorf("TotalHours = %v, want 7000", got.TotalHours)
	}
	if !floatEquals(got.Productivity, 500000.0/7000) {
		t.Errorf("Productivity = %v", got.Productivity)
	}
	if got.OvertimeHours != 3 {
		t.Errorf("OvertimeHours = %v", got.OvertimeHours)
	}
}

func TestCalcLabor_ZeroWageAndFallback(t *testing.T) {
	m := mustMatrix(t, [][]any{
		{"Ledger Account", "Actual"},
		{"Net Sales", 1000},
		{"Total Labor", 300},
		{"Average Hourly Wage", 0},
	})
	got := CalcLabor(valuesOf(t, m))

	if got.TotalLabor != 300 {
		t.Errorf("without sub-items TotalLabor should fall back to the Total Labor row, got %v", got.TotalLabor)
	}
	if got.TotalHours != 0 {
		t.Errorf("zero wage should give 0 hours, got %v", got.TotalHours)
	}
	if got.Productivity != 0 {
		t.Errorf("zero hours should give 0 productivity, got %v", got.Productivity)
	}
}

func TestCalcCostPercentages(t *testing.T) {
	v := valuesOf(t, samplePL(t))
	got := CalcCostPercentages(v, CalcLabor(v))

	if !floatEquals(got.COGSPercent, 30) || !floatEquals(got.LaborPercent, 28) || !floatEquals(got.PrimeCost, 58) {
		t.Errorf("CalcCostPercentages = %+v", got)
	}
}

func TestCalcFacility(t *testing.T) {
	v := valuesOf(t, samplePL(t))

	rent := CalcRent(v)
	if rent.Actual != 25000 || rent.Prior != 24000 || rent.Delta != 1000 {
		t.Errorf("CalcRent = %+v", rent)
	}
	if !floatEquals(rent.DeltaPercent, 1000.0/24000*100) {
		t.Errorf("rent pct = %v", rent.DeltaPercent)
	}

	repairs := CalcRepairs(v)
	if repairs.Delta != -1000 || !floatEquals(repairs.DeltaPercent, -20) {
		t.Errorf("CalcRepairs = %+v", repairs)
	}

	maint := CalcMaintenance(v)
	if maint.Delta != 3000 || maint.DeltaPercent != 0 {
		t.Errorf("CalcMaintenance with zero prior = %+v", maint)
	}
}

func TestCalcControllableProfit(t *testing.T) {
	m := mustMatrix(t, [][]any{
		{"Ledger Account", "Actual", "Prior Year"},
		{"Net Sales", 500000, 450000},
		{"Cost of Goods Sold", 150000},
		{"Direct Labor", 100000},
		{"Management Labor", 25000},
		{"Taxes and Benefits", 15000},
		{"Total Controllables", 60000},
		{"Advertising", 10000},
		{"Media", 4000},
		{"Local Store Marketing", 2000},
		{"Controllable Profit", 140000, 120000},
		{"Bonus", 2000},
		{"Workers Comp", 1000},
	})
	v := valuesOf(t, m)
	cols := ResolveColumns(m.Header())

	got := CalcControllableProfit(v, m, cols.ActualIdx, CalcLabor(v))
	if got.CP != 140000 {
		t.Fatalf("CP = %v, want 140000", got.CP)
	}
	if got.Advertising != 10000 {
		t.Errorf("Advertising = %v, want 10000", got.Advertising)
	}
	if got.CPPrior != 120000 || got.CPChange != 20000 {
		t.Errorf("prior/change = %v/%v", got.CPPrior, got.CPChange)
	}
	if !floatEquals(got.CPPercent, 28) {
		t.Errorf("CPPercent = %v", got.CPPercent)
	}
	if got.AdjustedCP != 143000 {
		t.Errorf("AdjustedCP = %v, want 143000", got.AdjustedCP)
	}

	rc := CalcRestaurantContribution(got.CP, v)
	if rc.Restaurant != 140000 || rc.Fixed != 0 {
		t.Errorf("RC without fixed cost = %+v", rc)
	}

	ft := CalcFlowThru(got.CP, v)
	if !floatEquals(ft.FlowThru, 40) {
		t.Errorf("FlowThru = %v, want 40", ft.FlowThru)
	}
}

func TestCalcFlowThru_FlatSales(t *testing.T) {
	m := mustMatrix(t, [][]any{
		{"Ledger Account", "Actual", "Prior Year"},
		{"Net Sales", 1000, 1000},
		{"Controllable Profit", 100, 80},
	})
	got := CalcFlowThru(100, valuesOf(t, m))
	if got.FlowThru != 0 || got.DeltaCP != 20 || got.DeltaNetSales != 0 {
		t.Errorf("CalcFlowThru flat sales = %+v", got)
	}
}

func TestCalcCashFlow(t *testing.T) {
	m := mustMatrix(t, [][]any{
		{"Ledger Account", "Actual"},
		{"Amortization", 3000},
		{"Depreciation", "7,000"},
	})
	got := CalcCashFlow(90000, valuesOf(t, m))
	if got.CashFlow != 100000 {
		t.Errorf("CashFlow = %v, want 100000", got.CashFlow)
	}
}

func TestCalcCheckAverage_MalformedText(t *testing.T) {
	m := mustMatrix(t, [][]any{
		{"Ledger Account", "Actual"},
		{"Net Sales", "1,0000"},
		{"Total Transactions", 100},
	})
	if got := CalcCheckAverage(valuesOf(t, m)).CheckAvg; got != 0 {
		t.Fatalf("malformed Net Sales text should read as 0, got %v", got)
	}
}
