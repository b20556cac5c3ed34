package calculator

import "pldash/internal/model"

// Result 一次计算的完整产物
type Result struct {
	Columns  Columns         `json:"columns"`
	Schema   Schema          `json:"schema"`
	Metrics  model.PLMetrics `json:"metrics"`
	Warnings []Warning       `json:"warnings"`
}

// Calculate 识别表头、构建取值视图并计算全部指标，同时给出告警
// 任何输入（包括空矩阵）都返回完整结果，缺失项按 0 处理
func Calculate(m model.Matrix) Result {
	cols := ResolveColumns(m.Header())
	schema := SchemaFor(cols)
	v := NewValues(m, schema)

	return Result{
		Columns:  cols,
		Schema:   schema,
		Metrics:  calculateAll(v, m, cols),
		Warnings: Diagnose(m, cols),
	}
}

// CalculateAll 计算全部 P&L 指标
func CalculateAll(m model.Matrix) model.PLMetrics {
	cols := ResolveColumns(m.Header())
	return calculateAll(NewValues(m, SchemaFor(cols)), m, cols)
}

// calculateAll 按依赖顺序计算：基础值 → 占比 → CP → RC → 现金流 → Flow-Thru
func calculateAll(v Values, m model.Matrix, cols Columns) model.PLMetrics {
	var out model.PLMetrics

	// 基础值
	out.NetSales = CalcNetSales(v)
	out.SST = CalcSST(v)
	out.CheckAvg = CalcCheckAverage(v)
	out.Dayparts = CalcDayparts(v)
	out.Rent = CalcRent(v)
	out.Repairs = CalcRepairs(v)
	out.Maintenance = CalcMaintenance(v)

	// 占比
	out.OLO = CalcOLO(v)
	out.Labor = CalcLabor(v)
	out.Percentages = CalcCostPercentages(v, out.Labor)

	// 利润链
	out.CP = CalcControllableProfit(v, m, cols.ActualIdx, out.Labor)
	out.RC = CalcRestaurantContribution(out.CP.CP, v)
	out.CashFlow = CalcCashFlow(out.RC.Restaurant, v)
	out.FlowThru = CalcFlowThru(out.CP.CP, v)

	return out
}
