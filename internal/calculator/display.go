package calculator

import "pldash/internal/model"

// COGSLabels 销货成本展示表科目
var COGSLabels = []string{
	"Grocery",
	"Meat",
	"Produce",
	"Sea Food",
	"Drinks",
	"Paper Goods",
	"Other",
	LabelCOGS,
}

// COGSCategoryLabels 销货成本分类（对比图）
var COGSCategoryLabels = COGSLabels[:len(COGSLabels)-1]

// ControllablesLabels 可控费用展示表科目；Advertising 出现两次，均按首行取值
var ControllablesLabels = []string{
	"Third Party Delivery Fee",
	"Credit Card Fees",
	"Broadband",
	"Electricity",
	"Gas",
	"Telephone",
	"Waste Disposal",
	"Water",
	"Computer Software Expense",
	"Office and Computer Supplies",
	"Education and Training Other",
	"Recruitment",
	"Professional Services",
	"Travel Expenses",
	"Bank Fees",
	"Dues and Subscriptions",
	"Moving and Relocation Expenses",
	"Other Expenses",
	"Postage and Courier Service",
	LabelRepairs,
	LabelMaintenance,
	"Restaurant Expenses",
	"Restaurant Supplies",
	LabelTotalControllables,
	"Profit Before Adv",
	LabelAdvertising,
	"Corporate Advertising",
	"Media",
	"Local Store Marketing",
	"Grand Opening",
	"Lease Marketing",
	LabelAdvertising,
	LabelControllableProfit,
}

// BuildDisplayTable 按固定科目顺序重投影矩阵，每个表头列（从第 1 列起）一个单元格
// 缺失的科目输出空白单元格而不是 0
func BuildDisplayTable(m model.Matrix, title, firstColumn string, labels []string) model.DisplayTable {
	header := m.Header()

	columns := make([]string, 0, header.Len())
	columns = append(columns, firstColumn)
	for i := 1; i < header.Len(); i++ {
		columns = append(columns, header.Cell(i).String())
	}

	rows := make([]model.DisplayRow, 0, len(labels))
	for _, label := range labels {
		row, _ := FindRow(m, label)
		cells := make([]model.Cell, 0, len(columns)-1)
		for i := 1; i < header.Len(); i++ {
			cells = append(cells, row.Cell(i))
		}
		rows = append(rows, model.DisplayRow{Label: label, Cells: cells})
	}

	return model.DisplayTable{
		Title:   title,
		Columns: columns,
		Rows:    rows,
	}
}

// BuildCOGSTable 销货成本展示表
func BuildCOGSTable(m model.Matrix) model.DisplayTable {
	return BuildDisplayTable(m, "Cost of Goods", "Cost of Sales", COGSLabels)
}

// BuildControllablesTable 可控费用展示表
func BuildControllablesTable(m model.Matrix) model.DisplayTable {
	return BuildDisplayTable(m, "Controllables", "Controllables", ControllablesLabels)
}

// BuildComparisonTable 按识别出的 Actual / Prior Year 列生成对比表；任一列缺失时不可用
func BuildComparisonTable(m model.Matrix, cols Columns, title string, labels []string) model.ComparisonTable {
	out := model.ComparisonTable{
		Title: title,
		Rows:  make([]model.ComparisonRow, 0, len(labels)),
	}
	if !cols.HasActual() || !cols.HasPrior() {
		return out
	}
	out.Available = true

	for _, label := range labels {
		row, _ := FindRow(m, label)
		actual := Safe(row.Cell(cols.ActualIdx))
		prior := Safe(row.Cell(cols.PriorIdx))
		out.Rows = append(out.Rows, model.ComparisonRow{
			Label:  label,
			Actual: actual,
			Prior:  prior,
			Diff:   actual - prior,
		})
	}
	return out
}

// BuildCOGSComparison 销货成本分类与合计的本期/同期对比
func BuildCOGSComparison(m model.Matrix) []model.ComparisonTable {
	cols := ResolveColumns(m.Header())
	return []model.ComparisonTable{
		BuildComparisonTable(m, cols, "COGS Categories", COGSCategoryLabels),
		BuildComparisonTable(m, cols, "COGS Total", []string{LabelCOGS}),
	}
}
