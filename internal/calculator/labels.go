package calculator

// P&L 科目名称（上传表格第 0 列）
const (
	LabelLedgerAccount = "Ledger Account"

	LabelNetSales          = "Net Sales"
	LabelTotalTransactions = "Total Transactions"
	LabelThirdPartyDigital = "3rd Party Digital Sales"
	LabelPandaDigital      = "Panda Digital Sales"

	LabelCOGS          = "Cost of Goods Sold"
	LabelTotalLabor    = "Total Labor"
	LabelDirectLabor   = "Direct Labor"
	LabelMgmtLabor     = "Management Labor"
	LabelTaxesBenefits = "Taxes and Benefits"
	LabelHourlyWage    = "Average Hourly Wage"
	LabelOvertimeHours = "Overtime Hours"

	LabelTotalControllables = "Total Controllables"
	LabelAdvertising        = "Advertising"
	LabelControllableProfit = "Controllable Profit"
	LabelBonus              = "Bonus"
	LabelWorkersComp        = "Workers Comp"

	LabelTotalFixedCost = "Total Fixed Cost"
	LabelAmortization   = "Amortization"
	LabelDepreciation   = "Depreciation"

	LabelRepairs     = "Repairs"
	LabelMaintenance = "Maintenance"

	// PriorPrefix 同期值科目前缀，如 "Prior Net Sales"
	PriorPrefix = "Prior "
)

// RentLabels 租金明细科目
var RentLabels = []string{
	"Rent - MIN",
	"Rent - Storage",
	"Rent - Percent",
	"Rent - Other",
	"Rent - Deferred Preopening",
}

// DaypartLabels 时段占比科目，顺序即最忙时段的并列判定顺序
var DaypartLabels = []string{
	"Breakfast %",
	"Lunch %",
	"Afternoon %",
	"Evening %",
}

// requiredLabels 缺失时给出告警的核心科目
var requiredLabels = []string{
	LabelNetSales,
	LabelTotalTransactions,
	LabelCOGS,
	LabelTotalControllables,
	LabelControllableProfit,
	LabelTotalFixedCost,
}

// repeatableLabels 表格中按分组重复出现属于正常情况的科目
var repeatableLabels = map[string]bool{
	LabelAdvertising: true,
}
