package model

// Comparison 本期 vs 同期对比（净销售额、SST、租金、维修、保养共用）
type Comparison struct {
	Actual       float64 `json:"actual"`
	Prior        float64 `json:"prior"`
	Delta        float64 `json:"delta"`
	DeltaPercent float64 `json:"deltaPercent"`
}

// DaypartShare 单个时段占比
type DaypartShare struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// DaypartMetrics 时段占比与最忙时段
type DaypartMetrics struct {
	Dayparts     []DaypartShare `json:"dayparts"`
	BusiestLabel string         `json:"busiestLabel"`
	BusiestValue float64        `json:"busiestValue"`
}

// OLOMetrics 线上点单占比
type OLOMetrics struct {
	OLOPercent   float64 `json:"oloPercent"`
	ThirdParty   float64 `json:"thirdParty"`
	PandaDigital float64 `json:"pandaDigital"`
}

// CostPercentages COGS% / Labor% / Prime Cost
type CostPercentages struct {
	COGSPercent  float64 `json:"cogsPercent"`
	LaborPercent float64 `json:"laborPercent"`
	PrimeCost    float64 `json:"primeCost"`
	COGS         float64 `json:"cogs"`
	TotalLabor   float64 `json:"totalLabor"`
}

// CheckAverage 客单价
type CheckAverage struct {
	CheckAvg     float64 `json:"checkAvg"`
	Transactions float64 `json:"transactions"`
}

// LaborMetrics 人工成本拆分与效率
type LaborMetrics struct {
	Direct           float64 `json:"direct"`
	Management       float64 `json:"management"`
	TaxesAndBenefits float64 `json:"taxesAndBenefits"`
	TotalLabor       float64 `json:"totalLabor"`
	HourlyWage       float64 `json:"hourlyWage"`
	OvertimeHours    float64 `json:"overtimeHours"`
	LaborPercent     float64 `json:"laborPercent"`
	TotalHours       float64 `json:"totalHours"`
	Productivity     float64 `json:"productivity"`
}

// ControllableProfit 可控利润
type ControllableProfit struct {
	CP            float64 `json:"cp"`
	CPPrior       float64 `json:"cpPrior"`
	CPChange      float64 `json:"cpChange"`
	CPPercent     float64 `json:"cpPercent"`
	Advertising   float64 `json:"advertising"`
	Controllables float64 `json:"controllables"`
	Bonus         float64 `json:"bonus"`
	WorkersComp   float64 `json:"workersComp"`
	AdjustedCP    float64 `json:"adjustedCp"`
}

// RestaurantContribution 门店贡献
type RestaurantContribution struct {
	Restaurant        float64 `json:"restaurant"`
	RestaurantPercent float64 `json:"restaurantPercent"`
	Fixed             float64 `json:"fixed"`
}

// CashFlow 现金流
type CashFlow struct {
	CashFlow     float64 `json:"cashflow"`
	Amortization float64 `json:"amort"`
	Depreciation float64 `json:"depr"`
}

// FlowThru 增量销售转化为增量 CP 的比例
type FlowThru struct {
	FlowThru      float64 `json:"flowThru"`
	DeltaCP       float64 `json:"deltaCP"`
	DeltaNetSales float64 `json:"deltaNetSales"`
}

// PLMetrics 全部 P&L 指标
type PLMetrics struct {
	NetSales    Comparison             `json:"netSales"`
	Dayparts    DaypartMetrics         `json:"dayparts"`
	OLO         OLOMetrics             `json:"olo"`
	Percentages CostPercentages        `json:"percentages"`
	Rent        Comparison             `json:"rent"`
	Repairs     Comparison             `json:"repairs"`
	Maintenance Comparison             `json:"maintenance"`
	SST         Comparison             `json:"sst"`
	CheckAvg    CheckAverage           `json:"checkAvg"`
	Labor       LaborMetrics           `json:"labor"`
	CP          ControllableProfit     `json:"cp"`
	RC          RestaurantContribution `json:"rc"`
	CashFlow    CashFlow               `json:"cashFlow"`
	FlowThru    FlowThru               `json:"flowThru"`
}

// DisplayRow 展示表的一行；缺失的行对应空白单元格
type DisplayRow struct {
	Label string `json:"label"`
	Cells []Cell `json:"cells"`
}

// DisplayTable 按固定科目顺序重投影的展示表
type DisplayTable struct {
	Title   string       `json:"title"`
	Columns []string     `json:"columns"`
	Rows    []DisplayRow `json:"rows"`
}

// ComparisonRow 本期/同期对比行
type ComparisonRow struct {
	Label  string  `json:"label"`
	Actual float64 `json:"actual"`
	Prior  float64 `json:"prior"`
	Diff   float64 `json:"diff"`
}

// ComparisonTable 本期/同期对比表（列不可用时 Available=false）
type ComparisonTable struct {
	Title     string          `json:"title"`
	Available bool            `json:"available"`
	Rows      []ComparisonRow `json:"rows"`
}
