package present

import (
	"pldash/internal/model"
)

// Tone 指标卡片色调
type Tone string

const (
	ToneGood    Tone = "good"
	ToneBad     Tone = "bad"
	ToneNeutral Tone = "neutral"
)

// BadgeBusiest 最忙时段徽标
const BadgeBusiest = "Busiest Time"

// Thresholds 卡片着色阈值
type Thresholds struct {
	PrimeCost     float64 `json:"primeCost"`     // 高于即告警
	COGSPercent   float64 `json:"cogsPercent"`   // 大于等于即告警
	LaborPercent  float64 `json:"laborPercent"`  // 高于即告警
	Productivity  float64 `json:"productivity"`  // 高于为良好
	OvertimeHours float64 `json:"overtimeHours"` // 高于即告警
}

// DefaultThresholds 默认阈值
func DefaultThresholds() Thresholds {
	return Thresholds{
		PrimeCost:     60,
		COGSPercent:   30,
		LaborPercent:  30,
		Productivity:  100,
		OvertimeHours: 5,
	}
}

// Card 单个指标卡片
type Card struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Detail  string `json:"detail,omitempty"`
	Delta   string `json:"delta,omitempty"`
	Tone    Tone   `json:"tone"`
	Formula string `json:"formula"`
	Badge   string `json:"badge,omitempty"`
}

// Section 卡片分组
type Section struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Cards []Card `json:"cards"`
}

// BuildSections 按看板分组生成指标卡片
func BuildSections(m model.PLMetrics, th Thresholds) []Section {
	f := defaultFormatter
	return []Section{
		{Key: "sales", Title: "Sales", Cards: salesCards(f, m)},
		{Key: "dayparts", Title: "Dayparts", Cards: daypartCards(f, m.Dayparts)},
		{Key: "financials", Title: "Financials", Cards: financialCards(f, m, th)},
		{Key: "cp_rc", Title: "CP & RC", Cards: cpCards(f, m)},
		{Key: "facility", Title: "Facility", Cards: facilityCards(f, m)},
		{Key: "labor", Title: "Labor", Cards: laborCards(f, m.Labor, th)},
	}
}

func salesCards(f Formatter, m model.PLMetrics) []Card {
	return []Card{
		{
			Label:   "Net Sales",
			Value:   "Act: " + f.Money(m.NetSales.Actual),
			Detail:  "Pri: " + f.Money(m.NetSales.Prior),
			Delta:   "Δ " + f.Money(m.NetSales.Delta) + " (" + f.Percent(m.NetSales.DeltaPercent) + ")",
			Tone:    toneIf(m.NetSales.Delta >= 0),
			Formula: "(Actual Net Sales - Prior Net Sales) / Prior Net Sales * 100",
		},
		{
			Label:   "SST%",
			Value:   f.Percent(m.SST.DeltaPercent),
			Detail:  "This Year: " + f.Number(m.SST.Actual),
			Delta:   "Last Year: " + f.Number(m.SST.Prior),
			Tone:    toneIf(m.SST.DeltaPercent >= 0),
			Formula: "(This Year Transactions - Last Year Transactions) / Last Year Transactions",
		},
		{
			Label:   "Check Average",
			Value:   "$" + Fixed(m.CheckAvg.CheckAvg, 2),
			Tone:    ToneNeutral,
			Formula: "Net Sales / Total Transactions",
		},
		{
			Label:   "Total Transactions",
			Value:   f.Count(m.CheckAvg.Transactions),
			Tone:    ToneNeutral,
			Formula: "Total Transactions",
		},
		{
			Label:   "OLO %",
			Value:   f.Percent(m.OLO.OLOPercent),
			Tone:    ToneNeutral,
			Formula: "(3rd Party + Panda Digital) / Net Sales * 100",
		},
	}
}

func daypartCards(f Formatter, d model.DaypartMetrics) []Card {
	cards := make([]Card, 0, len(d.Dayparts))
	for _, p := range d.Dayparts {
		c := Card{
			Label:   p.Label,
			Value:   f.Percent(p.Value),
			Tone:    ToneNeutral,
			Formula: p.Label,
		}
		if p.Label == d.BusiestLabel {
			c.Badge = BadgeBusiest
		}
		cards = append(cards, c)
	}
	return cards
}

func financialCards(f Formatter, m model.PLMetrics, th Thresholds) []Card {
	return []Card{
		{
			Label:   "Prime Cost",
			Value:   f.Percent(m.Percentages.PrimeCost),
			Tone:    toneIf(m.Percentages.PrimeCost <= th.PrimeCost),
			Formula: "COGS % + Labor %",
		},
		{
			Label:   "COGS $",
			Value:   f.Money(m.Percentages.COGS),
			Tone:    ToneNeutral,
			Formula: "Cost of Goods Sold",
		},
		{
			Label:   "COGS %",
			Value:   f.Percent(m.Percentages.COGSPercent),
			Tone:    toneIf(m.Percentages.COGSPercent < th.COGSPercent),
			Formula: "COGS / Net Sales * 100",
		},
		{
			Label:   "Cash Flow",
			Value:   f.Money(m.CashFlow.CashFlow),
			Tone:    ToneNeutral,
			Formula: "RC + Amortization + Depreciation",
		},
		{
			Label:   "Flow Thru %",
			Value:   f.Percent(m.FlowThru.FlowThru),
			Tone:    toneIf(m.FlowThru.FlowThru >= 0),
			Formula: "(CP Actual - CP Prior) / (Net Sales Actual - Net Sales Prior) * 100",
		},
	}
}

func cpCards(f Formatter, m model.PLMetrics) []Card {
	return []Card{
		{
			Label:   "Controllable Profit $",
			Value:   "Act: " + f.Money(m.CP.CP),
			Detail:  "Pri: " + f.Money(m.CP.CPPrior),
			Delta:   "CP Improvement: " + f.Money(m.CP.CPChange),
			Tone:    toneIf(m.CP.CPChange >= 0),
			Formula: "Net Sales - (COGS + Labor + Controllables + Advertising)",
		},
		{
			Label:   "CP %",
			Value:   f.Percent(m.CP.CPPercent),
			Tone:    ToneNeutral,
			Formula: "CP / Net Sales * 100",
		},
		{
			Label:   "Adjusted CP",
			Value:   f.Money(m.CP.AdjustedCP),
			Tone:    ToneNeutral,
			Formula: "CP + Bonus + Workers Comp",
		},
		{
			Label:   "Total Controllables",
			Value:   f.Money(m.CP.Controllables),
			Tone:    ToneNeutral,
			Formula: "Total Controllables",
		},
		{
			Label:   "Restaurant Contribution",
			Value:   f.Money(m.RC.Restaurant),
			Tone:    ToneNeutral,
			Formula: "CP - Fixed Cost",
		},
		{
			Label:   "Restaurant Contribution %",
			Value:   f.Percent(m.RC.RestaurantPercent),
			Tone:    ToneNeutral,
			Formula: "RC / Net Sales * 100",
		},
	}
}

func facilityCards(f Formatter, m model.PLMetrics) []Card {
	return []Card{
		comparisonCard(f, "Rent Total", m.Rent, "Rent - MIN + Storage + Percent + Other + Deferred"),
		comparisonCard(f, "Repairs", m.Repairs, "Repairs (Actual vs Prior)"),
		comparisonCard(f, "Maintenance", m.Maintenance, "Maintenance (Actual vs Prior)"),
	}
}

func comparisonCard(f Formatter, label string, c model.Comparison, formula string) Card {
	return Card{
		Label:   label,
		Value:   "Act: " + f.Money(c.Actual),
		Detail:  "Pri: " + f.Money(c.Prior),
		Delta:   "Δ " + f.Money(c.Delta) + " (" + f.Percent(c.DeltaPercent) + ")",
		Tone:    ToneNeutral,
		Formula: formula,
	}
}

func laborCards(f Formatter, l model.LaborMetrics, th Thresholds) []Card {
	laborTone := ToneNeutral
	if l.LaborPercent > th.LaborPercent {
		laborTone = ToneBad
	}
	return []Card{
		{Label: "Labor Total", Value: f.Money(l.TotalLabor), Tone: ToneNeutral, Formula: "Direct + Management + Taxes"},
		{Label: "Labor %", Value: f.Percent(l.LaborPercent), Tone: laborTone, Formula: "Total Labor / Net Sales * 100"},
		{Label: "Direct Labor", Value: f.Money(l.Direct), Tone: ToneNeutral, Formula: "Direct Labor"},
		{Label: "Management Labor", Value: f.Money(l.Management), Tone: ToneNeutral, Formula: "Management Labor"},
		{Label: "Taxes & Benefits", Value: f.Money(l.TaxesAndBenefits), Tone: ToneNeutral, Formula: "Taxes and Benefits"},
		{Label: "Average Hourly Wage", Value: "$" + Fixed(l.HourlyWage, 2), Tone: ToneNeutral, Formula: "Average Hourly Wage"},
		{Label: "Total Labor Hours", Value: Fixed(l.TotalHours, 0), Tone: ToneNeutral, Formula: "Total Labor $ / Average Hourly Wage"},
		{
			Label:   "Productivity",
			Value:   "$" + Fixed(l.Productivity, 2),
			Tone:    toneIf(l.Productivity > th.Productivity),
			Formula: "Net Sales / Total Labor Hours",
		},
		{
			Label:   "Overtime Hours",
			Value:   f.Number(l.OvertimeHours),
			Tone:    toneIf(l.OvertimeHours <= th.OvertimeHours),
			Formula: "Overtime Hours",
		},
	}
}

func toneIf(good bool) Tone {
	if good {
		return ToneGood
	}
	return ToneBad
}
