package calculator

import "pldash/internal/model"

func compare(actual, prior float64) model.Comparison {
	delta := actual - prior
	return model.Comparison{
		Actual:       actual,
		Prior:        prior,
		Delta:        delta,
		DeltaPercent: changePercent(delta, prior),
	}
}

// CalcNetSales 净销售额同比
func CalcNetSales(v Values) model.Comparison {
	return compare(v.Actual(LabelNetSales), v.Prior(LabelNetSales))
}

// CalcSST 同店交易笔数同比
func CalcSST(v Values) model.Comparison {
	return compare(v.Actual(LabelTotalTransactions), v.Prior(LabelTotalTransactions))
}

// CalcCheckAverage 客单价 = 净销售额 / 交易笔数
func CalcCheckAverage(v Values) model.CheckAverage {
	netSales := v.Actual(LabelNetSales)
	transactions := v.Actual(LabelTotalTransactions)

	checkAvg := 0.0
	if transactions > 0 {
		checkAvg = ratio(netSales, transactions)
	}
	return model.CheckAverage{
		CheckAvg:     checkAvg,
		Transactions: transactions,
	}
}

// CalcOLO 线上点单占比 = (第三方 + Panda 数字渠道) / 净销售额
func CalcOLO(v Values) model.OLOMetrics {
	netSales := v.Actual(LabelNetSales)
	thirdParty := v.Actual(LabelThirdPartyDigital)
	panda := v.Actual(LabelPandaDigital)

	return model.OLOMetrics{
		OLOPercent:   shareOf(thirdParty+panda, netSales),
		ThirdParty:   thirdParty,
		PandaDigital: panda,
	}
}

// CalcDayparts 时段占比；最大值并列时取 DaypartLabels 中靠前者
func CalcDayparts(v Values) model.DaypartMetrics {
	out := model.DaypartMetrics{
		Dayparts: make([]model.DaypartShare, 0, len(DaypartLabels)),
	}
	for i, label := range DaypartLabels {
		share := model.DaypartShare{Label: label, Value: v.Actual(label)}
		out.Dayparts = append(out.Dayparts, share)
		if i == 0 || share.Value > out.BusiestValue {
			out.BusiestLabel = share.Label
			out.BusiestValue = share.Value
		}
	}
	return out
}

// CalcLabor 人工成本：Total Labor = 直接人工 + 管理人工 + 税费福利
// 三个明细科目都缺失时退回表格中的 Total Labor 行
func CalcLabor(v Values) model.LaborMetrics {
	direct := v.Actual(LabelDirectLabor)
	mgmt := v.Actual(LabelMgmtLabor)
	tax := v.Actual(LabelTaxesBenefits)

	total := direct + mgmt + tax
	if !v.Has(LabelDirectLabor) && !v.Has(LabelMgmtLabor) && !v.Has(LabelTaxesBenefits) {
		total = v.Actual(LabelTotalLabor)
	}

	netSales := v.Actual(LabelNetSales)
	wage := v.Actual(LabelHourlyWage)

	hours := 0.0
	if wage > 0 {
		hours = ratio(total, wage)
	}
	productivity := 0.0
	if hours > 0 {
		productivity = ratio(netSales, hours)
	}

	return model.LaborMetrics{
		Direct:           direct,
		Management:       mgmt,
		TaxesAndBenefits: tax,
		TotalLabor:       total,
		HourlyWage:       wage,
		OvertimeHours:    v.Actual(LabelOvertimeHours),
		LaborPercent:     shareOf(total, netSales),
		TotalHours:       hours,
		Productivity:     productivity,
	}
}

// CalcCostPercentages COGS%、Labor% 与 Prime Cost
func CalcCostPercentages(v Values, labor model.LaborMetrics) model.CostPercentages {
	netSales := v.Actual(LabelNetSales)
	cogs := v.Actual(LabelCOGS)

	cogsPercent := shareOf(cogs, netSales)
	laborPercent := shareOf(labor.TotalLabor, netSales)
	return model.CostPercentages{
		COGSPercent:  cogsPercent,
		LaborPercent: laborPercent,
		PrimeCost:    cogsPercent + laborPercent,
		COGS:         cogs,
		TotalLabor:   labor.TotalLabor,
	}
}

// CalcRent 租金明细合计的本期/同期对比
func CalcRent(v Values) model.Comparison {
	var actual, prior float64
	for _, k := range RentLabels {
		actual += v.Actual(k)
		prior += v.Prior(k)
	}
	return compare(actual, prior)
}

// CalcRepairs 维修费本期/同期对比
func CalcRepairs(v Values) model.Comparison {
	return compare(v.Actual(LabelRepairs), v.Prior(LabelRepairs))
}

// CalcMaintenance 保养费本期/同期对比
func CalcMaintenance(v Values) model.Comparison {
	return compare(v.Actual(LabelMaintenance), v.Prior(LabelMaintenance))
}

// CalcControllableProfit CP = 净销售额 − (COGS + 人工 + 可控费用 + 广告)
// 广告取 Controllable Profit 行之前最后一行 Advertising 的 Actual 列
func CalcControllableProfit(v Values, m model.Matrix, actualIdx int, labor model.LaborMetrics) model.ControllableProfit {
	netSales := v.Actual(LabelNetSales)
	cogs := v.Actual(LabelCOGS)
	controllables := v.Actual(LabelTotalControllables)
	advertising := AdvertisingBeforeCP(m, actualIdx)

	cp := netSales - (cogs + labor.TotalLabor + controllables + advertising)
	cpPrior := v.Prior(LabelControllableProfit)
	bonus := v.Actual(LabelBonus)
	wc := v.Actual(LabelWorkersComp)

	return model.ControllableProfit{
		CP:            cp,
		CPPrior:       cpPrior,
		CPChange:      cp - cpPrior,
		CPPercent:     shareOf(cp, netSales),
		Advertising:   advertising,
		Controllables: controllables,
		Bonus:         bonus,
		WorkersComp:   wc,
		AdjustedCP:    cp + bonus + wc,
	}
}

// CalcRestaurantContribution RC = CP − 固定成本
func CalcRestaurantContribution(cp float64, v Values) model.RestaurantContribution {
	fixed := v.Actual(LabelTotalFixedCost)
	rc := cp - fixed
	return model.RestaurantContribution{
		Restaurant:        rc,
		RestaurantPercent: shareOf(rc, v.Actual(LabelNetSales)),
		Fixed:             fixed,
	}
}

// CalcCashFlow 现金流 = RC + 摊销 + 折旧
func CalcCashFlow(rc float64, v Values) model.CashFlow {
	amort := v.Actual(LabelAmortization)
	depr := v.Actual(LabelDepreciation)
	return model.CashFlow{
		CashFlow:     rc + amort + depr,
		Amortization: amort,
		Depreciation: depr,
	}
}

// CalcFlowThru Flow-Thru% = ΔCP / Δ净销售额 × 100
func CalcFlowThru(cp float64, v Values) model.FlowThru {
	deltaCP := cp - v.Prior(LabelControllableProfit)
	deltaNetSales := v.Actual(LabelNetSales) - v.Prior(LabelNetSales)
	return model.FlowThru{
		FlowThru:      changePercent(deltaCP, deltaNetSales),
		DeltaCP:       deltaCP,
		DeltaNetSales: deltaNetSales,
	}
}
