package api

import (
	"pldash/internal/model"
	"pldash/internal/present"
)

// roundMetricsInPlace 百分比与比率保留两位小数，金额保持原值
func roundMetricsInPlace(m *model.PLMetrics) {
	r := present.Round2

	m.NetSales.DeltaPercent = r(m.NetSales.DeltaPercent)
	m.SST.DeltaPercent = r(m.SST.DeltaPercent)
	m.Rent.DeltaPercent = r(m.Rent.DeltaPercent)
	m.Repairs.DeltaPercent = r(m.Repairs.DeltaPercent)
	m.Maintenance.DeltaPercent = r(m.Maintenance.DeltaPercent)

	m.OLO.OLOPercent = r(m.OLO.OLOPercent)
	m.Percentages.COGSPercent = r(m.Percentages.COGSPercent)
	m.Percentages.LaborPercent = r(m.Percentages.LaborPercent)
	m.Percentages.PrimeCost = r(m.Percentages.PrimeCost)

	m.CheckAvg.CheckAvg = r(m.CheckAvg.CheckAvg)
	m.Labor.LaborPercent = r(m.Labor.LaborPercent)
	m.Labor.TotalHours = r(m.Labor.TotalHours)
	m.Labor.Productivity = r(m.Labor.Productivity)

	m.CP.CPPercent = r(m.CP.CPPercent)
	m.RC.RestaurantPercent = r(m.RC.RestaurantPercent)
	m.FlowThru.FlowThru = r(m.FlowThru.FlowThru)
}
