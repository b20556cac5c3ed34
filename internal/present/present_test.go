package present

import (
	"math"
	"testing"

	"pldash/internal/model"
)

func TestFormatter(t *testing.T) {
	f := defaultFormatter
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"整数金额", f.Money(1234567), "$1,234,567"},
		{"小数金额", f.Money(1234.5), "$1,234.5"},
		{"两位舍入", f.Money(0.125), "$0.13"},
		{"负金额", f.Money(-2500), "$-2,500"},
		{"零", f.Money(0), "$0"},
		{"百分比", f.Percent(28), "28.00%"},
		{"百分比舍入", f.Percent(11.1111), "11.11%"},
		{"非法百分比", f.Percent(math.NaN()), "0.00%"},
		{"计数", f.Count(40000.4), "40,000"},
		{"固定小数", Fixed(12.5, 2), "12.50"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{11.1111, 11.11},
		{2.675, 2.68},
		{-0.005, -0.01},
		{math.Inf(1), 0},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func sampleMetrics() model.PLMetrics {
	return model.PLMetrics{
		NetSales: model.Comparison{Actual: 500000, Prior: 450000, Delta: 50000, DeltaPercent: 11.11},
		Dayparts: model.DaypartMetrics{
			Dayparts: []model.DaypartShare{
				{Label: "Breakfast %", Value: 5},
				{Label: "Lunch %", Value: 40},
				{Label: "Afternoon %", Value: 15},
				{Label: "Evening %", Value: 40},
			},
			BusiestLabel: "Lunch %",
			BusiestValue: 40,
		},
		Percentages: model.CostPercentages{COGSPercent: 30, LaborPercent: 31, PrimeCost: 61, COGS: 150000},
		Labor:       model.LaborMetrics{LaborPercent: 31, Productivity: 71.43, OvertimeHours: 3},
		CP:          model.ControllableProfit{CP: 140000, CPPrior: 150000, CPChange: -10000, AdjustedCP: 143000},
		FlowThru:    model.FlowThru{FlowThru: 40},
	}
}

func findCard(t *testing.T, sections []Section, key, label string) Card {
	t.Helper()
	for _, s := range sections {
		if s.Key != key {
			continue
		}
		for _, c := range s.Cards {
			if c.Label == label {
				return c
			}
		}
	}
	t.Fatalf("card %s/%s not found", key, label)
	return Card{}
}

func TestBuildSections(t *testing.T) {
	sections := BuildSections(sampleMetrics(), DefaultThresholds())

	keys := []string{"sales", "dayparts", "financials", "cp_rc", "facility", "labor"}
	if len(sections) != len(keys) {
		t.Fatalf("sections = %d, want %d", len(sections), len(keys))
	}
	for i, k := range keys {
		if sections[i].Key != k {
			t.Errorf("section %d = %s, want %s", i, sections[i].Key, k)
		}
	}

	tones := []struct {
		key, label string
		want       Tone
	}{
		{"sales", "Net Sales", ToneGood},
		{"financials", "Prime Cost", ToneBad},
		{"financials", "COGS %", ToneBad},
		{"financials", "Flow Thru %", ToneGood},
		{"cp_rc", "Controllable Profit $", ToneBad},
		{"labor", "Labor %", ToneBad},
		{"labor", "Productivity", ToneBad},
		{"labor", "Overtime Hours", ToneGood},
	}
	for _, tt := range tones {
		if got := findCard(t, sections, tt.key, tt.label).Tone; got != tt.want {
			t.Errorf("%s tone = %s, want %s", tt.label, got, tt.want)
		}
	}

	if got := findCard(t, sections, "cp_rc", "Adjusted CP").Value; got != "$143,000" {
		t.Errorf("Adjusted CP = %s", got)
	}
	if got := findCard(t, sections, "sales", "Net Sales").Delta; got != "Δ $50,000 (11.11%)" {
		t.Errorf("Net Sales delta = %s", got)
	}

	badges := 0
	for _, c := range sections[1].Cards {
		if c.Badge == BadgeBusiest {
			badges++
			if c.Label != "Lunch %" {
				t.Errorf("busiest badge on %s", c.Label)
			}
		}
	}
	if badges != 1 {
		t.Errorf("busiest badges = %d, want 1", badges)
	}
}
