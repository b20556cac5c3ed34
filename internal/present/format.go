package present

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter 金额 / 百分比 / 计数格式化
type Formatter struct {
	p *message.Printer
}

// NewFormatter 创建格式化器，默认 en-US 千分位
func NewFormatter(tag language.Tag) Formatter {
	return Formatter{p: message.NewPrinter(tag)}
}

var defaultFormatter = NewFormatter(language.AmericanEnglish)

// Money $1,234.5 形式，最多两位小数
func (f Formatter) Money(v float64) string {
	return "$" + f.grouped(v, 2)
}

// Number 千分位数值，最多两位小数
func (f Formatter) Number(v float64) string {
	return f.grouped(v, 2)
}

// Percent 两位小数百分比
func (f Formatter) Percent(v float64) string {
	return Fixed(v, 2) + "%"
}

// Count 四舍五入后的千分位整数
func (f Formatter) Count(v float64) string {
	return f.p.Sprintf("%d", toDecimal(v).Round(0).IntPart())
}

func (f Formatter) grouped(v float64, places int32) string {
	d := toDecimal(v).Round(places)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	intPart := d.Truncate(0)
	out := sign + f.p.Sprintf("%d", intPart.IntPart())

	frac := d.Sub(intPart).StringFixed(places) // "0.50"
	frac = strings.TrimRight(strings.TrimPrefix(frac, "0"), "0")
	if frac != "." && frac != "" {
		out += frac
	}
	return out
}

// Fixed 固定小数位
func Fixed(v float64, places int32) string {
	return toDecimal(v).StringFixed(places)
}

// Round2 四舍五入到两位小数
func Round2(v float64) float64 {
	return toDecimal(v).Round(2).InexactFloat64()
}

func toDecimal(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
