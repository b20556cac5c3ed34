package calculator

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"pldash/internal/model"
)

// Safe 将任意查找结果转换为有限数值，无法转换时返回 0
func Safe(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case model.Cell:
		switch x.Kind {
		case model.CellNumber:
			return finite(x.Num)
		case model.CellText:
			return parseNumber(x.Text)
		default:
			return 0
		}
	case *model.Cell:
		if x == nil {
			return 0
		}
		return Safe(*x)
	case float64:
		return finite(x)
	case float32:
		return finite(float64(x))
	case int:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case int16:
		return float64(x)
	case int8:
		return float64(x)
	case uint:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case uint16:
		return float64(x)
	case uint8:
		return float64(x)
	case json.Number:
		return parseNumber(x.String())
	case string:
		return parseNumber(x)
	default:
		return 0
	}
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s, ok := model.StripGrouping(s)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return finite(f)
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ratio 普通除法，分母为 0 时返回 0
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return finite(num / den)
}

// shareOf 占比（百分数），基数 ≤ 0 时返回 0
func shareOf(part, base float64) float64 {
	if base <= 0 {
		return 0
	}
	return finite(part / base * 100)
}

// changePercent 变化率（百分数），基数为 0 时返回 0
func changePercent(delta, base float64) float64 {
	if base == 0 {
		return 0
	}
	return finite(delta / base * 100)
}
