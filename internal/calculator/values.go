package calculator

import "pldash/internal/model"

// ValuesMap 科目名 → 指定列单元格
type ValuesMap map[string]model.Cell

// BuildValuesMap 单次遍历数据行，取 col 列构建科目映射；第 0 列非文本的行跳过，重复科目取第一行
func BuildValuesMap(m model.Matrix, col int) ValuesMap {
	out := make(ValuesMap, len(m))
	for _, r := range m.Data() {
		if !r.HasLabel() {
			continue
		}
		if _, seen := out[r.Label]; seen {
			continue
		}
		out[r.Label] = r.Cell(col)
	}
	return out
}

// Get 取数值，缺失或非法均为 0
func (v ValuesMap) Get(label string) float64 {
	return Safe(v[label])
}

// Has 科目是否存在
func (v ValuesMap) Has(label string) bool {
	_, ok := v[label]
	return ok
}

// Values 计算器使用的取值视图
type Values struct {
	actual ValuesMap
	prior  ValuesMap
}

// NewValues 按列约定构建取值视图
func NewValues(m model.Matrix, schema Schema) Values {
	v := Values{actual: BuildValuesMap(m, schema.ActualCol)}
	if schema.PriorCol >= 1 {
		v.prior = BuildValuesMap(m, schema.PriorCol)
	}
	return v
}

// Actual 本期值
func (v Values) Actual(label string) float64 {
	return v.actual.Get(label)
}

// Has 科目是否存在
func (v Values) Has(label string) bool {
	return v.actual.Has(label)
}

// Prior 同期值：优先取 "Prior <label>" 科目的本期列，其次取 label 行的 Prior Year 列
func (v Values) Prior(label string) float64 {
	if key := PriorPrefix + label; v.actual.Has(key) {
		return v.actual.Get(key)
	}
	if v.prior != nil {
		return v.prior.Get(label)
	}
	return 0
}

// HasPrior 同期值是否有来源
func (v Values) HasPrior(label string) bool {
	if v.actual.Has(PriorPrefix + label) {
		return true
	}
	return v.prior != nil && v.prior.Has(label)
}
