package parser

import (
	"regexp"
	"strconv"
	"strings"

	"pldash/internal/model"
)

var reSpaces = regexp.MustCompile(`\s+`)

// ParseCellValue 将单元格原始文本识别为数值 / 文本 / 空白
func ParseCellValue(s string) model.Cell {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return model.BlankCell()
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil && !isSpecialFloat(trimmed) {
		return model.NumberCell(f)
	}
	// 部分 .xls 单元格读出的是带千分位的显示值
	if stripped, ok := model.StripGrouping(trimmed); ok && stripped != trimmed {
		if f, err := strconv.ParseFloat(stripped, 64); err == nil && !isSpecialFloat(stripped) {
			return model.NumberCell(f)
		}
	}
	return model.TextCell(s)
}

// isSpecialFloat ParseFloat 能识别但不应视为数值的文本
func isSpecialFloat(s string) bool {
	switch strings.ToLower(strings.TrimLeft(s, "+-")) {
	case "nan", "inf", "infinity":
		return true
	}
	return strings.ContainsAny(s, "xX_")
}

// NormalizeHeader 规范化列名：去除换行与制表符，压缩连续空白
func NormalizeHeader(name string) string {
	name = strings.ReplaceAll(name, "\r", " ")
	name = strings.ReplaceAll(name, "\n", " ")
	name = strings.ReplaceAll(name, "\t", " ")
	return strings.TrimSpace(reSpaces.ReplaceAllString(name, " "))
}
