package mysql

import (
	"encoding/csv"
	"strings"
)

// joinCSV 将多值字段编码为单行CSV文本
// 值中含逗号、引号、换行时按CSV规则加引号转义，保证往返无损
func joinCSV(values []string) string {
	if len(values) == 0 {
		return ""
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	// 单行写入不会出错，错误只可能来自底层Writer
	_ = w.Write(values)
	w.Flush()

	// csv.Writer追加换行符，存储时去掉
	return strings.TrimRight(sb.String(), "\n")
}

// splitCSV 解码CSV文本为多值字段
// 空串返回nil；解析失败时退化为按逗号切分，避免脏数据导致读取失败
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}

	r := csv.NewReader(strings.NewReader(s))
	r.TrimLeadingSpace = true
	record, err := r.Read()
	if err != nil {
		record = strings.Split(s, ",")
	}

	out := make([]string, 0, len(record))
	for _, v := range record {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
