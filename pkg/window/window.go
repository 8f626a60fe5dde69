// Package window 提供对有序结果集的分段（分页）能力。
// 所有列表接口共用：调用方传入完整的有序结果，本包负责裁剪出
// [start, start+size) 窗口，并保留裁剪前的总数供调用方判断是否还有后续分页。
package window

// Page 分段结果
// 不变式：
// 1. 0 <= len(Results) <= SegmentSize
// 2. Start被钳制在[0, Total]内
// 3. Total恒等于裁剪前的结果总数
type Page[T any] struct {
	Results     []T `json:"results"`      // 当前分段的数据
	Start       int `json:"start"`        // 分段起始位置（钳制后）
	SegmentSize int `json:"segment_size"` // 请求的分段大小（缺省时为起始位置之后的全部）
	Total       int `json:"total"`        // 裁剪前的结果总数
}

// Paginate 对有序结果集做窗口裁剪
// 参数约定（与查询参数start/segmentSize一一对应，nil表示未提供）：
// - start缺省或为负 → 0；超过总数 → 钳制到总数（返回空分段）
// - size缺省、为零或为负 → 起始位置之后的全部
// - 窗口越过末尾 → 返回短分段，不报错
// 纯函数：不修改输入，相同输入必得相同输出
func Paginate[T any](items []T, start, size *int) Page[T] {
	total := len(items)

	s := 0
	if start != nil && *start > 0 {
		s = *start
	}
	if s > total {
		s = total
	}

	n := total - s
	if size != nil && *size > 0 {
		n = *size
	}

	end := s + n
	if end > total {
		end = total
	}

	results := make([]T, end-s)
	copy(results, items[s:end])

	return Page[T]{
		Results:     results,
		Start:       s,
		SegmentSize: n,
		Total:       total,
	}
}
