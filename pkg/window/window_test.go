package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func items(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate(t *testing.T) {
	t.Run("不带参数返回全部", func(t *testing.T) {
		page := Paginate(items(10), nil, nil)

		assert.Len(t, page.Results, 10)
		assert.Equal(t, 0, page.Start)
		assert.Equal(t, 10, page.SegmentSize)
		assert.Equal(t, 10, page.Total)
	})

	t.Run("常规分段", func(t *testing.T) {
		page := Paginate(items(10), intPtr(2), intPtr(3))

		assert.Equal(t, []int{3, 4, 5}, page.Results)
		assert.Equal(t, 2, page.Start)
		assert.Equal(t, 3, page.SegmentSize)
		assert.Equal(t, 10, page.Total)
	})

	t.Run("窗口越过末尾返回短分段", func(t *testing.T) {
		page := Paginate(items(10), intPtr(8), intPtr(5))

		assert.Equal(t, []int{9, 10}, page.Results)
		assert.Equal(t, 8, page.Start)
		assert.Equal(t, 10, page.Total)
	})

	t.Run("start超过总数钳制为总数", func(t *testing.T) {
		page := Paginate(items(5), intPtr(100), intPtr(3))

		assert.Empty(t, page.Results)
		assert.Equal(t, 5, page.Start)
		assert.Equal(t, 5, page.Total)
	})

	t.Run("start为负按0处理", func(t *testing.T) {
		page := Paginate(items(5), intPtr(-3), intPtr(2))

		assert.Equal(t, []int{1, 2}, page.Results)
		assert.Equal(t, 0, page.Start)
	})

	t.Run("size为零或为负取到结尾", func(t *testing.T) {
		page := Paginate(items(5), intPtr(2), intPtr(0))
		assert.Equal(t, []int{3, 4, 5}, page.Results)
		assert.Equal(t, 3, page.SegmentSize)

		page = Paginate(items(5), intPtr(2), intPtr(-1))
		assert.Equal(t, []int{3, 4, 5}, page.Results)
	})

	t.Run("只给size不给start", func(t *testing.T) {
		page := Paginate(items(5), nil, intPtr(2))

		assert.Equal(t, []int{1, 2}, page.Results)
		assert.Equal(t, 0, page.Start)
		assert.Equal(t, 2, page.SegmentSize)
		assert.Equal(t, 5, page.Total)
	})

	t.Run("空结果集", func(t *testing.T) {
		page := Paginate([]int{}, intPtr(3), intPtr(5))

		assert.Empty(t, page.Results)
		assert.Equal(t, 0, page.Start)
		assert.Equal(t, 0, page.Total)
	})

	t.Run("Total恒为裁剪前总数", func(t *testing.T) {
		page := Paginate(items(100), intPtr(10), intPtr(10))
		assert.Equal(t, 100, page.Total)
	})

	t.Run("不修改输入切片", func(t *testing.T) {
		src := items(5)
		page := Paginate(src, intPtr(1), intPtr(2))

		page.Results[0] = 999
		assert.Equal(t, []int{1, 2, 3, 4, 5}, src)
	})
}
