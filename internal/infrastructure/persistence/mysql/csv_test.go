package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinCSV(t *testing.T) {
	t.Run("普通值", func(t *testing.T) {
		assert.Equal(t, "fantasy,science fiction", joinCSV([]string{"fantasy", "science fiction"}))
	})

	t.Run("空切片", func(t *testing.T) {
		assert.Equal(t, "", joinCSV(nil))
		assert.Equal(t, "", joinCSV([]string{}))
	})

	t.Run("含逗号的值转义", func(t *testing.T) {
		assert.Equal(t, `"Fiction, Historical",War`, joinCSV([]string{"Fiction, Historical", "War"}))
	})

	t.Run("含引号的值转义", func(t *testing.T) {
		assert.Equal(t, `"say ""hi"""`, joinCSV([]string{`say "hi"`}))
	})
}

func TestSplitCSV(t *testing.T) {
	t.Run("普通值", func(t *testing.T) {
		assert.Equal(t, []string{"fantasy", "science fiction"}, splitCSV("fantasy,science fiction"))
	})

	t.Run("空串返回nil", func(t *testing.T) {
		assert.Nil(t, splitCSV(""))
	})

	t.Run("转义值还原", func(t *testing.T) {
		assert.Equal(t, []string{"Fiction, Historical", "War"}, splitCSV(`"Fiction, Historical",War`))
	})

	t.Run("去除首尾空白", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, splitCSV("a, b"))
	})

	t.Run("过滤空值", func(t *testing.T) {
		assert.Equal(t, []string{"a"}, splitCSV("a,,"))
	})
}

func TestCSVRoundTrip(t *testing.T) {
	cases := [][]string{
		{"0441172717", "9780441172719"},
		{"Fiction, Historical", `nested "quote"`, "plain"},
	}
	for _, values := range cases {
		assert.Equal(t, values, splitCSV(joinCSV(values)))
	}
}
