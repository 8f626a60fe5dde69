package query

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/mybooks/pkg/errors"
)

// fakeSearcher 可注入结果和错误的检索桩
type fakeSearcher struct {
	authors []AuthorHit
	titles  []TitleHit
	err     error

	authorCalls int
	titleCalls  int
}

func (f *fakeSearcher) SearchAuthors(ctx context.Context, name string) ([]AuthorHit, error) {
	f.authorCalls++
	return f.authors, f.err
}

func (f *fakeSearcher) SearchTitles(ctx context.Context, author, title, isbn string) ([]TitleHit, error) {
	f.titleCalls++
	return f.titles, f.err
}

func TestQueryAuthorsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("结果按姓名排序并带三档头像地址", func(t *testing.T) {
		searcher := &fakeSearcher{authors: []AuthorHit{
			{Key: "OL2A", Name: "Ursula K. Le Guin", BirthDate: "21 October 1929"},
			{Key: "OL1A", Name: "Isaac Asimov", TopSubjects: []string{"Science fiction"}},
		}}
		uc := NewQueryAuthorsUseCase(searcher)

		results, err := uc.Execute(ctx, "a")
		require.NoError(t, err)
		require.Len(t, results, 2)

		assert.Equal(t, "Isaac Asimov", results[0].Name)
		assert.Equal(t, "Ursula K. Le Guin", results[1].Name)
		assert.Equal(t, []string{"Science fiction"}, results[0].Subjects)
		assert.Equal(t, "https://covers.openlibrary.org/a/olid/OL1A-S.jpg", results[0].AuthorImageSmall)
		assert.Equal(t, "https://covers.openlibrary.org/a/olid/OL1A-M.jpg", results[0].AuthorImageMedium)
		assert.Equal(t, "https://covers.openlibrary.org/a/olid/OL1A-L.jpg", results[0].AuthorImageLarge)
	})

	t.Run("上游空结果只查一次且返回空集", func(t *testing.T) {
		searcher := &fakeSearcher{}
		uc := NewQueryAuthorsUseCase(searcher)

		results, err := uc.Execute(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, results)
		assert.Equal(t, 1, searcher.authorCalls)
	})

	t.Run("无作者键时头像地址为空", func(t *testing.T) {
		searcher := &fakeSearcher{authors: []AuthorHit{{Name: "Anonymous"}}}
		uc := NewQueryAuthorsUseCase(searcher)

		results, err := uc.Execute(ctx, "anon")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Empty(t, results[0].AuthorImageSmall)
	})

	t.Run("上游失败映射为内部错误", func(t *testing.T) {
		searcher := &fakeSearcher{err: errors.New("connection refused")}
		uc := NewQueryAuthorsUseCase(searcher)

		_, err := uc.Execute(ctx, "a")
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus())
	})
}

func TestQueryTitlesUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("按ISBN数量降序_首个作者键和版本键生效", func(t *testing.T) {
		searcher := &fakeSearcher{titles: []TitleHit{
			{
				Title:       "The Left Hand of Darkness",
				WorksKey:    "/works/OL1W",
				AuthorKeys:  []string{"OL2A", "OL9A"},
				AuthorNames: []string{"Ursula K. Le Guin"},
				Isbns:       []string{"111"},
				EditionKeys: []string{"OL1M", "OL2M"},
			},
			{
				Title:       "Foundation",
				WorksKey:    "/works/OL2W",
				AuthorKeys:  []string{"OL1A"},
				AuthorNames: []string{"Isaac Asimov"},
				Isbns:       []string{"222", "333", "444"},
				EditionKeys: []string{"OL3M"},
			},
		}}
		uc := NewQueryTitlesUseCase(searcher)

		results, err := uc.Execute(ctx, QueryTitlesRequest{Author: "asimov"})
		require.NoError(t, err)
		require.Len(t, results, 2)

		// ISBN多的排前面
		assert.Equal(t, "Foundation", results[0].Title)
		assert.Equal(t, "OL1A", results[0].AuthorKey)
		assert.Equal(t, "Isaac Asimov", results[0].AuthorName)
		assert.Equal(t, "https://covers.openlibrary.org/b/olid/OL3M-M.jpg", results[0].CoverImageMedium)
		assert.Equal(t, "OL2A", results[1].AuthorKey)
	})

	t.Run("同ISBN数按书名排序保证输出确定", func(t *testing.T) {
		searcher := &fakeSearcher{titles: []TitleHit{
			{Title: "Beta", Isbns: []string{"1"}},
			{Title: "Alpha", Isbns: []string{"2"}},
		}}
		uc := NewQueryTitlesUseCase(searcher)

		results, err := uc.Execute(ctx, QueryTitlesRequest{Title: "a"})
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "Alpha", results[0].Title)
		assert.Equal(t, "Beta", results[1].Title)
	})

	t.Run("无版本键时封面退回ISBN", func(t *testing.T) {
		searcher := &fakeSearcher{titles: []TitleHit{
			{Title: "Bare", Isbns: []string{"9780441007318"}},
		}}
		uc := NewQueryTitlesUseCase(searcher)

		results, err := uc.Execute(ctx, QueryTitlesRequest{Isbn: "9780441007318"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "https://covers.openlibrary.org/b/isbn/9780441007318-S.jpg", results[0].CoverImageSmall)
	})

	t.Run("版本键和ISBN都没有时封面为空", func(t *testing.T) {
		searcher := &fakeSearcher{titles: []TitleHit{{Title: "Ghost"}}}
		uc := NewQueryTitlesUseCase(searcher)

		results, err := uc.Execute(ctx, QueryTitlesRequest{Title: "ghost"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Empty(t, results[0].CoverImageLarge)
	})

	t.Run("上游失败映射为内部错误", func(t *testing.T) {
		searcher := &fakeSearcher{err: errors.New("timeout")}
		uc := NewQueryTitlesUseCase(searcher)

		_, err := uc.Execute(ctx, QueryTitlesRequest{Title: "x"})
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus())
	})
}
