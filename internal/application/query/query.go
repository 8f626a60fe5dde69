// Package query 对openlibrary.org的图书目录查询
//
// 设计说明：
// 1. 这是纯代理查询：结果来自上游目录，不落本地库，也不分页
// 2. 上游返回空集就是空集，不做变形重试
// 3. 作者结果按姓名排序；书名结果按ISBN数量降序（ISBN越多的版本越"主流"）
package query

import (
	"context"
	"sort"

	apperrors "github.com/xiebiao/mybooks/pkg/errors"
)

// AuthorHit 上游作者检索命中
type AuthorHit struct {
	Key         string   // OpenLibrary作者键，如OL23919A
	Name        string
	BirthDate   string
	TopSubjects []string
}

// TitleHit 上游书名检索命中
type TitleHit struct {
	Title            string
	WorksKey         string // 作品键，如/works/OL82563W
	AuthorKeys       []string
	AuthorNames      []string
	FirstPublishYear int
	Isbns            []string
	EditionKeys      []string // 版本键（OLID），封面图按它构造
	Subjects         []string
}

// Searcher openlibrary.org检索接口
type Searcher interface {
	SearchAuthors(ctx context.Context, name string) ([]AuthorHit, error)
	SearchTitles(ctx context.Context, author, title, isbn string) ([]TitleHit, error)
}

// AuthorResult 作者查询结果
type AuthorResult struct {
	Key               string   `json:"key"`
	Name              string   `json:"name"`
	BirthDate         string   `json:"birth_date,omitempty"`
	Subjects          []string `json:"subjects,omitempty"`
	AuthorImageSmall  string   `json:"author_image_small"`
	AuthorImageMedium string   `json:"author_image_medium"`
	AuthorImageLarge  string   `json:"author_image_large"`
}

// TitleResult 书名查询结果
type TitleResult struct {
	Title            string   `json:"title"`
	AuthorKey        string   `json:"author_key,omitempty"`
	AuthorName       string   `json:"author_name,omitempty"`
	WorksKey         string   `json:"works_key,omitempty"`
	FirstPublishYear int      `json:"first_publish_year,omitempty"`
	Isbns            []string `json:"isbns,omitempty"`
	OpenLibraryKeys  []string `json:"open_library_keys,omitempty"`
	Subjects         []string `json:"subjects,omitempty"`
	CoverImageSmall  string   `json:"cover_image_small"`
	CoverImageMedium string   `json:"cover_image_medium"`
	CoverImageLarge  string   `json:"cover_image_large"`
}

// QueryAuthorsUseCase 作者目录查询用例
type QueryAuthorsUseCase struct {
	searcher Searcher
}

// NewQueryAuthorsUseCase 创建作者目录查询用例
func NewQueryAuthorsUseCase(searcher Searcher) *QueryAuthorsUseCase {
	return &QueryAuthorsUseCase{searcher: searcher}
}

// Execute 按姓名（或姓名片段）查询作者目录
func (uc *QueryAuthorsUseCase) Execute(ctx context.Context, name string) ([]AuthorResult, error) {
	hits, err := uc.searcher.SearchAuthors(ctx, name)
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书目录失败")
	}

	// 姓名升序，同名按键次序，保证输出确定
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Name != hits[j].Name {
			return hits[i].Name < hits[j].Name
		}
		return hits[i].Key < hits[j].Key
	})

	results := make([]AuthorResult, 0, len(hits))
	for _, h := range hits {
		results = append(results, AuthorResult{
			Key:               h.Key,
			Name:              h.Name,
			BirthDate:         h.BirthDate,
			Subjects:          h.TopSubjects,
			AuthorImageSmall:  authorImageURL(h.Key, sizeSmall),
			AuthorImageMedium: authorImageURL(h.Key, sizeMedium),
			AuthorImageLarge:  authorImageURL(h.Key, sizeLarge),
		})
	}
	return results, nil
}

// QueryTitlesUseCase 书名目录查询用例
type QueryTitlesUseCase struct {
	searcher Searcher
}

// NewQueryTitlesUseCase 创建书名目录查询用例
func NewQueryTitlesUseCase(searcher Searcher) *QueryTitlesUseCase {
	return &QueryTitlesUseCase{searcher: searcher}
}

// QueryTitlesRequest 书名查询条件，三个条件都可选，直接透传给上游
type QueryTitlesRequest struct {
	Author string
	Title  string
	Isbn   string
}

// Execute 查询书名目录
// ISBN多的记录排前面（关联版本多，命中目标书的概率高）
func (uc *QueryTitlesUseCase) Execute(ctx context.Context, req QueryTitlesRequest) ([]TitleResult, error) {
	hits, err := uc.searcher.SearchTitles(ctx, req.Author, req.Title, req.Isbn)
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书目录失败")
	}

	results := make([]TitleResult, 0, len(hits))
	for _, h := range hits {
		r := TitleResult{
			Title:            h.Title,
			WorksKey:         h.WorksKey,
			FirstPublishYear: h.FirstPublishYear,
			Isbns:            h.Isbns,
			OpenLibraryKeys:  h.EditionKeys,
			Subjects:         h.Subjects,
			CoverImageSmall:  coverImageURL(h, sizeSmall),
			CoverImageMedium: coverImageURL(h, sizeMedium),
			CoverImageLarge:  coverImageURL(h, sizeLarge),
		}
		if len(h.AuthorKeys) > 0 {
			r.AuthorKey = h.AuthorKeys[0]
		}
		if len(h.AuthorNames) > 0 {
			r.AuthorName = h.AuthorNames[0]
		}
		results = append(results, r)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if len(results[i].Isbns) != len(results[j].Isbns) {
			return len(results[i].Isbns) > len(results[j].Isbns)
		}
		return results[i].Title < results[j].Title
	})
	return results, nil
}
