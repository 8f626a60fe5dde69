package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	appquery "github.com/xiebiao/mybooks/internal/application/query"
	"github.com/xiebiao/mybooks/internal/infrastructure/config"
)

// OpenLibraryClient openlibrary.org检索客户端
// 设计说明：
// 1. 公网目录服务，无需鉴权，只带User-Agent标识
// 2. 检索失败直接返回error，由上层包装成内部错误；不做降级
type OpenLibraryClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewOpenLibraryClient 创建openlibrary检索客户端
func NewOpenLibraryClient(cfg config.OpenLibraryConfig) *OpenLibraryClient {
	return &OpenLibraryClient{
		baseURL: cfg.GetBaseURL(),
		httpClient: &http.Client{
			Timeout: cfg.GetTimeout(),
		},
	}
}

// authorSearchResponse /search/authors.json响应（按需取字段）
type authorSearchResponse struct {
	NumFound int `json:"numFound"`
	Docs     []struct {
		Key         string   `json:"key"`
		Name        string   `json:"name"`
		BirthDate   string   `json:"birth_date"`
		TopSubjects []string `json:"top_subjects"`
	} `json:"docs"`
}

// SearchAuthors 按姓名检索作者目录
func (c *OpenLibraryClient) SearchAuthors(ctx context.Context, name string) ([]appquery.AuthorHit, error) {
	q := url.Values{}
	q.Set("q", name)

	var body authorSearchResponse
	if err := c.getJSON(ctx, "/search/authors.json", q, &body); err != nil {
		return nil, err
	}

	hits := make([]appquery.AuthorHit, 0, len(body.Docs))
	for _, d := range body.Docs {
		hits = append(hits, appquery.AuthorHit{
			Key:         d.Key,
			Name:        d.Name,
			BirthDate:   d.BirthDate,
			TopSubjects: d.TopSubjects,
		})
	}
	return hits, nil
}

// titleSearchResponse /search.json响应（按需取字段）
type titleSearchResponse struct {
	NumFound int `json:"numFound"`
	Docs     []struct {
		TitleSuggest     string   `json:"title_suggest"`
		Title            string   `json:"title"`
		Key              string   `json:"key"`
		AuthorKey        []string `json:"author_key"`
		AuthorName       []string `json:"author_name"`
		FirstPublishYear int      `json:"first_publish_year"`
		Isbn             []string `json:"isbn"`
		EditionKey       []string `json:"edition_key"`
		Subject          []string `json:"subject"`
	} `json:"docs"`
}

// SearchTitles 按作者/书名/ISBN检索书目，条件都可选，为空的不带
func (c *OpenLibraryClient) SearchTitles(ctx context.Context, author, title, isbn string) ([]appquery.TitleHit, error) {
	q := url.Values{}
	if author != "" {
		q.Set("author", author)
	}
	if title != "" {
		q.Set("title", title)
	}
	if isbn != "" {
		q.Set("isbn", isbn)
	}

	var body titleSearchResponse
	if err := c.getJSON(ctx, "/search.json", q, &body); err != nil {
		return nil, err
	}

	hits := make([]appquery.TitleHit, 0, len(body.Docs))
	for _, d := range body.Docs {
		t := d.TitleSuggest
		if t == "" {
			t = d.Title
		}
		hits = append(hits, appquery.TitleHit{
			Title:            t,
			WorksKey:         d.Key,
			AuthorKeys:       d.AuthorKey,
			AuthorNames:      d.AuthorName,
			FirstPublishYear: d.FirstPublishYear,
			Isbns:            d.Isbn,
			EditionKeys:      d.EditionKey,
			Subjects:         d.Subject,
		})
	}
	return hits, nil
}

// getJSON 发起GET并解析JSON响应体
func (c *OpenLibraryClient) getJSON(ctx context.Context, path string, q url.Values, out interface{}) error {
	u := fmt.Sprintf("%s%s?%s", c.baseURL, path, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("构造openlibrary请求失败: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("调用openlibrary失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// 读掉响应体让连接可复用
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("openlibrary返回状态码 %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("解析openlibrary响应失败: %w", err)
	}
	return nil
}
