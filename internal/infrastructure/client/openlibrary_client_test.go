package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/mybooks/internal/infrastructure/config"
)

func TestOpenLibraryClient_SearchAuthors(t *testing.T) {
	t.Run("成功解析作者检索结果", func(t *testing.T) {
		var gotPath, gotQuery, gotUA string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.Query().Get("q")
			gotUA = r.Header.Get("User-Agent")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"numFound": 1,
				"docs": [
					{"key": "OL23919A", "name": "J. K. Rowling", "birth_date": "31 July 1965",
					 "top_subjects": ["Fantasy fiction", "Magic"]}
				]
			}`))
		}))
		defer server.Close()

		c := NewOpenLibraryClient(config.OpenLibraryConfig{BaseURL: server.URL})
		hits, err := c.SearchAuthors(context.Background(), "rowling")
		require.NoError(t, err)

		assert.Equal(t, "/search/authors.json", gotPath)
		assert.Equal(t, "rowling", gotQuery)
		assert.Equal(t, "BookAgent", gotUA)
		require.Len(t, hits, 1)
		assert.Equal(t, "OL23919A", hits[0].Key)
		assert.Equal(t, "J. K. Rowling", hits[0].Name)
		assert.Equal(t, "31 July 1965", hits[0].BirthDate)
		assert.Equal(t, []string{"Fantasy fiction", "Magic"}, hits[0].TopSubjects)
	})

	t.Run("非200状态码返回错误", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		c := NewOpenLibraryClient(config.OpenLibraryConfig{BaseURL: server.URL})
		_, err := c.SearchAuthors(context.Background(), "rowling")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
	})

	t.Run("上游不可达返回错误", func(t *testing.T) {
		c := NewOpenLibraryClient(config.OpenLibraryConfig{BaseURL: "http://127.0.0.1:1"})
		_, err := c.SearchAuthors(context.Background(), "rowling")
		require.Error(t, err)
	})
}

func TestOpenLibraryClient_SearchTitles(t *testing.T) {
	t.Run("只携带非空条件并解析书目字段", func(t *testing.T) {
		var gotQuery map[string][]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"numFound": 1,
				"docs": [
					{"title_suggest": "Foundation", "key": "/works/OL46125W",
					 "author_key": ["OL34221A"], "author_name": ["Isaac Asimov"],
					 "first_publish_year": 1951,
					 "isbn": ["9780553293357", "0553293354"],
					 "edition_key": ["OL7360698M"],
					 "subject": ["Science fiction"]}
				]
			}`))
		}))
		defer server.Close()

		c := NewOpenLibraryClient(config.OpenLibraryConfig{BaseURL: server.URL})
		hits, err := c.SearchTitles(context.Background(), "asimov", "foundation", "")
		require.NoError(t, err)

		assert.Equal(t, "asimov", gotQuery["author"][0])
		assert.Equal(t, "foundation", gotQuery["title"][0])
		assert.NotContains(t, gotQuery, "isbn")

		require.Len(t, hits, 1)
		assert.Equal(t, "Foundation", hits[0].Title)
		assert.Equal(t, "/works/OL46125W", hits[0].WorksKey)
		assert.Equal(t, []string{"OL34221A"}, hits[0].AuthorKeys)
		assert.Equal(t, 1951, hits[0].FirstPublishYear)
		assert.Equal(t, []string{"OL7360698M"}, hits[0].EditionKeys)
	})

	t.Run("缺少title_suggest时退回title字段", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"numFound": 1, "docs": [{"title": "Dune", "key": "/works/OL893415W"}]}`))
		}))
		defer server.Close()

		c := NewOpenLibraryClient(config.OpenLibraryConfig{BaseURL: server.URL})
		hits, err := c.SearchTitles(context.Background(), "", "dune", "")
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, "Dune", hits[0].Title)
	})

	t.Run("响应体不是JSON返回错误", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>gateway error</html>"))
		}))
		defer server.Close()

		c := NewOpenLibraryClient(config.OpenLibraryConfig{BaseURL: server.URL})
		_, err := c.SearchTitles(context.Background(), "", "dune", "")
		require.Error(t, err)
	})
}
