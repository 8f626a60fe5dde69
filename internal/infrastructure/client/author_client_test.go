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

func TestAuthorClient_GetAuthorName(t *testing.T) {
	t.Run("正常返回作者名", func(t *testing.T) {
		var gotAuth, gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotUA = r.Header.Get("User-Agent")
			assert.Equal(t, "/api/v1/authors/42", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"code":0,"message":"success","data":{"id":42,"name":"Frank Herbert"}}`))
		}))
		defer srv.Close()

		c := NewAuthorClient(config.AuthorServiceConfig{BaseURL: srv.URL})

		name, err := c.GetAuthorName(context.Background(), 42, "Bearer abc123")
		require.NoError(t, err)
		assert.Equal(t, "Frank Herbert", name)

		// 调用方凭证和服务标识透传给下游
		assert.Equal(t, "Bearer abc123", gotAuth)
		assert.Equal(t, "BookAgent", gotUA)
	})

	t.Run("非200状态码返回错误", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		c := NewAuthorClient(config.AuthorServiceConfig{BaseURL: srv.URL})

		_, err := c.GetAuthorName(context.Background(), 99, "Bearer abc123")
		assert.Error(t, err)
	})

	t.Run("业务错误码返回错误", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"code":40403,"message":"作者不存在"}`))
		}))
		defer srv.Close()

		c := NewAuthorClient(config.AuthorServiceConfig{BaseURL: srv.URL})

		_, err := c.GetAuthorName(context.Background(), 99, "")
		assert.Error(t, err)
	})

	t.Run("下游不可达返回错误", func(t *testing.T) {
		c := NewAuthorClient(config.AuthorServiceConfig{BaseURL: "http://127.0.0.1:1"})

		_, err := c.GetAuthorName(context.Background(), 1, "")
		assert.Error(t, err)
	})
}
