package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/xiebiao/mybooks/internal/infrastructure/config"
	"github.com/xiebiao/mybooks/pkg/circuitbreaker"
)

// userAgent 调用作者服务时的标识
const userAgent = "BookAgent"

// AuthorClient 作者服务HTTP客户端
// 设计说明：
// 1. 跨服务透传调用方的Authorization头，由作者服务自行鉴权
// 2. 任何失败（网络错误、非200、解析失败）都返回error，
//    由上层决定降级策略（列表补全场景降级为空作者名）
// 3. 可选熔断器保护：下游持续故障时快速失败，不拖垮本服务
type AuthorClient struct {
	baseURL    string
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
}

// NewAuthorClient 创建作者服务客户端
func NewAuthorClient(cfg config.AuthorServiceConfig) *AuthorClient {
	c := &AuthorClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.GetTimeout(),
		},
	}

	if cfg.BreakerEnabled {
		c.breaker = circuitbreaker.NewCircuitBreaker("author-service", circuitbreaker.Config{
			Timeout: 10 * time.Second,
		})
	}

	return c
}

// authorResponse 作者服务响应信封
type authorResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"message"`
	Data struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	} `json:"data"`
}

// GetAuthorName 查询作者姓名
// authHeader为调用方请求携带的完整Authorization头，原样透传
func (c *AuthorClient) GetAuthorName(ctx context.Context, authorID uint, authHeader string) (string, error) {
	if c.breaker == nil {
		return c.getAuthorName(ctx, authorID, authHeader)
	}

	var name string
	err := c.breaker.Execute(func() error {
		var callErr error
		name, callErr = c.getAuthorName(ctx, authorID, authHeader)
		return callErr
	})
	return name, err
}

func (c *AuthorClient) getAuthorName(ctx context.Context, authorID uint, authHeader string) (string, error) {
	url := fmt.Sprintf("%s/api/v1/authors/%d", c.baseURL, authorID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("构造作者服务请求失败: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	// 向下游透传trace上下文
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("调用作者服务失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// 读掉响应体让连接可复用
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("作者服务返回状态码 %d", resp.StatusCode)
	}

	var body authorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("解析作者服务响应失败: %w", err)
	}
	if body.Code != 0 {
		return "", fmt.Errorf("作者服务业务错误: code=%d msg=%s", body.Code, body.Msg)
	}

	return body.Data.Name, nil
}
