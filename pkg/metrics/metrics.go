// Package metrics 提供基于Prometheus的指标收集
//
// 指标设计：
// - http_requests_total: HTTP请求总数（Counter，按method/path/status分组）
// - http_request_duration_seconds: HTTP请求耗时分布（Histogram）
// - session_lookups_total: 会话存储查询总数（Counter，按result分组）
// - enrichment_failures_total: 作者名补全失败总数（Counter）
//
// 指标在包加载时注册到默认Registry，通过 /metrics 端点暴露，
// 由Prometheus Server定期抓取。
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal HTTP请求总数
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration HTTP请求耗时（自动计算P50/P90/P99）
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency distribution.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// SessionLookupsTotal 会话查询总数
	// result取值：hit（命中）、miss（无会话）、error（存储异常）
	SessionLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_lookups_total",
			Help: "Total number of session store lookups.",
		},
		[]string{"result"},
	)

	// EnrichmentFailuresTotal 作者名补全失败总数
	// 补全失败按策略降级为空字段，不影响响应，但需要可观测
	EnrichmentFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "enrichment_failures_total",
			Help: "Total number of failed author name enrichments.",
		},
	)
)

// Handler 返回/metrics端点的HTTP处理器
func Handler() http.Handler {
	return promhttp.Handler()
}
