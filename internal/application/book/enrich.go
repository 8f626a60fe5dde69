package book

import (
	"context"
	"log"
	"sync"

	"github.com/xiebiao/mybooks/pkg/metrics"
)

// AuthorNameResolver 作者名解析接口（由infrastructure/client实现）
// authHeader为调用方请求的Authorization头，跨服务透传
type AuthorNameResolver interface {
	GetAuthorName(ctx context.Context, authorID uint, authHeader string) (string, error)
}

// enrichAuthorNames 为图书视图补全作者名
// 设计说明：
// 1. 补全是尽力而为：单条失败只记日志、作者名留空，不影响整个列表返回
// 2. 每条并发调用作者服务，全部完成后才返回
// 3. 补全发生在分页截取之前，不影响分页语义
func enrichAuthorNames(ctx context.Context, resolver AuthorNameResolver, views []BookView, authHeader string) {
	if resolver == nil || len(views) == 0 {
		return
	}

	var wg sync.WaitGroup
	for i := range views {
		wg.Add(1)
		go func(v *BookView) {
			defer wg.Done()
			v.AuthorName = resolveAuthorName(ctx, resolver, v.AuthorID, authHeader)
		}(&views[i])
	}
	wg.Wait()
}

// resolveAuthorName 查询单个作者名，失败降级为空串
func resolveAuthorName(ctx context.Context, resolver AuthorNameResolver, authorID uint, authHeader string) string {
	name, err := resolver.GetAuthorName(ctx, authorID, authHeader)
	if err != nil {
		metrics.EnrichmentFailuresTotal.Inc()
		log.Printf("[WARN] 补全作者名失败 authorID=%d: %v", authorID, err)
		return ""
	}
	return name
}
