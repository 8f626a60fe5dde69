// Package session 定义会话存储的接口边界。
// 会话由认证端点写入共享存储（Redis），认证中间件只读；
// 接口化之后测试可以用内存实现替换真实存储。
package session

import (
	"context"
	"time"
)

// Session 会话记录
// 存在即有效：会话只为当前有效、未过期的Token存在，查不到即未认证
type Session struct {
	Name  string // 用户名
	Group string // 用户组（admin/user）
}

// Store 会话存储接口（由infrastructure/persistence/redis实现）
// 设计说明：
// 1. Find查不到会话时返回(nil, nil)，由调用方按未认证处理；
//    error只表示存储本身异常（连接失败、超时）
// 2. Save/Delete仅由认证端点（登录/登出）使用，请求路径上只读
type Store interface {
	// Find 按Token查会话
	Find(ctx context.Context, token string) (*Session, error)

	// Save 写入会话并设置过期时间
	Save(ctx context.Context, token string, sess *Session, ttl time.Duration) error

	// Delete 删除会话（登出）
	Delete(ctx context.Context, token string) error
}
