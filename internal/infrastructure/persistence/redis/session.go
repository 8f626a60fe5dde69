package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/mybooks/internal/domain/session"
	apperrors "github.com/xiebiao/mybooks/pkg/errors"
)

// 会话键格式：user:<token>
// 值为Hash，字段name（用户名）、group（用户组）
// 其他服务共享同一键格式读取会话，不可随意变更
const sessionKeyPrefix = "user:"

// sessionStore 会话存储的Redis实现
type sessionStore struct {
	client *redis.Client
}

// NewSessionStore 创建会话存储
func NewSessionStore(client *redis.Client) session.Store {
	return &sessionStore{client: client}
}

// Find 按Token查会话
// 查不到（键不存在或name字段为空）返回(nil, nil)；只有存储异常才返回error
func (s *sessionStore) Find(ctx context.Context, token string) (*session.Session, error) {
	key := sessionKeyPrefix + token

	name, err := s.client.HGet(ctx, key, "name").Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, apperrors.Wrap(err, "查询会话失败")
	}
	if name == "" {
		return nil, nil
	}

	group, err := s.client.HGet(ctx, key, "group").Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, apperrors.Wrap(err, "查询会话失败")
	}

	return &session.Session{Name: name, Group: group}, nil
}

// Save 写入会话并设置过期时间
// HSet和Expire放在Pipeline里一次往返，避免写入后进程崩溃留下永不过期的键
func (s *sessionStore) Save(ctx context.Context, token string, sess *session.Session, ttl time.Duration) error {
	key := sessionKeyPrefix + token

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, "name", sess.Name, "group", sess.Group)
	pipe.Expire(ctx, key, ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrap(err, "写入会话失败")
	}
	return nil
}

// Delete 删除会话
func (s *sessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return apperrors.Wrap(err, "删除会话失败")
	}
	return nil
}
