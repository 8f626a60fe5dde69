package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/mybooks/internal/domain/session"
	apperrors "github.com/xiebiao/mybooks/pkg/errors"
	"github.com/xiebiao/mybooks/pkg/metrics"
	"github.com/xiebiao/mybooks/pkg/response"
)

// Context键定义
const (
	ctxKeyPrincipal  = "principal"   // 认证主体
	ctxKeyAuthHeader = "auth_header" // 原始Authorization头（跨服务透传用）
)

const bearerScheme = "Bearer"

// Principal 认证主体（认证通过后注入Context，只读）
type Principal struct {
	Username string
	Role     string
}

// IsAdmin 是否admin用户组
func (p Principal) IsAdmin() bool {
	return p.Role == "admin"
}

// AuthMiddleware Token认证中间件
// 设计说明：
// 1. 从Authorization头提取Bearer Token
// 2. 以user:<token>为键查共享会话存储，查到即认证通过
// 3. 不在请求路径上解析JWT：会话被删除（登出）后Token立刻失效
// 4. 会话存储异常按未认证处理（fail closed），不放行
type AuthMiddleware struct {
	store         session.Store
	lookupTimeout time.Duration
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(store session.Store, lookupTimeout time.Duration) *AuthMiddleware {
	return &AuthMiddleware{
		store:         store,
		lookupTimeout: lookupTimeout,
	}
}

// RequireAuth 要求认证
// 使用方式：
//
//	authorized := r.Group("/api/v1")
//	authorized.Use(authMiddleware.RequireAuth())
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 提取Token
		// 格式：Authorization: Bearer <token>（Bearer后至少一个空白字符）
		authHeader := c.GetHeader("Authorization")
		token, ok := extractBearerToken(authHeader)
		if !ok {
			response.Error(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		// 2. 查会话（带独立超时，避免存储抖动拖住请求）
		ctx, cancel := context.WithTimeout(c.Request.Context(), m.lookupTimeout)
		defer cancel()

		sess, err := m.store.Find(ctx, token)
		if err != nil {
			// 存储异常不放行
			metrics.SessionLookupsTotal.WithLabelValues("error").Inc()
			response.Error(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}
		if sess == nil {
			metrics.SessionLookupsTotal.WithLabelValues("miss").Inc()
			response.Error(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}
		metrics.SessionLookupsTotal.WithLabelValues("hit").Inc()

		// 3. 注入认证主体和原始Authorization头
		c.Set(ctxKeyPrincipal, Principal{Username: sess.Name, Role: sess.Group})
		c.Set(ctxKeyAuthHeader, authHeader)

		c.Next()
	}
}

// RequireRole 要求指定用户组（需在RequireAuth之后使用）
func (m *AuthMiddleware) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok || p.Role != role {
			response.Error(c, apperrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

// extractBearerToken 解析Bearer Token
// 要求：以"Bearer"开头，紧跟至少一个空白字符，之后为非空Token
func extractBearerToken(authHeader string) (string, bool) {
	if !strings.HasPrefix(authHeader, bearerScheme) {
		return "", false
	}

	rest := authHeader[len(bearerScheme):]
	if rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		// "Bearerxyz"这种没有分隔符的不算
		return "", false
	}

	token := strings.TrimSpace(rest)
	if token == "" {
		return "", false
	}
	return token, true
}

// GetPrincipal 从Context取认证主体
func GetPrincipal(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(ctxKeyPrincipal)
	if !exists {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

// GetAuthHeader 从Context取原始Authorization头
func GetAuthHeader(c *gin.Context) string {
	return c.GetString(ctxKeyAuthHeader)
}

// GetBearerToken 从Context的Authorization头里取Token本体（登出时用）
func GetBearerToken(c *gin.Context) string {
	token, _ := extractBearerToken(GetAuthHeader(c))
	return token
}
