package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/xiebiao/mybooks/pkg/errors"
)

// Manager Token管理器
// 设计说明：
// 1. 认证成功后签发HS256签名的访问Token，Token字符串同时作为Redis会话键的一部分
//    （"user:" + token），网关只查会话，不在请求路径上解析Token
// 2. 签名的意义在于Token不可伪造、不可枚举；会话过期由Redis TTL保证
type Manager struct {
	secret string        // 签名密钥
	expire time.Duration // Token有效期（与会话TTL一致）
}

// NewManager 创建Token管理器
func NewManager(secret string, expire time.Duration) *Manager {
	return &Manager{
		secret: secret,
		expire: expire,
	}
}

// Claims 自定义JWT Claims
// 嵌入jwt.RegisteredClaims获取标准字段（exp、iat、nbf等）
type Claims struct {
	Name  string `json:"name"`  // 用户名
	Group string `json:"group"` // 用户组（admin/user）
	jwt.RegisteredClaims
}

// GenerateToken 签发访问Token
// 返回Token字符串和有效期（秒）
func (m *Manager) GenerateToken(name, group string) (string, int64, error) {
	now := time.Now()

	claims := Claims{
		Name:  name,
		Group: group,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expire)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "mybooks",
			Subject:   name,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(m.secret))
	if err != nil {
		return "", 0, apperrors.Wrap(err, "签发Token失败")
	}

	return tokenString, int64(m.expire.Seconds()), nil
}

// Expire 返回Token有效期（用于对齐会话TTL）
func (m *Manager) Expire() time.Duration {
	return m.expire
}

// ParseToken 解析并验证Token
// 验证签名、过期时间（exp）、生效时间（nbf）
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("非法的签名算法: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}
