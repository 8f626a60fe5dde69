package user

import (
	"context"

	"github.com/xiebiao/mybooks/internal/domain/session"
	"github.com/xiebiao/mybooks/internal/domain/user"
	"github.com/xiebiao/mybooks/pkg/jwt"
)

// LoginUseCase 用户登录（签发Token）用例
// 设计说明：
// 1. 验证用户名密码
// 2. 签发JWT作为Token字符串
// 3. 以user:<token>为键写入会话Hash（name/group字段），TTL与Token有效期一致
// 4. 请求路径上的认证只查会话，不解析JWT：登出删除会话即立刻失效
type LoginUseCase struct {
	userService  user.Service
	jwtManager   *jwt.Manager
	sessionStore session.Store
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(
	userService user.Service,
	jwtManager *jwt.Manager,
	sessionStore session.Store,
) *LoginUseCase {
	return &LoginUseCase{
		userService:  userService,
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
	}
}

// LoginRequest 登录请求DTO
type LoginRequest struct {
	Name     string
	Password string
}

// LoginResponse 登录响应DTO
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"` // Token有效期（秒）
	Name      string `json:"name"`
	UserGroup string `json:"user_group"`
}

// Execute 执行登录
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	// 1. 验证用户名密码（失败统一返回401，不区分用户不存在/密码错误）
	u, err := uc.userService.Authenticate(ctx, req.Name, req.Password)
	if err != nil {
		return nil, err
	}

	// 2. 签发Token
	token, expiresIn, err := uc.jwtManager.GenerateToken(u.Name, u.UserGroup)
	if err != nil {
		return nil, err
	}

	// 3. 写入会话（写失败则登录失败：认证中间件只认会话）
	sess := &session.Session{Name: u.Name, Group: u.UserGroup}
	if err := uc.sessionStore.Save(ctx, token, sess, uc.jwtManager.Expire()); err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		Name:      u.Name,
		UserGroup: u.UserGroup,
	}, nil
}

// LogoutUseCase 用户登出（吊销Token）用例
type LogoutUseCase struct {
	sessionStore session.Store
}

// NewLogoutUseCase 创建登出用例
func NewLogoutUseCase(sessionStore session.Store) *LogoutUseCase {
	return &LogoutUseCase{sessionStore: sessionStore}
}

// Execute 执行登出
// 删除会话后该Token立刻失效，无论JWT本身是否过期
func (uc *LogoutUseCase) Execute(ctx context.Context, token string) error {
	return uc.sessionStore.Delete(ctx, token)
}
