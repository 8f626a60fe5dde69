package user

import (
	"context"

	"github.com/xiebiao/mybooks/internal/domain/user"
	"github.com/xiebiao/mybooks/pkg/window"
)

// =========================================
// 用户管理用例集合
// =========================================

// UserView 用户视图DTO（不含密码散列）
type UserView struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	UserGroup string `json:"user_group"`
}

func toUserView(u *user.User) UserView {
	return UserView{ID: u.ID, Name: u.Name, UserGroup: u.UserGroup}
}

// CreateUserUseCase 用户创建用例
type CreateUserUseCase struct {
	userService user.Service
}

// NewCreateUserUseCase 创建用户创建用例
func NewCreateUserUseCase(userService user.Service) *CreateUserUseCase {
	return &CreateUserUseCase{userService: userService}
}

// CreateUserRequest 创建请求DTO
type CreateUserRequest struct {
	Name      string
	UserGroup string // 空串默认为"user"
	Password  string
}

// Execute 执行用户创建（用户名重复返回409）
func (uc *CreateUserUseCase) Execute(ctx context.Context, req CreateUserRequest) (*UserView, error) {
	created, err := uc.userService.CreateUser(ctx, req.Name, req.UserGroup, req.Password)
	if err != nil {
		return nil, err
	}
	view := toUserView(created)
	return &view, nil
}

// GetUserUseCase 用户详情用例
type GetUserUseCase struct {
	userService user.Service
}

// NewGetUserUseCase 创建用户详情用例
func NewGetUserUseCase(userService user.Service) *GetUserUseCase {
	return &GetUserUseCase{userService: userService}
}

// Execute 执行详情查询（不存在返回404）
func (uc *GetUserUseCase) Execute(ctx context.Context, name string) (*UserView, error) {
	u, err := uc.userService.GetUser(ctx, name)
	if err != nil {
		return nil, err
	}
	view := toUserView(u)
	return &view, nil
}

// ListUsersUseCase 用户列表用例
type ListUsersUseCase struct {
	userService user.Service
}

// NewListUsersUseCase 创建用户列表用例
func NewListUsersUseCase(userService user.Service) *ListUsersUseCase {
	return &ListUsersUseCase{userService: userService}
}

// Execute 执行列表查询
func (uc *ListUsersUseCase) Execute(ctx context.Context, start, segmentSize *int) (*window.Page[UserView], error) {
	users, err := uc.userService.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]UserView, len(users))
	for i, u := range users {
		views[i] = toUserView(u)
	}

	page := window.Paginate(views, start, segmentSize)
	return &page, nil
}

// DeleteUserUseCase 用户删除用例
type DeleteUserUseCase struct {
	userService user.Service
}

// NewDeleteUserUseCase 创建用户删除用例
func NewDeleteUserUseCase(userService user.Service) *DeleteUserUseCase {
	return &DeleteUserUseCase{userService: userService}
}

// Execute 执行用户删除（不存在返回404）
func (uc *DeleteUserUseCase) Execute(ctx context.Context, name string) error {
	return uc.userService.DeleteUser(ctx, name)
}
