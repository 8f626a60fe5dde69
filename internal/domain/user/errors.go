package user

import (
	apperrors "github.com/xiebiao/mybooks/pkg/errors"
)

// 用户领域错误定义
var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = apperrors.ErrUserNotFound

	// ErrUserDuplicate 用户名已存在
	ErrUserDuplicate = apperrors.New(apperrors.ErrCodeConflict, "用户名已存在")

	// ErrBadCredentials 用户名或密码错误（统一提示，避免用户名枚举）
	ErrBadCredentials = apperrors.New(apperrors.ErrCodeUnauthorized, "用户名或密码错误")
)
