package userbook

import (
	apperrors "github.com/xiebiao/mybooks/pkg/errors"
)

// 书架领域错误定义
var (
	// ErrUserBookNotFound 书架记录不存在
	ErrUserBookNotFound = apperrors.ErrUserBookNotFound
)
