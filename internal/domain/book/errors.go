package book

import (
	apperrors "github.com/xiebiao/mybooks/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.ErrBookNotFound

	// ErrBookDuplicate 图书已存在（书名唯一约束冲突）
	ErrBookDuplicate = apperrors.New(apperrors.ErrCodeConflict, "图书已存在")
)
