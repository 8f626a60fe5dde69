package userbook

import (
	"context"
	"time"

	"github.com/xiebiao/mybooks/internal/domain/book"
	"github.com/xiebiao/mybooks/internal/domain/user"
	"github.com/xiebiao/mybooks/internal/domain/userbook"
	apperrors "github.com/xiebiao/mybooks/pkg/errors"
	"github.com/xiebiao/mybooks/pkg/window"
)

// =========================================
// 书架用例集合
// =========================================
// 设计说明：
// 1. 对外以用户名定位书架，用例内部解析为用户ID
// 2. 普通用户只能操作自己的书架，admin可以操作任意用户的
// 3. 越权访问返回403，目标用户不存在返回404

// Caller 当前认证主体
type Caller struct {
	Name    string
	IsAdmin bool
}

// canAccess 书架访问控制：本人或admin
func (c Caller) canAccess(targetName string) bool {
	return c.IsAdmin || c.Name == targetName
}

// UserBookView 书架记录视图DTO
type UserBookView struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	BookID    uint      `json:"book_id"`
	Rating    bool      `json:"rating"`
	Tags      []string  `json:"tags,omitempty"`
	DateAdded time.Time `json:"date_added"`
}

func toUserBookView(ub *userbook.UserBook) UserBookView {
	return UserBookView{
		ID:        ub.ID,
		UserID:    ub.UserID,
		BookID:    ub.BookID,
		Rating:    ub.Rating,
		Tags:      ub.Tags,
		DateAdded: ub.DateAdded,
	}
}

// AddUserBookUseCase 加入书架用例
type AddUserBookUseCase struct {
	userBookService userbook.Service
	userService     user.Service
	bookService     book.Service
}

// NewAddUserBookUseCase 创建加入书架用例
func NewAddUserBookUseCase(
	userBookService userbook.Service,
	userService user.Service,
	bookService book.Service,
) *AddUserBookUseCase {
	return &AddUserBookUseCase{
		userBookService: userBookService,
		userService:     userService,
		bookService:     bookService,
	}
}

// AddUserBookRequest 加入书架请求DTO
type AddUserBookRequest struct {
	UserName string
	BookID   uint
	Rating   bool
	Tags     []string
	Caller   Caller
}

// Execute 执行加入书架
func (uc *AddUserBookUseCase) Execute(ctx context.Context, req AddUserBookRequest) (*UserBookView, error) {
	// 1. 访问控制
	if !req.Caller.canAccess(req.UserName) {
		return nil, apperrors.ErrForbidden
	}

	// 2. 解析目标用户
	u, err := uc.userService.GetUser(ctx, req.UserName)
	if err != nil {
		return nil, err
	}

	// 3. 校验图书存在（坏BookID在入口挡掉，不留悬空引用）
	if _, err := uc.bookService.GetBook(ctx, req.BookID); err != nil {
		return nil, err
	}

	// 4. 写入书架
	created, err := uc.userBookService.AddBook(ctx, u.ID, req.BookID, req.Rating, req.Tags)
	if err != nil {
		return nil, err
	}

	view := toUserBookView(created)
	return &view, nil
}

// ListUserBooksUseCase 书架列表用例
type ListUserBooksUseCase struct {
	userBookService userbook.Service
	userService     user.Service
}

// NewListUserBooksUseCase 创建书架列表用例
func NewListUserBooksUseCase(userBookService userbook.Service, userService user.Service) *ListUserBooksUseCase {
	return &ListUserBooksUseCase{
		userBookService: userBookService,
		userService:     userService,
	}
}

// ListUserBooksRequest 书架列表请求DTO
type ListUserBooksRequest struct {
	UserName    string
	Start       *int
	SegmentSize *int
	Caller      Caller
}

// Execute 执行书架列表查询
func (uc *ListUserBooksUseCase) Execute(ctx context.Context, req ListUserBooksRequest) (*window.Page[UserBookView], error) {
	if !req.Caller.canAccess(req.UserName) {
		return nil, apperrors.ErrForbidden
	}

	u, err := uc.userService.GetUser(ctx, req.UserName)
	if err != nil {
		return nil, err
	}

	records, err := uc.userBookService.ListByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	views := make([]UserBookView, len(records))
	for i, ub := range records {
		views[i] = toUserBookView(ub)
	}

	page := window.Paginate(views, req.Start, req.SegmentSize)
	return &page, nil
}

// RemoveUserBookUseCase 移出书架用例
type RemoveUserBookUseCase struct {
	userBookService userbook.Service
	userService     user.Service
}

// NewRemoveUserBookUseCase 创建移出书架用例
func NewRemoveUserBookUseCase(userBookService userbook.Service, userService user.Service) *RemoveUserBookUseCase {
	return &RemoveUserBookUseCase{
		userBookService: userBookService,
		userService:     userService,
	}
}

// Execute 执行移出书架
// 记录不属于目标用户时按404处理，不向调用方泄露他人书架信息
func (uc *RemoveUserBookUseCase) Execute(ctx context.Context, userName string, userBookID uint, caller Caller) error {
	if !caller.canAccess(userName) {
		return apperrors.ErrForbidden
	}

	u, err := uc.userService.GetUser(ctx, userName)
	if err != nil {
		return err
	}

	return uc.userBookService.RemoveBook(ctx, u.ID, userBookID)
}
