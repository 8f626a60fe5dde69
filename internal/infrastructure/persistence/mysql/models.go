package mysql

import (
	"time"

	"github.com/xiebiao/mybooks/internal/domain/author"
	"github.com/xiebiao/mybooks/internal/domain/book"
	"github.com/xiebiao/mybooks/internal/domain/tag"
	"github.com/xiebiao/mybooks/internal/domain/user"
	"github.com/xiebiao/mybooks/internal/domain/userbook"
)

// ==================== 数据库模型 ====================
// 设计说明：
// 1. 数据库模型与领域实体分离，互相转换
// 2. 多值字段（ISBN、主题、标签）以CSV文本列存储，读写时经csv编解码
// 3. 唯一索引承载重复约束，违反时由各仓储翻译为领域冲突错误

// UserModel 用户表
type UserModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	UserGroup string    `gorm:"type:varchar(32);not null;default:'user'"`
	Password  string    `gorm:"type:varchar(128);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) ToEntity() *user.User {
	return &user.User{
		ID:        m.ID,
		Name:      m.Name,
		UserGroup: m.UserGroup,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func userModelFromEntity(e *user.User) *UserModel {
	return &UserModel{
		ID:        e.ID,
		Name:      e.Name,
		UserGroup: e.UserGroup,
		Password:  e.Password,
	}
}

// AuthorModel 作者表
type AuthorModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(128);uniqueIndex;not null"`
	BirthDate   string    `gorm:"type:varchar(32)"`
	OlKey       string    `gorm:"type:varchar(64)"`
	ImageSmall  string    `gorm:"type:varchar(255)"`
	ImageMedium string    `gorm:"type:varchar(255)"`
	ImageLarge  string    `gorm:"type:varchar(255)"`
	Subject     string    `gorm:"type:text"` // CSV
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (AuthorModel) TableName() string { return "authors" }

func (m *AuthorModel) ToEntity() *author.Author {
	return &author.Author{
		ID:          m.ID,
		Name:        m.Name,
		BirthDate:   m.BirthDate,
		OlKey:       m.OlKey,
		ImageSmall:  m.ImageSmall,
		ImageMedium: m.ImageMedium,
		ImageLarge:  m.ImageLarge,
		Subjects:    splitCSV(m.Subject),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func authorModelFromEntity(e *author.Author) *AuthorModel {
	return &AuthorModel{
		ID:          e.ID,
		Name:        e.Name,
		BirthDate:   e.BirthDate,
		OlKey:       e.OlKey,
		ImageSmall:  e.ImageSmall,
		ImageMedium: e.ImageMedium,
		ImageLarge:  e.ImageLarge,
		Subject:     joinCSV(e.Subjects),
	}
}

// BookModel 书籍表
type BookModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	AuthorID  uint      `gorm:"index;not null"`
	Title     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Year      int       `gorm:"not null;default:0"`
	OlWorks   string    `gorm:"type:varchar(64)"`
	Isbn      string    `gorm:"type:text"` // CSV
	Subject   string    `gorm:"type:text"` // CSV
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (BookModel) TableName() string { return "books" }

func (m *BookModel) ToEntity() *book.Book {
	return &book.Book{
		ID:        m.ID,
		AuthorID:  m.AuthorID,
		Title:     m.Title,
		Year:      m.Year,
		OlWorks:   m.OlWorks,
		Isbns:     splitCSV(m.Isbn),
		Subjects:  splitCSV(m.Subject),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func bookModelFromEntity(e *book.Book) *BookModel {
	return &BookModel{
		ID:       e.ID,
		AuthorID: e.AuthorID,
		Title:    e.Title,
		Year:     e.Year,
		OlWorks:  e.OlWorks,
		Isbn:     joinCSV(e.Isbns),
		Subject:  joinCSV(e.Subjects),
	}
}

// TagModel 标签表
type TagModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Data      string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (TagModel) TableName() string { return "tags" }

func (m *TagModel) ToEntity() *tag.Tag {
	return &tag.Tag{
		ID:        m.ID,
		Name:      m.Name,
		Data:      m.Data,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func tagModelFromEntity(e *tag.Tag) *TagModel {
	return &TagModel{
		ID:   e.ID,
		Name: e.Name,
		Data: e.Data,
	}
}

// UserBookModel 用户书架表
type UserBookModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	UserID    uint      `gorm:"index;not null"`
	BookID    uint      `gorm:"not null"`
	Rating    bool      `gorm:"not null;default:false"`
	Tags      string    `gorm:"type:text"` // CSV
	DateAdded time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (UserBookModel) TableName() string { return "user_books" }

func (m *UserBookModel) ToEntity() *userbook.UserBook {
	return &userbook.UserBook{
		ID:        m.ID,
		UserID:    m.UserID,
		BookID:    m.BookID,
		Rating:    m.Rating,
		Tags:      splitCSV(m.Tags),
		DateAdded: m.DateAdded,
	}
}

func userBookModelFromEntity(e *userbook.UserBook) *UserBookModel {
	return &UserBookModel{
		ID:     e.ID,
		UserID: e.UserID,
		BookID: e.BookID,
		Rating: e.Rating,
		Tags:   joinCSV(e.Tags),
	}
}
