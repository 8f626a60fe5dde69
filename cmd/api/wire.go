//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 使用方式：
// 1. 修改Provider后运行 `wire gen ./cmd/api`
// 2. Wire生成wire_gen.go，包含完整的依赖创建代码
// 3. main.go可切换为调用InitializeApp()
//
// 当前main.go仍为手动组装，本文件与其保持同构，作为迁移入口。

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	appauthor "github.com/xiebiao/mybooks/internal/application/author"
	appbook "github.com/xiebiao/mybooks/internal/application/book"
	appquery "github.com/xiebiao/mybooks/internal/application/query"
	apptag "github.com/xiebiao/mybooks/internal/application/tag"
	appuser "github.com/xiebiao/mybooks/internal/application/user"
	appuserbook "github.com/xiebiao/mybooks/internal/application/userbook"
	"github.com/xiebiao/mybooks/internal/domain/author"
	"github.com/xiebiao/mybooks/internal/domain/book"
	"github.com/xiebiao/mybooks/internal/domain/session"
	"github.com/xiebiao/mybooks/internal/domain/tag"
	"github.com/xiebiao/mybooks/internal/domain/user"
	"github.com/xiebiao/mybooks/internal/domain/userbook"
	"github.com/xiebiao/mybooks/internal/infrastructure/client"
	"github.com/xiebiao/mybooks/internal/infrastructure/config"
	"github.com/xiebiao/mybooks/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/mybooks/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/mybooks/internal/interface/http/handler"
	"github.com/xiebiao/mybooks/internal/interface/http/middleware"
	"github.com/xiebiao/mybooks/pkg/jwt"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	provideDB,
	provideRedisClient,
	provideAuthorClient,
	wire.Bind(new(appbook.AuthorNameResolver), new(*client.AuthorClient)),
	provideOpenLibraryClient,
	wire.Bind(new(appquery.Searcher), new(*client.OpenLibraryClient)),
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,
	mysql.NewAuthorRepository,
	mysql.NewBookRepository,
	mysql.NewTagRepository,
	mysql.NewUserBookRepository,
	redis.NewSessionStore,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	user.NewService,
	author.NewService,
	book.NewService,
	tag.NewService,
	userbook.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appuser.NewLoginUseCase,
	appuser.NewLogoutUseCase,
	appuser.NewCreateUserUseCase,
	appuser.NewGetUserUseCase,
	appuser.NewListUsersUseCase,
	appuser.NewDeleteUserUseCase,
	appauthor.NewListAuthorsUseCase,
	appauthor.NewGetAuthorUseCase,
	appauthor.NewCreateAuthorUseCase,
	appauthor.NewDeleteAuthorUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewCreateBookUseCase,
	appbook.NewDeleteBookUseCase,
	apptag.NewListTagsUseCase,
	apptag.NewGetTagUseCase,
	apptag.NewCreateTagUseCase,
	apptag.NewUpdateTagUseCase,
	apptag.NewDeleteTagUseCase,
	appquery.NewQueryAuthorsUseCase,
	appquery.NewQueryTitlesUseCase,
	appuserbook.NewAddUserBookUseCase,
	appuserbook.NewListUserBooksUseCase,
	appuserbook.NewRemoveUserBookUseCase,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideAuthMiddleware,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewAuthHandler,
	handler.NewUserHandler,
	handler.NewAuthorHandler,
	handler.NewBookHandler,
	handler.NewTagHandler,
	handler.NewUserBookHandler,
	handler.NewQueryHandler,
)

// 以下Provider从Config提取子配置，Wire无法自动做字段投影

func provideDB(cfg *config.Config) (*gorm.DB, error) {
	return mysql.NewDB(cfg.Database, cfg.Server.Mode)
}

func provideRedisClient(cfg *config.Config) (*goredis.Client, error) {
	return redis.NewClient(cfg.Redis)
}

func provideAuthorClient(cfg *config.Config) *client.AuthorClient {
	return client.NewAuthorClient(cfg.AuthorService)
}

func provideOpenLibraryClient(cfg *config.Config) *client.OpenLibraryClient {
	return client.NewOpenLibraryClient(cfg.OpenLibrary)
}

func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.Auth.Secret, cfg.Auth.TokenExpire)
}

func provideAuthMiddleware(cfg *config.Config, store session.Store) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(store, cfg.Auth.GetLookupTimeout())
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	authorHandler *handler.AuthorHandler,
	bookHandler *handler.BookHandler,
	tagHandler *handler.TagHandler,
	userBookHandler *handler.UserBookHandler,
	queryHandler *handler.QueryHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing())
	}
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
	}

	registerRoutes(r, cfg, authHandler, userHandler, authorHandler, bookHandler, tagHandler, userBookHandler, queryHandler, authMiddleware)
	return r
}

// InitializeApp 初始化整个应用
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
