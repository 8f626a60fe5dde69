package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/mybooks/docs" // swagger文档注册
	appauthor "github.com/xiebiao/mybooks/internal/application/author"
	appbook "github.com/xiebiao/mybooks/internal/application/book"
	appquery "github.com/xiebiao/mybooks/internal/application/query"
	apptag "github.com/xiebiao/mybooks/internal/application/tag"
	appuser "github.com/xiebiao/mybooks/internal/application/user"
	appuserbook "github.com/xiebiao/mybooks/internal/application/userbook"
	"github.com/xiebiao/mybooks/internal/domain/author"
	"github.com/xiebiao/mybooks/internal/domain/book"
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
	"github.com/xiebiao/mybooks/pkg/metrics"
	"github.com/xiebiao/mybooks/pkg/response"
	"github.com/xiebiao/mybooks/pkg/tracing"
)

// main 主程序入口
// 依赖注入链：Repository ← Service ← UseCase ← Handler
//
// @title                      MyBooks API
// @version                    1.0
// @description                图书、作者、标签与用户书架服务
// @host                       localhost:8080
// @BasePath                   /api/v1
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())
	fmt.Printf("  - 作者服务: %s\n", cfg.AuthorService.BaseURL)

	// 2. 初始化链路追踪（可选）
	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
		if err != nil {
			log.Fatalf("初始化链路追踪失败: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(ctx); err != nil {
				log.Printf("[WARN] 关闭链路追踪失败: %v", err)
			}
		}()
	}

	// 3. 初始化数据库连接
	db, err := mysql.NewDB(cfg.Database, cfg.Server.Mode)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 4. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg.Redis)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 5. 依赖注入（手动组装）

	// 基础设施层
	userRepo := mysql.NewUserRepository(db)
	authorRepo := mysql.NewAuthorRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	tagRepo := mysql.NewTagRepository(db)
	userBookRepo := mysql.NewUserBookRepository(db)
	sessionStore := redis.NewSessionStore(redisClient)
	authorClient := client.NewAuthorClient(cfg.AuthorService)
	openLibraryClient := client.NewOpenLibraryClient(cfg.OpenLibrary)
	jwtManager := jwt.NewManager(cfg.Auth.Secret, cfg.Auth.TokenExpire)

	// 领域层
	userService := user.NewService(userRepo)
	authorService := author.NewService(authorRepo)
	bookService := book.NewService(bookRepo)
	tagService := tag.NewService(tagRepo)
	userBookService := userbook.NewService(userBookRepo)

	// 应用层
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore)
	logoutUseCase := appuser.NewLogoutUseCase(sessionStore)
	createUserUseCase := appuser.NewCreateUserUseCase(userService)
	getUserUseCase := appuser.NewGetUserUseCase(userService)
	listUsersUseCase := appuser.NewListUsersUseCase(userService)
	deleteUserUseCase := appuser.NewDeleteUserUseCase(userService)

	listAuthorsUseCase := appauthor.NewListAuthorsUseCase(authorService)
	getAuthorUseCase := appauthor.NewGetAuthorUseCase(authorService)
	createAuthorUseCase := appauthor.NewCreateAuthorUseCase(authorService)
	deleteAuthorUseCase := appauthor.NewDeleteAuthorUseCase(authorService)

	listBooksUseCase := appbook.NewListBooksUseCase(bookService, authorClient)
	getBookUseCase := appbook.NewGetBookUseCase(bookService, authorClient)
	createBookUseCase := appbook.NewCreateBookUseCase(bookService)
	deleteBookUseCase := appbook.NewDeleteBookUseCase(bookService)

	listTagsUseCase := apptag.NewListTagsUseCase(tagService)
	getTagUseCase := apptag.NewGetTagUseCase(tagService)
	createTagUseCase := apptag.NewCreateTagUseCase(tagService)
	updateTagUseCase := apptag.NewUpdateTagUseCase(tagService)
	deleteTagUseCase := apptag.NewDeleteTagUseCase(tagService)

	queryAuthorsUseCase := appquery.NewQueryAuthorsUseCase(openLibraryClient)
	queryTitlesUseCase := appquery.NewQueryTitlesUseCase(openLibraryClient)

	addUserBookUseCase := appuserbook.NewAddUserBookUseCase(userBookService, userService, bookService)
	listUserBooksUseCase := appuserbook.NewListUserBooksUseCase(userBookService, userService)
	removeUserBookUseCase := appuserbook.NewRemoveUserBookUseCase(userBookService, userService)

	// 接口层
	authHandler := handler.NewAuthHandler(loginUseCase, logoutUseCase)
	userHandler := handler.NewUserHandler(createUserUseCase, getUserUseCase, listUsersUseCase, deleteUserUseCase)
	authorHandler := handler.NewAuthorHandler(listAuthorsUseCase, getAuthorUseCase, createAuthorUseCase, deleteAuthorUseCase)
	bookHandler := handler.NewBookHandler(listBooksUseCase, getBookUseCase, createBookUseCase, deleteBookUseCase)
	tagHandler := handler.NewTagHandler(listTagsUseCase, getTagUseCase, createTagUseCase, updateTagUseCase, deleteTagUseCase)
	userBookHandler := handler.NewUserBookHandler(addUserBookUseCase, listUserBooksUseCase, removeUserBookUseCase)
	queryHandler := handler.NewQueryHandler(queryAuthorsUseCase, queryTitlesUseCase)
	authMiddleware := middleware.NewAuthMiddleware(sessionStore, cfg.Auth.GetLookupTimeout())

	// 6. 初始化Gin引擎
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

	// 7. 注册路由
	registerRoutes(r, cfg, authHandler, userHandler, authorHandler, bookHandler, tagHandler, userBookHandler, queryHandler, authMiddleware)

	// 8. 启动服务（优雅关停）
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		fmt.Printf("\n🚀 服务启动成功！\n")
		fmt.Printf("   访问地址: http://localhost%s\n", addr)
		fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
		fmt.Printf("   API文档:  http://localhost%s/swagger/index.html\n", addr)
		fmt.Printf("\n按Ctrl+C停止服务\n\n")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("启动服务失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("收到退出信号，正在关闭服务...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("关闭服务失败: %v", err)
	}
	log.Println("服务已退出")
}

// registerRoutes 注册路由
// 权限设计：
// - POST /auth/token 公开（登录入口）
// - 其余接口都需要认证
// - 资源的创建/更新/删除和用户管理需要admin用户组
func registerRoutes(
	r *gin.Engine,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	authorHandler *handler.AuthorHandler,
	bookHandler *handler.BookHandler,
	tagHandler *handler.TagHandler,
	userBookHandler *handler.UserBookHandler,
	queryHandler *handler.QueryHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	if cfg.Metrics.Enabled {
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// 认证模块
	auth := v1.Group("/auth")
	{
		auth.POST("/token", authHandler.Login)
		auth.DELETE("/token", authMiddleware.RequireAuth(), authHandler.Logout)
	}

	// 需要认证的路由
	authorized := v1.Group("")
	authorized.Use(authMiddleware.RequireAuth())

	requireAdmin := authMiddleware.RequireRole(user.GroupAdmin)

	// 作者模块
	authors := authorized.Group("/authors")
	{
		authors.GET("", authorHandler.ListAuthors)
		authors.GET("/:id", authorHandler.GetAuthor)
		authors.POST("", requireAdmin, authorHandler.CreateAuthor)
		authors.DELETE("/:id", requireAdmin, authorHandler.DeleteAuthor)
	}

	// 图书模块
	books := authorized.Group("/books")
	{
		books.GET("", bookHandler.ListBooks)
		books.GET("/:id", bookHandler.GetBook)
		books.POST("", requireAdmin, bookHandler.CreateBook)
		books.DELETE("/:id", requireAdmin, bookHandler.DeleteBook)
	}

	// 标签模块
	tags := authorized.Group("/tags")
	{
		tags.GET("", tagHandler.ListTags)
		tags.GET("/:id", tagHandler.GetTag)
		tags.POST("", requireAdmin, tagHandler.CreateTag)
		tags.PUT("/:id", requireAdmin, tagHandler.UpdateTag)
		tags.DELETE("/:id", requireAdmin, tagHandler.DeleteTag)
	}

	// 目录查询模块（代理openlibrary.org，只读）
	query := authorized.Group("/query")
	{
		query.GET("/author", queryHandler.QueryAuthors)
		query.GET("/title", queryHandler.QueryTitles)
	}

	// 用户模块（增删与列表仅admin；单查与书架本人或admin）
	users := authorized.Group("/users")
	{
		users.GET("", requireAdmin, userHandler.ListUsers)
		users.POST("", requireAdmin, userHandler.CreateUser)
		users.GET("/:name", userHandler.GetUser)
		users.DELETE("/:name", requireAdmin, userHandler.DeleteUser)

		// 书架子资源（用例内做本人/admin访问控制）
		users.GET("/:name/books", userBookHandler.ListUserBooks)
		users.POST("/:name/books", userBookHandler.AddUserBook)
		users.DELETE("/:name/books/:id", userBookHandler.RemoveUserBook)
	}
}
