package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

// Config 全局配置结构
// 设计说明：使用Viper管理配置，支持YAML文件、环境变量覆盖
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Auth          AuthConfig          `mapstructure:"auth"`
	AuthorService AuthorServiceConfig `mapstructure:"author_service"`
	OpenLibrary   OpenLibraryConfig   `mapstructure:"open_library"`
	Tracing       TracingConfig       `mapstructure:"tracing"`
	Metrics       MetricsConfig       `mapstructure:"metrics"`
	Log           LogConfig           `mapstructure:"log"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"` // debug | release | test
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	Charset         string        `mapstructure:"charset"`
	ParseTime       bool          `mapstructure:"parse_time"`
	Loc             string        `mapstructure:"loc"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN 生成MySQL连接字符串
// 格式：user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=Local
// 注意：loc参数需要URL编码（Asia/Shanghai → Asia%2FShanghai）
func (d DatabaseConfig) DSN() string {
	loc := url.QueryEscape(d.Loc)
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.Charset, d.ParseTime, loc)
}

type RedisConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// Addr 返回Redis地址
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// AuthConfig 认证配置
type AuthConfig struct {
	Secret        string        `mapstructure:"secret"`         // Token签名密钥
	TokenExpire   time.Duration `mapstructure:"token_expire"`   // Token有效期（也是会话TTL）
	LookupTimeout time.Duration `mapstructure:"lookup_timeout"` // 单次会话查询超时
}

// GetLookupTimeout 会话查询超时（默认2秒）
func (a AuthConfig) GetLookupTimeout() time.Duration {
	if a.LookupTimeout <= 0 {
		return 2 * time.Second
	}
	return a.LookupTimeout
}

// AuthorServiceConfig 作者服务（补全作者名的下游）配置
type AuthorServiceConfig struct {
	BaseURL        string        `mapstructure:"base_url"` // 如 http://author:8080
	Timeout        time.Duration `mapstructure:"timeout"`  // 单次调用超时
	BreakerEnabled bool          `mapstructure:"breaker_enabled"`
}

// GetTimeout 调用超时（默认5秒）
func (a AuthorServiceConfig) GetTimeout() time.Duration {
	if a.Timeout <= 0 {
		return 5 * time.Second
	}
	return a.Timeout
}

// OpenLibraryConfig openlibrary.org图书目录查询配置
type OpenLibraryConfig struct {
	BaseURL string        `mapstructure:"base_url"` // 搜索API地址
	Timeout time.Duration `mapstructure:"timeout"`  // 单次调用超时
}

// GetBaseURL 搜索API地址（默认公网openlibrary.org）
func (o OpenLibraryConfig) GetBaseURL() string {
	if o.BaseURL == "" {
		return "https://openlibrary.org"
	}
	return o.BaseURL
}

// GetTimeout 调用超时（默认10秒，公网查询比内部服务慢）
func (o OpenLibraryConfig) GetTimeout() time.Duration {
	if o.Timeout <= 0 {
		return 10 * time.Second
	}
	return o.Timeout
}

// TracingConfig 链路追踪配置
type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Endpoint    string `mapstructure:"endpoint"`     // OTLP collector地址，如localhost:4317
	ServiceName string `mapstructure:"service_name"` // 上报的服务名
}

// MetricsConfig 指标配置
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug | info | warn | error
	Format string `mapstructure:"format"` // console | json
	Output string `mapstructure:"output"` // stdout | stderr | /path/to/file
}

// Load 加载配置文件
// 支持：
// 1. 默认加载config/config.yaml
// 2. 环境变量覆盖（如MYBOOKS_DATABASE_PASSWORD → database.password）
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	v.SetEnvPrefix("MYBOOKS")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate 配置校验（启动即失败，避免运行时才暴露配置错误）
func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("无效的服务端口: %d", cfg.Server.Port)
	}

	if cfg.Auth.Secret == "" {
		return fmt.Errorf("auth.secret 不能为空")
	}
	if cfg.Auth.Secret == "your-secret-key-change-in-production" && cfg.Server.Mode == "release" {
		return fmt.Errorf("生产环境必须修改Token签名密钥")
	}

	if cfg.AuthorService.BaseURL == "" {
		return fmt.Errorf("author_service.base_url 不能为空")
	}

	return nil
}
