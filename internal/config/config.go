package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config 全局配置结构体
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	MySQL     DatabaseConfig  `mapstructure:"mysql"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Log       LogConfig       `mapstructure:"log"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name        string     `mapstructure:"name"`
	Version     string     `mapstructure:"version"`
	Mode        string     `mapstructure:"mode"` // debug / release
	Port        int        `mapstructure:"port"`
	MockMode    bool       `mapstructure:"mock_mode"`     // 模拟模式：不连接数据库和Redis，返回示例数据
	BodyLimitMB int        `mapstructure:"body_limit_mb"` // 请求体大小限制(MB)
	Cors        CorsConfig `mapstructure:"cors"`
}

// CorsConfig 跨域配置
type CorsConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Database     string `mapstructure:"database"`
	Charset      string `mapstructure:"charset"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

// DSN 获取数据库连接字符串
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		c.Username, c.Password, c.Host, c.Port, c.Database, c.Charset)
}

// RedisConfig Redis配置
type RedisConfig struct {
	URL          string `mapstructure:"url"` // 形如 redis://host:port/db，优先于 host/port
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Password     string `mapstructure:"password"`
	DB           int    `mapstructure:"db"`
	PoolSize     int    `mapstructure:"pool_size"`
	MinIdleConns int    `mapstructure:"min_idle_conns"`
}

// Addr 获取Redis地址
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxAge     int    `mapstructure:"max_age"`
	MaxBackups int    `mapstructure:"max_backups"`
	Compress   bool   `mapstructure:"compress"`
	Stdout     bool   `mapstructure:"stdout"`
}

// RateLimitConfig 接口限流配置
type RateLimitConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	WindowSeconds int  `mapstructure:"window_seconds"` // 窗口时长(秒)
	MaxRequests   int  `mapstructure:"max_requests"`   // 窗口内最大请求数
}

// GlobalConfig 全局配置实例
var GlobalConfig *Config

// Init 初始化配置
func Init(configPath string) error {
	v := viper.New()
	v.AddConfigPath(configPath)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 兼容部署环境常用的变量名
	v.BindEnv("app.mock_mode", "MOCK_MODE")
	v.BindEnv("redis.url", "REDIS_URL")
	v.BindEnv("app.cors.allow_origins", "CORS_ORIGIN")
	v.BindEnv("rate_limit.window_seconds", "RATE_LIMIT_WINDOW_SECONDS")
	v.BindEnv("rate_limit.max_requests", "RATE_LIMIT_MAX_REQUESTS")
	v.BindEnv("log.level", "LOG_LEVEL")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// 配置文件可以缺省，全部走默认值与环境变量
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("读取配置文件失败: %v", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return fmt.Errorf("解析配置文件失败: %v", err)
	}

	GlobalConfig = &config
	return nil
}

// setDefaults 设置默认配置
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "makeoo-api")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.mode", "debug")
	v.SetDefault("app.port", 3001)
	v.SetDefault("app.body_limit_mb", 10)
	v.SetDefault("app.cors.allow_origins", []string{
		"http://localhost:5173",
		"http://localhost:5174",
		"http://localhost:5175",
	})

	v.SetDefault("mysql.host", "127.0.0.1")
	v.SetDefault("mysql.port", 3306)
	v.SetDefault("mysql.username", "root")
	v.SetDefault("mysql.database", "makeoo")
	v.SetDefault("mysql.charset", "utf8mb4")
	v.SetDefault("mysql.max_idle_conns", 10)
	v.SetDefault("mysql.max_open_conns", 100)

	v.SetDefault("redis.host", "127.0.0.1")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.min_idle_conns", 2)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.stdout", true)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.window_seconds", 900)
	v.SetDefault("rate_limit.max_requests", 100)
}

// GetConfig 获取全局配置
func GetConfig() *Config {
	return GlobalConfig
}
