package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config 应用配置（config.yaml + NEONBLOG_* 环境变量覆盖）
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Uploads   UploadsConfig
	Log       LogConfig
	Trace     TraceConfig
	Sentry    SentryConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Host string
	Port int
	// Mode gin 运行模式: debug / release / test
	Mode string
}

type DatabaseConfig struct {
	// Driver 支持 sqlite（默认，文件库）与 postgres
	Driver string
	// Path sqlite 数据库文件路径
	Path string
	// DSN postgres 连接串，Driver=postgres 时生效
	DSN string
}

type UploadsConfig struct {
	// Dir 上传文件根目录，启动时自动创建 images/ videos/ 子目录
	Dir string
}

type LogConfig struct {
	Level string
}

type TraceConfig struct {
	Enabled  bool
	Endpoint string
}

type SentryConfig struct {
	DSN string
}

type RateLimitConfig struct {
	// RPS 针对写操作与 /preview 的全局限速
	RPS   float64
	Burst int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "blog.db")
	v.SetDefault("database.dsn", "")
	v.SetDefault("uploads.dir", "uploads")
	v.SetDefault("log.level", "info")
	v.SetDefault("trace.enabled", false)
	v.SetDefault("trace.endpoint", "localhost:4318")
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("ratelimit.rps", 20)
	v.SetDefault("ratelimit.burst", 40)
}

// Load 读取配置；config.yaml 缺失时仅使用默认值与环境变量
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("NEONBLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("server.host"),
			Port: v.GetInt("server.port"),
			Mode: v.GetString("server.mode"),
		},
		Database: DatabaseConfig{
			Driver: v.GetString("database.driver"),
			Path:   v.GetString("database.path"),
			DSN:    v.GetString("database.dsn"),
		},
		Uploads: UploadsConfig{
			Dir: v.GetString("uploads.dir"),
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
		},
		Trace: TraceConfig{
			Enabled:  v.GetBool("trace.enabled"),
			Endpoint: v.GetString("trace.endpoint"),
		},
		Sentry: SentryConfig{
			DSN: v.GetString("sentry.dsn"),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("ratelimit.rps"),
			Burst: v.GetInt("ratelimit.burst"),
		},
	}
	return cfg, nil
}
