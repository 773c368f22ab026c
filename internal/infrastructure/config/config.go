package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// 支持的数据库方言
const (
	DialectSQLite   = "sqlite"
	DialectMySQL    = "mysql"
	DialectPostgres = "postgres"
)

// Config 全局配置结构
// 设计说明：使用Viper管理配置，默认值 < 配置文件 < 环境变量
type Config struct {
	Env      string         `mapstructure:"env"` // test | development | production
	Seed     bool           `mapstructure:"seed"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // debug | release | test
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr 返回监听地址
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type DatabaseConfig struct {
	Dialect         string        `mapstructure:"dialect"` // sqlite | mysql | postgres
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	Charset         string        `mapstructure:"charset"`
	Loc             string        `mapstructure:"loc"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN 按方言生成连接字符串
// mysql:    user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=Local
// postgres: host=... port=... user=... password=... dbname=... sslmode=disable
// sqlite:   文件路径或 :memory:
func (d DatabaseConfig) DSN() string {
	switch d.Dialect {
	case DialectMySQL:
		// loc参数需要URL编码（Asia/Shanghai → Asia%2FShanghai）
		loc := url.QueryEscape(d.Loc)
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=%s",
			d.User, d.Password, d.Host, d.Port, d.DBName, d.Charset, loc)
	case DialectPostgres:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
	default:
		return d.DBName
	}
}

// IsMemory sqlite内存库
func (d DatabaseConfig) IsMemory() bool {
	return d.Dialect == DialectSQLite && strings.Contains(d.DBName, ":memory:")
}

type LogConfig struct {
	Level        string `mapstructure:"level"`  // debug | info | warn | error
	Format       string `mapstructure:"format"` // console | json
	Output       string `mapstructure:"output"` // stdout | stderr | /path/to/file
	EnableCaller bool   `mapstructure:"enable_caller"`
}

// envBindings 配置键 → 额外的环境变量名
// 这些变量名与部署脚本保持一致，BOOKSTORE_前缀的写法同样生效
var envBindings = map[string]string{
	"env":               "APP_ENV",
	"seed":              "SEED",
	"server.port":       "PORT",
	"server.mode":       "GIN_MODE",
	"database.dialect":  "DB_DIALECT",
	"database.dbname":   "DB_NAME",
	"database.user":     "DB_USERNAME",
	"database.password": "DB_PASSWORD",
	"database.host":     "DB_HOST",
	"database.port":     "DB_PORT",
	"log.level":         "LOG_LEVEL",
	"log.format":        "LOG_FORMAT",
	"log.output":        "LOG_OUTPUT",
}

// Load 加载配置
// 1. 读取.env（可选）
// 2. 加载config/config.yaml，再合并当前环境的config.<env>.yaml（均可选）
// 3. 环境变量覆盖（如DB_HOST或BOOKSTORE_DATABASE_HOST）
func Load() (*Config, error) {
	// .env不存在不算错误
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("BOOKSTORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, "BOOKSTORE_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("绑定环境变量失败: %w", err)
		}
	}

	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	// 先读公共的config.yaml，再合并config.<env>.yaml
	v.SetConfigName("config")
	if err := ignoreNotFound(v.ReadInConfig()); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}
	if env := v.GetString("env"); env != "" {
		v.SetConfigName("config." + env)
		if err := ignoreNotFound(v.MergeInConfig()); err != nil {
			return nil, fmt.Errorf("读取%s环境配置失败: %w", env, err)
		}
	}

	// seed未显式配置时跟随环境
	if !v.IsSet("seed") {
		v.Set("seed", v.GetString("env") == "test")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	normalize(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ignoreNotFound 配置文件不存在不算错误
func ignoreNotFound(err error) error {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "test")

	v.SetDefault("server.port", 3000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("database.dialect", DialectSQLite)
	v.SetDefault("database.dbname", ":memory:")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", 0)
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.loc", "Local")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", time.Hour)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.enable_caller", true)
}

// normalize 兼容旧部署里的写法
func normalize(cfg *Config) {
	cfg.Database.Dialect = strings.ToLower(strings.TrimSpace(cfg.Database.Dialect))
	if cfg.Database.Dialect == DialectSQLite && cfg.Database.DBName == "sqlite::memory:" {
		cfg.Database.DBName = ":memory:"
	}
	if cfg.Database.Port == 0 {
		switch cfg.Database.Dialect {
		case DialectMySQL:
			cfg.Database.Port = 3306
		case DialectPostgres:
			cfg.Database.Port = 5432
		}
	}
}

// validate 配置校验
func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("无效的服务端口: %d", cfg.Server.Port)
	}

	switch cfg.Database.Dialect {
	case DialectSQLite:
		if cfg.Database.DBName == "" {
			return fmt.Errorf("sqlite需要配置数据库文件(database.dbname)")
		}
	case DialectMySQL, DialectPostgres:
		if cfg.Database.Host == "" || cfg.Database.DBName == "" {
			return fmt.Errorf("%s需要配置database.host和database.dbname", cfg.Database.Dialect)
		}
	default:
		return fmt.Errorf("不支持的数据库方言: %q", cfg.Database.Dialect)
	}

	return nil
}
