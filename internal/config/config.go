package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Tutor     TutorConfig     `mapstructure:"tutor"`
	Adaptive  AdaptiveConfig  `mapstructure:"adaptive"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	ForceMigrate bool `mapstructure:"-"` // 强制执行数据库迁移
	MigrateOnly  bool `mapstructure:"-"` // 仅迁移模式（迁移后退出）
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// TutorConfig 对话辅导模型（OpenAI兼容接口）配置
type TutorConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
}

// AdaptiveConfig 间隔复习调度的可调参数。
// 数值尚未经过实证调优，全部走配置而不写死在代码里。
type AdaptiveConfig struct {
	InitialStrength   float64 `mapstructure:"initial_strength"`
	BaseGain          float64 `mapstructure:"base_gain"`
	GainDecay         float64 `mapstructure:"gain_decay"`
	Penalty           float64 `mapstructure:"penalty"`
	GrowthBase        float64 `mapstructure:"growth_base"`
	GrowthStep        float64 `mapstructure:"growth_step"`
	GrowthMax         float64 `mapstructure:"growth_max"`
	MaxIntervalDays   int     `mapstructure:"max_interval_days"`
	WeaknessThreshold float64 `mapstructure:"weakness_threshold"`
	Timezone          string  `mapstructure:"timezone"` // 日/周边界使用的参考时区
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("LINGUA_TUTOR")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Tutor LLM
	viper.BindEnv("tutor.base_url", "TUTOR_BASE_URL")
	viper.BindEnv("tutor.api_key", "TUTOR_API_KEY")
	viper.BindEnv("tutor.model", "TUTOR_MODEL")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	setAdaptiveDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := validateAdaptive(&cfg.Adaptive); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setAdaptiveDefaults() {
	viper.SetDefault("adaptive.initial_strength", 0.5)
	viper.SetDefault("adaptive.base_gain", 0.15)
	viper.SetDefault("adaptive.gain_decay", 0.5)
	viper.SetDefault("adaptive.penalty", 0.15)
	viper.SetDefault("adaptive.growth_base", 1.5)
	viper.SetDefault("adaptive.growth_step", 0.2)
	viper.SetDefault("adaptive.growth_max", 2.7)
	viper.SetDefault("adaptive.max_interval_days", 60)
	viper.SetDefault("adaptive.weakness_threshold", 0.4)
	viper.SetDefault("adaptive.timezone", "UTC")
}

func validateAdaptive(a *AdaptiveConfig) error {
	if a.GrowthBase <= 1.0 {
		return fmt.Errorf("adaptive.growth_base must be > 1.0, got %v", a.GrowthBase)
	}
	if a.MaxIntervalDays < 1 {
		return fmt.Errorf("adaptive.max_interval_days must be >= 1, got %d", a.MaxIntervalDays)
	}
	if a.WeaknessThreshold <= 0 || a.WeaknessThreshold >= 1 {
		return fmt.Errorf("adaptive.weakness_threshold must be in (0,1), got %v", a.WeaknessThreshold)
	}
	if _, err := time.LoadLocation(a.Timezone); err != nil {
		return fmt.Errorf("adaptive.timezone is not a valid IANA zone: %w", err)
	}
	return nil
}
