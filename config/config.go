package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string        `mapstructure:"APP_PORT"`
	Env               string        `mapstructure:"ENV"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int           `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSAllowOrigins  string        `mapstructure:"CORS_ALLOW_ORIGINS"`
	ShutdownTimeout   time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`

	// Scheduler behaviour.
	StrictTimeValidation bool `mapstructure:"STRICT_TIME_VALIDATION"`

	// Redis result cache.
	CacheEnabled     bool          `mapstructure:"CACHE_ENABLED"`
	RedisAddr        string        `mapstructure:"REDIS_ADDR"`
	RedisPassword    string        `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB     int           `mapstructure:"REDIS_CACHE_DB"`
	ScheduleCacheTTL time.Duration `mapstructure:"SCHEDULE_CACHE_TTL"`

	// Cron spec for the background health check.
	HealthCheckSpec string `mapstructure:"HEALTH_CHECK_SPEC"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("SHUTDOWN_TIMEOUT", "5s")
	v.SetDefault("STRICT_TIME_VALIDATION", false)
	v.SetDefault("CACHE_ENABLED", false)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("SCHEDULE_CACHE_TTL", "10m")
	v.SetDefault("HEALTH_CHECK_SPEC", "@every 60s")
}

// Load builds a Config from the given viper instance. The instance is expected to
// already carry any config file or environment bindings the caller wants.
func Load(v *viper.Viper) (Config, error) {
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	v := viper.GetViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	// Automatically use environment variables where available.
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	cfg, err := Load(v)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// AllowedOrigins splits CORS_ALLOW_ORIGINS on commas, dropping blanks.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
