package config

import (
	"fmt"
	"time"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Engine       EngineConfig
	Storage      StorageConfig
	Cache        CacheConfig
	Reports      ReportsConfig
	Logging      LoggingConfig
	Tracing      TracingConfig
	GeminiAPIKey string
}

type ServerConfig struct {
	Host            string
	Port            int
	Env             string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// JWTConfig enables bearer authentication on the API when AccessSecret is set.
type JWTConfig struct {
	AccessSecret string
}

type EngineConfig struct {
	MinAccuracy   domain.AccuracyLevel
	MatchWorkers  int
	MatchMinScore float64
}

type StorageConfig struct {
	Type string
	Path string
}

type CacheConfig struct {
	Type string
	TTL  time.Duration
}

// ReportsConfig controls the retention sweep. An empty schedule or a zero
// retention disables it.
type ReportsConfig struct {
	Retention     time.Duration
	SweepSchedule string
}

type LoggingConfig struct {
	Level  string
	Format string
}

// TracingConfig exports engine spans over OTLP/HTTP when Endpoint is set.
type TracingConfig struct {
	Endpoint    string
	Insecure    bool
	ServiceName string
	SampleRate  float64
}

func (c *TracingConfig) Enabled() bool {
	return c.Endpoint != ""
}

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"

	CacheMemory = "memory"
	CacheRedis  = "redis"
)

var defaults = map[string]any{
	"SERVER_HOST":            "0.0.0.0",
	"SERVER_PORT":            8080,
	"ENV":                    "development",
	"DB_PORT":                5432,
	"DB_SSL_MODE":            "disable",
	"REDIS_HOST":             "localhost",
	"REDIS_PORT":             6379,
	"ENGINE_MIN_ACCURACY":    string(domain.AccuracyBasic),
	"ENGINE_MATCH_WORKERS":   0,
	"ENGINE_MATCH_MIN_SCORE": domain.DefaultMinMatchScore,
	"STORAGE_TYPE":           StorageMemory,
	"STORAGE_PATH":           "spiritatlas.db",
	"CACHE_TYPE":             CacheMemory,
	"CACHE_TTL":              "0s",
	"REPORT_RETENTION":       "720h",
	"REPORT_SWEEP_SCHEDULE":  "@hourly",
	"LOG_LEVEL":              "info",
	"LOG_FORMAT":             "text",
	"OTEL_SERVICE_NAME":      "spiritatlas",
	"OTEL_SAMPLE_RATE":       1.0,
}

// Load loads configuration from environment variables or .env file
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile reads the dotenv file at path when it exists; environment
// variables always take precedence.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// Try to read from .env file, but don't fail if it doesn't exist
	_ = v.ReadInConfig()

	config := &Config{
		Server: ServerConfig{
			Host:            v.GetString("SERVER_HOST"),
			Port:            v.GetInt("SERVER_PORT"),
			Env:             v.GetString("ENV"),
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSL_MODE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
		},
		Engine: EngineConfig{
			MinAccuracy:   domain.AccuracyLevel(v.GetString("ENGINE_MIN_ACCURACY")),
			MatchWorkers:  v.GetInt("ENGINE_MATCH_WORKERS"),
			MatchMinScore: v.GetFloat64("ENGINE_MATCH_MIN_SCORE"),
		},
		Storage: StorageConfig{
			Type: v.GetString("STORAGE_TYPE"),
			Path: v.GetString("STORAGE_PATH"),
		},
		Cache: CacheConfig{
			Type: v.GetString("CACHE_TYPE"),
			TTL:  v.GetDuration("CACHE_TTL"),
		},
		Reports: ReportsConfig{
			Retention:     v.GetDuration("REPORT_RETENTION"),
			SweepSchedule: v.GetString("REPORT_SWEEP_SCHEDULE"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Tracing: TracingConfig{
			Endpoint:    v.GetString("OTEL_ENDPOINT"),
			Insecure:    v.GetBool("OTEL_INSECURE"),
			ServiceName: v.GetString("OTEL_SERVICE_NAME"),
			SampleRate:  v.GetFloat64("OTEL_SAMPLE_RATE"),
		},
		GeminiAPIKey: v.GetString("GEMINI_API_KEY"),
	}

	// Validate critical configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates critical configuration values
func (c *Config) Validate() error {
	switch c.Storage.Type {
	case StorageMemory:
	case StorageSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage path is required for sqlite")
		}
	case StoragePostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if c.Database.User == "" {
			return fmt.Errorf("database user is required")
		}
		if c.Database.DBName == "" {
			return fmt.Errorf("database name is required")
		}
	default:
		return fmt.Errorf("unknown storage type %q", c.Storage.Type)
	}

	switch c.Cache.Type {
	case CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("unknown cache type %q", c.Cache.Type)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache TTL must not be negative")
	}

	if c.JWT.AccessSecret != "" && len(c.JWT.AccessSecret) < 32 {
		return fmt.Errorf("JWT access secret must be at least 32 characters")
	}
	if !c.Engine.MinAccuracy.Valid() {
		return fmt.Errorf("unknown accuracy level %q", c.Engine.MinAccuracy)
	}
	if c.Engine.MatchWorkers < 0 {
		return fmt.Errorf("match workers must not be negative")
	}
	if c.Engine.MatchMinScore < 0 || c.Engine.MatchMinScore > 100 {
		return fmt.Errorf("match min score must be within [0,100]")
	}
	if c.Reports.SweepSchedule != "" {
		if _, err := cron.ParseStandard(c.Reports.SweepSchedule); err != nil {
			return fmt.Errorf("invalid report sweep schedule: %w", err)
		}
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
		return fmt.Errorf("trace sample rate must be within [0,1]")
	}
	return nil
}

// SweepEnabled reports whether expired reports should be purged.
func (c *ReportsConfig) SweepEnabled() bool {
	return c.SweepSchedule != "" && c.Retention > 0
}

// GetDSN returns PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// GetAddr returns Redis address
func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
