package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Storage  StorageConfig
	Worker   WorkerConfig
	LogLevel string
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret       string
	AccessTTLMin    int
	RefreshTTLHours int
	GoogleClientID  string
	GoogleSecret    string
	GoogleRedirect  string
}

type StorageConfig struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string
}

type WorkerConfig struct {
	Concurrency     int
	ArchiveSchedule string // cron spec for the archive sweep
}

var (
	cfg *Config
	mu  sync.RWMutex
)

// Load reads .env (if present) and environment variables prefixed with
// MENTORHUB_ into the process-wide config.
func Load() (*Config, error) {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("MENTORHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 7070)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "mentorhub")
	v.SetDefault("database.dbname", "mentorhub")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("auth.access_ttl_min", 15)
	v.SetDefault("auth.refresh_ttl_hours", 24*7)
	v.SetDefault("worker.concurrency", 5)
	v.SetDefault("worker.archive_schedule", "0 3 * * *")
	v.SetDefault("log_level", "info")

	c := &Config{
		Server: ServerConfig{
			Host: v.GetString("server.host"),
			Port: v.GetInt("server.port"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("database.host"),
			Port:     v.GetInt("database.port"),
			User:     v.GetString("database.user"),
			Password: v.GetString("database.password"),
			DBName:   v.GetString("database.dbname"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Auth: AuthConfig{
			JWTSecret:       v.GetString("auth.jwt_secret"),
			AccessTTLMin:    v.GetInt("auth.access_ttl_min"),
			RefreshTTLHours: v.GetInt("auth.refresh_ttl_hours"),
			GoogleClientID:  v.GetString("auth.google_client_id"),
			GoogleSecret:    v.GetString("auth.google_secret"),
			GoogleRedirect:  v.GetString("auth.google_redirect"),
		},
		Storage: StorageConfig{
			Region:          v.GetString("storage.region"),
			Bucket:          v.GetString("storage.bucket"),
			AccessKeyID:     v.GetString("storage.access_key_id"),
			SecretAccessKey: v.GetString("storage.secret_access_key"),
			PublicBaseURL:   v.GetString("storage.public_base_url"),
		},
		Worker: WorkerConfig{
			Concurrency:     v.GetInt("worker.concurrency"),
			ArchiveSchedule: v.GetString("worker.archive_schedule"),
		},
		LogLevel: v.GetString("log_level"),
	}

	if c.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("MENTORHUB_AUTH_JWT_SECRET is required")
	}

	mu.Lock()
	cfg = c
	mu.Unlock()
	return c, nil
}

// Get returns the loaded config. Panics when Load has not run; use GetSafe
// on paths that can race with startup.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	if cfg == nil {
		panic("config: Get called before Load")
	}
	return cfg
}

func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return cfg, cfg != nil
}

// Set overrides the process config. Tests only.
func Set(c *Config) {
	mu.Lock()
	cfg = c
	mu.Unlock()
}
