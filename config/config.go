package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"treehouse-hotel/constants"

	"github.com/joho/godotenv"
)

type DBConfig struct {
	Driver       string
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	Path         string
	MaxOpenConns int
}

type RedisConfig struct {
	Addr     string
	Username string
	Password string
	DB       int
}

type Config struct {
	Env          string
	Port         string
	CorsOrigin   string
	LogLevel     string
	CacheTTL     time.Duration
	ArrivalsCron string
	DB           DBConfig
	Redis        RedisConfig
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env not loaded, using process environment: %v", err)
	}
}

func GetEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envOrDefault(key, def string) string {
	if v := GetEnv(key); v != "" {
		return v
	}
	return def
}

// dbEnv đọc biến DB theo môi trường (DEV_DB_USER, QC_DB_USER, PROD_DB_USER...),
// rơi về DB_USER nếu không có
func dbEnv(env, key, def string) string {
	if v := GetEnv(strings.ToUpper(env) + "_DB_" + key); v != "" {
		return v
	}
	return envOrDefault("DB_"+key, def)
}

// Load đọc cấu hình từ môi trường; gọi LoadEnv trước nếu muốn dùng file .env
func Load() Config {
	env := strings.ToLower(envOrDefault("ENV", "dev"))

	cacheTTL := constants.DefaultCacheTTL
	if raw := GetEnv("CACHE_TTL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			cacheTTL = d
		} else {
			log.Printf("Warning: invalid CACHE_TTL %q, using %s", raw, cacheTTL)
		}
	}

	maxOpen, _ := strconv.Atoi(dbEnv(env, "MAX_OPEN_CONNS", "0"))
	redisDB, _ := strconv.Atoi(envOrDefault("REDIS_DB", "0"))

	return Config{
		Env:          env,
		Port:         envOrDefault("PORT", "9192"),
		CorsOrigin:   envOrDefault("CORS_ORIGIN", "http://localhost:5173"),
		LogLevel:     envOrDefault("LOG_LEVEL", "info"),
		CacheTTL:     cacheTTL,
		ArrivalsCron: envOrDefault("ARRIVALS_CRON", "0 6 * * *"),
		DB: DBConfig{
			Driver:       strings.ToLower(dbEnv(env, "DRIVER", "postgres")),
			Host:         dbEnv(env, "HOST", "localhost"),
			Port:         dbEnv(env, "PORT", ""),
			User:         dbEnv(env, "USER", ""),
			Password:     dbEnv(env, "PASSWORD", ""),
			Name:         dbEnv(env, "NAME", "treehouse_hotel"),
			SSLMode:      dbEnv(env, "SSLMODE", "disable"),
			Path:         dbEnv(env, "PATH", "treehouse.db"),
			MaxOpenConns: maxOpen,
		},
		Redis: RedisConfig{
			Addr:     GetEnv("REDIS_ADDR"),
			Username: GetEnv("REDIS_USER"),
			Password: GetEnv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
	}
}
