package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPort         = "3000"
	DefaultStaticRoot   = "./public"
	DefaultMaxBodyBytes = 100 << 10
	DefaultRateLimit    = 100
)

type RedisConfig struct {
	Addr     string
	Password string
}

func (r RedisConfig) Enabled() bool { return r.Addr != "" }

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
}

func (m MinioConfig) Enabled() bool { return m.Endpoint != "" && m.Bucket != "" }

type Config struct {
	Port               string
	StaticRoot         string
	MaxBodyBytes       int64
	RateLimitPerMinute int
	LogLevel           string
	Redis              RedisConfig
	Minio              MinioConfig
}

func (c Config) Addr() string { return ":" + c.Port }

// Load reads .env when present, then the process environment.
func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  no .env file found, using system environment")
	} else {
		log.Println("✅ .env file loaded")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() Config {
	return Config{
		Port:               getenv("PORT", DefaultPort),
		StaticRoot:         getenv("STATIC_ROOT", DefaultStaticRoot),
		MaxBodyBytes:       int64(atoienv("MAX_BODY_BYTES", DefaultMaxBodyBytes)),
		RateLimitPerMinute: atoienv("RATE_LIMIT_PER_MINUTE", DefaultRateLimit),
		LogLevel:           strings.ToLower(getenv("LOG_LEVEL", "info")),
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Minio: MinioConfig{
			Endpoint:  os.Getenv("MINIO_ENDPOINT"),
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Bucket:    os.Getenv("MINIO_BUCKET"),
			Prefix:    strings.Trim(os.Getenv("MINIO_PREFIX"), "/"),
			UseSSL:    boolenv("MINIO_USE_SSL", false),
		},
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func boolenv(key string, def bool) bool {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
