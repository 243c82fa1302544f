package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver"` // postgres, mysql
		DSN    string `yaml:"dsn"`
	} `yaml:"database"`

	Auth struct {
		TokenTTLMinutes    int    `yaml:"token_ttl_minutes"`
		FirstAdminEmail    string `yaml:"first_admin_email"`
		FirstAdminPassword string `yaml:"first_admin_password"`
	} `yaml:"auth"`

	Storage struct {
		Type      string `yaml:"type"`       // local, s3
		BasePath  string `yaml:"base_path"`  // for local storage
		BaseURL   string `yaml:"base_url"`   // public URL base
		Bucket    string `yaml:"bucket"`     // for S3
		Region    string `yaml:"region"`     // for S3
		AccessKey string `yaml:"access_key"` // for S3
		SecretKey string `yaml:"secret_key"` // for S3
		Endpoint  string `yaml:"endpoint"`   // for S3-compatible stores (R2, MinIO)
	} `yaml:"storage"`

	Upload struct {
		ImageQuality int `yaml:"image_quality"` // JPEG quality (1-100)
	} `yaml:"upload"`

	Cache struct {
		Backend       string `yaml:"backend"` // memory, redis
		RedisAddr     string `yaml:"redis_addr"`
		RedisPassword string `yaml:"redis_password"`
		RedisDB       int    `yaml:"redis_db"`
	} `yaml:"cache"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`

	RateLimit struct {
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		Burst             int     `yaml:"burst"`
	} `yaml:"rate_limit"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, or falls back to environment variables
// when DATABASE_URL is set (test / container mode).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.Driver = envOr("DATABASE_DRIVER", "postgres")
	cfg.Database.DSN = dbURL
	cfg.Server.Env = envOr("SERVER_ENV", "development")
	cfg.Server.Port, _ = strconv.Atoi(envOr("SERVER_PORT", "8080"))
	cfg.Auth.TokenTTLMinutes, _ = strconv.Atoi(envOr("AUTH_TOKEN_TTL_MINUTES", "1440"))
	cfg.Auth.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.Auth.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")

	cfg.Storage.Type = envOr("STORAGE_TYPE", "local")
	cfg.Storage.BasePath = envOr("STORAGE_BASE_PATH", "./uploads")
	cfg.Storage.BaseURL = envOr("STORAGE_BASE_URL", "/api/v1/files")

	cfg.Cache.Backend = envOr("CACHE_BACKEND", "memory")
	cfg.Cache.RedisAddr = os.Getenv("REDIS_ADDR")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}
	if cfg.Auth.TokenTTLMinutes <= 0 {
		cfg.Auth.TokenTTLMinutes = 24 * 60
	}
	if cfg.Upload.ImageQuality <= 0 || cfg.Upload.ImageQuality > 100 {
		cfg.Upload.ImageQuality = 85
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = "memory"
	}
	if cfg.RateLimit.RequestsPerSecond <= 0 {
		cfg.RateLimit.RequestsPerSecond = 20
	}
	if cfg.RateLimit.Burst <= 0 {
		cfg.RateLimit.Burst = 40
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
