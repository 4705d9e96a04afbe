package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr          string        `yaml:"addr"`
	JWTSecret     string        `yaml:"jwt_secret"`
	APITimeout    time.Duration `yaml:"timeout"`
	DatabasePath  string        `yaml:"database_path"`
	TokenDuration time.Duration `yaml:"token_duration"`
	RedisURL      string        `yaml:"redis_url"`
	CacheTTL      time.Duration `yaml:"cache_ttl"`
	MaxCVBytes    int64         `yaml:"max_cv_bytes"`
}

func LoadConfig(path string) (*Config, error) {
	apiTimeout := 15 * time.Second
	tokenDuration := 1 * time.Hour
	cacheTTL := 30 * time.Second

	cfg := &Config{
		Addr:          getEnv("TALAASH_ADDR", ":8080"),
		JWTSecret:     getEnv("TALAASH_JWT_SECRET", "supersecretkey"),
		APITimeout:    apiTimeout,
		DatabasePath:  getEnv("TALAASH_DATABASE_PATH", "talaash.db"),
		TokenDuration: tokenDuration,
		RedisURL:      getEnv("TALAASH_REDIS_URL", ""),
		CacheTTL:      cacheTTL,
		// base64-encoded PDFs are large; default to 20MB request bodies
		MaxCVBytes: 20 << 20,
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
