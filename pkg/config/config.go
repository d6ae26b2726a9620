package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App             AppConfig
	Store           StoreConfig
	Catalog         CatalogConfig
	Cart            CartConfig
	Redis           RedisConfig
	AdviceRateLimit AdviceRateLimitConfig
	OpenAI          OpenAIConfig
	CORS            CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GREENLYFE_APP_ENV" required:"true"`
	Port         string `envconfig:"GREENLYFE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"GREENLYFE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GREENLYFE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type StoreConfig struct {
	Name           string `envconfig:"GREENLYFE_STORE_NAME" default:"Greenlyfe"`
	Locale         string `envconfig:"GREENLYFE_STORE_LOCALE" default:"pt-BR"`
	CurrencySymbol string `envconfig:"GREENLYFE_STORE_CURRENCY_SYMBOL" default:"R$"`
	WhatsAppNumber string `envconfig:"GREENLYFE_STORE_WHATSAPP_NUMBER" default:"5583987848625"`
}

type CatalogConfig struct {
	// SeedPath points at a JSON product list; empty means the built-in seed.
	SeedPath string `envconfig:"GREENLYFE_CATALOG_SEED_PATH"`
}

type CartConfig struct {
	CookieName    string        `envconfig:"GREENLYFE_CART_COOKIE_NAME" default:"glf_session"`
	SessionTTL    time.Duration `envconfig:"GREENLYFE_CART_SESSION_TTL" default:"12h"`
	SweepInterval time.Duration `envconfig:"GREENLYFE_CART_SWEEP_INTERVAL" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"GREENLYFE_REDIS_URL"`
	Address      string        `envconfig:"GREENLYFE_REDIS_ADDR"`
	Password     string        `envconfig:"GREENLYFE_REDIS_PASSWORD"`
	DB           int           `envconfig:"GREENLYFE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"GREENLYFE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GREENLYFE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GREENLYFE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GREENLYFE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"GREENLYFE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint was configured at all.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type AdviceRateLimitConfig struct {
	Window  time.Duration `envconfig:"GREENLYFE_ADVICE_RATE_LIMIT_WINDOW" default:"1m"`
	IPLimit int           `envconfig:"GREENLYFE_ADVICE_RATE_LIMIT_IP_LIMIT" default:"5"`
}

type OpenAIConfig struct {
	APIKey  string `envconfig:"GREENLYFE_OPENAI_API_KEY"`
	BaseURL string `envconfig:"GREENLYFE_OPENAI_BASE_URL"`
	Model   string `envconfig:"GREENLYFE_OPENAI_MODEL" default:"gpt-4o-mini"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"GREENLYFE_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}
