// config предоставляет структуру конфигурации classifieds-api
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
//
// Переменные окружения всегда накладываются поверх файла.
// Файл ./.env (если есть) загружается в окружение до чтения конфигурации.
type Config struct {
	Env      string        `yaml:"env"     env:"ENV"        env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	GRPC     GRPCConfig    `yaml:"grpc"`
	DB       DBConfig      `yaml:"db"`
	Limits   LimitsConfig  `yaml:"limits"`
	Filters  FiltersConfig `yaml:"filters"`
	Cache    CacheConfig   `yaml:"cache"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// HTTPConfig — публичный REST-сервер.
type HTTPConfig struct {
	Host     string `yaml:"host"      env:"HTTP_HOST"      env-default:"0.0.0.0"`
	Port     string `yaml:"port"      env:"HTTP_PORT"      env-default:"3000"`
	BasePath string `yaml:"base_path" env:"HTTP_BASE_PATH" env-default:"/api"`
	// Разрешённые Origin для CORS; пусто — любой.
	CORSOrigins []string `yaml:"cors_origins" env:"HTTP_CORS_ORIGINS" env-separator:","`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// GRPCConfig — gRPC health-сервер для оркестратора.
type GRPCConfig struct {
	Enabled bool   `yaml:"enabled" env:"GRPC_ENABLED" env-default:"true"`
	Host    string `yaml:"host"    env:"GRPC_HOST"    env-default:"0.0.0.0"`
	Port    string `yaml:"port"    env:"GRPC_PORT"    env-default:"50070"`
}

// Addr возвращает адрес в формате host:port.
func (g GRPCConfig) Addr() string {
	return net.JoinHostPort(g.Host, g.Port)
}

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
	// Верхняя граница пула соединений.
	MaxConns int32 `yaml:"max_conns" env:"DB_MAX_CONNS" env-default:"20"`
	// Стартовая проба: число попыток и пауза между ними.
	ProbeAttempts int           `yaml:"probe_attempts" env:"DB_PROBE_ATTEMPTS" env-default:"5"`
	ProbeBackoff  time.Duration `yaml:"probe_backoff"  env:"DB_PROBE_BACKOFF"  env-default:"2s"`
	// Расписание фонового Ping (формат robfig/cron, например "@every 15s").
	MonitorSpec string `yaml:"monitor_spec" env:"DB_MONITOR_SPEC" env-default:"@every 15s"`
}

// LimitsConfig — серверные лимиты на выдачу.
type LimitsConfig struct {
	// Применяется при отсутствующем/некорректном limit.
	Default int `yaml:"default" env:"DEFAULT_LIMIT" env-default:"6"`
	// Верхняя граница для limit.
	Max int `yaml:"max" env:"MAX_LIMIT" env-default:"100"`
}

// FiltersConfig — параметры интерпретации фильтров.
type FiltersConfig struct {
	// Именованная зона, в которой трактуется параметр date.
	Timezone string `yaml:"timezone" env:"FILTERS_TIMEZONE" env-default:"Asia/Ho_Chi_Minh"`
}

// Location возвращает *time.Location для Timezone.
func (f FiltersConfig) Location() (*time.Location, error) {
	return time.LoadLocation(f.Timezone)
}

// CacheConfig — HTTP-кэширование и опциональный Redis-кэш листингов.
type CacheConfig struct {
	// Пустой URL отключает Redis-кэш.
	RedisURL string        `yaml:"redis_url" env:"REDIS_URL"`
	Prefix   string        `yaml:"prefix"    env:"CACHE_PREFIX" env-default:"classifieds:products:"`
	TTL      time.Duration `yaml:"ttl"       env:"CACHE_TTL"    env-default:"60s"`
	// Значения max-age в Cache-Control.
	ProductsMaxAge  time.Duration `yaml:"products_max_age"  env:"CACHE_PRODUCTS_MAX_AGE"  env-default:"60s"`
	DirectoryMaxAge time.Duration `yaml:"directory_max_age" env:"CACHE_DIRECTORY_MAX_AGE" env-default:"300s"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	// Общий дедлайн HTTP-запроса.
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"15s"`
	// Дедлайн одного запроса к БД.
	Query time.Duration `yaml:"query" env:"QUERY_TIMEOUT" env-default:"5s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		return tryRead(path)
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		return tryRead("local.yaml")
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}
	if c.DB.MaxConns <= 0 {
		return fmt.Errorf("db.max_conns must be > 0")
	}
	if c.DB.ProbeAttempts <= 0 {
		return fmt.Errorf("db.probe_attempts must be > 0")
	}
	if c.DB.ProbeBackoff < 0 {
		return fmt.Errorf("db.probe_backoff must be >= 0")
	}
	if _, err := cron.ParseStandard(c.DB.MonitorSpec); err != nil {
		return fmt.Errorf("db.monitor_spec is invalid: %w", err)
	}
	if c.Limits.Default <= 0 {
		return fmt.Errorf("limits.default must be > 0")
	}
	if c.Limits.Max <= 0 {
		return fmt.Errorf("limits.max must be > 0")
	}
	if c.Limits.Default > c.Limits.Max {
		return fmt.Errorf("limits.default must be <= limits.max")
	}
	if _, err := c.Filters.Location(); err != nil {
		return fmt.Errorf("filters.timezone is invalid: %w", err)
	}
	if c.Cache.RedisURL != "" && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be > 0 when cache.redis_url is set")
	}
	if c.Cache.ProductsMaxAge < 0 || c.Cache.DirectoryMaxAge < 0 {
		return fmt.Errorf("cache max-age values must be >= 0")
	}
	if c.Timeouts.Query <= 0 {
		return fmt.Errorf("timeouts.query must be > 0")
	}
	return nil
}
