package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Префикс переменных окружения, переопределяющих секреты
const envPrefix = "SCHEDULER_"

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Scheduler SchedulerConfig `toml:"scheduler"`
	Storage   StorageConfig   `toml:"storage"`
	Admin     AdminConfig     `toml:"admin"`
	Mail      MailConfig      `toml:"mail"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	CORS      CORSConfig      `toml:"cors"`
}

// ServerConfig параметры HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
	PublicURL       string `toml:"public_url"` // адрес страницы, от которого строятся ссылки отказа
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SchedulerConfig сетка слотов и параметры оформления
type SchedulerConfig struct {
	Mode            string `toml:"mode"`
	StartHour       int    `toml:"start_hour"`
	EndHour         int    `toml:"end_hour"`
	IntervalMinutes int    `toml:"interval_minutes"`
	MonthsForward   int    `toml:"months_forward"`
	PhoneDigits     int    `toml:"phone_digits"`
	CountryCode     string `toml:"country_code"`
	Recipient       string `toml:"recipient"`
	ToastDelayMS    int    `toml:"toast_delay_ms"`
	Timezone        string `toml:"timezone"`
}

// StorageConfig слот хранения бронирований
type StorageConfig struct {
	Driver   string         `toml:"driver"` // file | memory | redis | postgres
	SlotName string         `toml:"slot_name"`
	FilePath string         `toml:"file_path"`
	Redis    RedisConfig    `toml:"redis"`
	Postgres PostgresConfig `toml:"postgres"`
}

// RedisConfig параметры подключения к Redis
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

// PostgresConfig параметры подключения к PostgreSQL
type PostgresConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	Table           string `toml:"table"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// AdminConfig статические учетные данные администратора
type AdminConfig struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
}

// MailConfig серверная отправка уведомлений через SendGrid
type MailConfig struct {
	SendGridAPIKey string `toml:"sendgrid_api_key"`
	FromEmail      string `toml:"from_email"`
	FromName       string `toml:"from_name"`
}

// RateLimitConfig ограничение частоты запросов на IP
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// CORSConfig параметры CORS для браузерной поверхности
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// DSN строка подключения к PostgreSQL
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ToastDelay задержка скрытия уведомления
func (c SchedulerConfig) ToastDelay() time.Duration {
	return time.Duration(c.ToastDelayMS) * time.Millisecond
}

// Location часовой пояс календаря. Пустое значение означает локальный
func (c SchedulerConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// Load читает конфигурацию из TOML файла, .env и переменных окружения
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			PublicURL:       "http://localhost:8080/",
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "slot-scheduler",
		},
		Scheduler: SchedulerConfig{
			Mode:            string(domain.ModeMultiDay),
			StartHour:       domain.DefaultStartHour,
			EndHour:         domain.DefaultEndHour,
			IntervalMinutes: domain.DefaultIntervalMinutes,
			MonthsForward:   domain.DefaultMonthsForward,
			PhoneDigits:     domain.DefaultPhoneDigits,
			CountryCode:     domain.DefaultCountryCode,
			ToastDelayMS:    domain.DefaultToastDelayMS,
		},
		Storage: StorageConfig{
			Driver:   "file",
			SlotName: domain.DefaultStorageSlot,
			FilePath: "data",
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "scheduler:",
			},
			Postgres: PostgresConfig{
				Host:            "localhost",
				Port:            5432,
				SSLMode:         "disable",
				Table:           "storage_slots",
				MaxOpenConns:    5,
				MaxIdleConns:    2,
				ConnMaxLifetime: 300,
			},
		},
		Admin: AdminConfig{
			Username: "Admin",
			Password: "Admin",
		},
		Mail: MailConfig{
			FromName: "Slot Scheduler",
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 1,
			Burst:             5,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}

// applyEnv переопределяет секреты и адреса из переменных окружения SCHEDULER_*
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"ADMIN_USERNAME":    &c.Admin.Username,
		"ADMIN_PASSWORD":    &c.Admin.Password,
		"SENDGRID_API_KEY":  &c.Mail.SendGridAPIKey,
		"MAIL_FROM":         &c.Mail.FromEmail,
		"RECIPIENT":         &c.Scheduler.Recipient,
		"PUBLIC_URL":        &c.Server.PublicURL,
		"STORAGE_DRIVER":    &c.Storage.Driver,
		"REDIS_ADDR":        &c.Storage.Redis.Addr,
		"REDIS_PASSWORD":    &c.Storage.Redis.Password,
		"POSTGRES_HOST":     &c.Storage.Postgres.Host,
		"POSTGRES_USER":     &c.Storage.Postgres.User,
		"POSTGRES_PASSWORD": &c.Storage.Postgres.Password,
		"POSTGRES_DB":       &c.Storage.Postgres.DBName,
		"LOG_LEVEL":         &c.Logs.Level,
	}
	for name, dst := range strs {
		if v, ok := lookup(envPrefix + name); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"HTTP_PORT":     &c.Server.HTTPPort,
		"POSTGRES_PORT": &c.Storage.Postgres.Port,
	}
	for name, dst := range ints {
		v, ok := lookup(envPrefix + name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not a number", ErrInvalidConfig, envPrefix, name, v)
		}
		*dst = n
	}

	return nil
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Server.PublicURL == "" {
		return fmt.Errorf("%w: server.public_url is required", ErrInvalidConfig)
	}

	s := c.Scheduler
	if err := domain.Mode(s.Mode).Validate(); err != nil {
		return fmt.Errorf("%w: scheduler.mode: %v", ErrInvalidConfig, err)
	}
	if s.StartHour < 0 || s.EndHour > 23 || s.StartHour > s.EndHour {
		return fmt.Errorf("%w: scheduler hours must satisfy 0 <= start_hour <= end_hour <= 23", ErrInvalidConfig)
	}
	if s.IntervalMinutes < domain.MinIntervalMinutes || s.IntervalMinutes > domain.MaxIntervalMinutes {
		return fmt.Errorf("%w: scheduler.interval_minutes must be in %d..%d",
			ErrInvalidConfig, domain.MinIntervalMinutes, domain.MaxIntervalMinutes)
	}
	if s.MonthsForward < 0 || s.MonthsForward > domain.MaxMonthsForward {
		return fmt.Errorf("%w: scheduler.months_forward must be in 0..%d", ErrInvalidConfig, domain.MaxMonthsForward)
	}
	if s.PhoneDigits <= 0 || s.PhoneDigits > domain.MaxPhoneDigits {
		return fmt.Errorf("%w: scheduler.phone_digits must be in 1..%d", ErrInvalidConfig, domain.MaxPhoneDigits)
	}
	if s.ToastDelayMS <= 0 {
		return fmt.Errorf("%w: scheduler.toast_delay_ms must be positive", ErrInvalidConfig)
	}
	if _, err := s.Location(); err != nil {
		return fmt.Errorf("%w: scheduler.timezone: %v", ErrInvalidConfig, err)
	}

	switch c.Storage.Driver {
	case "file", "memory", "redis", "postgres":
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}
	if c.Storage.SlotName == "" {
		return fmt.Errorf("%w: storage.slot_name is required", ErrInvalidConfig)
	}

	if c.Admin.Username == "" || c.Admin.Password == "" {
		return fmt.Errorf("%w: admin credentials are required", ErrInvalidConfig)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_second and burst", ErrInvalidConfig)
	}

	return nil
}
