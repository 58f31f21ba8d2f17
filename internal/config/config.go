package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/zemzen/booking-service/internal/domain"
	"github.com/zemzen/booking-service/pkg/types"
)

// ErrInvalidConfig возвращается, если конфигурация не прошла проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config корневая конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Booking   BookingConfig   `toml:"booking"`
	CORS      CORSConfig      `toml:"cors"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	SMTP      SMTPConfig      `toml:"smtp"`
	Calendar  CalendarConfig  `toml:"calendar"`
}

// ServerConfig таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"-"` // только из окружения, DB_PASSWORD
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type BookingConfig struct {
	Timeslots                []string `toml:"timeslots"`
	MinStayNights            int      `toml:"min_stay_nights"`
	MaxStayNights            int      `toml:"max_stay_nights"`
	MaxAdvanceDays           int      `toml:"max_advance_days"`
	SlotEventDurationMinutes int      `toml:"slot_event_duration_minutes"`
	Timezone                 string   `toml:"timezone"`
	SideEffectsTimeout       int      `toml:"side_effects_timeout"` // секунды
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

type RateLimitConfig struct {
	Enabled           bool `toml:"enabled"`
	RequestsPerMinute int  `toml:"requests_per_minute"`
	Burst             int  `toml:"burst"`
	TrustedProxies    int  `toml:"trusted_proxies"` // сколько прокси дописывают X-Forwarded-For
}

type SMTPConfig struct {
	Enabled    bool   `toml:"enabled"`
	Host       string `toml:"host"`
	Port       int    `toml:"port"`
	Username   string `toml:"username"`
	Password   string `toml:"-"` // SMTP_PASSWORD
	From       string `toml:"from"`
	AdminEmail string `toml:"admin_email"`
}

type CalendarConfig struct {
	Enabled         bool   `toml:"enabled"`
	CalendarID      string `toml:"calendar_id"`
	CredentialsFile string `toml:"credentials_file"` // GOOGLE_CREDENTIALS_FILE перекрывает
}

// Load читает .env (если есть), TOML файл и переменные окружения.
// Секреты берутся только из окружения.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to load .env: %w", err)
	}

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        10000,
			ReadTimeout:     10,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "booking-service",
		},
		Booking: BookingConfig{
			Timeslots:                append([]string(nil), domain.DefaultTimeslots...),
			MinStayNights:            domain.DefaultMinStayNights,
			MaxStayNights:            domain.DefaultMaxStayNights,
			MaxAdvanceDays:           domain.DefaultMaxAdvanceDays,
			SlotEventDurationMinutes: domain.DefaultSlotEventDurationMinutes,
			Timezone:                 domain.DefaultTimezone,
			SideEffectsTimeout:       15,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 10,
			Burst:             5,
		},
		SMTP: SMTPConfig{Port: 587},
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		c.SMTP.Password = v
	}
	if v := os.Getenv("GOOGLE_CREDENTIALS_FILE"); v != "" {
		c.Calendar.CredentialsFile = v
	}
	// PORT выставляет хостинг
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: PORT=%q: %v", ErrInvalidConfig, v, err)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

// Validate проверяет значения, без которых сервис не может работать
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if len(c.Booking.Timeslots) == 0 {
		return fmt.Errorf("%w: booking.timeslots is empty", ErrInvalidConfig)
	}

	seen := make(map[string]struct{}, len(c.Booking.Timeslots))
	for _, label := range c.Booking.Timeslots {
		if _, err := types.ParseTimeslot(label); err != nil {
			return fmt.Errorf("%w: booking.timeslots: %v", ErrInvalidConfig, err)
		}
		if _, ok := seen[label]; ok {
			return fmt.Errorf("%w: booking.timeslots: duplicate %q", ErrInvalidConfig, label)
		}
		seen[label] = struct{}{}
	}

	if c.Booking.MinStayNights <= 0 {
		return fmt.Errorf("%w: booking.min_stay_nights must be positive", ErrInvalidConfig)
	}

	if c.Booking.MaxStayNights < c.Booking.MinStayNights || c.Booking.MaxStayNights > domain.MaxStayNightsLimit {
		return fmt.Errorf("%w: booking.max_stay_nights must be in %d..%d",
			ErrInvalidConfig, c.Booking.MinStayNights, domain.MaxStayNightsLimit)
	}

	if c.Booking.MaxAdvanceDays <= 0 || c.Booking.MaxAdvanceDays > domain.MaxAdvanceDaysLimit {
		return fmt.Errorf("%w: booking.max_advance_days must be in 1..%d", ErrInvalidConfig, domain.MaxAdvanceDaysLimit)
	}

	if c.Booking.SlotEventDurationMinutes <= 0 {
		return fmt.Errorf("%w: booking.slot_event_duration_minutes must be positive", ErrInvalidConfig)
	}

	if _, err := time.LoadLocation(c.Booking.Timezone); err != nil {
		return fmt.Errorf("%w: booking.timezone %q: %v", ErrInvalidConfig, c.Booking.Timezone, err)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("%w: rate_limit.requests_per_minute must be positive", ErrInvalidConfig)
	}

	if c.RateLimit.TrustedProxies < 0 {
		return fmt.Errorf("%w: rate_limit.trusted_proxies must not be negative", ErrInvalidConfig)
	}

	if c.SMTP.Enabled && (c.SMTP.Host == "" || c.SMTP.Username == "") {
		return fmt.Errorf("%w: smtp.host and smtp.username are required when smtp is enabled", ErrInvalidConfig)
	}

	if c.Calendar.Enabled && (c.Calendar.CalendarID == "" || c.Calendar.CredentialsFile == "") {
		return fmt.Errorf("%w: calendar.calendar_id and credentials file are required when calendar is enabled", ErrInvalidConfig)
	}

	return nil
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.DBName,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}

// Policy правила бронирования
func (b BookingConfig) Policy() domain.BookingPolicy {
	return domain.BookingPolicy{
		Timeslots:      append([]string(nil), b.Timeslots...),
		MinStayNights:  b.MinStayNights,
		MaxStayNights:  b.MaxStayNights,
		MaxAdvanceDays: b.MaxAdvanceDays,
		Location:       b.Location(),
	}
}

// Location часовой пояс событий календаря, проверен в Validate
func (b BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (b BookingConfig) SlotEventDuration() time.Duration {
	return time.Duration(b.SlotEventDurationMinutes) * time.Minute
}
