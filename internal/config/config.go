package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server     ServerConfig
	Postgres   PostgresConfig
	Redis      RedisConfig
	Booking    BookingConfig
	Alternates AlternatesConfig
	Payment    PaymentConfig
	Limits     LimitsConfig
	Cache      CacheConfig
	Sweep      SweepConfig
	Log        LogConfig
}

type ServerConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"localhost"`
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"5s"`
	AllowOrigins    []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AdminToken      string        `envconfig:"ADMIN_TOKEN"`
	// DevMode allows an open admin API and the built-in webhook secret.
	DevMode         bool          `envconfig:"DEV_MODE" default:"false"`
}

type PostgresConfig struct {
	User     string `envconfig:"POSTGRES_USER" required:"true"`
	Password string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	Name     string `envconfig:"POSTGRES_DB" required:"true"`
	Host     string `envconfig:"POSTGRES_HOST" default:"localhost"`
	Port     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	SSLMode  string `envconfig:"POSTGRES_SSLMODE" default:"disable"`
	MaxConns int32  `envconfig:"POSTGRES_MAX_CONNS" default:"20"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// BookingConfig holds the business constants of slot booking.
type BookingConfig struct {
	MaxSlotsPerDate  int           `envconfig:"BOOKING_MAX_SLOTS_PER_DATE" default:"3"`
	HorizonDays      int           `envconfig:"BOOKING_HORIZON_DAYS" default:"56"`
	TimeZone         string        `envconfig:"BOOKING_TIMEZONE" default:"UTC"`
	WeekdayRateCents int64         `envconfig:"BOOKING_WEEKDAY_RATE_CENTS" default:"800"`
	WeekendRateCents int64         `envconfig:"BOOKING_WEEKEND_RATE_CENTS" default:"1000"`
	FlatTaxRate      float64       `envconfig:"BOOKING_FLAT_TAX_RATE" default:"0.065"`
	PaymentWindow    time.Duration `envconfig:"BOOKING_PAYMENT_WINDOW" default:"30m"`
	Service          string        `envconfig:"BOOKING_SERVICE" default:"booking"`
}

type AlternatesConfig struct {
	RadiusMiles float64 `envconfig:"ALTERNATES_RADIUS_MILES" default:"50"`
	MaxResults  int     `envconfig:"ALTERNATES_MAX_RESULTS" default:"5"`
}

const devWebhookSecret = "dev-secret"

type PaymentConfig struct {
	BaseURL       string `envconfig:"PAYMENT_BASE_URL" default:"http://localhost:8080"`
	WebhookSecret string `envconfig:"PAYMENT_WEBHOOK_SECRET" default:"dev-secret"`
}

type LimitsConfig struct {
	CheckoutPerMinute int `envconfig:"LIMIT_CHECKOUT_PER_MINUTE" default:"10"`
	PromoPerMinute    int `envconfig:"LIMIT_PROMO_PER_MINUTE" default:"30"`
}

type CacheConfig struct {
	AvailabilityTTL time.Duration `envconfig:"CACHE_AVAILABILITY_TTL" default:"10s"`
	IdempotencyTTL  time.Duration `envconfig:"CACHE_IDEMPOTENCY_TTL" default:"24h"`
	IdempotencyLock time.Duration `envconfig:"CACHE_IDEMPOTENCY_LOCK_TTL" default:"60s"`
}

type SweepConfig struct {
	Enabled   bool          `envconfig:"SWEEP_ENABLED" default:"true"`
	Interval  time.Duration `envconfig:"SWEEP_INTERVAL" default:"1m"`
	BatchSize int           `envconfig:"SWEEP_BATCH_SIZE" default:"100"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
}

// New loads .env when present, then the environment.
func New() (*Config, error) {
	const op = "config.New"

	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

// NewTest returns a config with the defaults used by tests. No environment is read.
func NewTest() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "localhost", Port: 8889, ShutdownTimeout: 5 * time.Second,
			AllowOrigins: []string{"*"}, AdminToken: "test-admin-token",
		},
		Postgres: PostgresConfig{
			User: "test", Password: "test", Name: "adslot_test",
			Host: "localhost", Port: 5432, SSLMode: "disable", MaxConns: 10,
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
		Booking: BookingConfig{
			MaxSlotsPerDate:  3,
			HorizonDays:      56,
			TimeZone:         "UTC",
			WeekdayRateCents: 800,
			WeekendRateCents: 1000,
			FlatTaxRate:      0.065,
			PaymentWindow:    30 * time.Minute,
			Service:          "booking",
		},
		Alternates: AlternatesConfig{RadiusMiles: 50, MaxResults: 5},
		Payment:    PaymentConfig{BaseURL: "http://localhost:8889", WebhookSecret: "test-secret"},
		Limits:     LimitsConfig{CheckoutPerMinute: 1000, PromoPerMinute: 1000},
		Cache: CacheConfig{
			AvailabilityTTL: 5 * time.Second,
			IdempotencyTTL:  time.Hour,
			IdempotencyLock: 10 * time.Second,
		},
		Sweep: SweepConfig{Enabled: false, Interval: time.Second, BatchSize: 100},
		Log:   LogConfig{Level: "error", Format: "text"},
	}
}

func (c *Config) Validate() error {
	var errs []error

	if c.Booking.MaxSlotsPerDate <= 0 {
		errs = append(errs, errors.New("BOOKING_MAX_SLOTS_PER_DATE must be positive"))
	}

	if c.Booking.HorizonDays <= 0 {
		errs = append(errs, errors.New("BOOKING_HORIZON_DAYS must be positive"))
	}

	if _, err := time.LoadLocation(c.Booking.TimeZone); err != nil {
		errs = append(errs, fmt.Errorf("BOOKING_TIMEZONE: %w", err))
	}

	if c.Booking.PaymentWindow <= 0 {
		errs = append(errs, errors.New("BOOKING_PAYMENT_WINDOW must be positive"))
	}

	if c.Alternates.MaxResults <= 0 {
		errs = append(errs, errors.New("ALTERNATES_MAX_RESULTS must be positive"))
	}

	if c.Payment.WebhookSecret == "" {
		errs = append(errs, errors.New("PAYMENT_WEBHOOK_SECRET must be set"))
	}

	if !c.Server.DevMode {
		if c.Server.AdminToken == "" {
			errs = append(errs, errors.New("ADMIN_TOKEN must be set unless DEV_MODE is on"))
		}
		if c.Payment.WebhookSecret == devWebhookSecret {
			errs = append(errs, errors.New("PAYMENT_WEBHOOK_SECRET must not be the development default unless DEV_MODE is on"))
		}
	}

	return errors.Join(errs...)
}

func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Location is the booking timezone. Validate has already checked it loads.
func (c *BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
