package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, sweep cadence, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Gate    GateConfig
	Payment PaymentConfig
	Booking BookingConfig
	Sweep   SweepConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// GateConfig signs the tokens embedded in booking QR codes; the gate
// scanner presents them back on entry/exit.
type GateConfig struct {
	TokenSecret   string        `envconfig:"GATE_TOKEN_SECRET" required:"true"`
	TokenLifetime time.Duration `envconfig:"GATE_TOKEN_LIFETIME" default:"48h"`
}

type PaymentConfig struct {
	Provider        string `envconfig:"PAYMENT_PROVIDER" default:"stub"`
	StripeSecretKey string `envconfig:"STRIPE_SECRET_KEY" default:""`
	Currency        string `envconfig:"PAYMENT_CURRENCY" default:"usd"`
}

type BookingConfig struct {
	// HoldDuration bounds how long a pending reservation may lock a slot
	// while payment is outstanding.
	HoldDuration time.Duration `envconfig:"BOOKING_HOLD_DURATION" default:"10m"`
}

type SweepConfig struct {
	// Spec is a robfig/cron expression; every minute by default.
	Spec              string        `envconfig:"SWEEP_CRON_SPEC" default:"* * * * *"`
	GraceWindow       time.Duration `envconfig:"SWEEP_GRACE_WINDOW" default:"15m"`
	ReminderLookahead time.Duration `envconfig:"SWEEP_REMINDER_LOOKAHEAD" default:"30m"`
	// OvertimeRateCents is the hourly fine rate applied to overstays.
	OvertimeRateCents int64 `envconfig:"SWEEP_OVERTIME_RATE_CENTS" default:"500"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Gate: GateConfig{
			TokenSecret:   "test-gate-secret",
			TokenLifetime: 48 * time.Hour,
		},
		Payment: PaymentConfig{
			Provider: "stub",
			Currency: "usd",
		},
		Booking: BookingConfig{
			HoldDuration: 10 * time.Minute,
		},
		Sweep: SweepConfig{
			Spec:              "* * * * *",
			GraceWindow:       15 * time.Minute,
			ReminderLookahead: 30 * time.Minute,
			OvertimeRateCents: 500,
		},
	}
}
