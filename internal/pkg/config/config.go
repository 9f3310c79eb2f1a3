package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeouts, booking policy)
// - empty optional: integrations that degrade gracefully when unset (Redis, Kafka)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	Booking BookingConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	// embedded migrations are applied at startup when true
	AutoMigrate bool `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
	// checked against the iss claim when set
	Issuer string `envconfig:"JWT_ISSUER"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"AVAILABILITY_CACHE_TTL" default:"20s"`
}

type KafkaConfig struct {
	Brokers      []string      `envconfig:"KAFKA_BROKERS"`
	Topic        string        `envconfig:"KAFKA_BOOKING_TOPIC" default:"booking.confirmed"`
	Compression  string        `envconfig:"KAFKA_COMPRESSION" default:"snappy"`
	RequiredAcks int           `envconfig:"KAFKA_REQUIRED_ACKS" default:"-1"`
	MaxAttempts  int           `envconfig:"KAFKA_MAX_ATTEMPTS" default:"3"`
	BatchTimeout time.Duration `envconfig:"KAFKA_BATCH_TIMEOUT" default:"10ms"`
	WriteTimeout time.Duration `envconfig:"KAFKA_WRITE_TIMEOUT" default:"5s"`
}

type BookingConfig struct {
	MaxStayDays    int           `envconfig:"BOOKING_MAX_STAY_DAYS" default:"30"`
	ReserveTimeout time.Duration `envconfig:"BOOKING_RESERVE_TIMEOUT" default:"5s"`
	LockTimeout    time.Duration `envconfig:"BOOKING_LOCK_TIMEOUT" default:"1s"`
	MaxRetries     int           `envconfig:"BOOKING_MAX_RETRIES" default:"3"`
	NotifyQueue    int           `envconfig:"NOTIFY_QUEUE_SIZE" default:"256"`
	NotifyWorkers  int           `envconfig:"NOTIFY_WORKERS" default:"2"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func (c *KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Booking.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate requires every lock attempt of a reservation to fit inside its
// timeout, otherwise contention surfaces as a deadline instead of a conflict.
func (c BookingConfig) Validate() error {
	if c.MaxRetries < 0 {
		return fmt.Errorf("BOOKING_MAX_RETRIES must not be negative, got %d", c.MaxRetries)
	}
	if c.ReserveTimeout <= 0 || c.LockTimeout <= 0 {
		return nil
	}
	if budget := c.LockBudget(); budget >= c.ReserveTimeout {
		return fmt.Errorf("BOOKING_LOCK_TIMEOUT x (BOOKING_MAX_RETRIES+1) = %s must be shorter than BOOKING_RESERVE_TIMEOUT %s",
			budget, c.ReserveTimeout)
	}
	return nil
}

// LockBudget is the longest a reservation can spend waiting on room locks.
func (c BookingConfig) LockBudget() time.Duration {
	return time.Duration(c.MaxRetries+1) * c.LockTimeout
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 40,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
			Issuer:   "hotel-booking-test",
		},
		Redis: RedisConfig{
			CacheTTL: 20 * time.Second,
		},
		Kafka: KafkaConfig{
			Topic: "booking.confirmed",
		},
		Booking: BookingConfig{
			MaxStayDays:    30,
			ReserveTimeout: 10 * time.Second,
			LockTimeout:    2 * time.Second,
			MaxRetries:     3,
			NotifyQueue:    16,
			NotifyWorkers:  1,
		},
	}
}
