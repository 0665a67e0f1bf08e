package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (DB connection)
// - default: Values common across all environments (timezone, timeout, TTLs)
// - secrets (JWT, Stripe) are checked when the server wires the component that
//   needs them, so cmd/seed and cmd/migrate run with only DB settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Cookie CookieConfig
	Stripe StripeConfig
	Redis  RedisConfig
	Kafka  KafkaConfig
	Seed   SeedConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
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
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
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
	Secret   string        `envconfig:"JWT_SECRET"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// Payment processor settings are handed to the Stripe adapter at construction.
type StripeConfig struct {
	SecretKey        string        `envconfig:"STRIPE_SECRET_KEY"`
	WebhookSecret    string        `envconfig:"STRIPE_WEBHOOK_SECRET"`
	SuccessURL       string        `envconfig:"STRIPE_SUCCESS_URL" default:"http://localhost:8080/api/cart/checkout/success?session_id={CHECKOUT_SESSION_ID}"`
	CancelURL        string        `envconfig:"STRIPE_CANCEL_URL" default:"http://localhost:8080/api/cart"`
	DefaultCurrency  string        `envconfig:"STRIPE_DEFAULT_CURRENCY" default:"usd"`
	Timeout          time.Duration `envconfig:"STRIPE_TIMEOUT" default:"10s"`
	WebhookTolerance time.Duration `envconfig:"STRIPE_WEBHOOK_TOLERANCE" default:"5m"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CartTTL  time.Duration `envconfig:"CART_TTL" default:"20m"`
}

type KafkaConfig struct {
	Enabled       bool          `envconfig:"KAFKA_ENABLED" default:"false"`
	Brokers       []string      `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	TopicPrefix   string        `envconfig:"KAFKA_TOPIC_PREFIX" default:"bookify"`
	RelayInterval time.Duration `envconfig:"KAFKA_RELAY_INTERVAL" default:"2s"`
	RelayBatch    int32         `envconfig:"KAFKA_RELAY_BATCH" default:"50"`
	MaxAttempts   int32         `envconfig:"KAFKA_RELAY_MAX_ATTEMPTS" default:"5"`
}

type SeedConfig struct {
	File string `envconfig:"SEED_FILE" default:"seed/rooms.yaml"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

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
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error",
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-jwt-signing-32b",
			Duration: time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Stripe: StripeConfig{
			SecretKey:        "sk_test_dummy",
			WebhookSecret:    "whsec_test_secret",
			SuccessURL:       "http://localhost:8889/api/cart/checkout/success?session_id={CHECKOUT_SESSION_ID}",
			CancelURL:        "http://localhost:8889/api/cart",
			DefaultCurrency:  "usd",
			Timeout:          5 * time.Second,
			WebhookTolerance: 5 * time.Minute,
		},
		Redis: RedisConfig{
			Addr:    "localhost:16379",
			CartTTL: 20 * time.Minute,
		},
		Kafka: KafkaConfig{
			Enabled:       false,
			TopicPrefix:   "bookify-test",
			RelayInterval: time.Second,
			RelayBatch:    10,
			MaxAttempts:   3,
		},
	}
}
