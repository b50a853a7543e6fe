package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// TokenTTL is the session credential validity window.
	TokenTTL time.Duration `env:"TOKEN_TTL, default=168h"`
	// OTPTTL is how long an emailed passcode stays valid.
	OTPTTL time.Duration `env:"OTP_TTL, default=10m"`
	// OTPResendCooldown limits how often one address can request a code.
	// Zero disables the throttle.
	OTPResendCooldown time.Duration `env:"OTP_RESEND_COOLDOWN, default=60s"`
	// DefaultUnitRate (currency per kWh) applies to appliances that carry no
	// per-record unit rate.
	DefaultUnitRate float64 `env:"DEFAULT_UNIT_RATE, default=8"`

	Mongo MongoConfig
	Redis RedisConfig
	SMTP  SMTPConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=energy_tracker"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST, default=localhost"`
	Port     int    `env:"SMTP_PORT, default=587"`
	From     string `env:"SMTP_FROM, default=no-reply@wattline.io"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
