package config

import "fmt"

// Config is the main client configuration struct.
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	API           APIConfig           `mapstructure:"api"`
	Session       SessionConfig       `mapstructure:"session"`
	Payment       PaymentConfig       `mapstructure:"payment"`
	Features      FeaturesConfig      `mapstructure:"features"`
	Logging       LoggingConfig       `mapstructure:"logging"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// APIConfig holds connection settings for the admission backend.
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
	UploadTimeout  int    `mapstructure:"upload_timeout"`  // milliseconds, document uploads are slower
}

// SessionConfig selects where the auth session and cached application
// snapshot are persisted. Backend "memory" keeps everything in-process.
type SessionConfig struct {
	Backend string      `mapstructure:"backend"` // "redis" or "memory"
	Redis   RedisConfig `mapstructure:"redis"`
	TTL     int         `mapstructure:"ttl"` // seconds, 0 = no expiry
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// PaymentConfig holds the application-fee parameters shown to the user.
// Verification happens server-side; the client only creates orders.
type PaymentConfig struct {
	Currency         string `mapstructure:"currency"`
	FeeMinorUnits    int64  `mapstructure:"fee_minor_units"`
	DisplayName      string `mapstructure:"display_name"`
	ThemeColor       string `mapstructure:"theme_color"`
	GatewayAvailable bool   `mapstructure:"gateway_available"`
}

// FeaturesConfig gates optional native capabilities of the current build.
type FeaturesConfig struct {
	PaymentSDK       bool `mapstructure:"payment_sdk"`
	SignatureCapture bool `mapstructure:"signature_capture"`
	NativeDatePicker bool `mapstructure:"native_date_picker"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ObservabilityConfig struct {
	MetricsAddress string `mapstructure:"metrics_address"` // ":9464" to expose /metrics, empty to disable
	JaegerEndpoint string `mapstructure:"jaeger_endpoint"` // collector endpoint, empty to disable tracing
	ServiceName    string `mapstructure:"service_name"`
}

func validateConfig(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if cfg.Session.Backend != "memory" && cfg.Session.Backend != "redis" {
		return fmt.Errorf("session.backend must be \"memory\" or \"redis\", got %q", cfg.Session.Backend)
	}
	if cfg.Session.Backend == "redis" && cfg.Session.Redis.Address == "" {
		return fmt.Errorf("session.redis.address is required when session.backend is redis")
	}
	if cfg.Payment.FeeMinorUnits < 0 {
		return fmt.Errorf("payment.fee_minor_units must be non-negative")
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "admission-client"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.API.RequestTimeout == 0 {
		cfg.API.RequestTimeout = 15000
	}
	if cfg.API.UploadTimeout == 0 {
		cfg.API.UploadTimeout = 60000
	}
	if cfg.Session.Backend == "" {
		cfg.Session.Backend = "memory"
	}
	if cfg.Payment.Currency == "" {
		cfg.Payment.Currency = "INR"
	}
	if cfg.Payment.FeeMinorUnits == 0 {
		cfg.Payment.FeeMinorUnits = 50000 // ₹500 application fee
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Observability.ServiceName == "" {
		cfg.Observability.ServiceName = cfg.App.Name
	}
}
