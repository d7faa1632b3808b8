package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		APIKey  string `envconfig:"API_KEY"`
		Booking struct {
			OpeningHour        int `envconfig:"OPENING_HOUR"         default:"6"`
			ClosingHour        int `envconfig:"CLOSING_HOUR"         default:"22"`
			MinDurationMinutes int `envconfig:"MIN_DURATION_MINUTES" default:"30"`
		} `envconfig:"BOOKING"`
	} `envconfig:"APP"`

	Backend struct {
		BaseURL            string `envconfig:"BASE_URL"`
		TimeoutSeconds     int    `envconfig:"TIMEOUT_SECONDS"      default:"15"`
		UserAgent          string `envconfig:"USER_AGENT"           default:"seatpos"`
		RefreshSkewSeconds int    `envconfig:"REFRESH_SKEW_SECONDS" default:"30"`
	} `envconfig:"BACKEND"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL                 int    `envconfig:"TTL"                   default:"60"`
		Namespace           string `envconfig:"NAMESPACE"             default:"seatpos"`
		StaleSeconds        int    `envconfig:"STALE_SECONDS"         default:"300"`
		CatalogStaleSeconds int    `envconfig:"CATALOG_STALE_SECONDS" default:"600"`
		RetainSeconds       int    `envconfig:"RETAIN_SECONDS"        default:"1800"`
		ClockStaleSeconds   int    `envconfig:"CLOCK_STALE_SECONDS"   default:"60"`
		ReadRetry           int    `envconfig:"READ_RETRY"            default:"1"`
	} `envconfig:"CACHE"`

	Credential struct {
		Path   string `envconfig:"PATH"   default:"seatpos.db"`
		Secret string `envconfig:"SECRET"`
	} `envconfig:"CREDENTIAL"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

var (
	ErrMissingBackend = errors.New("BACKEND_BASE_URL is required")
	ErrBusinessHours  = errors.New("APP_BOOKING_OPENING_HOUR must be before APP_BOOKING_CLOSING_HOUR, both within 0..24")
	ErrMinDuration    = errors.New("APP_BOOKING_MIN_DURATION_MINUTES must be positive")
)

// Validate checks the settings the process cannot run without.
func (c *Config) Validate() error {
	var errs []error

	if c.Backend.BaseURL == "" {
		errs = append(errs, ErrMissingBackend)
	}

	hours := c.App.Booking
	if hours.OpeningHour < 0 || hours.ClosingHour > 24 || hours.OpeningHour >= hours.ClosingHour {
		errs = append(errs, ErrBusinessHours)
	}

	if hours.MinDurationMinutes <= 0 {
		errs = append(errs, ErrMinDuration)
	}

	return errors.Join(errs...)
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Warn().Err(err).Msg("Configuration initialized without .env file")
		}
	}

	return &conf
}
