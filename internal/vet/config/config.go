package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds configuration values parsed from environment variables.
// Command-line flags may override individual fields after loading.
type AppConfig struct {
	// CacheSize bounds the screening verdict cache.
	CacheSize uint `koanf:"cache_size" validate:"required,gte=1"`

	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// Rules is the protected-word rules path: a file, a directory, or a
	// URL when it starts with http(s).
	Rules string `koanf:"rules" validate:"required"`

	// HandlesURL is the minted-handle feed endpoint.
	HandlesURL string `koanf:"handles_url" validate:"required,feed_url"`

	// HandlesCache is where the downloaded handle list is kept between
	// runs.
	HandlesCache string `koanf:"handles_cache" validate:"required"`

	// HTTPTimeout bounds each feed download.
	HTTPTimeout time.Duration `koanf:"http_timeout" validate:"required,gt=0"`

	// UserAgent is sent on every feed request.
	UserAgent string `koanf:"user_agent" validate:"required"`

	// MaxLen is the longest handle or word considered, punctuation
	// included.
	MaxLen int `koanf:"max_len" validate:"required,gte=1,lte=64"`
}

// DEFAULT_APP_CONFIG defines the default application configuration
// settings for handle vetting: cache size, environment, log level, rule
// source, handle feed endpoint and cache location, network limits, and
// the handle length cap.
var DEFAULT_APP_CONFIG = AppConfig{
	CacheSize:    1024,
	Env:          "prod",
	LogLevel:     "info",
	Rules:        "t.words",
	HandlesURL:   "https://api.handle.me/handles",
	HandlesCache: ".cache/handles.txt",
	HTTPTimeout:  30 * time.Second,
	UserAgent:    "handlevet/1.0",
	MaxLen:       15,
}

// validFeedURL validates whether the provided field value is an absolute
// http or https URL with a host.
func validFeedURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// envLoader is a function that loads environment variables with the prefix "VET_".
// It transforms the keys to lowercase and removes the prefix.
// and can be mocked in tests.
var envLoader = func(k *koanf.Koanf) error {
	// Load environment variables with prefix "VET_".
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "VET_",
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, "VET_"))
			value = strings.TrimSpace(value)
			return key, value
		},
	}), nil)
}

// defaultLoader loads default configuration values into the provided Koanf instance
// using the structs provider and the DEFAULT_APP_CONFIG struct. It returns an error
// if loading fails.
var defaultLoader = func(k *koanf.Koanf) error {
	// Load default values using structs provider.
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// registerValidation registers a custom validation function "feed_url" with the provided validator.
// It associates the "feed_url" tag with the validFeedURL validation logic.
// Returns an error if registration fails.
var registerValidation = func(v *validator.Validate) error {
	return v.RegisterValidation("feed_url", validFeedURL)
}

// Load parses environment variables and returns an AppConfig instance.
// It applies default values and runs validation automatically.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	// Load default values using structs provider.
	err := defaultLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	// Load environment variables with prefix "VET_".
	err = envLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig

	// Unmarshal the loaded configuration into AppConfig struct.
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Validate the configuration.
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Register the custom validation function for feed URLs.
	err = registerValidation(validate)
	if err != nil {
		return nil, fmt.Errorf("error registering validation: %w", err)
	}

	err = validate.Struct(&cfg)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
