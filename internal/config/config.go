package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/leodido/moneylaundry/internal/filter"
	"github.com/leodido/moneylaundry/internal/validator"
)

type Config struct {
	Host         string   `yaml:"host"`
	Port         int      `yaml:"port"`
	AllowOrigins []string `yaml:"allow_origins"`
	LogLevel     string   `yaml:"log_level"`
	MaxUploadMB  int      `yaml:"max_upload_mb"`
	LogFile      string   `yaml:"log_file"`

	// engine defaults, overridable per request
	Locale              string `yaml:"default_locale"`
	CurrencyCode        string `yaml:"default_currency"`
	ScaleCorrectness    bool   `yaml:"scale_correctness"`
	CurrencyCorrectness bool   `yaml:"currency_correctness"`
	NegativeAllowed     bool   `yaml:"negative_allowed"`
}

func Default() Config {
	return Config{
		Host:                "127.0.0.1",
		Port:                8082,
		AllowOrigins:        []string{"*"},
		LogLevel:            "info",
		MaxUploadMB:         32,
		LogFile:             "logs/moneylaundry.log",
		ScaleCorrectness:    filter.DefaultScaleCorrectness,
		CurrencyCorrectness: filter.DefaultCurrencyCorrectness,
		NegativeAllowed:     validator.DefaultNegativeAllowed,
	}
}

// Load starts from Default, overlays the YAML file named by CONFIG_FILE
// and then the environment.
func Load() (Config, error) {
	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.Host = getenv("HOST", cfg.Host)
	cfg.Port = getint("PORT", cfg.Port)
	if v := os.Getenv("ALLOW_ORIGINS"); v != "" {
		cfg.AllowOrigins = strings.Split(v, ",")
	}
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)
	cfg.MaxUploadMB = getint("MAX_UPLOAD_MB", cfg.MaxUploadMB)
	cfg.LogFile = getenv("LOG_FILE", cfg.LogFile)
	cfg.Locale = getenv("DEFAULT_LOCALE", cfg.Locale)
	cfg.CurrencyCode = getenv("DEFAULT_CURRENCY", cfg.CurrencyCode)
	cfg.ScaleCorrectness = getbool("SCALE_CORRECTNESS", cfg.ScaleCorrectness)
	cfg.CurrencyCorrectness = getbool("CURRENCY_CORRECTNESS", cfg.CurrencyCorrectness)
	cfg.NegativeAllowed = getbool("NEGATIVE_ALLOWED", cfg.NegativeAllowed)
	return cfg, nil
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

// ValidationOptions are the engine options every request starts from.
func (c Config) ValidationOptions() validator.ValidationOptions {
	return validator.ValidationOptions{
		Options: filter.Options{
			Locale:              c.Locale,
			CurrencyCode:        c.CurrencyCode,
			ScaleCorrectness:    c.ScaleCorrectness,
			CurrencyCorrectness: c.CurrencyCorrectness,
		},
		NegativeAllowed: c.NegativeAllowed,
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	i, err := strconv.Atoi(os.Getenv(k))
	if err != nil {
		return def
	}
	return i
}

func getbool(k string, def bool) bool {
	b, err := strconv.ParseBool(os.Getenv(k))
	if err != nil {
		return def
	}
	return b
}
