package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPaths are searched in order when no explicit path is given.
var DefaultPaths = []string{"config.yml", "./config/config.yml"}

// Default returns the built-in configuration: three cities, January to June,
// every weekday and five raw rows per page.
func Default() AppConfig {
	return AppConfig{
		Server: ServerConfig{Port: 8080},
		Data: DataConfig{
			Dir: ".",
			Cities: []CityConfig{
				{Name: "chicago", File: "chicago.csv"},
				{Name: "new york city", File: "new_york_city.csv"},
				{Name: "washington", File: "washington.csv"},
			},
			TimestampLayouts: []string{
				"2006-01-02 15:04:05",
				"2006-01-02T15:04:05",
				time.RFC3339,
				"2006-01-02 15:04",
				"1/2/2006 15:04",
			},
			RowPolicy: RowPolicyAbort,
		},
		Session: SessionConfig{
			PageSize: 5,
			Months:   []string{"january", "february", "march", "april", "may", "june"},
			Days:     []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"},
		},
	}
}

// LoadAppConfig reads the first existing file from paths (DefaultPaths when
// empty), overlays it on Default and validates the result. An explicit path
// that does not exist is an error; a missing default file is not.
func LoadAppConfig(paths ...string) (AppConfig, error) {
	explicit := len(paths) > 0
	if !explicit {
		paths = DefaultPaths
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			cfg := Default()
			return cfg, Validate(cfg)
		}
		return AppConfig{}, err
	}
	return Parse(data)
}

// Parse decodes yaml on top of Default and validates it.
func Parse(data []byte) (AppConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Data.RowPolicy == "" {
		cfg.Data.RowPolicy = RowPolicyAbort
	}
	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks struct tags plus the month and weekday vocabularies.
func Validate(cfg AppConfig) error {
	v := validator.New()
	_ = v.RegisterValidation("month", func(fl validator.FieldLevel) bool {
		_, ok := monthNumbers[strings.ToLower(fl.Field().String())]
		return ok
	})
	_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		_, ok := weekdays[strings.ToLower(fl.Field().String())]
		return ok
	})
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

var monthNumbers = func() map[string]time.Month {
	m := make(map[string]time.Month, 12)
	for i := time.January; i <= time.December; i++ {
		m[strings.ToLower(i.String())] = i
	}
	return m
}()

var weekdays = func() map[string]time.Weekday {
	m := make(map[string]time.Weekday, 7)
	for i := time.Sunday; i <= time.Saturday; i++ {
		m[strings.ToLower(i.String())] = i
	}
	return m
}()

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
