package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wagiedev/munival-go/internal/loader"
)

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if err := walk(reflect.ValueOf(cfg).Elem(), func(f reflect.StructField) string {
		return f.Tag.Get("default")
	}); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	if err := walk(reflect.ValueOf(cfg).Elem(), func(f reflect.StructField) string {
		name := f.Tag.Get("env")
		if name == "" {
			return ""
		}

		return os.Getenv(name)
	}); err != nil {
		return nil, fmt.Errorf("config env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// walk sets every leaf field for which value returns a non-empty string.
func walk(v reflect.Value, value func(reflect.StructField) string) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := v.Field(i)

		if !fieldVal.CanSet() {
			continue
		}

		if field.Type.Kind() == reflect.Struct {
			if err := walk(fieldVal, value); err != nil {
				return err
			}

			continue
		}

		raw := value(field)
		if raw == "" {
			continue
		}

		if err := setField(fieldVal, raw); err != nil {
			return fmt.Errorf("invalid value for %s=%q: %w", field.Name, raw, err)
		}
	}

	return nil
}

// setField sets a reflect.Value from a string based on its type.
func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int64:
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			d, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("invalid duration: %w", err)
			}

			field.Set(reflect.ValueOf(d))
		} else {
			i, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer: %w", err)
			}

			field.SetInt(i)
		}

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %w", err)
		}

		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

// Validate checks that the configuration is usable.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.Data.MunicipalityFile) == "" {
		errs = append(errs, "MUNIVAL_MUNICIPALITY_FILE is required")
	}

	if strings.TrimSpace(c.Data.ValidatorFile) == "" {
		errs = append(errs, "MUNIVAL_VALIDATOR_FILE is required")
	}

	if _, err := loader.ParseEncoding(c.Data.Encoding); err != nil {
		errs = append(errs, fmt.Sprintf("MUNIVAL_ENCODING: %v", err))
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("MUNIVAL_LOG_LEVEL (%q) must be debug, info, warn or error", c.Logging.Level))
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("MUNIVAL_LOG_FORMAT (%q) must be text or json", c.Logging.Format))
	}

	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, "MUNIVAL_SHUTDOWN_TIMEOUT must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
