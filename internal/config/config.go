package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration. It is constructed once at
// startup and passed by reference into constructors; nothing reads the
// environment after LoadConfig returns.
type Config struct {
	EnvVars EnvVars `json:"env"`
}

// EnvVars holds environment variables required by the application.
// Fields tagged `optional:"true"` are skipped by CheckConfigEnvFields.
//
// SpoonacularAPIKey is optional at boot on purpose: an absent or invalid
// credential surfaces as a failed search, not as a startup error.
type EnvVars struct {
	Port               string `env:"PORT" envDefault:"8080"`
	SpoonacularAPIKey  string `env:"SPOONACULAR_API_KEY" optional:"true"`
	SpoonacularBaseURL string `env:"SPOONACULAR_BASE_URL" optional:"true"`
	AllowedOrigins     string `env:"ALLOWED_ORIGINS" optional:"true"`
}

// LoadConfig parses environment variables into the Config struct.
func LoadConfig() (*Config, error) {
	var config Config
	if err := env.Parse(&config.EnvVars); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks values whose shape matters beyond present-or-absent.
func (c *Config) Validate() error {
	if u := c.EnvVars.SpoonacularBaseURL; u != "" && !govalidator.IsRequestURL(u) {
		return fmt.Errorf("SPOONACULAR_BASE_URL is not a valid URL: %q", u)
	}
	return nil
}

// AllowedOriginList splits ALLOWED_ORIGINS on commas, dropping empty entries.
// An empty list means the CORS layer falls back to its permissive default.
func (c *Config) AllowedOriginList() []string {
	var origins []string
	for _, o := range strings.Split(c.EnvVars.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// CheckConfigEnvFields validates that all required EnvVars fields are set.
func (c *Config) CheckConfigEnvFields() error {
	return checkFieldsRecursive(reflect.ValueOf(c.EnvVars))
}

func checkFieldsRecursive(v reflect.Value) error {
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := v.Type().Field(i)
		if fieldType.Tag.Get("optional") == "true" {
			continue
		}
		if isZeroValue(field) {
			return fmt.Errorf("$%s must be set", fieldType.Name)
		}
		if field.Kind() == reflect.Struct {
			if err := checkFieldsRecursive(field); err != nil {
				return err
			}
		}
	}
	return nil
}

func isZeroValue(v reflect.Value) bool {
	return v.Interface() == reflect.Zero(v.Type()).Interface()
}
