package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"ui-server/core/logger"
	"ui-server/core/server"
	"ui-server/core/storage"
	"ui-server/feature/static"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// App holds configuration for the HTTP server (APP_* variables).
	App server.Config `mapstructure:"app"`
	// Static holds the locations of the two client builds (STATIC_* variables).
	Static static.Config `mapstructure:"static"`
	// Storage holds configuration for the object storage used in bucket mode.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// debugEnv lists the variables consulted for app.debug, in priority order.
var debugEnv = []string{"DEBUG", "APP_DEBUG"}

// LoadConfig loads configuration from environment variables and .env file.
// Directory roots are resolved against the working directory.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Load(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. APP_PORT -> app.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv would let APP_DEBUG shadow DEBUG, so the flag is resolved here.
	if raw, ok := lookupFirst(debugEnv); ok {
		v.Set("app.debug", raw)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if !config.Static.IsValidSource() {
		return nil, fmt.Errorf("invalid STATIC_SOURCE %q", config.Static.Source)
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}
	if config.Static, err = config.Static.Absolute(wd); err != nil {
		return nil, err
	}

	config.Log.Level = logger.LevelFor(config.App.DebugEnabled())

	return &config, nil
}

// lookupFirst returns the value of the first non-empty variable in keys.
func lookupFirst(keys []string) (string, bool) {
	for _, key := range keys {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val, true
		}
	}
	return "", false
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" || tag == "-" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
