// Package config provides configuration management for the ui-server.
//
// It utilizes godotenv to read an optional .env file and Viper to read environment
// variables, with defaults taken from `default` struct tags. Configuration is read
// exactly once at startup; no other package reads the environment.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - App: bind host and port, debug flag, timeouts (APP_HOST, APP_PORT, DEBUG, ...)
//   - Static: build output source and roots (STATIC_SOURCE, STATIC_USER_ROOT, STATIC_ADMIN_ROOT)
//   - Storage: S3/MinIO credentials and bucket for bucket mode (STORAGE_*)
//   - Log: output format (LOG_FORMAT); the level follows the debug flag
//
// The debug flag is read from DEBUG and falls back to APP_DEBUG.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.App.Address())
package config
