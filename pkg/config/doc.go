// Package config provides configuration management for the bfhl service.
//
// Configuration is read from a YAML file, or from a TOML file when the path
// ends in .toml, and may be overridden by environment variables. Every field
// has a default, so the service runs with no file at all.
//
// # Configuration Loading
//
//	cfg, err := config.LoadConfig("bfhl.yaml")                 // file only
//	cfg, err := config.LoadConfigWithEnvOverrides("bfhl.toml") // file + env
//	cfg, err := config.LoadOrDefault("")                       // defaults + env
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention BFHL_SECTION_FIELD:
//
//   - BFHL_SERVER_LISTEN_ADDRESS overrides server.listen_address
//   - BFHL_API_PATHS overrides api.paths (comma separated)
//   - BFHL_IDENTITY_USER_ID overrides identity.user_id
//   - BFHL_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//
// # Configuration Precedence
//
//  1. Default values (defaults.go)
//  2. Values from the configuration file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Hot Reload
//
// A Watcher observes the configuration file with fsnotify and, after a
// debounce interval, reloads it and hands the result to a callback. Only the
// identity, operation code and classifier policy are applied live; listener
// and telemetry settings require a restart.
package config
