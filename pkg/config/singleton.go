package config

import "sync"

var (
	// globalConfig holds the configuration currently in effect.
	globalConfig *Config

	// configMutex protects access to globalConfig.
	configMutex sync.RWMutex
)

// GetConfig returns the configuration currently in effect, or nil if none
// has been set. Safe for concurrent use.
func GetConfig() *Config {
	configMutex.RLock()
	defer configMutex.RUnlock()
	return globalConfig
}

// SetConfig replaces the configuration currently in effect. It is called
// once at startup and again after each accepted hot reload.
func SetConfig(cfg *Config) {
	configMutex.Lock()
	defer configMutex.Unlock()
	globalConfig = cfg
}
