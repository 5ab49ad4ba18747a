package config

import "os"

// Environment variables read by ApplyEnv.
const (
	EnvBackend  = "UNCURSED_BACKEND"
	EnvLogLevel = "UNCURSED_LOG_LEVEL"
	EnvLogFile  = "UNCURSED_LOG_FILE"
)

// envMapping maps environment variables to the settings they override.
func (c *Config) envMapping() map[string]*string {
	return map[string]*string{
		EnvBackend:  &c.Backend,
		EnvLogLevel: &c.Logging.Level,
		EnvLogFile:  &c.Logging.File,
	}
}

// ApplyEnv overrides settings from UNCURSED_* variables. Empty values are
// ignored, except for UNCURSED_LOG_FILE where empty selects stderr.
func (c *Config) ApplyEnv() {
	for env, field := range c.envMapping() {
		val, ok := os.LookupEnv(env)
		if !ok {
			continue
		}
		if val == "" && env != EnvLogFile {
			continue
		}
		*field = val
	}
}
