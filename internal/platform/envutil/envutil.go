package envutil

import (
	"os"
	"strconv"
	"strings"

	"github.com/obradorlabs/obrador-backend/internal/platform/logger"
)

// String reads an environment variable, falling back to def when unset.
func String(key, def string, log *logger.Logger) string {
	val, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(val) == "" {
		if log != nil {
			log.Debug("env var not set, using default", "env_var", key, "default", def)
		}
		return def
	}
	return val
}

// Int reads an integer environment variable, falling back to def when unset
// or unparsable.
func Int(key string, def int, log *logger.Logger) int {
	val, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(val) == "" {
		if log != nil {
			log.Debug("env var not set, using default", "env_var", key, "default", def)
		}
		return def
	}
	i, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		if log != nil {
			log.Debug("env var not an int, using default", "env_var", key, "value", val, "default", def, "error", err)
		}
		return def
	}
	return i
}
