package config

import (
	"os"
	"strconv"
	"strings"
)

// envKey maps a flag name to its environment variable, e.g. max-steps to
// POLYMODE_MAX_STEPS.
func envKey(flag string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// getEnvString returns the variable for flag, or defaultVal if it is unset.
func getEnvString(flag, defaultVal string) string {
	if val := os.Getenv(envKey(flag)); val != "" {
		return val
	}
	return defaultVal
}

// getEnvFloat returns the variable for flag parsed as float64, or defaultVal
// if it is unset or invalid.
func getEnvFloat(flag string, defaultVal float64) float64 {
	if val := os.Getenv(envKey(flag)); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvInt returns the variable for flag parsed as int, or defaultVal if it
// is unset or invalid.
func getEnvInt(flag string, defaultVal int) int {
	if val := os.Getenv(envKey(flag)); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvBool accepts "true", "1", "yes" and "false", "0", "no" (any case).
func getEnvBool(flag string, defaultVal bool) bool {
	if val := os.Getenv(envKey(flag)); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}
