package util

import (
	"os"
	"strings"
)

func GetEnvironmentVariables() map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		pair := strings.SplitN(variable, "=", 2)

		environmentVariables[pair[0]] = pair[1]
	}

	return environmentVariables
}

// GetEnvironmentVariable returns the named variable or defaultValue when it
// is unset or empty.
func GetEnvironmentVariable(name string, defaultValue string) string {
	if value := GetEnvironmentVariables()[name]; value != "" {
		return value
	}

	return defaultValue
}
