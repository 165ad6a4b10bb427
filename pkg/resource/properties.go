package resource

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

var (
	v          = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// Init loads application properties from YAML, resolving ${ENV:default} placeholders
func Init(filepath string) error {
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("fail to read properties: %w", err)
	}

	properties := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), properties)

	for key, value := range properties {
		v.Set(key, value)
	}
	return nil
}

// SetDefault registers a fallback used when a key is missing from the properties file
func SetDefault(key string, value any) {
	v.SetDefault(key, value)
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch val := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(val)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = val
		case map[string]interface{}:
			parsePropertiesMap(fullKey, val, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable replaces a ${ENV:default} value with the environment value or its default
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return value
	}

	envName := matches[1]
	if envValue, exists := os.LookupEnv(envName); exists {
		return envValue
	}
	if len(matches) > 2 {
		return matches[2]
	}
	return ""
}

func Get(key string) any {
	return v.Get(key)
}

func GetString(key string) string {
	return v.GetString(key)
}

func GetBool(key string) bool {
	return v.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return v.GetDuration(key)
}

func GetInt(key string) int {
	return v.GetInt(key)
}

func GetStringSlice(key string) []string {
	return v.GetStringSlice(key)
}
