package resource

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

const defaultPropertiesPath = "configs/application.yml"

var (
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// Load reads the properties file named by PROPERTIES_FILE_PATH, or configs/application.yml.
func Load() error {
	path, ok := os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		path = defaultPropertiesPath
	}
	return Init(path)
}

// Init loads application properties from the YAML file at filepath,
// resolving ${ENV} and ${ENV:default} placeholders.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read properties %s: %w", filepath, err)
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)

	for key, value := range resolved {
		v.Set(key, value)
	}

	properties = v
	return nil
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			result[fullKey] = resolveValue(v)
		}
	}
}

func resolveValue(value any) any {
	switch v := value.(type) {
	case string:
		return resolveEnvVariable(v)
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = resolveValue(item)
		}
		return items
	default:
		return v
	}
}

// resolveEnvVariable replaces every ${ENV:default} occurrence in value
func resolveEnvVariable(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(groups[1]); exists {
			return envValue
		}
		return groups[2]
	})
}

func GetString(key string) string {
	return properties.GetString(key)
}

// GetStringOrDefault returns defaultValue when key is unset or blank.
func GetStringOrDefault(key, defaultValue string) string {
	if value := properties.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

func GetFloat64(key string) float64 {
	return properties.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	return properties.GetStringSlice(key)
}
