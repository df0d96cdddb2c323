package resource

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

var properties = viper.New()
var envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)

// Init loads application properties from a YAML file.
func Init(filepath string) error {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("fail to read properties %s: %w", filepath, err)
	}
	return Load(content)
}

// Load replaces the current properties with the given YAML document,
// resolving ${ENV:default} placeholders against the process environment.
func Load(content []byte) error {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return fmt.Errorf("fail to parse properties: %w", err)
	}

	resolved := viper.New()
	parsePropertiesMap("", v.AllSettings(), resolved)
	properties = resolved
	return nil
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result *viper.Viper) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result.Set(fullKey, resolveEnvVariable(v))
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result.Set(fullKey, v)
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable replaces every ${NAME:default} occurrence with the
// environment value, or the default when NAME is unset.
func resolveEnvVariable(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(groups[1]); exists {
			return envValue
		}
		return groups[2]
	})
}

func Get(key string) any {
	return properties.Get(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

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
