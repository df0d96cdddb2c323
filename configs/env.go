package configs

import (
	"errors"

	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	WeatherAPIKey   string
	LogLevel        string
	LogFile         string
	PropertiesPath  string
	MessagesPath    string
}

var Env *EnvConfig

var ErrMissingAPIKey = errors.New("OPENWEATHER_API_KEY is not set")

func init() {
	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "weather-finder"),
		WeatherAPIKey:   viper.GetString("OPENWEATHER_API_KEY"),
		LogLevel:        getStringOrDefault("LOG_LEVEL", "info"),
		LogFile:         getStringOrDefault("LOG_FILE", "weather-finder.log"),
		PropertiesPath:  viper.GetString("PROPERTIES_FILE_PATH"),
		MessagesPath:    viper.GetString("MESSAGES_FILE_PATH"),
	}
}

// Validate reports the first missing required value.
func (e *EnvConfig) Validate() error {
	if e.WeatherAPIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
