package configs

import (
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	ContextPath     string
	PropertiesPath  string
	MessagesPath    string
}

var Env *EnvConfig

func init() {
	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "weather-widget"),
		ContextPath:     getStringOrDefault("CONTEXT_PATH", "/weather-widget"),
		PropertiesPath:  getStringOrDefault("PROPERTIES_FILE_PATH", "configs/application.yml"),
		MessagesPath:    getStringOrDefault("MESSAGES_FILE_PATH", "configs/messages.yml"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
