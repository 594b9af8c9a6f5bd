package configs

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	ContextPath     string
	LogLevel        string
}

var Env *EnvConfig

// LoadEnv reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func LoadEnv(files ...string) *EnvConfig {
	_ = godotenv.Load(files...)

	v := viper.New()
	v.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault(v, "APPLICATION_NAME", "your-weather"),
		ContextPath:     getStringOrDefault(v, "CONTEXT_PATH", "/api"),
		LogLevel:        getStringOrDefault(v, "LOG_LEVEL", "info"),
	}
	return Env
}

func getStringOrDefault(v *viper.Viper, key, defaultValue string) string {
	value := v.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
