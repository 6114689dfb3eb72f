package configs

import (
	"fmt"

	"github.com/spf13/viper"
)

// Required credentials; startup fails when these are unset.
var requiredKeys = []string{
	"APP_DB_USERNAME",
	"APP_DB_PASSWORD",
}

type Config struct {
	Viper *viper.Viper
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_DB_HOST", "localhost")
	v.SetDefault("APP_DB_PORT", 5432)
	v.SetDefault("APP_DB_NAME", "microblog")
	v.SetDefault("APP_DB_SSLMODE", "disable")
	v.SetDefault("APP_SERVER_PORT", 8000)

	for _, key := range requiredKeys {
		if v.GetString(key) == "" {
			return nil, fmt.Errorf("please set the environment variable %s", key)
		}
	}

	return &Config{Viper: v}, nil
}
