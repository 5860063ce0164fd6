package config

import (
	"os"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName  string
	Port     string
	Env      string
	Debug    bool
	MediaUrl string
	LogLevel string
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = &Config{
			AppName:  getEnv("APP_NAME", "ethnicshop"),
			Port:     os.Getenv("PORT"),
			Env:      os.Getenv("APP_ENV"),
			Debug:    os.Getenv("DEBUG") == "true",
			MediaUrl: getEnv("MEDIA_URL", "/media/catalog/product/"),
			LogLevel: getEnv("LOG_LEVEL", "info"),
		}
	})
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
