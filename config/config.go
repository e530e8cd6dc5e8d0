package config

import "github.com/spf13/viper"

type Config struct {
	Port              string
	DatabaseURL       string
	JWTSecret         string
	LowStockThreshold int
	GinMode           string
}

var C Config

// Load reads configuration from the environment (APP_* prefix) with
// sensible local defaults. DATABASE_URL without the prefix also works,
// since hosting platforms inject it that way.
func Load() {
	v := viper.New()
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	_ = v.BindEnv("database_url", "APP_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("port", "APP_PORT", "PORT")

	v.SetDefault("port", "8080")
	v.SetDefault("database_url",
		"host=localhost user=postgres password=12345 dbname=sajilo port=5432 sslmode=disable")
	v.SetDefault("jwt_secret", "rahasia-super-kuat")
	v.SetDefault("low_stock_threshold", 5)
	v.SetDefault("gin_mode", "debug")

	C = Config{
		Port:              v.GetString("port"),
		DatabaseURL:       v.GetString("database_url"),
		JWTSecret:         v.GetString("jwt_secret"),
		LowStockThreshold: v.GetInt("low_stock_threshold"),
		GinMode:           v.GetString("gin_mode"),
	}
}
