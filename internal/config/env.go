package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v10"
)

// Env holds process configuration, populated from environment variables.
type Env struct {
	AppAddr string `env:"APP_ADDR" envDefault:":8080"`
	GinMode string `env:"GIN_MODE"`

	DBDSN string `env:"DB_DSN" envDefault:"root:@tcp(127.0.0.1:3306)/spring_plus?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"`

	// JWTSecret signs credential tokens. Loaded once at startup, never rotated.
	JWTSecret string        `env:"JWT_SECRET" envDefault:"super-secret-key-change-me"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	WeatherURL string `env:"WEATHER_URL" envDefault:"https://f-api.github.io/f-api/weather.json"`
}

func LoadEnv() Env {
	var e Env
	if err := env.Parse(&e); err != nil {
		log.Fatalf("failed to parse environment: %v", err)
	}
	return e
}
