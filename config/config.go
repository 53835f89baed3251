package config

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv     string
	Port       string
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	JWTSecret  string
	Timezone   string
	// Estimated value per consultation, used for the peak-hour load projection.
	PeakHourUnitValue float64
}

var (
	cfg  *Config
	once sync.Once
)

func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: .env file not found. Relying on environment variables.")
		}
		cfg = &Config{
			AppEnv:            os.Getenv("APP_ENV"),
			Port:              os.Getenv("PORT"),
			DBUser:            os.Getenv("DB_USER"),
			DBPassword:        os.Getenv("DB_PASSWORD"),
			DBHost:            os.Getenv("DB_HOST"),
			DBPort:            os.Getenv("DB_PORT"),
			DBName:            os.Getenv("DB_NAME"),
			JWTSecret:         os.Getenv("JWT_SECRET_KEY"),
			Timezone:          os.Getenv("TIMEZONE"),
			PeakHourUnitValue: 45,
		}
		if cfg.Timezone == "" {
			cfg.Timezone = "America/Argentina/Buenos_Aires"
		}
		if v := os.Getenv("REPORT_PEAK_UNIT_VALUE"); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				log.Printf("Warning: invalid REPORT_PEAK_UNIT_VALUE %q, using default", v)
			} else {
				cfg.PeakHourUnitValue = f
			}
		}
	})
	return cfg
}
