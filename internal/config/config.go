package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

type Config struct {
	DefaultRows        int
	DefaultCols        int
	Player1DefaultName string
	Player2DefaultName string
	QuitCommand        string
	WatchAddr          string
	Debug              bool
}

func LoadConfig() *Config {
	rows := GetEnvAsInt("DEFAULT_ROWS", domain.DefaultRows)
	cols := GetEnvAsInt("DEFAULT_COLS", domain.DefaultCols)
	if err := domain.ValidateDimensions(rows, cols); err != nil {
		log.Printf("[CONFIG] Invalid default board %dx%d (%v), using %dx%d",
			rows, cols, err, domain.DefaultRows, domain.DefaultCols)
		rows, cols = domain.DefaultRows, domain.DefaultCols
	}

	quit := strings.TrimSpace(GetEnv("QUIT_COMMAND", "end"))
	if quit == "" {
		quit = "end"
	}

	return &Config{
		DefaultRows:        rows,
		DefaultCols:        cols,
		Player1DefaultName: GetEnv("PLAYER1_DEFAULT_NAME", "player1"),
		Player2DefaultName: GetEnv("PLAYER2_DEFAULT_NAME", "player2"),
		QuitCommand:        quit,
		WatchAddr:          GetEnv("WATCH_ADDR", ""),
		Debug:              GetEnvAsBool("DEBUG", false),
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
