package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"DEFAULT_ROWS", "DEFAULT_COLS", "PLAYER1_DEFAULT_NAME", "PLAYER2_DEFAULT_NAME", "QUIT_COMMAND", "WATCH_ADDR", "DEBUG"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, 6, cfg.DefaultRows)
	assert.Equal(t, 7, cfg.DefaultCols)
	assert.Equal(t, "player1", cfg.Player1DefaultName)
	assert.Equal(t, "player2", cfg.Player2DefaultName)
	assert.Equal(t, "end", cfg.QuitCommand)
	assert.Empty(t, cfg.WatchAddr)
	assert.False(t, cfg.Debug)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("DEFAULT_ROWS", "8")
	t.Setenv("DEFAULT_COLS", "9")
	t.Setenv("PLAYER1_DEFAULT_NAME", "red")
	t.Setenv("PLAYER2_DEFAULT_NAME", "yellow")
	t.Setenv("QUIT_COMMAND", " quit ")
	t.Setenv("WATCH_ADDR", ":8090")
	t.Setenv("DEBUG", "true")

	cfg := LoadConfig()

	assert.Equal(t, 8, cfg.DefaultRows)
	assert.Equal(t, 9, cfg.DefaultCols)
	assert.Equal(t, "red", cfg.Player1DefaultName)
	assert.Equal(t, "yellow", cfg.Player2DefaultName)
	assert.Equal(t, "quit", cfg.QuitCommand)
	assert.Equal(t, ":8090", cfg.WatchAddr)
	assert.True(t, cfg.Debug)
}

func TestLoadConfig_InvalidBoardFallsBack(t *testing.T) {
	t.Setenv("DEFAULT_ROWS", "12")
	t.Setenv("DEFAULT_COLS", "seven")

	cfg := LoadConfig()

	assert.Equal(t, 6, cfg.DefaultRows)
	assert.Equal(t, 7, cfg.DefaultCols)
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("FLAG", "nope")
	assert.True(t, GetEnvAsBool("FLAG", true))

	t.Setenv("FLAG", "0")
	assert.False(t, GetEnvAsBool("FLAG", true))
}

func TestLoadConfig_ReturnsFreshValue(t *testing.T) {
	t.Setenv("DEFAULT_ROWS", "5")
	first := LoadConfig()

	t.Setenv("DEFAULT_ROWS", "9")
	second := LoadConfig()

	assert.NotSame(t, first, second)
	assert.Equal(t, 5, first.DefaultRows)
	assert.Equal(t, 9, second.DefaultRows)
}
