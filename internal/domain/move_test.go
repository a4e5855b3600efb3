package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInput(t *testing.T) {
	b, err := NewBoard(6, 7)
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		_, err := b.Drop(2, Player1)
		require.NoError(t, err)
	}

	tests := []struct {
		name    string
		raw     string
		quit    bool
		column  int
		wantErr error
		message string
	}{
		{name: "quit", raw: "end", quit: true},
		{name: "quit with spaces", raw: " end \n", quit: true},
		{name: "first column", raw: "1", column: 0},
		{name: "last column", raw: "7", column: 6},
		{name: "zero", raw: "0", wantErr: ErrOutOfRangeColumn, message: "The column number is out of range (1 - 7)"},
		{name: "too big", raw: "8", wantErr: ErrOutOfRangeColumn, message: "The column number is out of range (1 - 7)"},
		{name: "negative", raw: "-3", wantErr: ErrOutOfRangeColumn, message: "The column number is out of range (1 - 7)"},
		{name: "full column", raw: "3", wantErr: ErrColumnFull, message: "Column 3 is full"},
		{name: "word", raw: "three", wantErr: ErrUnparseableInput, message: "Incorrect column number"},
		{name: "blank", raw: "", wantErr: ErrUnparseableInput, message: "Incorrect column number"},
		{name: "quit is case sensitive", raw: "END", wantErr: ErrUnparseableInput, message: "Incorrect column number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := ParseInput(tt.raw, "end", b)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.message, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.quit, in.Quit)
			if !tt.quit {
				assert.Equal(t, tt.column, in.Move.Column)
				assert.Equal(t, tt.column+1, in.Move.Number())
			}
		})
	}
}

func TestParseInput_CustomQuitCommand(t *testing.T) {
	b, err := NewBoard(5, 5)
	require.NoError(t, err)

	in, err := ParseInput("q", "q", b)
	require.NoError(t, err)
	assert.True(t, in.Quit)

	_, err = ParseInput("end", "q", b)
	assert.ErrorIs(t, err, ErrUnparseableInput)
}

func TestNewPlayer_DefaultName(t *testing.T) {
	assert.Equal(t, "player1", NewPlayer("", "player1", Player1).Name)
	assert.Equal(t, "player2", NewPlayer("   ", "player2", Player2).Name)

	p := NewPlayer("Ann", "player1", Player1)
	assert.Equal(t, "Ann", p.Name)
	assert.Equal(t, Player1, p.Token)
	assert.Zero(t, p.Score)
}
