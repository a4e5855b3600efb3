package domain

import "strings"

type Player struct {
	Name  string
	Token Cell
	Score int
}

// NewPlayer substitutes fallback when name is blank.
func NewPlayer(name, fallback string, token Cell) *Player {
	if strings.TrimSpace(name) == "" {
		name = fallback
	}
	return &Player{Name: name, Token: token}
}
