package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named Minesweeper difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// Difficulties returns the presets in ascending order.
func Difficulties() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty converts a user supplied name to a preset.
// "normal" is accepted as an alias for medium.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy", "beginner":
		return DifficultyEasy, nil
	case "medium", "normal", "intermediate":
		return DifficultyMedium, nil
	case "hard", "expert":
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", name)
}

// Title returns the display name of the preset.
func (d DifficultyPreset) Title() string {
	switch d {
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "Easy"
	}
}

// Preset returns the board layout for a difficulty.
// Unknown names fall back to the easy board.
func (c MinesweeperConfig) Preset(d DifficultyPreset) BoardPreset {
	switch d {
	case DifficultyMedium:
		return c.Difficulties.Medium
	case DifficultyHard:
		return c.Difficulties.Hard
	default:
		return c.Difficulties.Easy
	}
}

// DefaultPreset returns the configured default difficulty, or easy.
func (c MinesweeperConfig) DefaultPreset() DifficultyPreset {
	if d, err := ParseDifficulty(string(c.Default)); err == nil {
		return d
	}
	return DifficultyEasy
}
