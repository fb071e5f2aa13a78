// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"time"
)

// MinesweeperConfig contains all configuration for Minesweeper.
type MinesweeperConfig struct {
	Default      DifficultyPreset `yaml:"default"`
	Difficulties BoardPresets     `yaml:"difficulties"`
}

// BoardPresets holds one board layout per named difficulty.
type BoardPresets struct {
	Easy   BoardPreset `yaml:"easy"`
	Medium BoardPreset `yaml:"medium"`
	Hard   BoardPreset `yaml:"hard"`
}

// BoardPreset defines a Minesweeper board size and mine count.
type BoardPreset struct {
	Rows  int `yaml:"rows"`
	Cols  int `yaml:"cols"`
	Mines int `yaml:"mines"`
}

// Cells returns the total number of cells on the board.
func (p BoardPreset) Cells() int {
	return p.Rows * p.Cols
}

// Validate checks that the preset describes a playable board.
// At least one cell must stay mine-free for the safe first click.
func (p BoardPreset) Validate() error {
	if p.Rows <= 0 || p.Cols <= 0 {
		return fmt.Errorf("board must have positive dimensions, got %dx%d", p.Rows, p.Cols)
	}
	if p.Mines < 0 {
		return fmt.Errorf("mine count must not be negative, got %d", p.Mines)
	}
	if p.Mines >= p.Cells() {
		return fmt.Errorf("mine count %d must be less than cell count %d", p.Mines, p.Cells())
	}
	return nil
}

// Validate checks every preset and the default difficulty name.
func (c MinesweeperConfig) Validate() error {
	var errs []error
	for _, d := range Difficulties() {
		if err := c.Preset(d).Validate(); err != nil {
			errs = append(errs, fmt.Errorf("difficulty %s: %w", d, err))
		}
	}
	if c.Default != "" {
		if _, err := ParseDifficulty(string(c.Default)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// TetrisConfig contains all configuration for Tetris.
type TetrisConfig struct {
	Board   TetrisBoard   `yaml:"board"`
	Scoring TetrisScoring `yaml:"scoring"`
	Speed   TetrisSpeed   `yaml:"speed"`
}

// TetrisBoard defines the playfield size.
type TetrisBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisScoring defines point awards.
type TetrisScoring struct {
	LineClear []int `yaml:"line_clear"` // Indexed by number of lines cleared at once
	SoftDrop  int   `yaml:"soft_drop"`
	HardDrop  int   `yaml:"hard_drop"`
}

// TetrisSpeed defines gravity timing and level progression.
type TetrisSpeed struct {
	BaseIntervalMS int `yaml:"base_interval_ms"`
	StepMS         int `yaml:"step_ms"`
	MinIntervalMS  int `yaml:"min_interval_ms"`
	LinesPerLevel  int `yaml:"lines_per_level"`
}

// BaseInterval returns the level 1 drop interval.
func (s TetrisSpeed) BaseInterval() time.Duration {
	return time.Duration(s.BaseIntervalMS) * time.Millisecond
}

// Step returns how much the interval shrinks per level.
func (s TetrisSpeed) Step() time.Duration {
	return time.Duration(s.StepMS) * time.Millisecond
}

// MinInterval returns the floor of the drop interval.
func (s TetrisSpeed) MinInterval() time.Duration {
	return time.Duration(s.MinIntervalMS) * time.Millisecond
}

// Validate checks that the rules keep the game well defined.
func (c TetrisConfig) Validate() error {
	var errs []error
	// The widest piece is four cells across and the tallest is four cells down
	// once rotated, so anything smaller cannot hold every piece.
	if c.Board.Width < 4 || c.Board.Height < 4 {
		errs = append(errs, fmt.Errorf("board must be at least 4x4, got %dx%d", c.Board.Width, c.Board.Height))
	}
	if len(c.Scoring.LineClear) < 5 {
		errs = append(errs, fmt.Errorf("line_clear needs 5 entries (0..4 lines), got %d", len(c.Scoring.LineClear)))
	}
	if c.Scoring.SoftDrop < 0 || c.Scoring.HardDrop < 0 {
		errs = append(errs, errors.New("drop points must not be negative"))
	}
	if c.Speed.MinIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("min_interval_ms must be positive, got %d", c.Speed.MinIntervalMS))
	}
	if c.Speed.BaseIntervalMS < c.Speed.MinIntervalMS {
		errs = append(errs, fmt.Errorf("base_interval_ms %d is below min_interval_ms %d",
			c.Speed.BaseIntervalMS, c.Speed.MinIntervalMS))
	}
	if c.Speed.StepMS < 0 {
		errs = append(errs, fmt.Errorf("step_ms must not be negative, got %d", c.Speed.StepMS))
	}
	if c.Speed.LinesPerLevel <= 0 {
		errs = append(errs, fmt.Errorf("lines_per_level must be positive, got %d", c.Speed.LinesPerLevel))
	}
	return errors.Join(errs...)
}
