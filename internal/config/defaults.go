package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultMinesweeperYAML []byte

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultMinesweeperConfig returns the classic beginner/intermediate/expert boards.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{
		Default: DifficultyEasy,
		Difficulties: BoardPresets{
			Easy:   BoardPreset{Rows: 9, Cols: 9, Mines: 10},
			Medium: BoardPreset{Rows: 16, Cols: 16, Mines: 40},
			Hard:   BoardPreset{Rows: 16, Cols: 30, Mines: 99},
		},
	}
}

// DefaultTetrisConfig returns the standard 10x20 rules.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Width:  10,
			Height: 20,
		},
		Scoring: TetrisScoring{
			LineClear: []int{0, 100, 300, 500, 800},
			SoftDrop:  1,
			HardDrop:  2,
		},
		Speed: TetrisSpeed{
			BaseIntervalMS: 1000,
			StepMS:         50,
			MinIntervalMS:  50,
			LinesPerLevel:  10,
		},
	}
}
