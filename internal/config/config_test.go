package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	ms, err := LoadMinesweeper("")
	if err != nil {
		t.Fatalf("LoadMinesweeper() failed: %v", err)
	}
	if !reflect.DeepEqual(ms, DefaultMinesweeperConfig()) {
		t.Errorf("embedded minesweeper config = %+v, want %+v", ms, DefaultMinesweeperConfig())
	}

	tc, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}
	if !reflect.DeepEqual(tc, DefaultTetrisConfig()) {
		t.Errorf("embedded tetris config = %+v, want %+v", tc, DefaultTetrisConfig())
	}
}

func TestBoardPresetValidate(t *testing.T) {
	tests := []struct {
		name    string
		preset  BoardPreset
		wantErr bool
	}{
		{"easy", BoardPreset{Rows: 9, Cols: 9, Mines: 10}, false},
		{"one safe cell", BoardPreset{Rows: 2, Cols: 2, Mines: 3}, false},
		{"no mines", BoardPreset{Rows: 3, Cols: 3, Mines: 0}, false},
		{"mines fill board", BoardPreset{Rows: 2, Cols: 2, Mines: 4}, true},
		{"more mines than cells", BoardPreset{Rows: 3, Cols: 3, Mines: 20}, true},
		{"zero rows", BoardPreset{Rows: 0, Cols: 9, Mines: 1}, true},
		{"negative mines", BoardPreset{Rows: 3, Cols: 3, Mines: -1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.preset.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestLoadMinesweeperCustomPath(t *testing.T) {
	path := writeConfig(t, "ms.yaml", `
default: hard
difficulties:
  hard:
    rows: 20
    cols: 24
    mines: 120
`)

	cfg, err := LoadMinesweeper(path)
	if err != nil {
		t.Fatalf("LoadMinesweeper() failed: %v", err)
	}
	if cfg.DefaultPreset() != DifficultyHard {
		t.Errorf("DefaultPreset() = %q, want hard", cfg.DefaultPreset())
	}
	if got := cfg.Preset(DifficultyHard); got != (BoardPreset{Rows: 20, Cols: 24, Mines: 120}) {
		t.Errorf("hard preset = %+v", got)
	}
	// Presets missing from the file keep their defaults
	if got := cfg.Preset(DifficultyEasy); got != DefaultMinesweeperConfig().Difficulties.Easy {
		t.Errorf("easy preset = %+v, want default", got)
	}
}

func TestLoadMinesweeperRejectsTooManyMines(t *testing.T) {
	path := writeConfig(t, "ms.yaml", `
difficulties:
  easy:
    rows: 3
    cols: 3
    mines: 9
`)

	if _, err := LoadMinesweeper(path); err == nil {
		t.Error("expected an error for a board without a safe cell")
	}
}

func TestLoadTetrisCustomPath(t *testing.T) {
	path := writeConfig(t, "tetris.yaml", `
speed:
  base_interval_ms: 800
  lines_per_level: 5
`)

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}
	if cfg.Speed.BaseIntervalMS != 800 || cfg.Speed.LinesPerLevel != 5 {
		t.Errorf("speed = %+v", cfg.Speed)
	}
	if cfg.Board.Width != 10 || cfg.Board.Height != 20 {
		t.Errorf("board should keep defaults, got %+v", cfg.Board)
	}
}

func TestLoadTetrisInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"short score table", "scoring:\n  line_clear: [0, 100]\n"},
		{"base below floor", "speed:\n  base_interval_ms: 10\n  min_interval_ms: 50\n"},
		{"tiny board", "board:\n  width: 3\n  height: 20\n"},
		{"malformed yaml", "board: [1, 2\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, "tetris.yaml", tc.body)
			if _, err := LoadTetris(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	cfg, err := LoadTetris(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
	if !reflect.DeepEqual(cfg, DefaultTetrisConfig()) {
		t.Error("a failed load should still return usable defaults")
	}
}

func TestLoadUserConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	body := "scoring:\n  hard_drop: 3\n"
	if err := os.WriteFile(filepath.Join(dir, "tetris.yaml"), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}
	if cfg.Scoring.HardDrop != 3 {
		t.Errorf("HardDrop = %d, want 3 from user config", cfg.Scoring.HardDrop)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{"Medium", DifficultyMedium, false},
		{"normal", DifficultyMedium, false},
		{" hard ", DifficultyHard, false},
		{"expert", DifficultyHard, false},
		{"insane", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDefaultPresetsAreValid(t *testing.T) {
	if err := DefaultMinesweeperConfig().Validate(); err != nil {
		t.Errorf("default minesweeper config invalid: %v", err)
	}
	if err := DefaultTetrisConfig().Validate(); err != nil {
		t.Errorf("default tetris config invalid: %v", err)
	}
}
