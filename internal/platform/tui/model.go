package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
	"github.com/vovakirdan/mini-arcade/internal/storage"
)

// resizer is implemented by games that can follow a terminal resize
// without losing the round in progress.
type resizer interface {
	Resize(w, h int)
}

// runner owns the per-game simulation loop shared by local and SSH play.
type runner struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	input  core.InputFrame
	state  core.GameState
	saved  bool // Whether the result has been recorded for the current game over
}

func newRunner(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) *runner {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &runner{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		input:  core.NewInputFrame(),
	}
}

func (r *runner) start() tea.Cmd {
	r.game.Reset(r.config)
	r.state = r.game.State()
	r.saved = false
	log.Debug("game started", "game", r.game.ID(), "seed", r.config.Seed,
		"screen", fmt.Sprintf("%dx%d", r.config.ScreenW, r.config.ScreenH))
	return tickCmd(r.config)
}

func (r *runner) resize(w, h int) {
	r.config.ScreenW = w
	r.config.ScreenH = h
	r.screen.Resize(w, h)

	if rs, ok := r.game.(resizer); ok {
		rs.Resize(w, h)
		return
	}
	// Games without a resize hook start over at the new size.
	if !r.state.GameOver {
		r.game.Reset(r.config)
		r.state = r.game.State()
	}
}

// step runs one simulation tick with the input gathered since the last one.
func (r *runner) step() tea.Cmd {
	if r.input.Has(core.ActionRestart) && r.state.GameOver {
		r.config.Seed = time.Now().UnixNano()
		r.input.Clear()
		return r.start()
	}

	result := r.game.Step(r.input)
	r.state = result.State
	r.input.Clear()

	if r.state.GameOver && !r.saved {
		r.record()
		r.saved = true
	}

	return tickCmd(r.config)
}

// record stores the finished game. Empty losses are not worth a row.
func (r *runner) record() {
	st := r.state
	log.Debug("game over", "game", r.game.ID(), "score", st.Score,
		"outcome", string(st.Outcome), "elapsed", st.Elapsed)

	if r.store == nil || (st.Score <= 0 && st.Outcome != core.OutcomeWon) {
		return
	}
	_, err := r.store.SaveResult(storage.Result{
		GameID:   r.game.ID(),
		Score:    st.Score,
		Outcome:  string(st.Outcome),
		Duration: st.Elapsed,
	})
	if err != nil {
		log.Warn("could not save result", "game", r.game.ID(), "error", err)
	}
}

func (r *runner) view() string {
	r.game.Render(r.screen)
	return RenderScreen(r.screen)
}

// saveScreenshot saves the current screen to a file.
func (r *runner) saveScreenshot() {
	r.game.Render(r.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", r.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(r.screen.String()), 0o600); err != nil {
		log.Warn("could not save screenshot", "error", err)
		return
	}
	log.Debug("screenshot saved", "path", path)
}

// Model is the Bubble Tea model for running a single arcade game.
type Model struct {
	run        *runner
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	return Model{
		run:       newRunner(game, store, cfg),
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	return m.run.start()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.run.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m, m.run.step()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.run.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.run.input) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu is only offered once the board is not live.
	state := m.run.state
	if m.run.input.Has(core.ActionBack) && (state.GameOver || state.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	return m.run.view()
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.run.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// RunResult reports how a game session ended.
type RunResult struct {
	BackToMenu bool
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (RunResult, error) {
	p := tea.NewProgram(
		NewModel(game, store, cfg),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return RunResult{}, err
	}
	m, ok := final.(Model)
	if !ok {
		return RunResult{}, nil
	}
	return RunResult{BackToMenu: m.BackToMenu()}, nil
}
