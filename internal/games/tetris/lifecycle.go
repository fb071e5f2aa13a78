package tetris

import (
	"context"
	"time"

	"github.com/looplab/fsm"
)

// State is the lifecycle state of a Tetris game.
type State string

const (
	StateNotStarted State = "not_started"
	StatePlaying    State = "playing"
	StatePaused     State = "paused"
	StateOver       State = "over"
)

const (
	eventStart  = "start"
	eventPause  = "pause"
	eventResume = "resume"
	eventEnd    = "end"
	eventReset  = "reset"
)

// lifecycle wraps the state machine and measures time spent playing.
// Every event carries the engine clock as its only argument.
type lifecycle struct {
	machine *fsm.FSM

	played    time.Duration
	playingAt time.Duration
}

func newLifecycle() *lifecycle {
	l := &lifecycle{}
	l.machine = fsm.NewFSM(
		string(StateNotStarted),
		fsm.Events{
			{Name: eventStart, Src: []string{string(StateNotStarted)}, Dst: string(StatePlaying)},
			{Name: eventPause, Src: []string{string(StatePlaying)}, Dst: string(StatePaused)},
			{Name: eventResume, Src: []string{string(StatePaused)}, Dst: string(StatePlaying)},
			{Name: eventEnd, Src: []string{string(StatePlaying)}, Dst: string(StateOver)},
			{Name: eventReset, Src: []string{string(StatePlaying), string(StatePaused), string(StateOver)}, Dst: string(StateNotStarted)},
		},
		fsm.Callbacks{
			"enter_" + string(StatePlaying): func(_ context.Context, e *fsm.Event) {
				l.playingAt = clockArg(e)
			},
			"leave_" + string(StatePlaying): func(_ context.Context, e *fsm.Event) {
				l.played += clockArg(e) - l.playingAt
			},
			"enter_" + string(StateNotStarted): func(_ context.Context, _ *fsm.Event) {
				l.played = 0
			},
		},
	)
	return l
}

func clockArg(e *fsm.Event) time.Duration {
	if len(e.Args) == 0 {
		return 0
	}
	now, _ := e.Args[0].(time.Duration)
	return now
}

// fire triggers event at time now. It returns false when the event is not
// allowed from the current state.
func (l *lifecycle) fire(event string, now time.Duration) bool {
	if !l.machine.Can(event) {
		return false
	}
	return l.machine.Event(context.Background(), event, now) == nil
}

func (l *lifecycle) state() State {
	return State(l.machine.Current())
}

// playedAt returns the total time spent in the playing state up to now.
func (l *lifecycle) playedAt(now time.Duration) time.Duration {
	if l.state() == StatePlaying {
		return l.played + now - l.playingAt
	}
	return l.played
}
