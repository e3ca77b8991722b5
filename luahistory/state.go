package luahistory

import (
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"
)

// State wraps a gopher-lua state with the undoredo module installed.
//
// gopher-lua's LState is not goroutine-safe, and neither are the histories
// scripts create. A State must be used from a single goroutine.
type State struct {
	L *lua.LState

	logger hclog.Logger
	closed bool
}

// StateOption configures a State.
type StateOption func(*State)

// WithLogger sets the logger histories created by scripts trace to.
func WithLogger(logger hclog.Logger) StateOption {
	return func(s *State) {
		s.logger = logger
	}
}

// NewState creates a new Lua state with only safe standard libraries and
// the undoredo module.
func NewState(opts ...StateOption) (*State, error) {
	state := &State{}
	for _, opt := range opts {
		opt(state)
	}

	L := lua.NewState(lua.Options{
		SkipOpenLibs: true, // We'll open selectively
	})
	openSafeLibraries(L)

	if err := NewModule(state.logger).Register(L); err != nil {
		L.Close()
		return nil, errors.Wrap(err, "register undoredo module")
	}

	state.L = L
	return state, nil
}

// openSafeLibraries opens the base, table, string and math libraries.
// io, os, debug and package stay closed.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// DoString executes a chunk of Lua code.
func (s *State) DoString(code string) error {
	if s.closed {
		return ErrStateClosed
	}
	if err := s.L.DoString(code); err != nil {
		return errors.Wrap(err, "run lua chunk")
	}
	return nil
}

// DoFile executes a Lua file.
func (s *State) DoFile(path string) error {
	if s.closed {
		return ErrStateClosed
	}
	if err := s.L.DoFile(path); err != nil {
		return errors.Wrapf(err, "run %s", path)
	}
	return nil
}

// Close closes the Lua state. Safe to call more than once.
func (s *State) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.L.Close()
}

// ErrStateClosed is returned when running code on a closed State.
var ErrStateClosed = errors.New("lua state is closed")
