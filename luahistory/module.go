package luahistory

import (
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/undoredo/history"
)

// Metatable names for the userdata the module hands to Lua.
const (
	historyTypeName = "undoredo.history"
	actionTypeName  = "undoredo.action"
)

// Module implements the undoredo Lua module.
type Module struct {
	logger hclog.Logger
}

// NewModule creates a new module. Histories created from Lua trace to
// logger; a nil logger disables tracing.
func NewModule(logger hclog.Logger) *Module {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Module{logger: logger}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "undoredo"
}

// Register registers the module into the Lua state.
func (m *Module) Register(L *lua.LState) error {
	hmt := L.NewTypeMetatable(historyTypeName)
	L.SetField(hmt, "__index", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"create_action": m.createAction,
		"redo":          m.redo,
		"undo":          m.undo,
		"record":        m.record,
		"clear":         m.clear,
		"can_undo":      m.canUndo,
		"can_redo":      m.canRedo,
		"len":           m.histLen,
		"tapehead":      m.tapehead,
		"undo_names":    m.undoNames,
		"redo_names":    m.redoNames,
	}))

	amt := L.NewTypeMetatable(actionTypeName)
	L.SetField(amt, "__index", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"id":       m.actionID,
		"name":     m.actionName,
		"set_name": m.setName,
		"add_redo": m.addRedo,
		"add_undo": m.addUndo,
	}))

	mod := L.NewTable()
	L.SetField(mod, "new", L.NewFunction(m.newHistory))

	L.SetGlobal(m.Name(), mod)
	return nil
}

// new() -> history
// Creates an empty history.
func (m *Module) newHistory(L *lua.LState) int {
	h := history.New[Target, ScriptOp](history.WithLogger(m.logger))
	L.Push(m.wrap(L, h, historyTypeName))
	return 1
}

func (m *Module) wrap(L *lua.LState, v interface{}, typeName string) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = v
	L.SetMetatable(ud, L.GetTypeMetatable(typeName))
	return ud
}

func checkHistory(L *lua.LState) *History {
	ud := L.CheckUserData(1)
	if h, ok := ud.Value.(*History); ok {
		return h
	}
	L.ArgError(1, "history expected")
	return nil
}

func checkAction(L *lua.LState) *Action {
	ud := L.CheckUserData(1)
	if a, ok := ud.Value.(*Action); ok {
		return a
	}
	L.ArgError(1, "action expected")
	return nil
}

// pushResult pushes true, or false and a message for ErrNothingToDo.
func pushResult(L *lua.LState, err error) int {
	switch {
	case err == nil:
		L.Push(lua.LTrue)
		return 1
	case errors.Is(err, history.ErrNothingToDo):
		L.Push(lua.LFalse)
		L.Push(lua.LString(err.Error()))
		return 2
	default:
		L.RaiseError("%v", err)
		return 0
	}
}

// history:create_action() -> action
func (m *Module) createAction(L *lua.LState) int {
	h := checkHistory(L)
	L.Push(m.wrap(L, h.CreateAction(), actionTypeName))
	return 1
}

// history:redo(t) -> true | false, message
func (m *Module) redo(L *lua.LState) int {
	h := checkHistory(L)
	t := L.CheckTable(2)
	return pushResult(L, h.Redo(&Target{L: L, Table: t}))
}

// history:undo(t) -> true | false, message
func (m *Module) undo(L *lua.LState) int {
	h := checkHistory(L)
	t := L.CheckTable(2)
	return pushResult(L, h.Undo(&Target{L: L, Table: t}))
}

// history:record(t, name, fn) -> true
// Creates an action, passes it to fn to fill, then applies it to t.
// If fn raises an error the action is erased and the error propagates.
func (m *Module) record(L *lua.LState) int {
	h := checkHistory(L)
	t := L.CheckTable(2)
	name := L.OptString(3, "")
	fn := L.OptFunction(4, nil)

	err := h.Record(&Target{L: L, Table: t}, name, func(a *Action) {
		if fn == nil {
			return
		}
		L.Push(fn)
		L.Push(m.wrap(L, a, actionTypeName))
		L.Call(1, 0)
	})
	return pushResult(L, err)
}

// history:clear()
func (m *Module) clear(L *lua.LState) int {
	checkHistory(L).ClearHistory()
	return 0
}

// history:can_undo() -> bool
func (m *Module) canUndo(L *lua.LState) int {
	L.Push(lua.LBool(checkHistory(L).CanUndo()))
	return 1
}

// history:can_redo() -> bool
func (m *Module) canRedo(L *lua.LState) int {
	L.Push(lua.LBool(checkHistory(L).CanRedo()))
	return 1
}

// history:len() -> number
func (m *Module) histLen(L *lua.LState) int {
	L.Push(lua.LNumber(checkHistory(L).Len()))
	return 1
}

// history:tapehead() -> number
func (m *Module) tapehead(L *lua.LState) int {
	L.Push(lua.LNumber(checkHistory(L).Tapehead()))
	return 1
}

// history:undo_names() -> {string}
// Names of applied actions, oldest first.
func (m *Module) undoNames(L *lua.LState) int {
	L.Push(namesTable(L, checkHistory(L).UndoInfo()))
	return 1
}

// history:redo_names() -> {string}
// Names of unapplied actions, next redo first.
func (m *Module) redoNames(L *lua.LState) int {
	L.Push(namesTable(L, checkHistory(L).RedoInfo()))
	return 1
}

func namesTable(L *lua.LState, infos []history.ActionInfo) *lua.LTable {
	tbl := L.CreateTable(len(infos), 0)
	for _, info := range infos {
		tbl.Append(lua.LString(info.Name))
	}
	return tbl
}

// action:id() -> string
func (m *Module) actionID(L *lua.LState) int {
	L.Push(lua.LString(checkAction(L).ID().String()))
	return 1
}

// action:name() -> string | nil
func (m *Module) actionName(L *lua.LState) int {
	name, ok := checkAction(L).Name()
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(name))
	return 1
}

// action:set_name(s) -> action
func (m *Module) setName(L *lua.LState) int {
	checkAction(L).SetName(L.CheckString(2))
	L.Push(L.Get(1))
	return 1
}

// action:add_redo(fn) -> action
func (m *Module) addRedo(L *lua.LState) int {
	checkAction(L).AddRedoOperation(ScriptOp{Fn: L.CheckFunction(2)})
	L.Push(L.Get(1))
	return 1
}

// action:add_undo(fn) -> action
func (m *Module) addUndo(L *lua.LState) int {
	checkAction(L).AddUndoOperation(ScriptOp{Fn: L.CheckFunction(2)})
	L.Push(L.Get(1))
	return 1
}
