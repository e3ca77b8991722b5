package luahistory

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/undoredo/history"
)

// Target is the state Lua operations edit: a table, plus the Lua state the
// operations run on.
type Target struct {
	L     *lua.LState
	Table *lua.LTable
}

// ScriptOp is an operation implemented by a Lua function taking the target
// table as its only argument.
type ScriptOp struct {
	Fn *lua.LFunction
}

// Apply calls the function with the target table. A Lua error raised by the
// function is propagated as a Lua error on t.L.
func (op ScriptOp) Apply(t *Target) {
	t.L.Push(op.Fn)
	t.L.Push(t.Table)
	t.L.Call(1, 0)
}

// History is an undo/redo history over Lua tables.
type History = history.UndoRedo[Target, ScriptOp]

// Action is an action of a History.
type Action = history.Action[Target, ScriptOp]
