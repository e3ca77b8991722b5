// Package luahistory exposes undo/redo histories to Lua scripts.
//
// The module is registered as the global table "undoredo". Targets are Lua
// tables and operations are Lua functions called with the target:
//
//	local doc = { n = 0 }
//	local h = undoredo.new()
//
//	h:create_action()
//	  :set_name("add five")
//	  :add_redo(function(t) t.n = t.n + 5 end)
//	  :add_undo(function(t) t.n = t.n - 5 end)
//	h:redo(doc)            -- doc.n == 5
//
//	local ok, msg = h:redo(doc)
//	-- ok == false, msg == "nothing to perform"
//
// History methods:
//   - create_action() -> action
//   - redo(t), undo(t) -> true | false, message
//   - record(t, name, fn) -> true; fn receives the new action to fill
//   - clear(), can_undo(), can_redo(), len(), tapehead()
//   - undo_names(), redo_names() -> array of names ("" when unnamed)
//
// Action methods:
//   - id() -> string
//   - name() -> string | nil
//   - set_name(s), add_redo(fn), add_undo(fn) -> action
//
// Errors raised inside operation functions propagate to the caller of
// redo or undo.
package luahistory
