package runner

import (
	"context"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"
)

const luaFilterTimeout = 500 * time.Millisecond

// LuaFilter is an inline Lua predicate over candidate solution files. The
// snippet sees the globals `name` (base filename) and `path` (path relative
// to the challenge directory) and must return a boolean, e.g.
//
//	return string.sub(name, 1, 3) ~= "Alt"
//
// The snippet runs in a sandbox with only the base, string, table and math
// libraries and a short evaluation deadline.
type LuaFilter struct {
	source string
}

// NewLuaFilter compiles the snippet once to reject syntax errors up front.
func NewLuaFilter(source string) (*LuaFilter, error) {
	L := newSandboxState()
	defer L.Close()
	if _, err := L.LoadString(source); err != nil {
		return nil, fmt.Errorf("invalid filter: %v", err)
	}
	return &LuaFilter{source: source}, nil
}

// Keep evaluates the predicate for one candidate file. Each call runs in a
// fresh state so filters cannot accumulate hidden state between files.
func (f *LuaFilter) Keep(name, path string) (bool, error) {
	L := newSandboxState()
	defer L.Close()

	ctx, cancel := context.WithTimeout(context.Background(), luaFilterTimeout)
	defer cancel()
	L.SetContext(ctx)

	L.SetGlobal("name", lua.LString(name))
	L.SetGlobal("path", lua.LString(path))

	if err := L.DoString(f.source); err != nil {
		return false, fmt.Errorf("filter failed for %s: %v", name, err)
	}
	ret := L.Get(-1)
	b, ok := ret.(lua.LBool)
	if !ok {
		return false, fmt.Errorf("filter for %s returned %s, want boolean", name, ret.Type())
	}
	return bool(b), nil
}

// newSandboxState builds a Lua state with a reduced library set: no io, os
// or package access.
func newSandboxState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openLib := func(name string, f lua.LGFunction) {
		L.Push(L.NewFunction(f))
		L.Push(lua.LString(name))
		L.Call(1, 0)
	}
	openLib("base", lua.OpenBase)
	openLib("string", lua.OpenString)
	openLib("table", lua.OpenTable)
	openLib("math", lua.OpenMath)
	return L
}
