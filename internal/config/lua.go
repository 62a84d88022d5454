package config

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"
)

// LuaLoader loads configuration from a Lua script. The script runs in
// a fresh, isolated state and must return a table of settings:
//
//	return {
//	    line_numbers = true,
//	    theme = { foreground = "#d0d0d0" },
//	}
type LuaLoader struct {
	fs   FileSystem
	path string
}

// NewLuaLoader creates a Lua loader for the given path.
func NewLuaLoader(path string) *LuaLoader {
	return &LuaLoader{fs: DefaultFS(), path: path}
}

// NewLuaLoaderWithFS creates a Lua loader with a custom file system.
func NewLuaLoaderWithFS(fs FileSystem, path string) *LuaLoader {
	return &LuaLoader{fs: fs, path: path}
}

// Load executes the script and converts the returned table.
func (l *LuaLoader) Load() (map[string]any, error) {
	data, err := l.fs.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // File doesn't exist, not an error
		}
		return nil, fmt.Errorf("reading config script %s: %w", l.path, err)
	}

	state := lua.NewState()
	defer state.Close()

	if err := state.DoString(string(data)); err != nil {
		return nil, fmt.Errorf("running config script %s: %w", l.path, err)
	}

	ret := state.Get(-1)
	table, ok := ret.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("config script %s must return a table, got %s", l.path, ret.Type())
	}
	return tableToMap(table), nil
}

// tableToMap converts a Lua table to a settings map. Non-string keys
// are ignored.
func tableToMap(table *lua.LTable) map[string]any {
	m := make(map[string]any)
	table.ForEach(func(k, v lua.LValue) {
		key, ok := k.(lua.LString)
		if !ok {
			return
		}
		m[string(key)] = luaToGo(v)
	})
	return m
}

func luaToGo(v lua.LValue) any {
	switch val := v.(type) {
	case lua.LString:
		return string(val)
	case lua.LBool:
		return bool(val)
	case lua.LNumber:
		if n := float64(val); n == float64(int64(n)) {
			return int64(n)
		}
		return float64(val)
	case *lua.LTable:
		return tableToMap(val)
	default:
		return nil
	}
}
