package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

//go:embed default.lua
var defaultScript string

// LoadDefault returns the built-in catalog.
func LoadDefault() (*Catalog, error) {
	return LoadString(defaultScript)
}

// LoadFile runs a Lua catalog script from disk. The script must set a global
// table named catalog with one entry per bag.
func LoadFile(path string) (*Catalog, error) {
	luaState := lua.NewState()
	defer luaState.Close()
	if err := luaState.DoFile(path); err != nil {
		return nil, fmt.Errorf("could not run catalog script %s: %w", path, err)
	}
	return readCatalog(luaState)
}

func LoadString(script string) (*Catalog, error) {
	luaState := lua.NewState()
	defer luaState.Close()
	if err := luaState.DoString(script); err != nil {
		return nil, fmt.Errorf("could not run catalog script: %w", err)
	}
	return readCatalog(luaState)
}

func readCatalog(luaState *lua.LState) (*Catalog, error) {
	luaReturn := luaState.GetGlobal("catalog")
	luaTable, ok := luaReturn.(*lua.LTable)
	if !ok {
		return nil, errors.New("catalog script did not define a catalog table, got " + luaReturn.Type().String())
	}

	cat := New()
	var convErr error
	luaTable.ForEach(func(key, value lua.LValue) {
		if convErr != nil || key.Type() != lua.LTString {
			return
		}
		bag, err := ParseBag(lua.LVAsString(key))
		if err != nil {
			convErr = err
			return
		}
		bagTable, ok := value.(*lua.LTable)
		if !ok {
			convErr = fmt.Errorf("bag %s: expected table, got %s", bag, value.Type())
			return
		}
		convErr = convertBagTable(cat, bag, bagTable)
	})
	if convErr != nil {
		return nil, convErr
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

func convertBagTable(cat *Catalog, bag Bag, bagTable *lua.LTable) error {
	if sizes, ok := bagTable.RawGetString("sizes").(*lua.LTable); ok {
		for i := 1; i <= sizes.Len(); i++ {
			size, err := ParseSize(lua.LVAsString(sizes.RawGetInt(i)))
			if err != nil {
				return fmt.Errorf("bag %s: %w", bag, err)
			}
			cat.AddSize(bag, size)
		}
	}

	patterns, ok := bagTable.RawGetString("patterns").(*lua.LTable)
	if !ok {
		return nil
	}
	for i := 1; i <= patterns.Len(); i++ {
		rows, ok := patterns.RawGetInt(i).(*lua.LTable)
		if !ok {
			return fmt.Errorf("%w: %s pattern %d is not a table", ErrMalformedPattern, bag, i)
		}
		pattern := make(Pattern, 0, rows.Len())
		for r := 1; r <= rows.Len(); r++ {
			row := rows.RawGetInt(r)
			if row.Type() != lua.LTString {
				return fmt.Errorf("%w: %s pattern %d row %d is %s", ErrMalformedPattern, bag, i, r, row.Type())
			}
			pattern = append(pattern, lua.LVAsString(row))
		}
		cat.AddPattern(bag, pattern)
	}
	return nil
}
