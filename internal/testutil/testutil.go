// Package testutil builds small save files for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/hadeskit/lua"
	"github.com/joshuapare/hadeskit/save"
)

// Size is the envelope size of test saves. It is far below the real size
// so tests stay fast.
const Size = 4096

// Config returns the save configuration matching Size.
func Config() save.Config {
	return save.Config{Size: Size}
}

// GameState returns a script state root shaped like a real one:
//
//	GameState.Resources.Gems       = 500
//	GameState.Resources.MetaPoints = 1200
//	GameState.Flags                = true
//	GameState.Hero                 = "Zagreus"
//	CurrentRun                     = nil
func GameState() *lua.Table {
	res := lua.NewTable(0, 2)
	res.Set(lua.String("Gems"), lua.Number(500))
	res.Set(lua.String("MetaPoints"), lua.Number(1200))

	gs := lua.NewTable(0, 3)
	gs.Set(lua.String("Resources"), res)
	gs.Set(lua.String("Flags"), lua.Bool(true))
	gs.Set(lua.String("Hero"), lua.String("Zagreus"))

	root := lua.NewTable(0, 2)
	root.Set(lua.String("GameState"), gs)
	root.Set(lua.String("CurrentRun"), lua.Nil{})
	return root
}

// NewSave returns a save holding GameState.
func NewSave() *save.Save {
	return &save.Save{
		Header: save.Header{Signature: [4]byte{'S', 'G', 'B', '1'}},
		Metadata: save.Metadata{
			Version:        16,
			Location:       "Tartarus",
			Runs:           42,
			LuaKeys:        []string{"GameState"},
			CurrentMapName: "RoomOpening",
			StartNextMap:   "DeathArea",
			LuaState:       lua.Stream{GameState()},
		},
	}
}

// WriteSave encodes s with Config into a fresh temp dir and returns the
// file path.
func WriteSave(t *testing.T, s *save.Save) string {
	t.Helper()
	out, err := s.Encode(Config())
	if err != nil {
		t.Fatalf("encode test save: %v", err)
	}
	path := filepath.Join(t.TempDir(), "Profile1.sav")
	if err := os.WriteFile(path, out, 0o644); err != nil {
		t.Fatalf("write test save: %v", err)
	}
	return path
}

// SetupTestSave writes NewSave to a temp dir and returns its path.
//
// Example:
//
//	path := testutil.SetupTestSave(t)
//	s, err := save.Open(path, testutil.Config())
func SetupTestSave(t *testing.T) string {
	t.Helper()
	return WriteSave(t, NewSave())
}
