package save

import "github.com/joshuapare/hadeskit/lua"

const testSize = 4096

func testConfig() Config {
	return Config{Size: testSize}
}

func gameState() *lua.Table {
	res := lua.NewTable(0, 3)
	res.Set(lua.String("Gems"), lua.Number(500))
	res.Set(lua.String("MetaPoints"), lua.Number(1200))
	res.Set(lua.String("LockKeys"), lua.Number(3))

	gs := lua.NewTable(0, 2)
	gs.Set(lua.String("Resources"), res)
	gs.Set(lua.String("Flags"), lua.Bool(true))

	root := lua.NewTable(0, 2)
	root.Set(lua.String("GameState"), gs)
	root.Set(lua.String("CurrentRun"), lua.Nil{})
	return root
}

func fixtureSave() *Save {
	return &Save{
		Header: Header{Signature: [4]byte{'S', 'G', 'B', '1'}},
		Metadata: Metadata{
			Version:            16,
			Location:           "Tartarus",
			Runs:               42,
			ActiveMetaPoints:   120,
			ActiveShrinePoints: 8,
			GodModeEnabled:     true,
			HellModeEnabled:    false,
			LuaKeys:            []string{"GameState", "CurrentRun"},
			CurrentMapName:     "RoomOpening",
			StartNextMap:       "DeathArea",
			LuaState:           lua.Stream{gameState()},
		},
	}
}

// scalars returns m without its script state, for assert.Equal.
func scalars(m Metadata) Metadata {
	m.LuaState = nil
	return m
}
