package lua

// --- fixtures shaped like a real script state ---

func resourcesTable() *Table {
	t := NewTable(0, 4)
	t.Set(String("Gems"), Number(500))
	t.Set(String("MetaPoints"), Number(1200))
	t.Set(String("LockKeys"), Number(3))
	t.Set(String("SuperGems"), Number(0))
	return t
}

func gameStateTable() *Table {
	runs := NewTable(3, 0)
	runs.Set(Number(1), String("Tartarus"))
	runs.Set(Number(2), String("Asphodel"))
	runs.Set(Number(3), String("Elysium"))

	gs := NewTable(0, 4)
	gs.Set(String("Resources"), resourcesTable())
	gs.Set(String("AccumulatedMetaPointsCache"), Number(4000))
	gs.Set(String("Flags"), Bool(true))
	gs.Set(String("ClearedRooms"), runs)

	root := NewTable(0, 3)
	root.Set(String("GameState"), gs)
	root.Set(String("CurrentRun"), Nil{})
	root.Set(String("Version"), String("v1.38290"))
	return root
}

func fixtureStream() Stream {
	return Stream{gameStateTable()}
}

// rawTable hand-assembles a table encoding from already-encoded pair bytes.
func rawTable(arrayCount, hashCount int32, pairs ...[]byte) []byte {
	b := []byte{0x54}
	b = le32(b, arrayCount)
	b = le32(b, hashCount)
	for _, p := range pairs {
		b = append(b, p...)
	}
	return b
}

func le32(b []byte, v int32) []byte {
	u := uint32(v)
	return append(b, byte(u), byte(u>>8), byte(u>>16), byte(u>>24))
}

func enc(vs ...Value) []byte {
	var b []byte
	for _, v := range vs {
		b = AppendValue(b, v)
	}
	return b
}
