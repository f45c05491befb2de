package lua

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkVisitsDepthFirst(t *testing.T) {
	var paths []string
	err := Walk(gameStateTable(), func(path []Value, _ Value) error {
		parts := make([]string, len(path))
		for i, k := range path {
			parts[i] = k.String()
		}
		paths = append(paths, strings.Join(parts, "/"))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		`"GameState"`,
		`"GameState"/"Resources"`,
		`"GameState"/"Resources"/"Gems"`,
		`"GameState"/"Resources"/"MetaPoints"`,
		`"GameState"/"Resources"/"LockKeys"`,
		`"GameState"/"Resources"/"SuperGems"`,
		`"GameState"/"AccumulatedMetaPointsCache"`,
		`"GameState"/"Flags"`,
		`"GameState"/"ClearedRooms"`,
		`"GameState"/"ClearedRooms"/1`,
		`"GameState"/"ClearedRooms"/2`,
		`"GameState"/"ClearedRooms"/3`,
		`"CurrentRun"`,
		`"Version"`,
	}, paths)
}

func TestWalkSkipTable(t *testing.T) {
	n := 0
	err := Walk(gameStateTable(), func(path []Value, v Value) error {
		n++
		if _, ok := v.(*Table); ok && len(path) == 2 {
			return SkipTable
		}
		return nil
	})
	require.NoError(t, err)
	// GameState, Resources, ACMPC, Flags, ClearedRooms, CurrentRun, Version
	assert.Equal(t, 7, n)
}

func TestWalkStopsOnError(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := Walk(gameStateTable(), func([]Value, Value) error {
		n++
		if n == 3 {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 3, n)
}

func TestToNative(t *testing.T) {
	got := ToNative(gameStateTable())
	root, ok := got.(map[string]any)
	require.True(t, ok)

	gs := root["GameState"].(map[string]any)
	res := gs["Resources"].(map[string]any)
	assert.Equal(t, 500.0, res["Gems"])
	assert.Equal(t, true, gs["Flags"])
	assert.Equal(t, []any{"Tartarus", "Asphodel", "Elysium"}, gs["ClearedRooms"])
	assert.Nil(t, root["CurrentRun"])
	assert.Equal(t, "v1.38290", root["Version"])
}

func TestToNativeMixedKeys(t *testing.T) {
	tbl := NewTable(0, 2)
	tbl.Set(Bool(true), String("yes"))
	tbl.Set(Number(5), Number(math.Inf(1)))

	got, ok := ToNative(tbl).([]map[string]any)
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, map[string]any{"key": true, "value": "yes"}, got[0])
	assert.Equal(t, map[string]any{"key": 5.0, "value": "+Inf"}, got[1])
}

func TestStringText(t *testing.T) {
	assert.Equal(t, "plain", String("plain").Text())
	assert.Equal(t, "Élysée", String("Élysée").Text())
	assert.Equal(t, "café", String([]byte{'c', 'a', 'f', 0xE9}).Text())
	assert.Equal(t, `"café"`, String([]byte{'c', 'a', 'f', 0xE9}).String())
}

func TestNumberString(t *testing.T) {
	assert.Equal(t, "500", Number(500).String())
	assert.Equal(t, "-1.25", Number(-1.25).String())
	assert.Equal(t, "1e+20", Number(1e20).String())
	assert.Equal(t, "NaN", Number(math.NaN()).String())
}
