package mockapi

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlat_Getters(t *testing.T) {
	f := Flat{
		"name":    "alpha",
		"count":   3,
		"big":     int64(9),
		"ratio":   2.5,
		"active":  true,
		"untyped": struct{}{},
	}
	assert.Equal(t, "alpha", f.Str("name"))
	assert.Equal(t, "", f.Str("count"))
	assert.Equal(t, 3, f.Int("count"))
	assert.Equal(t, 9, f.Int("big"))
	assert.Equal(t, 2, f.Int("ratio"))
	assert.Equal(t, 0, f.Int("missing"))
	assert.Equal(t, 2.5, f.Float("ratio"))
	assert.Equal(t, 3.0, f.Float("count"))
	assert.Equal(t, 0.0, f.Float("untyped"))
	assert.True(t, f.Bool("active"))
	assert.False(t, f.Bool("name"))
	assert.True(t, f.Has("untyped"))
	assert.False(t, f.Has("missing"))
}

func TestFlat_Rows(t *testing.T) {
	f := Flat{
		"coin_0_id":            "bitcoin",
		"coin_0_current_price": 61000.5,
		"coin_1_id":            "ethereum",
		"coin_1_current_price": 2900.1,
		"coin_count":           2, // not indexed, ignored by Rows
		"other_0_id":           "x",
	}
	rows := f.Rows("coin")
	require.Len(t, rows, 2)
	assert.Equal(t, "bitcoin", rows[0]["id"])
	assert.Equal(t, 61000.5, rows[0]["current_price"])
	assert.Equal(t, "ethereum", rows[1]["id"])
}

func TestFlat_Rows_GapsDropped(t *testing.T) {
	f := Flat{
		"item_0_name": "a",
		"item_3_name": "b",
	}
	rows := f.Rows("item")
	require.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0]["name"])
	assert.Equal(t, "b", rows[1]["name"])
}

func TestFlat_Rows_FieldKeepsUnderscores(t *testing.T) {
	f := Flat{"coin_0_price_change_24h": -1.2}
	rows := f.Rows("coin")
	require.Len(t, rows, 1)
	assert.Equal(t, -1.2, rows[0]["price_change_24h"])
}

func TestFlat_Object(t *testing.T) {
	f := Flat{
		"meta_total":   42,
		"meta_page":    1,
		"meta_0_name":  "skipped", // indexed, belongs to Rows
		"metadata_del": "wrong prefix",
	}
	obj := f.Object("meta")
	assert.Equal(t, map[string]any{"total": 42, "page": 1}, obj)
}

func TestFlat_JSONField(t *testing.T) {
	f := Flat{
		"good": `{"a": 1}`,
		"bad":  `{not json`,
	}
	assert.Equal(t, map[string]any{"a": float64(1)}, f.JSONField("good", "payload"))
	assert.Equal(t,
		map[string]any{"error": "Failed to parse payload JSON"},
		f.JSONField("bad", "payload"))
	assert.Equal(t,
		map[string]any{"error": "Failed to parse payload JSON"},
		f.JSONField("missing", "payload"))
}

func TestSource_Deterministic(t *testing.T) {
	fixed := func() time.Time { return time.Unix(1_700_000_000, 0) }
	a := NewSource(42, WithClock(fixed))
	b := NewSource(42, WithClock(fixed))
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.IntBetween(0, 1000), b.IntBetween(0, 1000))
		assert.Equal(t, a.FloatBetween(0, 100), b.FloatBetween(0, 100))
		assert.Equal(t, a.Bool(), b.Bool())
	}
	assert.Equal(t, int64(1_700_000_000), a.Unix())
	assert.Equal(t, int64(1_700_000_000+3600), a.UnixOffset(time.Hour))
}

func TestSource_Bounds(t *testing.T) {
	s := NewSource(1)
	for i := 0; i < 100; i++ {
		n := s.IntBetween(5, 10)
		assert.GreaterOrEqual(t, n, 5)
		assert.LessOrEqual(t, n, 10)
		v := s.FloatBetween(1.0, 2.0)
		assert.GreaterOrEqual(t, v, 1.0)
		assert.LessOrEqual(t, v, 2.0)
	}
	assert.Equal(t, 7, s.IntBetween(7, 7))
	assert.Equal(t, 3.5, s.FloatBetween(3.5, 3.5))
}

func TestSource_FloatBetween_RoundsToNearest(t *testing.T) {
	// Mirror the Source's rng stream so each draw's raw value is known, then check
	// the one-decimal rounding is to nearest on both sides of zero (truncation
	// toward zero would drift negative draws).
	rng := rand.New(rand.NewSource(1))
	s := NewSource(1)
	for i := 0; i < 200; i++ {
		raw := -3 + rng.Float64()*6
		assert.Equal(t, math.Round(raw*10)/10, s.FloatBetween(-3, 3))
	}
}

func TestPick(t *testing.T) {
	s := NewSource(1)
	choices := []string{"a", "b", "c"}
	for i := 0; i < 30; i++ {
		assert.Contains(t, choices, Pick(s, choices))
	}
}
