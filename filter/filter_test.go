package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "sieve/entity"
)

func targets() []nt.Item {
	return []nt.Item{
		{"name": "target_01", "endpoint": "https://10.117.4.151", "id": 1},
		{"name": "target_02", "endpoint": "https://10.117.5.142", "id": 2},
		{"name": "target_03", "endpoint": "https://101.1.11.111", "id": 3},
	}
}

func TestApply(t *testing.T) {

	t.Run("Should keep only the matching item", func(t *testing.T) {
		got := Apply(targets(), []nt.FilterSpec{{Property: "name", Value: "target_02"}})

		require.Len(t, got, 1)
		assert.Equal(t, "target_02", got[0]["name"])
	})

	t.Run("Should match regardless of case", func(t *testing.T) {
		got := Apply(targets(), []nt.FilterSpec{{Property: "name", Value: "TARGET_02"}})

		require.Len(t, got, 1)
		assert.Equal(t, "target_02", got[0]["name"])
	})

	t.Run("Should match anywhere in the value", func(t *testing.T) {
		got := Apply(targets(), []nt.FilterSpec{{Property: "endpoint", Value: "117"}})

		require.Len(t, got, 2)
		assert.Equal(t, "target_01", got[0]["name"])
		assert.Equal(t, "target_02", got[1]["name"])
	})

	t.Run("Should return items unchanged without specs", func(t *testing.T) {
		items := targets()

		got := Apply(items, nil)

		assert.Equal(t, items, got)
		assert.Equal(t, items, Apply(items, []nt.FilterSpec{}))
	})

	t.Run("Should return empty input unchanged", func(t *testing.T) {
		got := Apply([]nt.Item{}, []nt.FilterSpec{{Property: "name", Value: "x"}})

		assert.Empty(t, got)
		assert.NotNil(t, got)
	})

	t.Run("Should require every spec to match", func(t *testing.T) {
		got := Apply(targets(), []nt.FilterSpec{
			{Property: "name", Value: "target"},
			{Property: "endpoint", Value: "142"},
		})

		require.Len(t, got, 1)
		assert.Equal(t, "target_02", got[0]["name"])
	})

	t.Run("Should treat the value as a pattern", func(t *testing.T) {
		got := Apply(targets(), []nt.FilterSpec{{Property: "name", Value: "0[13]$"}})

		require.Len(t, got, 2)
		assert.Equal(t, "target_01", got[0]["name"])
		assert.Equal(t, "target_03", got[1]["name"])
	})

	t.Run("Should match an invalid pattern literally", func(t *testing.T) {
		items := append(targets(), nt.Item{"name": "target_(odd"})

		got := Apply(items, []nt.FilterSpec{{Property: "name", Value: "_(od"}})

		require.Len(t, got, 1)
		assert.Equal(t, "target_(odd", got[0]["name"])
	})

	t.Run("Should match non-string fields on their string form", func(t *testing.T) {
		got := Apply(targets(), []nt.FilterSpec{{Property: "id", Value: "3"}})

		require.Len(t, got, 1)
		assert.Equal(t, "target_03", got[0]["name"])
	})

	t.Run("Should not match absent or nil fields", func(t *testing.T) {
		items := []nt.Item{
			{"name": "repo_a"},
			{"other": "repo_b"},
			{"name": nil},
		}

		var got []nt.Item
		require.NotPanics(t, func() {
			got = Apply(items, []nt.FilterSpec{{Property: "name", Value: "repo"}})
		})

		require.Len(t, got, 1)
		assert.Equal(t, "repo_a", got[0]["name"])
	})

	t.Run("Should leave the input untouched", func(t *testing.T) {
		items := targets()

		Apply(items, []nt.FilterSpec{{Property: "name", Value: "target_02"}})

		assert.Equal(t, targets(), items)
	})

	t.Run("Should give the same result when run twice", func(t *testing.T) {
		specs := []nt.FilterSpec{{Property: "name", Value: "target_0[12]"}}

		first := Apply(targets(), specs)
		second := Apply(targets(), specs)

		assert.Equal(t, first, second)
	})
}

func TestMatcher(t *testing.T) {

	t.Run("Should be reusable across items", func(t *testing.T) {
		mt := Compile(nt.FilterSpec{Property: "name", Value: "alpine"})

		assert.True(t, mt.Match(nt.Item{"name": "library/Alpine"}))
		assert.False(t, mt.Match(nt.Item{"name": "library/busybox"}))
		assert.False(t, mt.Match(nt.Item{}))
	})

	t.Run("Should match everything with an empty value", func(t *testing.T) {
		mt := Compile(nt.FilterSpec{Property: "name", Value: ""})

		assert.True(t, mt.Match(nt.Item{"name": "anything"}))
		assert.True(t, mt.Match(nt.Item{"name": ""}))
	})

	t.Run("Should compile malformed patterns as literals", func(t *testing.T) {
		for _, value := range []string{"a [b", "(#", `\`, "*"} {
			mt := Compile(nt.FilterSpec{Property: "name", Value: value})

			assert.True(t, mt.Match(nt.Item{"name": "x" + value + "y"}), value)
			assert.False(t, mt.Match(nt.Item{"name": "xy"}), value)
		}
	})

	t.Run("Should not match a field without a string form", func(t *testing.T) {
		mt := Compile(nt.FilterSpec{Property: "labels", Value: "a"})

		assert.NotPanics(t, func() {
			assert.False(t, mt.Match(nt.Item{"labels": map[string]any{"a": "a"}}))
		})
	})
}
