package search

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBox(t *testing.T) {

	t.Run("Should submit a changed value", func(t *testing.T) {
		var got []string
		box := New(func(term string) { got = append(got, term) })

		box, cmd := box.Set("nginx")
		require.NotNil(t, cmd)
		assert.Nil(t, cmd())

		assert.Equal(t, "nginx", box.Value())
		assert.Equal(t, []string{"nginx"}, got)
	})

	t.Run("Should not submit an unchanged value", func(t *testing.T) {
		box, _ := New(func(string) {}).Set("nginx")

		_, cmd := box.Set("nginx")

		assert.Nil(t, cmd)
	})

	t.Run("Should cap the value length", func(t *testing.T) {
		box, _ := New(nil).Set(strings.Repeat("x", 2*maxLength))

		assert.Len(t, box.Value(), maxLength)
	})

	t.Run("Should ignore keys when blurred", func(t *testing.T) {
		box := New(func(string) { t.Fatal("unexpected submit") })

		box, cmd := box.Update(tea.KeyPressMsg{})

		assert.Nil(t, cmd)
		assert.Equal(t, "", box.Value())
	})

	t.Run("Should ignore other messages", func(t *testing.T) {
		box := New(nil).Focus()

		_, cmd := box.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

		assert.Nil(t, cmd)
		assert.True(t, box.Focused())
		assert.False(t, box.Blur().Focused())
	})

	t.Run("Should insert at the cursor", func(t *testing.T) {
		box, _ := New(nil).Set("ngnx")
		box.cursor = 2

		box = box.insert("i")

		assert.Equal(t, "nginx", box.Value())
		assert.Equal(t, 3, box.cursor)
	})

	t.Run("Should render the prompt and value", func(t *testing.T) {
		box, _ := New(nil).Set("redis")

		assert.Contains(t, box.View(), "redis")
		assert.Contains(t, box.Focus().View(), "redis")
	})
}
