package detail

import (
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	nt "sieve/entity"
)

func TestPanel(t *testing.T) {

	item := nt.Item{}
	for i := range 10 {
		item[fmt.Sprintf("field_%d", i)] = i
	}

	t.Run("Should render every field in key order", func(t *testing.T) {
		pnl := Panel{}.Show(nt.Item{"name": "library", "id": 1, "public": true})

		assert.Equal(t, "id: 1\nname: library\npublic: true", pnl.View())
	})

	t.Run("Should show nothing without an item", func(t *testing.T) {
		assert.Equal(t, "Nothing selected", Panel{}.View())
	})

	t.Run("Should scroll within the rendered lines", func(t *testing.T) {
		pnl := Panel{}.Show(item).SetSize(20, 3)

		pnl, _ = pnl.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		assert.Equal(t, "field_1: 1\nfield_2: 2\nfield_3: 3", pnl.View())

		pnl, _ = pnl.Update(tea.KeyPressMsg{Code: tea.KeyPgDown})
		pnl, _ = pnl.Update(tea.KeyPressMsg{Code: tea.KeyPgDown})
		pnl, _ = pnl.Update(tea.KeyPressMsg{Code: tea.KeyPgDown})
		assert.Equal(t, "field_7: 7\nfield_8: 8\nfield_9: 9", pnl.View())

		pnl, _ = pnl.Update(tea.KeyPressMsg{Code: tea.KeyUp})
		assert.Equal(t, "field_6: 6\nfield_7: 7\nfield_8: 8", pnl.View())
	})

	t.Run("Should start from the top for a new item", func(t *testing.T) {
		pnl := Panel{}.Show(item).SetSize(20, 3)
		pnl, _ = pnl.Update(tea.KeyPressMsg{Code: tea.KeyPgDown})

		pnl = pnl.Show(item)

		assert.Equal(t, "field_0: 0\nfield_1: 1\nfield_2: 2", pnl.View())
		assert.Equal(t, item, pnl.Item())
	})

	t.Run("Should cut long lines to width", func(t *testing.T) {
		pnl := Panel{}.Show(nt.Item{"name": "a-very-long-name"}).SetSize(8, 3)

		assert.Equal(t, "name: a-", pnl.View())
	})
}
