package duck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "sieve/entity"
)

const endpoints = `{"id": 1, "name": "target_01", "endpoint": "https://10.117.4.151", "creation_time": "2017-04-02T10:22:36Z"}
{"id": 2, "name": "target_02", "endpoint": "https://10.117.5.142", "creation_time": "2017-05-02T10:22:36Z"}
{"id": 3, "name": "target_03", "endpoint": "https://101.1.11.111", "creation_time": "2017-06-02T10:22:36Z"}
`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))
	return path
}

func TestDuck(t *testing.T) {

	t.Run("Should load a json file as items", func(t *testing.T) {
		path := writeFile(t, "endpoints.json", endpoints)

		dk, err := New(path, nt.NopLogger{})
		require.NoError(t, err)
		defer dk.Close()

		require.NoError(t, dk.Load(t.Context()))
		items, err := dk.Items()
		require.NoError(t, err)

		require.Len(t, items, 3)
		assert.Equal(t, "target_01", items[0]["name"])
		assert.Equal(t, "https://101.1.11.111", items[2]["endpoint"])
		assert.Equal(t, path, dk.Name())
	})

	t.Run("Should reload the file", func(t *testing.T) {
		path := writeFile(t, "endpoints.json", endpoints)

		dk, err := New(path, nt.NopLogger{})
		require.NoError(t, err)
		defer dk.Close()

		require.NoError(t, dk.Load(t.Context()))
		require.NoError(t, os.WriteFile(path, []byte(`{"id": 9, "name": "only"}`+"\n"), 0600))
		require.NoError(t, dk.Load(t.Context()))

		items, err := dk.Items()
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "only", items[0]["name"])
	})

	t.Run("Should fail on a missing file", func(t *testing.T) {
		dk, err := New(filepath.Join(t.TempDir(), "nope.json"), nt.NopLogger{})
		require.NoError(t, err)
		defer dk.Close()

		err = dk.Load(t.Context())

		assert.ErrorContains(t, err, "failed to load")
	})
}
