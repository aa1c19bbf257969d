package sieve

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "sieve/entity"
	"sieve/order"
	"sieve/util"
)

const sampleConfig = `
search_field: name
page_size: 10
locale: en-US
columns:
  - field: name
    width: 20
  - field: size
    width: 8
    sort: number
  - field: creation_time
    width: 20
    format: "2006-01-02"
    sort: date
  - field: id
    hidden: true
filters:
  - property: name
    value: lib
trigger:
  window: 250ms
refresh:
  interval: 50ms
  duration: 2s
`

func loadConfig(t *testing.T, data string) *Config {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sieve.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg := &Config{}
	require.NoError(t, util.LoadConfig(cfg, path))
	return cfg
}

func TestConfig(t *testing.T) {

	t.Run("Should load from yaml", func(t *testing.T) {
		cfg := loadConfig(t, sampleConfig)

		assert.Equal(t, "name", cfg.SearchField)
		assert.Equal(t, 10, cfg.PageSize)
		assert.Equal(t, 250*time.Millisecond, cfg.Trigger.Window)
		assert.Equal(t, 2*time.Second, cfg.Refresh.Duration)
		assert.Equal(t, []nt.FilterSpec{{Property: "name", Value: "lib"}}, cfg.Filters)
		require.Len(t, cfg.Columns, 4)
		assert.Equal(t, "creation_time", cfg.Columns[2].Field)
		assert.Equal(t, SortDate, cfg.Columns[2].Sort)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Should list visible columns", func(t *testing.T) {
		cfg := loadConfig(t, sampleConfig)

		visible := cfg.Visible()

		require.Len(t, visible, 3)
		assert.Equal(t, "name", visible[0].Field)
		assert.Equal(t, "2006-01-02", visible[2].Format)
	})

	t.Run("Should pick sort specs per column", func(t *testing.T) {
		cfg := loadConfig(t, sampleConfig)

		cmp, ok := cfg.SortFor("size").Comparator()
		require.True(t, ok)
		assert.Equal(t, order.Number("size"), cmp)

		cmp, ok = cfg.SortFor("creation_time").Comparator()
		require.True(t, ok)
		assert.Equal(t, order.Date("creation_time"), cmp)

		field, ok := cfg.SortFor("name").Field()
		require.True(t, ok)
		assert.Equal(t, "name", field)

		field, _ = cfg.SortFor("unlisted").Field()
		assert.Equal(t, "unlisted", field)
	})

	t.Run("Should reject bad columns", func(t *testing.T) {
		assert.Error(t, (&Config{Columns: []Column{{Sort: SortNumber}}}).Validate())
		assert.Error(t, (&Config{Columns: []Column{{Column: nt.Column{Field: "x"}, Sort: "alpha"}}}).Validate())
		assert.Error(t, (&Config{PageSize: -1}).Validate())
	})

	t.Run("Should default search field and locale", func(t *testing.T) {
		cfg := loadConfig(t, "page_size: 5\n")

		assert.Equal(t, DefaultSearchField, cfg.SearchField)
		assert.Equal(t, DefaultLocale, cfg.Locale)
		assert.Equal(t, 5, cfg.PageSize)
	})

	t.Run("Should refuse an invalid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sieve.yaml")
		require.NoError(t, os.WriteFile(path, []byte("columns:\n  - width: 3\n"), 0600))

		err := util.LoadConfig(&Config{}, path)

		assert.ErrorContains(t, err, "column without field")
	})

	t.Run("Should refuse a misspelled key", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sieve.yaml")
		require.NoError(t, os.WriteFile(path, []byte("serch_field: name\n"), 0600))

		assert.Error(t, util.LoadConfig(&Config{}, path))
	})
}
