// Package memo is a Store holding a collection read from a yaml file.
package memo

import (
	"context"
	"os"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	nt "sieve/entity"
)

// Memo keeps items in memory.
type Memo struct {
	name   string
	path   string
	logger nt.Logger

	mu    sync.Mutex
	items []nt.Item
}

// New creates a Memo for the yaml list at path.
func New(path string, lgr nt.Logger) *Memo {
	return &Memo{
		name:   path,
		path:   path,
		logger: lgr,
	}
}

// FromItems creates a Memo over items, with nothing to load.
func FromItems(name string, items []nt.Item) *Memo {
	return &Memo{
		name:   name,
		logger: nt.NopLogger{},
		items:  items,
	}
}

// Name returns the name of the collection, its path when loaded from a file.
func (mm *Memo) Name() string {
	return mm.name
}

// Load reads the yaml file, a sequence of mappings.
// Items given directly are kept as they are.
func (mm *Memo) Load(ctx context.Context) (err error) {

	if mm.path == "" {
		return
	}

	data, err := os.ReadFile(mm.path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read from %s", mm.path)
		return
	}

	items := []nt.Item{}
	err = yaml.Unmarshal(data, &items)
	if err != nil {
		err = errors.Wrapf(err, "failed to unmarshal %s", mm.path)
		return
	}

	mm.mu.Lock()
	mm.items = items
	mm.mu.Unlock()

	mm.logger.Info(ctx, "loaded collection", "path", mm.path, "count", len(items))
	return
}

// Items returns the collection.
func (mm *Memo) Items() (items []nt.Item, err error) {

	mm.mu.Lock()
	defer mm.mu.Unlock()

	return mm.items, nil
}
