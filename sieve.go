// Package sieve narrows, orders and pages in-memory collections for list views.
package sieve

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/text/language"

	nt "sieve/entity"
	"sieve/filter"
	"sieve/order"
	"sieve/page"
)

// DefaultPageSize is used when neither query nor config give one.
const DefaultPageSize = 15

// Store specifies a source for a collection.
type Store interface {
	// Name returns the name of the data source
	Name() string
	// Load (re)reads the source
	Load(ctx context.Context) (err error)
	// Items returns the loaded collection
	Items() (items []nt.Item, err error)
}

// Query is one pass of the pipeline.
type Query struct {
	Filters []nt.FilterSpec
	Sort    nt.SortSpec
	State   *nt.PageState
}

// Result is the outcome of a query.
// Items holds every filtered and sorted item; slicing a page out of it is
// left to the view.
type Result struct {
	Items []nt.Item
	Total int
	Page  int
	Pages int
}

// Pipeline filters, sorts and pages collections.
type Pipeline struct {
	sorter   order.Sorter
	pageSize int
}

// NewPipeline creates a Pipeline from config.
func (cfg *Config) NewPipeline() (pl *Pipeline, err error) {

	tag := language.English
	if cfg.Locale != "" {
		tag, err = language.Parse(cfg.Locale)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse locale %q", cfg.Locale)
			return
		}
	}

	pl = &Pipeline{
		sorter:   order.Sorter{Locale: tag},
		pageSize: cfg.pageSize(),
	}
	return
}

// Run filters then sorts items and derives the page shown by q.State.
// The input collection is never modified.
func (pl *Pipeline) Run(items []nt.Item, q Query) Result {

	filtered := filter.Apply(items, q.Filters)
	sorted := pl.sorter.Apply(filtered, q.Sort)

	size := pl.pageSize
	if q.State != nil && q.State.Page != nil && q.State.Page.Size > 0 {
		size = q.State.Page.Size
	}

	return Result{
		Items: sorted,
		Total: len(sorted),
		Page:  page.Number(q.State),
		Pages: page.Count(len(sorted), size),
	}
}

// Search returns the filters for a committed search term on field.
// An empty term matches everything.
func Search(field, term string) []nt.FilterSpec {

	if term == "" {
		return nil
	}
	return []nt.FilterSpec{{Property: field, Value: term}}
}
