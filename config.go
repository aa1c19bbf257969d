package sieve

import (
	"github.com/pkg/errors"

	nt "sieve/entity"
	"sieve/order"
	"sieve/refresh"
	"sieve/trigger"
)

const (
	DefaultSearchField = "name"
	DefaultLocale      = "en"
)

// Column sort kinds.
const (
	SortNumber = "number"
	SortDate   = "date"
)

// Config is the yaml configuration for a list view.
type Config struct {
	SearchField string          `yaml:"search_field"`
	PageSize    int             `yaml:"page_size"`
	Locale      string          `yaml:"locale,omitempty"`
	Columns     []Column        `yaml:"columns"`
	Filters     []nt.FilterSpec `yaml:"filters,omitempty"`
	Trigger     trigger.Config  `yaml:"trigger"`
	Refresh     refresh.Config  `yaml:"refresh"`
}

// Column is a displayed field and how it sorts.
type Column struct {
	nt.Column `yaml:",inline"`
	Sort      string `yaml:"sort,omitempty"`
}

// Defaults fills in the search field and locale when left out.
func (cfg *Config) Defaults() {

	if cfg.SearchField == "" {
		cfg.SearchField = DefaultSearchField
	}
	if cfg.Locale == "" {
		cfg.Locale = DefaultLocale
	}
}

// Validate checks config for mistakes worth refusing to start on.
func (cfg *Config) Validate() (err error) {

	if cfg.PageSize < 0 {
		return errors.Errorf("page_size must not be negative: %d", cfg.PageSize)
	}

	for _, col := range cfg.Columns {
		if col.Field == "" {
			return errors.Errorf("column without field")
		}
		switch col.Sort {
		case "", SortNumber, SortDate:
		default:
			return errors.Errorf("unknown sort %q for column %s", col.Sort, col.Field)
		}
	}

	return
}

// SortFor returns the sort spec for a column field.
// Number and date columns sort through their comparators, latest or
// largest first; others sort on the field's natural order.
func (cfg *Config) SortFor(field string) nt.SortSpec {

	for _, col := range cfg.Columns {
		if col.Field != field {
			continue
		}
		switch col.Sort {
		case SortNumber:
			return nt.ByComparator(order.Number(field))
		case SortDate:
			return nt.ByComparator(order.Date(field))
		}
		return nt.ByField(field)
	}

	return nt.ByField(field)
}

// Visible returns the columns to display.
func (cfg *Config) Visible() []nt.Column {

	cols := []nt.Column{}
	for _, col := range cfg.Columns {
		if !col.Hidden {
			cols = append(cols, col.Column)
		}
	}
	return cols
}

// unexported

func (cfg *Config) pageSize() int {
	if cfg.PageSize > 0 {
		return cfg.PageSize
	}
	return DefaultPageSize
}
