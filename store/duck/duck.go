// Package duck loads a newline delimited json file into duckdb as a collection.
package duck

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/pkg/errors"

	nt "sieve/entity"
)

const table = "items"

// Duck is a Store backed by an in-memory duckdb.
type Duck struct {
	db     *sql.DB
	path   string
	logger nt.Logger
}

// New opens an in-memory duckdb for the json file at path.
func New(path string, lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", "")
	if err != nil {
		err = errors.Wrapf(err, "failed to open duckdb")
		return
	}

	dk = &Duck{
		db:     db,
		path:   path,
		logger: lgr,
	}

	return
}

// Close releases the database.
func (dk *Duck) Close() {
	dk.db.Close()
}

// Name returns the path of the loaded file.
func (dk *Duck) Name() string {
	return dk.path
}

// Load (re)creates the items table from the file.
func (dk *Duck) Load(ctx context.Context) (err error) {

	_, err = dk.db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", table))
	if err != nil {
		err = errors.Wrapf(err, "failed to drop table")
		return
	}

	create := fmt.Sprintf(`
		CREATE TABLE %s AS
		SELECT *
		FROM read_json_auto('%s', format='newline_delimited')
	`, table, quote(dk.path))

	_, err = dk.db.ExecContext(ctx, create)
	if err != nil {
		err = errors.Wrapf(err, "failed to load %s", dk.path)
		return
	}

	count, err := dk.count(ctx)
	if err != nil {
		return
	}

	dk.logger.Info(ctx, "loaded collection", "path", dk.path, "count", count)
	return
}

// Items returns every row as an item, in file order.
func (dk *Duck) Items() (items []nt.Item, err error) {

	rows, err := dk.db.Query(fmt.Sprintf("SELECT * FROM %s", table))
	if err != nil {
		err = errors.Wrapf(err, "failed to query items")
		return
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		err = errors.Wrapf(err, "failed to get cols from query rows")
		return
	}

	items = []nt.Item{}
	for rows.Next() {
		var vals []any
		vals, err = scanRow(rows, len(cols))
		if err != nil {
			err = errors.Wrapf(err, "failed to scan row")
			return
		}

		item := make(nt.Item, len(cols))
		for i, col := range cols {
			item[col] = vals[i]
		}
		items = append(items, item)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating rows")
	return
}

// unexported

func (dk *Duck) count(ctx context.Context) (count int, err error) {

	err = dk.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count)
	err = errors.Wrapf(err, "failed to count items")
	return
}

func scanRow(rows *sql.Rows, columnCount int) ([]any, error) {
	vals := make([]any, columnCount)
	ptrs := make([]any, columnCount)
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	err := rows.Scan(ptrs...)
	return vals, err
}

func quote(path string) string {
	return strings.ReplaceAll(path, "'", "''")
}
