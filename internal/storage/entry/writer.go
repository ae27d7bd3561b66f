package entry

import (
	"context"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/dialect"
	"github.com/stephenafamo/bob/dialect/sqlite/dm"
	"github.com/stephenafamo/bob/dialect/sqlite/im"
	"github.com/stephenafamo/bob/dialect/sqlite/um"

	"github.com/Nahom8bit/Balancer/internal/ledger"
)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx, location *time.Location) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec:     tx,
			location: location,
		},
	}
}

// Insert persists fields dated at date and returns the new row id.
func (w *Writer) Insert(ctx context.Context, fields ledger.Fields, date time.Time) (int64, error) {
	c := fields.Category()
	pairs := fields.Pairs()

	columns := make([]string, 0, len(pairs)+1)
	values := make([]any, 0, len(pairs)+1)
	for _, p := range pairs {
		columns = append(columns, p.Column)
		values = append(values, p.Value)
	}
	columns = append(columns, ledger.ColumnDate)
	values = append(values, formatDate(date, w.location))

	q := sqlite.Insert(
		im.Into(table(c), columns...),
		im.Values(sqlite.Arg(values...)),
	)
	res, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return 0, &ledger.PersistenceError{Op: "insert " + c.String(), Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &ledger.PersistenceError{Op: "insert " + c.String(), Err: err}
	}
	return id, nil
}

// Update replaces the category fields of row id. The date is kept.
// It reports whether a row was changed.
func (w *Writer) Update(ctx context.Context, id int64, fields ledger.Fields) (bool, error) {
	c := fields.Category()

	mods := []bob.Mod[*dialect.UpdateQuery]{um.Table(table(c))}
	for _, p := range fields.Pairs() {
		mods = append(mods, um.SetCol(p.Column).ToArg(p.Value))
	}
	mods = append(mods, um.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))))

	res, err := bob.Exec(ctx, w.tx, sqlite.Update(mods...))
	if err != nil {
		return false, &ledger.PersistenceError{Op: "update " + c.String(), Err: err}
	}
	return changed(res.RowsAffected())
}

// Delete removes row id and reports whether a row was removed.
func (w *Writer) Delete(ctx context.Context, c ledger.Category, id int64) (bool, error) {
	q := sqlite.Delete(
		dm.From(table(c)),
		dm.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))),
	)
	res, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return false, &ledger.PersistenceError{Op: "delete " + c.String(), Err: err}
	}
	return changed(res.RowsAffected())
}

func changed(n int64, err error) (bool, error) {
	if err != nil {
		return false, &ledger.PersistenceError{Op: "rows affected", Err: err}
	}
	return n > 0, nil
}
