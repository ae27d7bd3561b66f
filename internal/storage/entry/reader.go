package entry

import (
	"context"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/sm"
	"github.com/stephenafamo/scan"

	"github.com/Nahom8bit/Balancer/internal/ledger"
	"github.com/Nahom8bit/Balancer/internal/session"
)

type Reader struct {
	exec     bob.Executor
	location *time.Location
}

func NewReader(exec bob.Executor, location *time.Location) *Reader {
	return &Reader{exec: exec, location: location}
}

// ListForDay returns the entries of a category dated on day, ordered by id.
// Rows from other days are never returned even if present.
func (r *Reader) ListForDay(ctx context.Context, c ledger.Category, day time.Time) ([]ledger.Entry, error) {
	start, end := session.DayBounds(day.In(r.location))

	q := sqlite.Select(
		sm.Columns(selectColumns(c)...),
		sm.From(table(c)),
		sm.Where(sqlite.Quote(ledger.ColumnDate).GTE(sqlite.Arg(formatDate(start, r.location)))),
		sm.Where(sqlite.Quote(ledger.ColumnDate).LT(sqlite.Arg(formatDate(end, r.location)))),
		sm.OrderBy(sqlite.Quote("id")).Asc(),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[entryRow]())
	if err != nil {
		return nil, &ledger.PersistenceError{Op: "select " + c.String(), Err: err}
	}

	result := make([]ledger.Entry, 0, len(rows))
	for _, row := range rows {
		e, err := rowToEntry(c, row, r.location)
		if err != nil {
			return nil, &ledger.PersistenceError{Op: "select " + c.String(), Err: err}
		}
		result = append(result, e)
	}
	return result, nil
}

// FindByID returns ledger.ErrNotFound when the id does not exist.
func (r *Reader) FindByID(ctx context.Context, c ledger.Category, id int64) (*ledger.Entry, error) {
	q := sqlite.Select(
		sm.Columns(selectColumns(c)...),
		sm.From(table(c)),
		sm.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))),
		sm.Limit(1),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[entryRow]())
	if err != nil {
		return nil, &ledger.PersistenceError{Op: "find " + c.String(), Err: err}
	}
	if len(rows) == 0 {
		return nil, ledger.ErrNotFound
	}

	e, err := rowToEntry(c, rows[0], r.location)
	if err != nil {
		return nil, &ledger.PersistenceError{Op: "find " + c.String(), Err: err}
	}
	return &e, nil
}

// LatestDate returns the most recent entry date across all six categories,
// or nil when every category is empty.
func (r *Reader) LatestDate(ctx context.Context) (*time.Time, error) {
	var latest *time.Time
	for _, c := range ledger.Categories {
		q := sqlite.Select(
			sm.Columns(sqlite.Quote(ledger.ColumnDate)),
			sm.From(table(c)),
			sm.OrderBy(sqlite.Quote(ledger.ColumnDate)).Desc(),
			sm.Limit(1),
		)
		dates, err := bob.All(ctx, r.exec, q, scan.SingleColumnMapper[string])
		if err != nil {
			return nil, &ledger.PersistenceError{Op: "latest date " + c.String(), Err: err}
		}
		if len(dates) == 0 {
			continue
		}

		date, err := parseDate(dates[0], r.location)
		if err != nil {
			return nil, &ledger.PersistenceError{Op: "latest date " + c.String(), Err: err}
		}
		if latest == nil || date.After(*latest) {
			latest = &date
		}
	}
	return latest, nil
}

// Count returns the number of rows physically stored in a category,
// whatever their date.
func (r *Reader) Count(ctx context.Context, c ledger.Category) (int64, error) {
	q := sqlite.Select(
		sm.Columns("COUNT(*)"),
		sm.From(table(c)),
	)
	counts, err := bob.All(ctx, r.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, &ledger.PersistenceError{Op: "count " + c.String(), Err: err}
	}
	if len(counts) == 0 {
		return 0, nil
	}
	return counts[0], nil
}
