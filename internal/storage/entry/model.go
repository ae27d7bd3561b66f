package entry

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob/dialect/sqlite"

	"github.com/Nahom8bit/Balancer/internal/ledger"
)

// entryRow is the union of the six category tables. Columns a table does
// not have are simply left empty.
type entryRow struct {
	ID          int64           `db:"id"`
	Description string          `db:"description"`
	Type        string          `db:"type"`
	Amount      decimal.Decimal `db:"amount"`
	Date        string          `db:"date"`
}

func rowToEntry(c ledger.Category, row entryRow, loc *time.Location) (ledger.Entry, error) {
	fields, err := ledger.NewFields(c, row.Amount, row.Description, row.Type)
	if err != nil {
		return ledger.Entry{}, err
	}
	date, err := parseDate(row.Date, loc)
	if err != nil {
		return ledger.Entry{}, fmt.Errorf("%s %d: %w", c, row.ID, err)
	}
	return ledger.Entry{ID: row.ID, Fields: fields, Date: date}, nil
}

func parseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(ledger.DateLayout, s, loc)
}

func formatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(ledger.DateLayout)
}

func table(c ledger.Category) any {
	return sqlite.Quote(string(c))
}

// selectColumns lists id, the category columns and date as quoted expressions.
func selectColumns(c ledger.Category) []any {
	cols := []any{sqlite.Quote("id")}
	for _, col := range c.Columns() {
		cols = append(cols, sqlite.Quote(col))
	}
	return append(cols, sqlite.Quote(ledger.ColumnDate))
}
