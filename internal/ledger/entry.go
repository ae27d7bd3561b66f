package ledger

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is how entry dates are persisted: local wall-clock time with
// second precision, which sorts lexically in time order.
const DateLayout = "2006-01-02 15:04:05"

// Entry is one row in a category.
type Entry struct {
	ID     int64
	Fields Fields
	Date   time.Time
}

// Category returns the category of the entry's payload.
func (e Entry) Category() Category {
	return e.Fields.Category()
}

// Amount returns the monetary amount of the entry.
func (e Entry) Amount() decimal.Decimal {
	if e.Fields == nil {
		return decimal.Zero
	}
	return e.Fields.amount()
}

// Draft is an entry that has not been persisted yet. A zero Date is
// replaced by the insertion time.
type Draft struct {
	Fields Fields
	Date   time.Time
}

// ParseDraft decodes a loosely typed field map, as received from a form or
// JSON body, into the variant for category c. Keys outside the category
// schema are rejected. An optional "date" key must be RFC 3339.
func ParseDraft(c Category, data map[string]any) (Draft, error) {
	allowed := map[string]bool{ColumnDate: true}
	for _, col := range c.Columns() {
		allowed[col] = true
	}
	var unknown []string
	for key := range data {
		if !allowed[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Draft{}, invalid(strings.Join(unknown, ","), fmt.Sprintf("is not a field of %s", c))
	}

	raw, ok := data[ColumnAmount]
	if !ok || raw == nil {
		return Draft{}, invalid(ColumnAmount, "is required")
	}
	amount, err := parseAmount(raw)
	if err != nil {
		return Draft{}, err
	}

	description, err := optionalText(data, ColumnDescription)
	if err != nil {
		return Draft{}, err
	}
	kind, err := optionalText(data, ColumnType)
	if err != nil {
		return Draft{}, err
	}

	fields, err := NewFields(c, amount, description, kind)
	if err != nil {
		return Draft{}, err
	}

	draft := Draft{Fields: fields}
	if rawDate, ok := data[ColumnDate]; ok && rawDate != nil {
		s, ok := rawDate.(string)
		if !ok {
			return Draft{}, invalid(ColumnDate, "must be a string")
		}
		draft.Date, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return Draft{}, invalid(ColumnDate, "must be an RFC 3339 timestamp")
		}
	}
	return draft, nil
}

func parseAmount(raw any) (decimal.Decimal, error) {
	switch v := raw.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case json.Number:
		return parseAmountString(v.String())
	case string:
		return parseAmountString(v)
	case decimal.Decimal:
		return v, nil
	}
	return decimal.Zero, invalid(ColumnAmount, "must be numeric")
}

func parseAmountString(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, invalid(ColumnAmount, "must be numeric")
	}
	return d, nil
}

func optionalText(data map[string]any, key string) (string, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", invalid(key, "must be a string")
	}
	return s, nil
}
