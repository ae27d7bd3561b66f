package report

import (
	"bytes"
	"io"
	"strings"
	"time"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"

	"github.com/Nahom8bit/Balancer/internal/ledger"
	"github.com/Nahom8bit/Balancer/internal/reconcile"
)

const (
	Title         = "Balancer: Shop Closing Report"
	formulaLegend = "Formula: (Petty Cash + Purchases + Closing Balance) - (Payments + Opening Balance) = Checking Balance"
	dateLayout    = "2006-01-02"
)

// Closing is everything a closing report shows for one day.
type Closing struct {
	Day      time.Time
	Entries  map[ledger.Category][]ledger.Entry
	Balance  reconcile.BalanceReport
	Currency string
}

// Render writes the closing report as Markdown.
func Render(w io.Writer, c Closing) error {
	doc := md.NewMarkdown(w).
		H1(Title).
		PlainText("").
		PlainTextf("Date: %s", c.Day.Format(dateLayout)).
		PlainText("")

	for _, category := range ledger.Categories {
		doc.H2(category.Title()).PlainText("")
		entries := c.Entries[category]
		if len(entries) == 0 {
			doc.PlainText("No entries").PlainText("")
			continue
		}
		// a rendered table already ends with a line feed
		doc.Table(entryTable(category, entries))
	}

	b := c.Balance
	doc.H2("Balance Check").
		PlainText("").
		PlainText(formulaLegend).
		PlainText("").
		PlainTextf("(%s + %s + %s) - (%s + %s) = %s",
			b.PettyCash.StringFixed(2),
			b.Purchases.StringFixed(2),
			b.ClosingBalance.StringFixed(2),
			b.Payments.StringFixed(2),
			b.OpeningBalance.StringFixed(2),
			b.CheckingBalance.StringFixed(2),
		).
		PlainText("").
		PlainTextf("Checking Balance: %s", FormatMoney(b.CheckingBalance, c.Currency)).
		PlainTextf("Total Sales: %s", FormatMoney(b.Sales, c.Currency)).
		PlainTextf("Difference: %s %s", b.Difference.Abs().StringFixed(2), c.Currency).
		PlainText("").
		PlainText(md.Bold(statusLabel(b.Status)))

	return doc.Build()
}

// Bytes renders the report into memory.
func Bytes(c Closing) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, c); err != nil {
		return nil, err
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

func entryTable(category ledger.Category, entries []ledger.Entry) md.TableSet {
	columns := category.Columns()
	alignment := make([]md.TableAlignment, len(columns))
	for i, col := range columns {
		alignment[i] = md.AlignLeft
		if col == ledger.ColumnAmount {
			alignment[i] = md.AlignRight
		}
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		row := make([]string, 0, len(columns))
		for _, p := range e.Fields.Pairs() {
			switch v := p.Value.(type) {
			case decimal.Decimal:
				row = append(row, v.StringFixed(2))
			case string:
				row = append(row, escapeCell(v))
			}
		}
		rows = append(rows, row)
	}

	return md.TableSet{
		Header:    columns,
		Rows:      rows,
		Alignment: alignment,
	}
}

func statusLabel(s reconcile.Status) string {
	switch s {
	case reconcile.StatusMissing:
		return "Missing amount"
	case reconcile.StatusExcess:
		return "Excess amount"
	}
	return "Balanced"
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// FormatMoney renders an amount with two decimals, comma thousands
// separators and the currency suffix, e.g. "1,234.50 Kz".
func FormatMoney(amount decimal.Decimal, currency string) string {
	fixed := amount.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}

	sign := ""
	if amount.Round(2).IsNegative() {
		sign = "-"
	}
	out := sign + grouped.String() + "." + frac
	if currency == "" {
		return out
	}
	return out + " " + currency
}
