package ledger

// Category is one of the six fixed record types of a closing session.
type Category string

const (
	CategoryOpeningBalance Category = "opening_balance"
	CategoryClosingBalance Category = "closing_balance"
	CategorySales          Category = "sales"
	CategoryPettyCash      Category = "petty_cash"
	CategoryPurchase       Category = "purchase"
	CategoryPayment        Category = "payment"
)

// Categories lists every category in closing-report order.
var Categories = []Category{
	CategoryOpeningBalance,
	CategoryPettyCash,
	CategoryPurchase,
	CategoryPayment,
	CategoryClosingBalance,
	CategorySales,
}

// Column names shared by the category schemas.
const (
	ColumnDescription = "description"
	ColumnType        = "type"
	ColumnAmount      = "amount"
	ColumnDate        = "date"
)

// ParseCategory maps a table name to its Category.
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories {
		if string(c) == name {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}

// Columns returns the user-supplied columns of the category in display
// order. id and date are store-managed and never included.
func (c Category) Columns() []string {
	switch c {
	case CategoryPettyCash, CategoryPayment:
		return []string{ColumnDescription, ColumnAmount}
	case CategoryPurchase:
		return []string{ColumnDescription, ColumnType, ColumnAmount}
	default:
		return []string{ColumnAmount}
	}
}

// Title is the human label used by reports, e.g. "PETTY CASH".
func (c Category) Title() string {
	switch c {
	case CategoryOpeningBalance:
		return "OPENING BALANCE"
	case CategoryClosingBalance:
		return "CLOSING BALANCE"
	case CategorySales:
		return "SALES"
	case CategoryPettyCash:
		return "PETTY CASH"
	case CategoryPurchase:
		return "PURCHASE"
	case CategoryPayment:
		return "PAYMENT"
	}
	return string(c)
}

func (c Category) String() string {
	return string(c)
}
