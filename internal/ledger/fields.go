package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Fields is the category-specific payload of an entry. The concrete type
// determines the category, so a payment can never carry a purchase type.
type Fields interface {
	Category() Category
	// Pairs returns the column/value pairs to persist, in Columns() order.
	Pairs() []Pair
	// Validate reports missing required values.
	Validate() error

	amount() decimal.Decimal
}

// Pair is one persisted column and its value.
type Pair struct {
	Column string
	Value  any
}

// OpeningBalance is the cash on hand at day start.
type OpeningBalance struct {
	Amount decimal.Decimal
}

// ClosingBalance is the cash on hand at day end.
type ClosingBalance struct {
	Amount decimal.Decimal
}

// Sales is the independently tallied daily revenue.
type Sales struct {
	Amount decimal.Decimal
}

// PettyCash is an informal cash movement.
type PettyCash struct {
	Description string
	Amount      decimal.Decimal
}

// Purchase is an outgoing stock or expense purchase.
type Purchase struct {
	Description string
	Type        string
	Amount      decimal.Decimal
}

// Payment is an outgoing payment.
type Payment struct {
	Description string
	Amount      decimal.Decimal
}

func (OpeningBalance) Category() Category { return CategoryOpeningBalance }
func (ClosingBalance) Category() Category { return CategoryClosingBalance }
func (Sales) Category() Category          { return CategorySales }
func (PettyCash) Category() Category      { return CategoryPettyCash }
func (Purchase) Category() Category       { return CategoryPurchase }
func (Payment) Category() Category        { return CategoryPayment }

func (f OpeningBalance) amount() decimal.Decimal { return f.Amount }
func (f ClosingBalance) amount() decimal.Decimal { return f.Amount }
func (f Sales) amount() decimal.Decimal          { return f.Amount }
func (f PettyCash) amount() decimal.Decimal      { return f.Amount }
func (f Purchase) amount() decimal.Decimal       { return f.Amount }
func (f Payment) amount() decimal.Decimal        { return f.Amount }

func (f OpeningBalance) Pairs() []Pair { return []Pair{{ColumnAmount, f.Amount}} }
func (f ClosingBalance) Pairs() []Pair { return []Pair{{ColumnAmount, f.Amount}} }
func (f Sales) Pairs() []Pair          { return []Pair{{ColumnAmount, f.Amount}} }

func (f PettyCash) Pairs() []Pair {
	return []Pair{{ColumnDescription, f.Description}, {ColumnAmount, f.Amount}}
}

func (f Purchase) Pairs() []Pair {
	return []Pair{{ColumnDescription, f.Description}, {ColumnType, f.Type}, {ColumnAmount, f.Amount}}
}

func (f Payment) Pairs() []Pair {
	return []Pair{{ColumnDescription, f.Description}, {ColumnAmount, f.Amount}}
}

func (f OpeningBalance) Validate() error { return nil }
func (f ClosingBalance) Validate() error { return nil }
func (f Sales) Validate() error          { return nil }

func (f PettyCash) Validate() error {
	return requireText(ColumnDescription, f.Description)
}

func (f Purchase) Validate() error {
	if err := requireText(ColumnDescription, f.Description); err != nil {
		return err
	}
	return requireText(ColumnType, f.Type)
}

func (f Payment) Validate() error {
	return requireText(ColumnDescription, f.Description)
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid(field, "is required")
	}
	return nil
}

// NewFields builds the variant for a category from flat column values.
// Columns the category does not have are ignored.
func NewFields(c Category, amount decimal.Decimal, description, kind string) (Fields, error) {
	switch c {
	case CategoryOpeningBalance:
		return OpeningBalance{Amount: amount}, nil
	case CategoryClosingBalance:
		return ClosingBalance{Amount: amount}, nil
	case CategorySales:
		return Sales{Amount: amount}, nil
	case CategoryPettyCash:
		return PettyCash{Description: description, Amount: amount}, nil
	case CategoryPurchase:
		return Purchase{Description: description, Type: kind, Amount: amount}, nil
	case CategoryPayment:
		return Payment{Description: description, Amount: amount}, nil
	}
	return nil, ErrUnknownCategory
}
