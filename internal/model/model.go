package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money going out from money coming in.
type TransactionType string

const (
	TypeExpense TransactionType = "EXPENSE"
	TypeIncome  TransactionType = "INCOME"
)

// Valid reports whether the type is one of the two known values.
func (t TransactionType) Valid() bool {
	return t == TypeExpense || t == TypeIncome
}

// User is a Telegram account known to the bot.
type User struct {
	ID         int64     `db:"id"`
	TelegramID int64     `db:"telegram_id"`
	Username   string    `db:"username"`
	FirstName  string    `db:"first_name"`
	LastName   string    `db:"last_name"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// Category groups transactions. Global categories have a NULL owner and are
// visible to every user alongside the user's own.
type Category struct {
	ID        int64           `db:"id"`
	UserID    *int64          `db:"user_id"`
	Name      string          `db:"name"`
	Type      TransactionType `db:"type"`
	Color     string          `db:"color"`
	CreatedAt time.Time       `db:"created_at"`
}

// Transaction is a single recorded expense or income.
type Transaction struct {
	ID           string          `db:"id"`
	UserID       int64           `db:"user_id"`
	CategoryID   int64           `db:"category_id"`
	CategoryName string          `db:"category_name"`
	Amount       decimal.Decimal `db:"amount"`
	Type         TransactionType `db:"type"`
	Description  *string         `db:"description"`
	Date         time.Time       `db:"transaction_date"`
	CreatedAt    time.Time       `db:"created_at"`
}

// Balance aggregates a user's all-time totals.
type Balance struct {
	TotalIncome  decimal.Decimal `db:"total_income"`
	TotalExpense decimal.Decimal `db:"total_expense"`
}

// Net returns income minus expenses.
func (b Balance) Net() decimal.Decimal {
	return b.TotalIncome.Sub(b.TotalExpense)
}

// CategoryTotal is one line of a per-category breakdown.
type CategoryTotal struct {
	CategoryName string          `db:"category_name"`
	Type         TransactionType `db:"type"`
	Total        decimal.Decimal `db:"total"`
}

// MonthlyReport summarizes one calendar month.
type MonthlyReport struct {
	Year         int
	Month        time.Month
	Income       decimal.Decimal
	Expenses     decimal.Decimal
	ByCategory   []CategoryTotal
	Transactions int
}

// Net returns the monthly balance.
func (r MonthlyReport) Net() decimal.Decimal {
	return r.Income.Sub(r.Expenses)
}
