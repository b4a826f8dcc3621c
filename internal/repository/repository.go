// Package repository is the persistence boundary for users, categories and
// transactions.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sulnoorman/expense-tracker-bot/internal/model"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// Repository is implemented by the Postgres store and by test fakes.
type Repository interface {
	// Users
	UserByTelegramID(ctx context.Context, telegramID int64) (*model.User, error)
	UpsertUser(ctx context.Context, user *model.User) (*model.User, error)

	// Categories. A nil typ lists both expense and income categories.
	// Listings merge global categories (NULL owner) with the user's own.
	CategoriesForUser(ctx context.Context, userID int64, typ *model.TransactionType) ([]model.Category, error)
	CategoryByID(ctx context.Context, id int64) (*model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error)

	// Transactions
	CreateTransaction(ctx context.Context, tx *model.Transaction) error
	RecentTransactions(ctx context.Context, userID int64, limit int) ([]model.Transaction, error)
	Balance(ctx context.Context, userID int64) (*model.Balance, error)
	MonthlyReport(ctx context.Context, userID int64, year int, month time.Month) (*model.MonthlyReport, error)
}
