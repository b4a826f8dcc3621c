// Package service implements the bot's business operations on top of the
// repository.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sulnoorman/expense-tracker-bot/internal/category"
	"github.com/sulnoorman/expense-tracker-bot/internal/model"
	"github.com/sulnoorman/expense-tracker-bot/internal/repository"
)

// Tracker records transactions and answers balance and report queries.
type Tracker struct {
	repo repository.Repository
	now  func() time.Time
}

func NewTracker(repo repository.Repository) *Tracker {
	return &Tracker{repo: repo, now: time.Now}
}

// RegisterUser upserts the Telegram account and returns the stored row.
func (t *Tracker) RegisterUser(ctx context.Context, telegramID int64, username, firstName, lastName string) (*model.User, error) {
	return t.repo.UpsertUser(ctx, &model.User{
		TelegramID: telegramID,
		Username:   username,
		FirstName:  firstName,
		LastName:   lastName,
	})
}

// UserID resolves a Telegram ID to the internal user row ID.
func (t *Tracker) UserID(ctx context.Context, telegramID int64) (int64, error) {
	u, err := t.repo.UserByTelegramID(ctx, telegramID)
	if err != nil {
		return 0, err
	}
	return u.ID, nil
}

// Categories lists the categories visible to the user, optionally filtered by
// type. Global defaults are merged with the user's own.
func (t *Tracker) Categories(ctx context.Context, userID int64, typ *model.TransactionType) ([]model.Category, error) {
	return t.repo.CategoriesForUser(ctx, userID, typ)
}

// Category looks up one category by ID.
func (t *Tracker) Category(ctx context.Context, id int64) (*model.Category, error) {
	return t.repo.CategoryByID(ctx, id)
}

// CreateCategory adds a personal category, assigning a colour from the default
// palette or a deterministic fallback.
func (t *Tracker) CreateCategory(ctx context.Context, userID int64, name string, typ model.TransactionType) (*model.Category, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("invalid transaction type %q", typ)
	}
	return t.repo.CreateCategory(ctx, &model.Category{
		UserID: &userID,
		Name:   name,
		Type:   typ,
		Color:  category.ColorFor(name, typ),
	})
}

// RecordTransaction persists a transaction dated today. A nil description
// stays NULL in storage.
func (t *Tracker) RecordTransaction(ctx context.Context, userID, categoryID int64, amount decimal.Decimal, typ model.TransactionType, description *string) (*model.Transaction, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("invalid transaction type %q", typ)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive, got %s", amount)
	}
	tx := &model.Transaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		Type:        typ,
		Description: description,
		Date:        t.now().Truncate(24 * time.Hour),
	}
	if err := t.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// Balance returns the user's all-time totals.
func (t *Tracker) Balance(ctx context.Context, userID int64) (*model.Balance, error) {
	return t.repo.Balance(ctx, userID)
}

// RecentTransactions returns the latest transactions, newest first.
func (t *Tracker) RecentTransactions(ctx context.Context, userID int64, limit int) ([]model.Transaction, error) {
	if limit <= 0 {
		limit = 10
	}
	return t.repo.RecentTransactions(ctx, userID, limit)
}

// CurrentMonthReport summarizes the calendar month containing now.
func (t *Tracker) CurrentMonthReport(ctx context.Context, userID int64) (*model.MonthlyReport, error) {
	now := t.now()
	return t.repo.MonthlyReport(ctx, userID, now.Year(), now.Month())
}
