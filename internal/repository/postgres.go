package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/sulnoorman/expense-tracker-bot/internal/model"
)

// Postgres implements Repository on a sqlx connection pool.
type Postgres struct {
	db *sqlx.DB
}

func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) UserByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	var u model.User
	err := p.db.GetContext(ctx, &u,
		`SELECT id, telegram_id, username, first_name, last_name, created_at, updated_at
		   FROM users WHERE telegram_id = $1`, telegramID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &u, nil
}

// UpsertUser inserts the user or refreshes the profile fields of an existing
// row, keyed by Telegram ID.
func (p *Postgres) UpsertUser(ctx context.Context, user *model.User) (*model.User, error) {
	var u model.User
	err := p.db.GetContext(ctx, &u,
		`INSERT INTO users (telegram_id, username, first_name, last_name)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (telegram_id) DO UPDATE SET
		   username = EXCLUDED.username,
		   first_name = EXCLUDED.first_name,
		   last_name = EXCLUDED.last_name,
		   updated_at = now()
		 RETURNING id, telegram_id, username, first_name, last_name, created_at, updated_at`,
		user.TelegramID, user.Username, user.FirstName, user.LastName)
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return &u, nil
}

func (p *Postgres) CategoriesForUser(ctx context.Context, userID int64, typ *model.TransactionType) ([]model.Category, error) {
	query := `SELECT id, user_id, name, type, color, created_at
	            FROM categories
	           WHERE (user_id IS NULL OR user_id = $1)`
	args := []any{userID}
	if typ != nil {
		query += ` AND type = $2`
		args = append(args, *typ)
	}
	query += ` ORDER BY name`

	var cats []model.Category
	if err := p.db.SelectContext(ctx, &cats, query, args...); err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	return cats, nil
}

func (p *Postgres) CategoryByID(ctx context.Context, id int64) (*model.Category, error) {
	var c model.Category
	err := p.db.GetContext(ctx, &c,
		`SELECT id, user_id, name, type, color, created_at FROM categories WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select category: %w", err)
	}
	return &c, nil
}

func (p *Postgres) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	var c model.Category
	err := p.db.GetContext(ctx, &c,
		`INSERT INTO categories (user_id, name, type, color)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, user_id, name, type, color, created_at`,
		category.UserID, category.Name, category.Type, category.Color)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return &c, nil
}

func (p *Postgres) CreateTransaction(ctx context.Context, tx *model.Transaction) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO transactions (id, user_id, category_id, amount, type, description, transaction_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		tx.ID, tx.UserID, tx.CategoryID, tx.Amount, tx.Type, tx.Description, tx.Date)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (p *Postgres) RecentTransactions(ctx context.Context, userID int64, limit int) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := p.db.SelectContext(ctx, &txs,
		`SELECT t.id, t.user_id, t.category_id, c.name AS category_name,
		        t.amount, t.type, t.description, t.transaction_date, t.created_at
		   FROM transactions t
		   JOIN categories c ON c.id = t.category_id
		  WHERE t.user_id = $1
		  ORDER BY t.transaction_date DESC, t.created_at DESC
		  LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("select transactions: %w", err)
	}
	return txs, nil
}

func (p *Postgres) Balance(ctx context.Context, userID int64) (*model.Balance, error) {
	var b model.Balance
	err := p.db.GetContext(ctx, &b,
		`SELECT COALESCE(SUM(amount) FILTER (WHERE type = 'INCOME'), 0)  AS total_income,
		        COALESCE(SUM(amount) FILTER (WHERE type = 'EXPENSE'), 0) AS total_expense
		   FROM transactions WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("select balance: %w", err)
	}
	return &b, nil
}

func (p *Postgres) MonthlyReport(ctx context.Context, userID int64, year int, month time.Month) (*model.MonthlyReport, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	report := &model.MonthlyReport{
		Year:     year,
		Month:    month,
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
	}

	var totals []model.CategoryTotal
	err := p.db.SelectContext(ctx, &totals,
		`SELECT c.name AS category_name, t.type, SUM(t.amount) AS total
		   FROM transactions t
		   JOIN categories c ON c.id = t.category_id
		  WHERE t.user_id = $1 AND t.transaction_date >= $2 AND t.transaction_date < $3
		  GROUP BY c.name, t.type
		  ORDER BY total DESC`, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("select monthly totals: %w", err)
	}
	report.ByCategory = totals
	for _, ct := range totals {
		switch ct.Type {
		case model.TypeIncome:
			report.Income = report.Income.Add(ct.Total)
		case model.TypeExpense:
			report.Expenses = report.Expenses.Add(ct.Total)
		}
	}

	err = p.db.GetContext(ctx, &report.Transactions,
		`SELECT COUNT(*) FROM transactions
		  WHERE user_id = $1 AND transaction_date >= $2 AND transaction_date < $3`,
		userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("count monthly transactions: %w", err)
	}
	return report, nil
}
