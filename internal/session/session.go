// Package session keeps in-flight dialogue state per Telegram user. A user has
// at most one active dialogue; starting a new one replaces the old.
package session

import (
	"github.com/shopspring/decimal"

	"github.com/sulnoorman/expense-tracker-bot/internal/model"
)

// State is one step of an active dialogue. The concrete types below are the
// only implementations; a type switch over them is exhaustive.
type State interface {
	step() string
}

// CategoryChosen means the user picked a category for a transaction and the
// bot is waiting for an amount.
type CategoryChosen struct {
	Type         model.TransactionType
	CategoryID   int64
	CategoryName string
}

func (CategoryChosen) step() string { return "category_chosen" }

// AmountCaptured means the amount was accepted and the bot is waiting for an
// optional description (or "skip"). FormattedAmount is the display form echoed
// back to the user.
type AmountCaptured struct {
	Type            model.TransactionType
	CategoryID      int64
	CategoryName    string
	Amount          decimal.Decimal
	FormattedAmount string
}

func (AmountCaptured) step() string { return "amount_captured" }

// TypeChosen means the user is creating a category and picked its type; the
// bot is waiting for the category name.
type TypeChosen struct {
	Type model.TransactionType
}

func (TypeChosen) step() string { return "type_chosen" }

// StepName names the dialogue step for logging.
func StepName(s State) string {
	if s == nil {
		return "none"
	}
	return s.step()
}
