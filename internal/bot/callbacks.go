package bot

import (
	"errors"
	"fmt"

	tele "gopkg.in/telebot.v4"

	"github.com/sulnoorman/expense-tracker-bot/core/telegram/callbacks"
	"github.com/sulnoorman/expense-tracker-bot/core/telegram/helpers"
	"github.com/sulnoorman/expense-tracker-bot/internal/model"
	"github.com/sulnoorman/expense-tracker-bot/internal/repository"
	"github.com/sulnoorman/expense-tracker-bot/internal/session"
)

func (a *App) handleExpenseCategory(c tele.Context) error {
	return a.handleCategorySelection(c, model.TypeExpense)
}

func (a *App) handleIncomeCategory(c tele.Context) error {
	return a.handleCategorySelection(c, model.TypeIncome)
}

// handleCategorySelection opens the transaction dialogue: the chosen category
// is remembered and the bot asks for an amount.
func (a *App) handleCategorySelection(c tele.Context, typ model.TransactionType) error {
	ctx := helpers.BuildContext(c)
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	categoryID, err := callbacks.PayloadInt64(c)
	if err != nil {
		return fmt.Errorf("bad category payload: %w", err)
	}

	cat, err := a.tracker.Category(ctx, categoryID)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		// No session was created yet, so there is nothing to clean up.
		return helpers.SendText(c, "❌ Category not found. Please try again.")
	}
	if err != nil {
		return fmt.Errorf("load category: %w", err)
	}

	a.sessions.Set(sender.ID, session.CategoryChosen{
		Type:         typ,
		CategoryID:   cat.ID,
		CategoryName: cat.Name,
	})
	return helpers.EditOrSendMD(c, enterAmountMessage(typ, cat.Name))
}

// handleAddNewCategory asks which type the new category is for. Like any other
// dialogue-starting action it abandons an unfinished dialogue.
func (a *App) handleAddNewCategory(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	sender := c.Sender()
	if sender == nil {
		return nil
	}
	a.sessions.Delete(sender.ID)

	if _, err := a.tracker.UserID(ctx, sender.ID); errors.Is(err, repository.ErrUserNotFound) {
		return helpers.SendText(c, msgUserNotFound)
	} else if err != nil {
		return fmt.Errorf("resolve user: %w", err)
	}
	return helpers.SendMD(c, selectCategoryTypeMessage(), categoryTypeKeyboard())
}

func (a *App) handleCategoryType(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	var typ model.TransactionType
	switch callbacks.CallbackPayload(c) {
	case "expense":
		typ = model.TypeExpense
	case "income":
		typ = model.TypeIncome
	default:
		// Unknown payloads are dropped, never crash the router.
		return nil
	}

	a.sessions.Set(sender.ID, session.TypeChosen{Type: typ})
	return helpers.EditOrSendMD(c, enterCategoryNameMessage(typ))
}
