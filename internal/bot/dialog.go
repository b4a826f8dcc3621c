package bot

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/sulnoorman/expense-tracker-bot/core/logger"
	"github.com/sulnoorman/expense-tracker-bot/core/telegram/helpers"
	"github.com/sulnoorman/expense-tracker-bot/internal/category"
	"github.com/sulnoorman/expense-tracker-bot/internal/money"
	"github.com/sulnoorman/expense-tracker-bot/internal/repository"
	"github.com/sulnoorman/expense-tracker-bot/internal/session"
)

// InProgress reports whether the user has an active dialogue.
func (a *App) InProgress(userID int64) bool {
	return a.sessions.Active(userID)
}

// HandleText feeds free text into the user's dialogue. Unknown states are
// dropped rather than crashing the router.
func (a *App) HandleText(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	switch st := a.sessions.Get(sender.ID).(type) {
	case session.CategoryChosen:
		return a.handleAmountInput(c, st)
	case session.AmountCaptured:
		return a.handleDescriptionInput(c, st)
	case session.TypeChosen:
		return a.handleCategoryNameInput(c, st)
	default:
		logger.Warn(helpers.BuildContext(c), "dialog", "dialog.unknown_state",
			slog.String("step", session.StepName(st)),
		)
		return nil
	}
}

func (a *App) handleAmountInput(c tele.Context, st session.CategoryChosen) error {
	raw := strings.TrimSpace(c.Text())

	amount, ok := money.ParseAmount(raw)
	if !ok || !amount.IsPositive() {
		// Re-prompt without advancing the dialogue.
		return helpers.SendText(c, msgInvalidAmount)
	}

	formatted := money.EchoAmount(raw, amount)
	a.sessions.Set(c.Sender().ID, session.AmountCaptured{
		Type:            st.Type,
		CategoryID:      st.CategoryID,
		CategoryName:    st.CategoryName,
		Amount:          amount,
		FormattedAmount: formatted,
	})
	return helpers.SendMD(c, enterDescriptionMessage(st.Type, st.CategoryName, formatted))
}

func (a *App) handleDescriptionInput(c tele.Context, st session.AmountCaptured) error {
	ctx := helpers.BuildContext(c)
	sender := c.Sender()
	text := strings.TrimSpace(c.Text())

	var description *string
	if !category.IsSkip(text) && text != "" {
		description = &text
	}

	userID, err := a.tracker.UserID(ctx, sender.ID)
	if errors.Is(err, repository.ErrUserNotFound) {
		// The flow cannot continue without an account.
		a.sessions.Delete(sender.ID)
		return helpers.SendText(c, msgUserNotFound)
	}
	if err != nil {
		a.sessions.Delete(sender.ID)
		return fmt.Errorf("resolve user: %w", err)
	}

	_, err = a.tracker.RecordTransaction(ctx, userID, st.CategoryID, st.Amount, st.Type, description)

	// Terminal step: the session goes away whether or not the persist
	// succeeded. A failed dialogue is restarted, not resumed.
	a.sessions.Delete(sender.ID)
	if err != nil {
		logger.Error(ctx, "dialog", "transaction.save_failed",
			slog.String("err", err.Error()),
		)
		return helpers.SendText(c, fmt.Sprintf(msgSaveFailedFmt, typeLabel(st.Type)))
	}

	return helpers.SendMD(c,
		transactionSavedMessage(st.Type, st.CategoryName, st.FormattedAmount, description, time.Now()),
		transactionSavedKeyboard(st.Type))
}

func (a *App) handleCategoryNameInput(c tele.Context, st session.TypeChosen) error {
	ctx := helpers.BuildContext(c)
	sender := c.Sender()
	text := strings.TrimSpace(c.Text())

	// "skip" means no name was provided; it never reaches the validator.
	if category.IsSkip(text) || !category.IsValidName(text) {
		return helpers.SendText(c, msgInvalidName)
	}

	userID, err := a.tracker.UserID(ctx, sender.ID)
	if errors.Is(err, repository.ErrUserNotFound) {
		a.sessions.Delete(sender.ID)
		return helpers.SendText(c, msgUserNotFound)
	}
	if err != nil {
		a.sessions.Delete(sender.ID)
		return fmt.Errorf("resolve user: %w", err)
	}

	_, err = a.tracker.CreateCategory(ctx, userID, text, st.Type)

	a.sessions.Delete(sender.ID)
	if err != nil {
		logger.Error(ctx, "dialog", "category.save_failed",
			slog.String("err", err.Error()),
		)
		return helpers.SendText(c, fmt.Sprintf(msgSaveFailedFmt, "category"))
	}

	return helpers.SendMD(c, categorySavedMessage(text, time.Now()), categorySavedKeyboard())
}
