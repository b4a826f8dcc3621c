package bot

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/sulnoorman/expense-tracker-bot/core/telegram/helpers"
	"github.com/sulnoorman/expense-tracker-bot/internal/model"
	"github.com/sulnoorman/expense-tracker-bot/internal/repository"
)

func (a *App) handleStart(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	user, err := a.tracker.RegisterUser(ctx, sender.ID, sender.Username, sender.FirstName, sender.LastName)
	if err != nil {
		return fmt.Errorf("register user: %w", err)
	}
	return helpers.SendMD(c, welcomeMessage(user.FirstName), welcomeKeyboard())
}

func (a *App) handleHelp(c tele.Context) error {
	return helpers.SendMD(c, helpMessage, helpKeyboard())
}

func (a *App) handleCancel(c tele.Context) error {
	if sender := c.Sender(); sender != nil {
		a.sessions.Delete(sender.ID)
	}
	return helpers.SendText(c, msgCancelled)
}

func (a *App) handleExpense(c tele.Context) error {
	return a.startTransactionDialog(c, model.TypeExpense)
}

func (a *App) handleIncome(c tele.Context) error {
	return a.startTransactionDialog(c, model.TypeIncome)
}

// startTransactionDialog shows the category picker. Any unfinished dialogue is
// abandoned; the session itself is created once a category is chosen.
func (a *App) startTransactionDialog(c tele.Context, typ model.TransactionType) error {
	ctx := helpers.BuildContext(c)
	sender := c.Sender()
	if sender == nil {
		return nil
	}
	a.sessions.Delete(sender.ID)

	userID, err := a.tracker.UserID(ctx, sender.ID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return helpers.SendText(c, msgUserNotFound)
	}
	if err != nil {
		return fmt.Errorf("resolve user: %w", err)
	}

	cats, err := a.tracker.Categories(ctx, userID, &typ)
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}
	if len(cats) == 0 {
		return helpers.SendText(c, fmt.Sprintf(msgNoCategories, typeLabel(typ)))
	}

	unique := cbExpenseCategory
	if typ == model.TypeIncome {
		unique = cbIncomeCategory
	}
	return helpers.SendMD(c, selectCategoryMessage(typ), categoryKeyboard(cats, unique))
}

func (a *App) handleBalance(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	userID, err := a.tracker.UserID(ctx, sender.ID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return helpers.SendText(c, msgUserNotFound)
	}
	if err != nil {
		return fmt.Errorf("resolve user: %w", err)
	}

	balance, err := a.tracker.Balance(ctx, userID)
	if err != nil {
		return fmt.Errorf("fetch balance: %w", err)
	}
	return helpers.SendMD(c, balanceMessage(balance, time.Now()), balanceKeyboard())
}

func (a *App) handleList(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	userID, err := a.tracker.UserID(ctx, sender.ID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return helpers.SendText(c, msgUserNotFound)
	}
	if err != nil {
		return fmt.Errorf("resolve user: %w", err)
	}

	txs, err := a.tracker.RecentTransactions(ctx, userID, 10)
	if err != nil {
		return fmt.Errorf("fetch transactions: %w", err)
	}
	if len(txs) == 0 {
		return helpers.SendMD(c, noTransactionsMessage, emptyListKeyboard())
	}
	return helpers.SendMD(c, transactionListMessage(txs), listKeyboard())
}

func (a *App) handleCategories(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	userID, err := a.tracker.UserID(ctx, sender.ID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return helpers.SendText(c, msgUserNotFound)
	}
	if err != nil {
		return fmt.Errorf("resolve user: %w", err)
	}

	expenseType, incomeType := model.TypeExpense, model.TypeIncome
	expense, err := a.tracker.Categories(ctx, userID, &expenseType)
	if err != nil {
		return fmt.Errorf("list expense categories: %w", err)
	}
	income, err := a.tracker.Categories(ctx, userID, &incomeType)
	if err != nil {
		return fmt.Errorf("list income categories: %w", err)
	}
	return helpers.SendMD(c, categoriesMessage(expense, income), categoriesKeyboard())
}

func (a *App) handleReport(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	userID, err := a.tracker.UserID(ctx, sender.ID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return helpers.SendText(c, msgUserNotFound)
	}
	if err != nil {
		return fmt.Errorf("resolve user: %w", err)
	}

	report, err := a.tracker.CurrentMonthReport(ctx, userID)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}
	if err := helpers.SendMD(c, monthlyReportMessage(report), summaryKeyboard()); err != nil {
		return err
	}

	// Chart rendering is best-effort: the textual report already went out.
	a.sendReportCharts(c, report)
	return nil
}

func (a *App) sendReportCharts(c tele.Context, report *model.MonthlyReport) {
	if png, err := a.charts.ExpensePie(report); err == nil && len(png) > 0 {
		_ = c.Send(&tele.Photo{File: tele.FromReader(bytes.NewReader(png))})
	}
	if png, err := a.charts.IncomeExpenseBars(report); err == nil && len(png) > 0 {
		_ = c.Send(&tele.Photo{File: tele.FromReader(bytes.NewReader(png))})
	}
}
