package bot

import (
	"strconv"

	tele "gopkg.in/telebot.v4"

	"github.com/sulnoorman/expense-tracker-bot/core/telegram/keyboard"
	"github.com/sulnoorman/expense-tracker-bot/internal/model"
)

// Callback uniques. Category-selection callbacks carry the category ID as
// payload, type-selection carries "expense" or "income".
const (
	cbExpenseCategory = "expense_category"
	cbIncomeCategory  = "income_category"
	cbAddNewCategory  = "add_new_category"
	cbAddCategory     = "add_category"
	cbQuickExpense    = "quick_expense"
	cbQuickIncome     = "quick_income"
	cbQuickBalance    = "quick_balance"
	cbQuickList       = "quick_list"
	cbQuickHelp       = "quick_help"
	cbQuickCategories = "quick_categories"
	cbQuickReport     = "quick_report"
)

func categoryKeyboard(cats []model.Category, unique string) *tele.ReplyMarkup {
	buttons := make([]keyboard.InlineBtn, 0, len(cats))
	for _, cat := range cats {
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   cat.Name,
			Unique: unique,
			Data:   strconv.FormatInt(cat.ID, 10),
		})
	}
	return keyboard.InlineButtonsNPerRow(buttons, 2)
}

func categoryTypeKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows([]keyboard.InlineBtn{
		{Text: "💸 Expense", Unique: cbAddCategory, Data: "expense"},
		{Text: "💰 Income", Unique: cbAddCategory, Data: "income"},
	})
}

func welcomeKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{
			{Text: "💸 Add Expense", Unique: cbQuickExpense},
			{Text: "💰 Add Income", Unique: cbQuickIncome},
		},
		[]keyboard.InlineBtn{
			{Text: "📊 View Balance", Unique: cbQuickBalance},
			{Text: "❓ Help", Unique: cbQuickHelp},
		},
	)
}

func helpKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{
			{Text: "💸 Add Expense", Unique: cbQuickExpense},
			{Text: "💰 Add Income", Unique: cbQuickIncome},
		},
		[]keyboard.InlineBtn{
			{Text: "📊 View Balance", Unique: cbQuickBalance},
			{Text: "📝 View Transactions", Unique: cbQuickList},
		},
		[]keyboard.InlineBtn{
			{Text: "🏷️ Categories", Unique: cbQuickCategories},
			{Text: "📈 Monthly Report", Unique: cbQuickReport},
		},
	)
}

func transactionSavedKeyboard(typ model.TransactionType) *tele.ReplyMarkup {
	again := keyboard.InlineBtn{Text: "💸 Add Another Expense", Unique: cbQuickExpense}
	other := keyboard.InlineBtn{Text: "💰 Add Income", Unique: cbQuickIncome}
	if typ == model.TypeIncome {
		again = keyboard.InlineBtn{Text: "💰 Add Another Income", Unique: cbQuickIncome}
		other = keyboard.InlineBtn{Text: "💸 Add Expense", Unique: cbQuickExpense}
	}
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{again, other},
		[]keyboard.InlineBtn{{Text: "📊 View Balance", Unique: cbQuickBalance}},
	)
}

func categorySavedKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{{Text: "💰 Add Another Category", Unique: cbAddNewCategory}},
		[]keyboard.InlineBtn{
			{Text: "💰 Add Income", Unique: cbQuickIncome},
			{Text: "💸 Add Expense", Unique: cbQuickExpense},
		},
		[]keyboard.InlineBtn{{Text: "📊 View Balance", Unique: cbQuickBalance}},
	)
}

func categoriesKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{{Text: "Add New Category", Unique: cbAddNewCategory}},
		[]keyboard.InlineBtn{
			{Text: "💸 Add Expense", Unique: cbQuickExpense},
			{Text: "💰 Add Income", Unique: cbQuickIncome},
		},
		[]keyboard.InlineBtn{
			{Text: "📊 View Balance", Unique: cbQuickBalance},
			{Text: "📝 View Transactions", Unique: cbQuickList},
		},
	)
}

func balanceKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{
			{Text: "💸 Add Expense", Unique: cbQuickExpense},
			{Text: "💰 Add Income", Unique: cbQuickIncome},
		},
		[]keyboard.InlineBtn{{Text: "📝 View Transactions", Unique: cbQuickList}},
	)
}

func listKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{
			{Text: "💸 Add Expense", Unique: cbQuickExpense},
			{Text: "💰 Add Income", Unique: cbQuickIncome},
		},
		[]keyboard.InlineBtn{{Text: "📊 View Balance", Unique: cbQuickBalance}},
	)
}

func emptyListKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows([]keyboard.InlineBtn{
		{Text: "💸 Add Expense", Unique: cbQuickExpense},
		{Text: "💰 Add Income", Unique: cbQuickIncome},
	})
}

func summaryKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{
			{Text: "💸 Add Expense", Unique: cbQuickExpense},
			{Text: "💰 Add Income", Unique: cbQuickIncome},
		},
		[]keyboard.InlineBtn{
			{Text: "📊 View Balance", Unique: cbQuickBalance},
			{Text: "📝 View Transactions", Unique: cbQuickList},
		},
	)
}
