package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/sulnoorman/expense-tracker-bot/core/telegram/format"
	"github.com/sulnoorman/expense-tracker-bot/internal/model"
	"github.com/sulnoorman/expense-tracker-bot/internal/money"
)

const (
	msgGenericError  = "❌ An error occurred. Please try again or use /help for assistance."
	msgUserNotFound  = "❌ User not found. Please use /start to initialize your account."
	msgCancelled     = "❌ Operation cancelled."
	msgInvalidAmount = "❌ Please enter a valid positive number for the amount. (Example: 25.50)"
	msgInvalidName   = "❌ Please enter a valid category. (Alphabet only)"
	msgNoCategories  = "❌ No %s categories found. Please contact support."
	msgSaveFailedFmt = "❌ Sorry, something went wrong while saving your %s. Please try again."
	longDateLayout   = "January 2, 2006"
	shortDateLayout  = "Jan 02"
)

func typeLabel(typ model.TransactionType) string {
	if typ == model.TypeIncome {
		return "income"
	}
	return "expense"
}

func typeTitle(typ model.TransactionType) string {
	if typ == model.TypeIncome {
		return "Income"
	}
	return "Expense"
}

func typeEmoji(typ model.TransactionType) string {
	if typ == model.TypeIncome {
		return "💰"
	}
	return "💸"
}

func welcomeMessage(firstName string) string {
	name := strings.TrimSpace(firstName)
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf(`🎉 *Welcome to Expense Tracker Bot!*

Hello %s! I'm here to help you track your expenses and income easily.

💰 *What I can do for you:*
• Track your daily expenses and income
• Categorize your transactions
• Show your current balance
• Generate monthly reports
• Manage your spending categories

🚀 *Quick Start:*
• Use /expense to add a new expense
• Use /income to add new income
• Use /balance to see your current balance
• Use /list to see your recent transactions
• Use /categories to view all available categories
• Use /report to generate monthly financial report
• Use /help for all available commands

Let's start managing your finances! 💪`, format.EscapeMarkdown(name))
}

const helpMessage = `📚 *Expense Tracker Bot - Help Guide*

*Basic Commands:*
🏠 /start - Initialize the bot and create your account
❓ /help - Show this help message
❌ /cancel - Cancel current operation

*Financial Tracking:*
💸 /expense - Add a new expense
💰 /income - Add new income
📊 /balance - View your current balance
📝 /list - View recent transactions
🏷️ /categories - View all available categories
📈 /report - Generate monthly financial report

*How to Use:*

*Adding Expenses:*
1. Type /expense
2. Select a category from the menu
3. Enter the amount (e.g., 10.000/10000)
4. Add a description (optional)

*Adding Income:*
1. Type /income
2. Select a category from the menu
3. Enter the amount (e.g., 10.000/10000)
4. Add a description (optional)

*Viewing Data:*
• /balance - See total income, expenses, and current balance
• /list - View your last 10 transactions
• /report - Get detailed monthly breakdown with categories

*Need Help?*
If you encounter any issues, try /cancel to reset and start over.

Happy tracking! 💪💰`

func selectCategoryMessage(typ model.TransactionType) string {
	return fmt.Sprintf(`%s *Adding New %s*

Please select a category for your %s:

Use /cancel to stop this operation.`,
		typeEmoji(typ), typeTitle(typ), typeLabel(typ))
}

func enterAmountMessage(typ model.TransactionType, categoryName string) string {
	return fmt.Sprintf(`%s *Adding %s - %s*

Please enter the amount for this %s:
(Example: 10.000 / 10000)

Use /cancel to stop this operation.`,
		typeEmoji(typ), typeTitle(typ), format.EscapeMarkdown(categoryName), typeLabel(typ))
}

func enterDescriptionMessage(typ model.TransactionType, categoryName, formattedAmount string) string {
	return fmt.Sprintf(`%s *Adding %s - %s*
Amount: %s

Please enter a description for this %s (optional):
You can also type "skip" to add without description.

Use /cancel to stop this operation.`,
		typeEmoji(typ), typeTitle(typ), format.EscapeMarkdown(categoryName),
		formattedAmount, typeLabel(typ))
}

func transactionSavedMessage(typ model.TransactionType, categoryName, formattedAmount string, description *string, now time.Time) string {
	var desc string
	if description != nil {
		desc = fmt.Sprintf("\n📝 **Description:** %s", format.EscapeMarkdown(*description))
	}
	return fmt.Sprintf(`✅ *%s Added Successfully!*

%s **Category:** %s
💵 **Amount:** %s
📅 **Date:** %s%s

Your %s has been recorded!`,
		typeTitle(typ), typeEmoji(typ), format.EscapeMarkdown(categoryName),
		formattedAmount, now.Format(longDateLayout), desc, typeLabel(typ))
}

func selectCategoryTypeMessage() string {
	return `💰 *Adding New Category*

Please select a category type:

Use /cancel to stop this operation.`
}

func enterCategoryNameMessage(typ model.TransactionType) string {
	label := typeLabel(typ)
	return fmt.Sprintf(`💰 *Adding new %s category*

Please write new category for %s category:
(Example: Gasoline)

Use /cancel to stop this operation.`, label, label)
}

func categorySavedMessage(name string, now time.Time) string {
	return fmt.Sprintf(`✅ *New Category Added Successfully!*

💰 **Category:** %s
📅 **Date:** %s`, format.EscapeMarkdown(name), now.Format(longDateLayout))
}

func balanceMessage(b *model.Balance, now time.Time) string {
	net := b.Net()

	statusEmoji, statusText, statusLine := "📊", "Neutral", "You are breaking even."
	switch {
	case net.IsPositive():
		statusEmoji, statusText, statusLine = "✅", "Positive", "Great job! You are saving money."
	case net.IsNegative():
		statusEmoji, statusText, statusLine = "⚠️", "Negative", "Consider reviewing your expenses."
	}

	return fmt.Sprintf(`%s *Your Financial Summary*

💰 *Current Balance:* %s
Status: %s %s

💰 *Total Income:* %s
💸 *Total Expenses:* %s

📅 *As of:* %s

%s`,
		statusEmoji, money.FormatRupiah(net), statusEmoji, statusText,
		money.FormatRupiah(b.TotalIncome), money.FormatRupiah(b.TotalExpense),
		now.Format(longDateLayout), statusLine)
}

const noTransactionsMessage = `📝 *No Transactions Found*

You haven't recorded any transactions yet.

🚀 *Get started:*
• Use /expense to add your first expense
• Use /income to add your first income

Start tracking your finances today! 💪`

func transactionListMessage(txs []model.Transaction) string {
	var lines []string
	for _, tx := range txs {
		emoji, sign := "💸", "-"
		if tx.Type == model.TypeIncome {
			emoji, sign = "💰", "+"
		}
		name := tx.CategoryName
		if name == "" {
			name = "No Category"
		}
		lines = append(lines, fmt.Sprintf("%s *%s%s* | %s",
			emoji, sign, money.FormatRupiah(tx.Amount), format.EscapeMarkdown(name)))
		dateLine := fmt.Sprintf("📅 %s", tx.Date.Format(shortDateLayout))
		if tx.Description != nil && *tx.Description != "" {
			dateLine += " - " + format.EscapeMarkdown(*tx.Description)
		}
		lines = append(lines, dateLine)
	}

	return fmt.Sprintf(`📝 *Recent Transactions* (Last %d)

%s

Use /balance to see your current financial summary.`, len(txs), strings.Join(lines, "\n"))
}

func categoriesMessage(expense, income []model.Category) string {
	var expenseLines, incomeLines []string
	for i, c := range expense {
		expenseLines = append(expenseLines, fmt.Sprintf("%d. %s", i+1, format.EscapeMarkdown(c.Name)))
	}
	for i, c := range income {
		incomeLines = append(incomeLines, fmt.Sprintf("%d. %s", i+1, format.EscapeMarkdown(c.Name)))
	}

	return fmt.Sprintf(`🏷️ *Your Categories*

*💸 Expense Categories (%d):*
%s

*💰 Income Categories (%d):*
%s

These categories help organize your transactions for better tracking and reporting.`,
		len(expense), strings.Join(expenseLines, "\n"),
		len(income), strings.Join(incomeLines, "\n"))
}

func monthlyReportMessage(r *model.MonthlyReport) string {
	net := r.Net()

	byType := func(typ model.TransactionType, empty string) string {
		var lines []string
		for _, ct := range r.ByCategory {
			if ct.Type != typ {
				continue
			}
			lines = append(lines, fmt.Sprintf("• %s: %s",
				format.EscapeMarkdown(ct.CategoryName), money.FormatRupiah(ct.Total)))
		}
		if len(lines) == 0 {
			return empty
		}
		return strings.Join(lines, "\n")
	}

	balanceEmoji := "✅"
	statusLine := "📊 You broke even this month."
	switch {
	case net.IsPositive():
		statusLine = "🎉 *Great!* You saved money this month."
	case net.IsNegative():
		balanceEmoji = "❌"
		statusLine = "⚠️ *Attention:* You spent more than you earned this month."
	}

	monthName := r.Month.String()
	lastDay := time.Date(r.Year, r.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	return fmt.Sprintf(`📈 *Monthly Report - %s %d*

💰 *Total Income:* %s
💸 *Total Expenses:* %s
%s *Monthly Balance:* %s

💵 *Income by Category:*
%s

📊 *Expenses by Category:*
%s

📅 *Period:* %s 01 - %s %d, %d
📝 *Total Transactions:* %d

%s`,
		monthName, r.Year,
		money.FormatRupiah(r.Income), money.FormatRupiah(r.Expenses),
		balanceEmoji, money.FormatRupiah(net),
		byType(model.TypeIncome, "• No income recorded"),
		byType(model.TypeExpense, "• No expenses recorded"),
		monthName[:3], monthName[:3], lastDay, r.Year,
		r.Transactions, statusLine)
}
