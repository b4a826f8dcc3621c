package bot

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sulnoorman/expense-tracker-bot/internal/model"
	"github.com/sulnoorman/expense-tracker-bot/internal/session"
)

func TestBuildRegistry(t *testing.T) {
	app, _ := newTestApp(t)
	reg := app.BuildRegistry()

	for _, cmd := range []string{"/start", "/help", "/cancel", "/expense", "/income", "/balance", "/list", "/categories", "/report"} {
		if _, _, ok := reg.LookupCommand(cmd); !ok {
			t.Fatalf("command %s not registered", cmd)
		}
	}
	for _, key := range []string{
		cbExpenseCategory, cbIncomeCategory, cbAddNewCategory, cbAddCategory,
		cbQuickExpense, cbQuickIncome, cbQuickBalance, cbQuickList,
		cbQuickHelp, cbQuickCategories, cbQuickReport,
	} {
		if _, ok := reg.GetCallback(key); !ok {
			t.Fatalf("callback %s not registered", key)
		}
	}
}

func TestStartRegistersUser(t *testing.T) {
	app, repo := newTestApp(t)
	newcomer := int64(555)

	c := textMessage(newcomer, "/start")
	c.sender.Username = "newbie"
	if err := app.handleStart(c); err != nil {
		t.Fatal(err)
	}
	if _, ok := repo.users[newcomer]; !ok {
		t.Fatal("user was not stored")
	}
	if !strings.Contains(c.lastMessage(), "Welcome to Expense Tracker Bot") {
		t.Fatalf("reply = %q", c.lastMessage())
	}
}

func TestExpenseRequiresAccount(t *testing.T) {
	app, _ := newTestApp(t)

	c := textMessage(int64(31337), "/expense")
	if err := app.handleExpense(c); err != nil {
		t.Fatal(err)
	}
	if c.lastMessage() != msgUserNotFound {
		t.Fatalf("reply = %q", c.lastMessage())
	}
}

func TestExpenseShowsCategoryPicker(t *testing.T) {
	app, _ := newTestApp(t)
	app.sessions.Set(testUserID, session.TypeChosen{Type: model.TypeIncome})

	c := textMessage(testUserID, "/expense")
	if err := app.handleExpense(c); err != nil {
		t.Fatal(err)
	}
	if app.sessions.Active(testUserID) {
		t.Fatal("starting a dialogue kept the previous session")
	}
	if !strings.Contains(c.lastMessage(), "select a category") {
		t.Fatalf("reply = %q", c.lastMessage())
	}
}

func TestListEmptyAndPopulated(t *testing.T) {
	app, repo := newTestApp(t)

	c := textMessage(testUserID, "/list")
	if err := app.handleList(c); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(c.lastMessage(), "No Transactions Found") {
		t.Fatalf("reply = %q", c.lastMessage())
	}

	app.sessions.Set(testUserID, session.AmountCaptured{
		Type: model.TypeExpense, CategoryID: 5, CategoryName: "Food & Dining",
		Amount: decimal.NewFromInt(2500), FormattedAmount: "Rp2.500",
	})
	if err := app.HandleText(textMessage(testUserID, "coffee")); err != nil {
		t.Fatal(err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("created %d transactions", len(repo.created))
	}

	c = textMessage(testUserID, "/list")
	if err := app.handleList(c); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(c.lastMessage(), "Recent Transactions") {
		t.Fatalf("reply = %q", c.lastMessage())
	}
}

func TestBalanceMessage(t *testing.T) {
	app, _ := newTestApp(t)

	c := textMessage(testUserID, "/balance")
	if err := app.handleBalance(c); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(c.lastMessage(), "Your Financial Summary") {
		t.Fatalf("reply = %q", c.lastMessage())
	}
}
