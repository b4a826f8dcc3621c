package bot

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sulnoorman/expense-tracker-bot/internal/model"
	"github.com/sulnoorman/expense-tracker-bot/internal/service"
	"github.com/sulnoorman/expense-tracker-bot/internal/session"
)

const testUserID = int64(99)

func newTestApp(t *testing.T) (*App, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	if _, err := repo.UpsertUser(context.Background(), &model.User{TelegramID: testUserID}); err != nil {
		t.Fatal(err)
	}
	repo.categories[5] = model.Category{ID: 5, Name: "Food & Dining", Type: model.TypeExpense}
	repo.categories[9] = model.Category{ID: 9, Name: "Salary", Type: model.TypeIncome}

	return NewApp(service.NewTracker(repo), session.NewStore(0)), repo
}

func TestExpenseDialogEndToEnd(t *testing.T) {
	app, repo := newTestApp(t)

	// Category button press opens the dialogue.
	cb := callbackPress(testUserID, cbExpenseCategory, "5")
	if err := app.handleExpenseCategory(cb); err != nil {
		t.Fatalf("category selection: %v", err)
	}
	st, ok := app.sessions.Get(testUserID).(session.CategoryChosen)
	if !ok {
		t.Fatalf("expected CategoryChosen, got %T", app.sessions.Get(testUserID))
	}
	if st.CategoryID != 5 || st.CategoryName != "Food & Dining" || st.Type != model.TypeExpense {
		t.Fatalf("unexpected state: %+v", st)
	}

	// Grouped amount input advances to the description step.
	if err := app.HandleText(textMessage(testUserID, "10.000")); err != nil {
		t.Fatalf("amount input: %v", err)
	}
	amt, ok := app.sessions.Get(testUserID).(session.AmountCaptured)
	if !ok {
		t.Fatalf("expected AmountCaptured, got %T", app.sessions.Get(testUserID))
	}
	if !amt.Amount.Equal(decimal.NewFromInt(10000)) {
		t.Fatalf("amount = %s, want 10000", amt.Amount)
	}
	if amt.FormattedAmount != "Rp10.000" {
		t.Fatalf("formatted amount = %q", amt.FormattedAmount)
	}

	// "skip" completes the dialogue with a NULL description.
	if err := app.HandleText(textMessage(testUserID, "skip")); err != nil {
		t.Fatalf("description input: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("created %d transactions, want 1", len(repo.created))
	}
	tx := repo.created[0]
	if tx.UserID != 1 || tx.CategoryID != 5 || tx.Type != model.TypeExpense {
		t.Fatalf("unexpected transaction: %+v", tx)
	}
	if !tx.Amount.Equal(decimal.NewFromInt(10000)) {
		t.Fatalf("persisted amount = %s", tx.Amount)
	}
	if tx.Description != nil {
		t.Fatalf("description = %v, want nil", *tx.Description)
	}
	if time.Since(tx.Date) > 24*time.Hour {
		t.Fatalf("transaction not dated today: %s", tx.Date)
	}
	if app.sessions.Active(testUserID) {
		t.Fatal("session survived terminal step")
	}
}

func TestInvalidAmountKeepsState(t *testing.T) {
	app, repo := newTestApp(t)
	app.sessions.Set(testUserID, session.CategoryChosen{
		Type: model.TypeExpense, CategoryID: 5, CategoryName: "Food & Dining",
	})

	for _, input := range []string{"abc", "0", "-5", ""} {
		c := textMessage(testUserID, input)
		if err := app.HandleText(c); err != nil {
			t.Fatalf("HandleText(%q): %v", input, err)
		}
		if _, ok := app.sessions.Get(testUserID).(session.CategoryChosen); !ok {
			t.Fatalf("input %q advanced the dialogue", input)
		}
		if c.lastMessage() != msgInvalidAmount {
			t.Fatalf("input %q: reply = %q", input, c.lastMessage())
		}
	}
	if len(repo.created) != 0 {
		t.Fatal("rejected input created a transaction")
	}
}

func TestDescriptionIsRecorded(t *testing.T) {
	app, repo := newTestApp(t)
	app.sessions.Set(testUserID, session.AmountCaptured{
		Type:            model.TypeIncome,
		CategoryID:      9,
		CategoryName:    "Salary",
		Amount:          decimal.NewFromInt(5000000),
		FormattedAmount: "Rp5.000.000",
	})

	if err := app.HandleText(textMessage(testUserID, "August paycheck")); err != nil {
		t.Fatal(err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("created %d transactions, want 1", len(repo.created))
	}
	tx := repo.created[0]
	if tx.Description == nil || *tx.Description != "August paycheck" {
		t.Fatalf("description = %v", tx.Description)
	}
	if tx.Type != model.TypeIncome {
		t.Fatalf("type = %s", tx.Type)
	}
}

func TestPersistFailureDeletesSession(t *testing.T) {
	app, repo := newTestApp(t)
	repo.createTxErr = context.DeadlineExceeded
	app.sessions.Set(testUserID, session.AmountCaptured{
		Type: model.TypeExpense, CategoryID: 5, CategoryName: "Food & Dining",
		Amount: decimal.NewFromInt(100), FormattedAmount: "Rp100",
	})

	c := textMessage(testUserID, "skip")
	if err := app.HandleText(c); err != nil {
		t.Fatalf("persist failure should be reported, not returned: %v", err)
	}
	if app.sessions.Active(testUserID) {
		t.Fatal("session survived failed terminal step")
	}
	if !strings.Contains(c.lastMessage(), "something went wrong") {
		t.Fatalf("reply = %q", c.lastMessage())
	}
}

func TestCategoryCreationDialog(t *testing.T) {
	app, repo := newTestApp(t)

	if err := app.handleCategoryType(callbackPress(testUserID, cbAddCategory, "expense")); err != nil {
		t.Fatal(err)
	}
	st, ok := app.sessions.Get(testUserID).(session.TypeChosen)
	if !ok || st.Type != model.TypeExpense {
		t.Fatalf("unexpected state: %#v", app.sessions.Get(testUserID))
	}

	// Invalid names and "skip" re-prompt without advancing.
	for _, input := range []string{"Gas0line", "Gas-Oline", "123", "", "skip"} {
		c := textMessage(testUserID, input)
		if err := app.HandleText(c); err != nil {
			t.Fatalf("HandleText(%q): %v", input, err)
		}
		if _, ok := app.sessions.Get(testUserID).(session.TypeChosen); !ok {
			t.Fatalf("input %q advanced the dialogue", input)
		}
		if c.lastMessage() != msgInvalidName {
			t.Fatalf("input %q: reply = %q", input, c.lastMessage())
		}
	}

	if err := app.HandleText(textMessage(testUserID, "Gasoline")); err != nil {
		t.Fatal(err)
	}
	if len(repo.newCats) != 1 {
		t.Fatalf("created %d categories, want 1", len(repo.newCats))
	}
	cat := repo.newCats[0]
	if cat.Name != "Gasoline" || cat.Type != model.TypeExpense {
		t.Fatalf("unexpected category: %+v", cat)
	}
	if cat.UserID == nil || *cat.UserID != 1 {
		t.Fatalf("category owner = %v", cat.UserID)
	}
	if cat.Color == "" {
		t.Fatal("category colour not assigned")
	}
	if app.sessions.Active(testUserID) {
		t.Fatal("session survived terminal step")
	}
}

func TestNewDialogReplacesOldSession(t *testing.T) {
	app, _ := newTestApp(t)
	app.sessions.Set(testUserID, session.AmountCaptured{
		Type: model.TypeExpense, CategoryID: 5, CategoryName: "Food & Dining",
		Amount: decimal.NewFromInt(100), FormattedAmount: "Rp100",
	})

	// A dialogue-starting command abandons the in-flight dialogue.
	if err := app.handleIncome(callbackPress(testUserID, cbQuickIncome, "")); err != nil {
		t.Fatal(err)
	}
	if app.sessions.Active(testUserID) {
		t.Fatal("old session survived a new dialogue-starting command")
	}

	// Selecting the new category leaves exactly one fresh session.
	if err := app.handleIncomeCategory(callbackPress(testUserID, cbIncomeCategory, "9")); err != nil {
		t.Fatal(err)
	}
	st, ok := app.sessions.Get(testUserID).(session.CategoryChosen)
	if !ok || st.Type != model.TypeIncome || st.CategoryID != 9 {
		t.Fatalf("unexpected state: %#v", app.sessions.Get(testUserID))
	}
	if app.sessions.Len() != 1 {
		t.Fatalf("sessions = %d, want 1", app.sessions.Len())
	}
}

func TestCancelClearsSession(t *testing.T) {
	app, _ := newTestApp(t)
	app.sessions.Set(testUserID, session.TypeChosen{Type: model.TypeIncome})

	c := textMessage(testUserID, "/cancel")
	if err := app.handleCancel(c); err != nil {
		t.Fatal(err)
	}
	if app.sessions.Active(testUserID) {
		t.Fatal("cancel left the session in place")
	}
	if c.lastMessage() != msgCancelled {
		t.Fatalf("reply = %q", c.lastMessage())
	}
}

func TestDialogsAreIsolatedPerUser(t *testing.T) {
	app, _ := newTestApp(t)
	other := int64(42)
	app.sessions.Set(other, session.CategoryChosen{
		Type: model.TypeExpense, CategoryID: 5, CategoryName: "Food & Dining",
	})

	// User with no session sends free text; the other user's dialogue is
	// untouched.
	if err := app.HandleText(textMessage(testUserID, "hello")); err != nil {
		t.Fatal(err)
	}
	if !app.sessions.Active(other) {
		t.Fatal("unrelated user's session was dropped")
	}
	if app.sessions.Active(testUserID) {
		t.Fatal("stray text created a session")
	}
}

func TestUnknownUserOnTerminalStep(t *testing.T) {
	app, repo := newTestApp(t)
	stranger := int64(7777)
	app.sessions.Set(stranger, session.AmountCaptured{
		Type: model.TypeExpense, CategoryID: 5, CategoryName: "Food & Dining",
		Amount: decimal.NewFromInt(100), FormattedAmount: "Rp100",
	})

	c := textMessage(stranger, "skip")
	if err := app.HandleText(c); err != nil {
		t.Fatal(err)
	}
	if app.sessions.Active(stranger) {
		t.Fatal("session survived unknown-user terminal step")
	}
	if len(repo.created) != 0 {
		t.Fatal("transaction created for unknown user")
	}
	if c.lastMessage() != msgUserNotFound {
		t.Fatalf("reply = %q", c.lastMessage())
	}
}
