package router

import (
	"testing"

	tg "github.com/sulnoorman/expense-tracker-bot/core/telegram"
	"github.com/sulnoorman/expense-tracker-bot/core/telegram/commands"

	tele "gopkg.in/telebot.v4"
)

type stubContext struct {
	tele.Context

	sender *tele.User
	text   string
	store  map[string]any
}

func newStubContext(userID int64, text string) *stubContext {
	return &stubContext{
		sender: &tele.User{ID: userID},
		text:   text,
		store:  map[string]any{},
	}
}

func (c *stubContext) Update() tele.Update {
	return tele.Update{ID: 1, Message: &tele.Message{Text: c.text}}
}

func (c *stubContext) Sender() *tele.User { return c.sender }

func (c *stubContext) Chat() *tele.Chat { return &tele.Chat{ID: c.sender.ID} }

func (c *stubContext) Text() string { return c.text }

func (c *stubContext) Callback() *tele.Callback { return nil }

func (c *stubContext) Set(key string, value any) { c.store[key] = value }

func (c *stubContext) Get(key string) any { return c.store[key] }

func (c *stubContext) Send(what any, opts ...any) error { return nil }

type fakeDialog struct {
	active bool
	texts  []string
}

func (d *fakeDialog) InProgress(userID int64) bool { return d.active }

func (d *fakeDialog) HandleText(c tele.Context) error {
	d.texts = append(d.texts, c.Text())
	return nil
}

func textRegistry(t *testing.T, invoked *[]string) *tg.Registry {
	t.Helper()
	reg := tg.NewRegistry()
	reg.RegisterCommand("/balance", commands.Command{
		Description: "Check balance",
		Handler: func(c tele.Context) error {
			*invoked = append(*invoked, "/balance")
			return nil
		},
	})
	return reg
}

func dispatchText(t *testing.T, dialog *fakeDialog, reg *tg.Registry, c tele.Context) {
	t.Helper()
	routes := TextRoutes(dialog, reg, TextOptions{})
	if len(routes) != 1 {
		t.Fatalf("expected a single text route, got %d", len(routes))
	}
	if err := routes[0].Handler(c); err != nil {
		t.Fatalf("text handler returned error: %v", err)
	}
}

func TestBareTextWithoutSessionIsDropped(t *testing.T) {
	var invoked []string
	reg := textRegistry(t, &invoked)
	dialog := &fakeDialog{active: false}

	dispatchText(t, dialog, reg, newStubContext(42, "balance"))

	if len(invoked) != 0 {
		t.Fatalf("bare text must not dispatch a command, invoked %v", invoked)
	}
	if len(dialog.texts) != 0 {
		t.Fatalf("bare text without a session must not reach the dialogue, got %v", dialog.texts)
	}
}

func TestSlashCommandDispatches(t *testing.T) {
	var invoked []string
	reg := textRegistry(t, &invoked)
	dialog := &fakeDialog{active: false}

	dispatchText(t, dialog, reg, newStubContext(42, "/balance"))

	if len(invoked) != 1 || invoked[0] != "/balance" {
		t.Fatalf("expected /balance to dispatch once, invoked %v", invoked)
	}
}

func TestBareTextFeedsActiveDialog(t *testing.T) {
	var invoked []string
	reg := textRegistry(t, &invoked)
	dialog := &fakeDialog{active: true}

	dispatchText(t, dialog, reg, newStubContext(42, "balance"))

	if len(invoked) != 0 {
		t.Fatalf("dialogue text must not dispatch a command, invoked %v", invoked)
	}
	if len(dialog.texts) != 1 || dialog.texts[0] != "balance" {
		t.Fatalf("expected dialogue to receive %q, got %v", "balance", dialog.texts)
	}
}

func TestSlashCommandBypassesActiveDialog(t *testing.T) {
	var invoked []string
	reg := textRegistry(t, &invoked)
	dialog := &fakeDialog{active: true}

	dispatchText(t, dialog, reg, newStubContext(42, "/balance"))

	if len(invoked) != 1 {
		t.Fatalf("expected /balance to dispatch, invoked %v", invoked)
	}
	if len(dialog.texts) != 0 {
		t.Fatalf("command text must not reach the dialogue, got %v", dialog.texts)
	}
}

func TestUnknownCommandIsDropped(t *testing.T) {
	var invoked []string
	reg := textRegistry(t, &invoked)
	dialog := &fakeDialog{active: true}

	dispatchText(t, dialog, reg, newStubContext(42, "/unknown"))

	if len(invoked) != 0 || len(dialog.texts) != 0 {
		t.Fatalf("unknown command must be dropped, invoked %v, dialogue %v", invoked, dialog.texts)
	}
}
