package router

import (
	"strings"
	"time"

	tg "github.com/sulnoorman/expense-tracker-bot/core/telegram"
	"github.com/sulnoorman/expense-tracker-bot/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// Dialog is the minimal interface of an in-flight dialogue manager.
type Dialog interface {
	InProgress(userID int64) bool
	HandleText(c tele.Context) error
}

// TextOptions controls routing of plain text updates.
type TextOptions struct {
	OnError ErrorReporter
}

// TextRoutes builds the handler for free-text updates. Slash-prefixed text is
// looked up in the command registry; bare text belonging to an in-flight
// dialogue goes to the dialogue manager; any other bare text is dropped
// silently, never treated as a command.
func TextRoutes(dialog Dialog, reg *tg.Registry, opts TextOptions) []tg.Route {
	handler := func(c tele.Context) error {
		start := time.Now()
		text := c.Text()

		if !strings.HasPrefix(text, "/") {
			// Command-prefixed text never feeds a dialogue, even
			// mid-flight; the reverse also holds.
			if dialog != nil && c.Sender() != nil && dialog.InProgress(c.Sender().ID) {
				return handleWithSummary(c, "dialog", start, opts.OnError, func() error {
					return dialog.HandleText(c)
				})
			}
			// No session: drop the message without replying.
			logHandlerSummary(c, "unmatched_text", start, "skip", nil)
			return nil
		}

		if reg != nil {
			if key, cmd, ok := reg.LookupCommand(text); ok && cmd.Handler != nil {
				name := normalizeHandlerName(key)
				return handleWithSummary(c, name, start, opts.OnError, func() error {
					return cmd.Handler(c)
				})
			}
		}

		logHandlerSummary(c, "unknown_command", start, "skip", nil)
		return nil
	}

	return []tg.Route{
		{
			Endpoint: tele.OnText,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(handler)),
		},
	}
}
