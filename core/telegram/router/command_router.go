package router

import (
	"log/slog"
	"time"

	"github.com/sulnoorman/expense-tracker-bot/core/logger"
	tg "github.com/sulnoorman/expense-tracker-bot/core/telegram"
	"github.com/sulnoorman/expense-tracker-bot/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// CommandRouteOptions configures how commands are wrapped and exposed.
type CommandRouteOptions struct {
	OnError ErrorReporter
}

// CommandRoutes prepares command handlers wrapped with shared middleware.
// Commands always dispatch to their entry point regardless of any in-flight
// dialogue; the entry point itself decides whether to overwrite a session.
func CommandRoutes(reg *tg.Registry, opts CommandRouteOptions) []tg.Route {
	if reg == nil {
		return nil
	}

	routes := make([]tg.Route, 0, len(reg.Commands()))
	for cmd, def := range reg.Commands() {
		name := normalizeHandlerName(cmd)
		inner := def.Handler
		h := func(c tele.Context) error {
			return handleWithSummary(c, name, time.Now(), opts.OnError, func() error {
				return inner(c)
			})
		}
		h = middleware.RecoverMiddleware(middleware.LoggerMiddleware(h))
		routes = append(routes, tg.Route{
			Endpoint: cmd,
			Handler:  h,
		})
	}

	logger.Info(logger.Background(), "tg.wire", "complete",
		slog.Int("commands", len(reg.Commands())),
		slog.Int("callbacks", len(reg.ListCallbacks())),
	)

	return routes
}
