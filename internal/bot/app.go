// Package bot wires the Telegram-facing surface: command entry points,
// callback handlers and the multi-step dialogue flows.
package bot

import (
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/sulnoorman/expense-tracker-bot/core/config"
	tg "github.com/sulnoorman/expense-tracker-bot/core/telegram"
	"github.com/sulnoorman/expense-tracker-bot/core/telegram/commands"
	"github.com/sulnoorman/expense-tracker-bot/core/telegram/helpers"
	"github.com/sulnoorman/expense-tracker-bot/core/telegram/middleware"
	"github.com/sulnoorman/expense-tracker-bot/core/telegram/router"
	"github.com/sulnoorman/expense-tracker-bot/internal/charts"
	"github.com/sulnoorman/expense-tracker-bot/internal/service"
	"github.com/sulnoorman/expense-tracker-bot/internal/session"
)

// App owns the bot's handlers and their collaborators.
type App struct {
	tracker  *service.Tracker
	sessions *session.Store
	charts   *charts.Generator
	sequence *middleware.Sequencer
}

func NewApp(tracker *service.Tracker, sessions *session.Store) *App {
	return &App{
		tracker:  tracker,
		sessions: sessions,
		charts:   charts.NewGenerator(),
		sequence: middleware.NewSequencer(),
	}
}

// BuildRegistry declares every command and callback the bot understands.
func (a *App) BuildRegistry() *tg.Registry {
	reg := tg.NewRegistry()

	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "Initialize the bot and create your account",
	})
	reg.RegisterCommand("/help", commands.Command{
		Handler:     a.handleHelp,
		Description: "Show the help guide",
	})
	reg.RegisterCommand("/cancel", commands.Command{
		Handler:     a.handleCancel,
		Description: "Cancel current operation",
	})
	reg.RegisterCommand("/expense", commands.Command{
		Handler:     a.handleExpense,
		Description: "Add a new expense",
	})
	reg.RegisterCommand("/income", commands.Command{
		Handler:     a.handleIncome,
		Description: "Add new income",
	})
	reg.RegisterCommand("/balance", commands.Command{
		Handler:     a.handleBalance,
		Description: "View your current balance",
	})
	reg.RegisterCommand("/list", commands.Command{
		Handler:     a.handleList,
		Description: "View recent transactions",
	})
	reg.RegisterCommand("/categories", commands.Command{
		Handler:     a.handleCategories,
		Description: "View all available categories",
	})
	reg.RegisterCommand("/report", commands.Command{
		Handler:     a.handleReport,
		Description: "Generate monthly financial report",
	})

	_ = reg.RegisterCallback(cbExpenseCategory, a.handleExpenseCategory)
	_ = reg.RegisterCallback(cbIncomeCategory, a.handleIncomeCategory)
	_ = reg.RegisterCallback(cbAddNewCategory, a.handleAddNewCategory)
	_ = reg.RegisterCallback(cbAddCategory, a.handleCategoryType)

	// Quick actions re-enter the matching command entry point.
	_ = reg.RegisterCallback(cbQuickExpense, a.handleExpense)
	_ = reg.RegisterCallback(cbQuickIncome, a.handleIncome)
	_ = reg.RegisterCallback(cbQuickBalance, a.handleBalance)
	_ = reg.RegisterCallback(cbQuickList, a.handleList)
	_ = reg.RegisterCallback(cbQuickHelp, a.handleHelp)
	_ = reg.RegisterCallback(cbQuickCategories, a.handleCategories)
	_ = reg.RegisterCallback(cbQuickReport, a.handleReport)

	return reg
}

// Routes assembles the update routing table from the registry.
func (a *App) Routes(reg *tg.Registry) []tg.Route {
	routes := router.CommandRoutes(reg, router.CommandRouteOptions{OnError: a.reportError})
	routes = append(routes, router.TextRoutes(a, reg, router.TextOptions{OnError: a.reportError})...)
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{OnError: a.reportError}))
	return routes
}

// Middlewares returns global middlewares. The sequencer serializes updates per
// user so a double-tapped button cannot interleave two dialogue steps.
func (a *App) Middlewares(cfg *config.Config) []tg.Middleware {
	mws := []tg.Middleware{
		{Name: "sequence", Use: a.sequence.Middleware()},
	}
	if cfg != nil && cfg.RateLimit.IntervalMS > 0 {
		exclude := make(map[string]struct{}, len(cfg.RateLimit.ExcludeUpdates))
		for _, v := range cfg.RateLimit.ExcludeUpdates {
			exclude[v] = struct{}{}
		}
		mws = append(mws, tg.Middleware{
			Name: "rate_limit",
			Use: middleware.RateLimitMiddleware(middleware.RateLimitOptions{
				Interval: time.Duration(cfg.RateLimit.IntervalMS) * time.Millisecond,
				Exclude:  exclude,
			}),
		})
	}
	return mws
}

func (a *App) reportError(c tele.Context, _ error) {
	_ = helpers.SendText(c, msgGenericError)
}
