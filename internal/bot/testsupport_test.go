package bot

import (
	"context"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/sulnoorman/expense-tracker-bot/internal/model"
	"github.com/sulnoorman/expense-tracker-bot/internal/repository"
)

// fakeRepo is an in-memory Repository for handler tests.
type fakeRepo struct {
	users      map[int64]model.User // keyed by telegram id
	categories map[int64]model.Category
	created    []model.Transaction
	newCats    []model.Category

	createTxErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:      make(map[int64]model.User),
		categories: make(map[int64]model.Category),
	}
}

func (f *fakeRepo) UserByTelegramID(_ context.Context, telegramID int64) (*model.User, error) {
	u, ok := f.users[telegramID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

func (f *fakeRepo) UpsertUser(_ context.Context, user *model.User) (*model.User, error) {
	u := *user
	if existing, ok := f.users[user.TelegramID]; ok {
		u.ID = existing.ID
	} else {
		u.ID = int64(len(f.users) + 1)
	}
	f.users[user.TelegramID] = u
	return &u, nil
}

func (f *fakeRepo) CategoriesForUser(_ context.Context, userID int64, typ *model.TransactionType) ([]model.Category, error) {
	var cats []model.Category
	for _, c := range f.categories {
		if typ != nil && c.Type != *typ {
			continue
		}
		if c.UserID != nil && *c.UserID != userID {
			continue
		}
		cats = append(cats, c)
	}
	return cats, nil
}

func (f *fakeRepo) CategoryByID(_ context.Context, id int64) (*model.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}
	return &c, nil
}

func (f *fakeRepo) CreateCategory(_ context.Context, category *model.Category) (*model.Category, error) {
	c := *category
	c.ID = int64(1000 + len(f.newCats))
	f.newCats = append(f.newCats, c)
	f.categories[c.ID] = c
	return &c, nil
}

func (f *fakeRepo) CreateTransaction(_ context.Context, tx *model.Transaction) error {
	if f.createTxErr != nil {
		return f.createTxErr
	}
	f.created = append(f.created, *tx)
	return nil
}

func (f *fakeRepo) RecentTransactions(_ context.Context, _ int64, limit int) ([]model.Transaction, error) {
	if len(f.created) > limit {
		return f.created[:limit], nil
	}
	return f.created, nil
}

func (f *fakeRepo) Balance(_ context.Context, _ int64) (*model.Balance, error) {
	return &model.Balance{}, nil
}

func (f *fakeRepo) MonthlyReport(_ context.Context, _ int64, year int, month time.Month) (*model.MonthlyReport, error) {
	return &model.MonthlyReport{Year: year, Month: month}, nil
}

// testContext implements the tele.Context methods the handlers touch and
// records outbound messages. Unused methods panic via the nil embedded
// interface, which is what a test should do if a handler grows a new call.
type testContext struct {
	tele.Context

	sender   *tele.User
	chat     *tele.Chat
	text     string
	callback *tele.Callback
	store    map[string]any

	sent      []string
	edited    []string
	responded int
}

func textMessage(userID int64, text string) *testContext {
	return &testContext{
		sender: &tele.User{ID: userID, FirstName: "Test"},
		chat:   &tele.Chat{ID: userID},
		text:   text,
	}
}

func callbackPress(userID int64, unique, payload string) *testContext {
	data := "\f" + unique
	if payload != "" {
		data += "|" + payload
	}
	return &testContext{
		sender:   &tele.User{ID: userID, FirstName: "Test"},
		chat:     &tele.Chat{ID: userID},
		callback: &tele.Callback{Data: data},
	}
}

func (c *testContext) Sender() *tele.User       { return c.sender }
func (c *testContext) Chat() *tele.Chat         { return c.chat }
func (c *testContext) Text() string             { return c.text }
func (c *testContext) Callback() *tele.Callback { return c.callback }

func (c *testContext) Update() tele.Update {
	return tele.Update{}
}

func (c *testContext) Get(key string) any {
	return c.store[key]
}

func (c *testContext) Set(key string, val any) {
	if c.store == nil {
		c.store = make(map[string]any)
	}
	c.store[key] = val
}

func (c *testContext) Send(what any, _ ...any) error {
	if s, ok := what.(string); ok {
		c.sent = append(c.sent, s)
	}
	return nil
}

func (c *testContext) Edit(what any, _ ...any) error {
	if s, ok := what.(string); ok {
		c.edited = append(c.edited, s)
	}
	return nil
}

func (c *testContext) EditOrSend(what any, _ ...any) error {
	return c.Edit(what)
}

func (c *testContext) Respond(_ ...*tele.CallbackResponse) error {
	c.responded++
	return nil
}

func (c *testContext) lastMessage() string {
	if n := len(c.sent); n > 0 {
		return c.sent[n-1]
	}
	if n := len(c.edited); n > 0 {
		return c.edited[n-1]
	}
	return ""
}
