// Package bot wires the command router and the creation dialogue to Telegram.
package bot

import (
	"context"
	"fmt"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/lifeos-app/xp-platform/internal/config"
	"github.com/lifeos-app/xp-platform/internal/dialog"
	"github.com/lifeos-app/xp-platform/internal/taskapi"
	"github.com/lifeos-app/xp-platform/pkg/logger"
	"github.com/lifeos-app/xp-platform/pkg/metrics"
)

const (
	// pendingLimit caps how many pending completions /pending fetches at once.
	pendingLimit = 50

	// handlerTimeout bounds one handler's outbound HTTP work.
	handlerTimeout = 20 * time.Second
)

// Bot is the Telegram front-end for the XP task system.
type Bot struct {
	tb         *tele.Bot
	api        *taskapi.Client
	sessions   *dialog.Store
	admins     map[int64]bool
	miniAppURL string
	logger     *logger.Logger
}

// New creates the bot, connects to Telegram and registers all handlers.
func New(cfg *config.Config, api *taskapi.Client, log *logger.Logger) (*Bot, error) {
	tb, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: cfg.PollTimeout},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	admins := make(map[int64]bool, len(cfg.AdminIDs))
	for _, id := range cfg.AdminIDs {
		admins[id] = true
	}

	b := &Bot{
		tb:         tb,
		api:        api,
		sessions:   dialog.NewStore(),
		admins:     admins,
		miniAppURL: cfg.MiniAppURL,
		logger:     log,
	}
	b.register()

	return b, nil
}

func (b *Bot) register() {
	b.tb.Handle("/start", func(c tele.Context) error {
		metrics.RecordCommand("start", "ok")
		if b.miniAppURL == "" {
			return c.Send(replyStart)
		}
		menu := &tele.ReplyMarkup{ResizeKeyboard: true}
		btn := menu.WebApp("Открыть LifeOS Mini App", &tele.WebApp{URL: b.miniAppURL})
		menu.Reply(menu.Row(btn))
		return c.Send(replyStart, menu)
	})

	b.tb.Handle("/tasks", b.handle(func(ctx context.Context, c tele.Context) error {
		return c.Send(b.cmdTasks(ctx, c.Sender().ID))
	}))

	b.tb.Handle("/done", b.handle(func(ctx context.Context, c tele.Context) error {
		return c.Send(b.cmdDone(ctx, c.Sender().ID, c.Message().Payload))
	}))

	b.tb.Handle("/newtask", func(c tele.Context) error {
		return c.Send(b.cmdNewTask(c.Sender().ID))
	})

	b.tb.Handle("/pending", b.handle(func(ctx context.Context, c tele.Context) error {
		return c.Send(b.cmdPending(ctx, c.Sender().ID))
	}))

	b.tb.Handle("/approve", b.handle(func(ctx context.Context, c tele.Context) error {
		return c.Send(b.cmdApprove(ctx, c.Sender().ID, c.Message().Payload))
	}))

	b.tb.Handle("/reject", b.handle(func(ctx context.Context, c tele.Context) error {
		return c.Send(b.cmdReject(ctx, c.Sender().ID, c.Message().Payload))
	}))

	b.tb.Handle("/deletetask", b.handle(func(ctx context.Context, c tele.Context) error {
		return c.Send(b.cmdDeleteTask(ctx, c.Sender().ID, c.Message().Payload))
	}))

	// Non-command text only matters while a creation dialogue is running.
	b.tb.Handle(tele.OnText, b.handle(func(ctx context.Context, c tele.Context) error {
		reply, handled := b.onDialogMessage(ctx, c.Sender().ID, c.Text())
		if !handled {
			return nil
		}
		return c.Send(reply)
	}))
}

// handle bounds one handler's outbound work with a per-message context.
// Telegram delivers a given user's messages in arrival order, so a fresh
// context per message is enough for the dialogue state machine.
func (b *Bot) handle(fn func(ctx context.Context, c tele.Context) error) tele.HandlerFunc {
	return func(c tele.Context) error {
		ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
		defer cancel()
		return fn(ctx, c)
	}
}

// SetCommands publishes the command menu to Telegram clients.
func (b *Bot) SetCommands() error {
	return b.tb.SetCommands([]tele.Command{
		{Text: "start", Description: "Открыть LifeOS"},
		{Text: "tasks", Description: "Список задач"},
		{Text: "done", Description: "Отправить выполнение на проверку"},
		{Text: "newtask", Description: "Создать задачу (админ)"},
		{Text: "pending", Description: "Заявки на проверку (админ)"},
		{Text: "approve", Description: "Подтвердить заявку (админ)"},
		{Text: "reject", Description: "Отклонить заявку (админ)"},
		{Text: "deletetask", Description: "Удалить задачу (админ)"},
	})
}

// Start begins long polling. Blocks until Stop is called.
func (b *Bot) Start() {
	b.logger.Info("bot polling started")
	b.tb.Start()
}

// Stop terminates long polling.
func (b *Bot) Stop() {
	b.tb.Stop()
	b.logger.Info("bot polling stopped")
}

func (b *Bot) isAdmin(userID int64) bool {
	return b.admins[userID]
}
