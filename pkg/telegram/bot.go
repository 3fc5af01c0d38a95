package telegram

import (
	"context"

	"botCommands/pkg/command"
	"botCommands/pkg/errs"
	"botCommands/pkg/logging"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// Bot feeds telegram updates into a command registry.
type Bot struct {
	conf     *Config
	baseBot  *telebot.Bot
	registry *command.Registry
}

func NewBot(c *Config, r *command.Registry) (*Bot, error) {
	validationErr := c.Validate()
	if validationErr.HasErrors() {
		return nil, validationErr
	}

	settings := telebot.Settings{
		Token:  c.APIToken,
		Poller: &telebot.LongPoller{Timeout: c.PollTimeout},
		OnError: func(err error, _ telebot.Context) {
			errs.Handle(err, false)
		},
	}

	var botAPI *telebot.Bot
	operation := func() error {
		var err error
		botAPI, err = telebot.NewBot(settings)
		if err != nil {
			logrus.Errorf("failed to connect to telegram: %v", err)
		}
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = c.StartTimeout

	err := backoff.Retry(operation, bo)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create telegram bot")
	}

	return &Bot{conf: c, baseBot: botAPI, registry: r}, nil
}

func (b *Bot) handle(ctx context.Context, c telebot.Context) error {
	log := logrus.WithContext(ctx)

	upd := c.Update()

	route, ok := RouteUpdate(&upd)
	if !ok {
		log.Debugf("update %d carries no command, skipping", upd.ID)
		return nil
	}

	log = log.WithFields(logrus.Fields{
		"command":  route.Name,
		"category": route.Category,
	})
	log.Debug("got telegram command")

	res, err := b.registry.DispatchUpdateIn(ctx, route.Category, route.Name, b.baseBot, &upd)
	if err != nil {
		var notFound *command.CommandNotFoundError
		if errors.As(err, &notFound) {
			return b.handleUnknown(ctx, c, route)
		}

		if route.Category == command.CategoryCallback {
			b.respond(ctx, c, "")
		}

		sendErr := c.Send("Unexpected error")
		if sendErr != nil {
			log.Errorf("failed to send error message to the sender: %v", sendErr)
		}

		return err
	}

	if route.Category == command.CategoryCallback {
		b.respond(ctx, c, "")
	}

	return b.processResult(ctx, c, res)
}

func (b *Bot) handleUnknown(ctx context.Context, c telebot.Context, route Route) error {
	log := logrus.WithContext(ctx)

	switch route.Category {
	case command.CategoryText:
		text, opts := buildMessage(unsupportedCommand(route.Name))
		err := c.Send(text, opts)
		if err != nil {
			return errors.Wrapf(err, "failed to send unsupported command message for %q", route.Name)
		}
	case command.CategoryCallback:
		b.respond(ctx, c, "This button is not supported anymore")
	default:
		log.Debugf("%q is not a %s command, ignoring", route.Name, route.Category)
	}

	return nil
}

func (b *Bot) respond(ctx context.Context, c telebot.Context, text string) {
	err := c.Respond(&telebot.CallbackResponse{Text: text})
	if err != nil {
		logrus.WithContext(ctx).Errorf("failed to answer callback: %v", err)
	}
}

func (b *Bot) processResult(ctx context.Context, c telebot.Context, res interface{}) error {
	log := logrus.WithContext(ctx)

	messages, ok := resultMessages(res)
	if !ok {
		log.Debugf("command result of type %T is not sendable, will send nothing", res)
		return nil
	}

	if len(messages) == 0 {
		log.Info("response message is empty, will send nothing to the sender")
		return nil
	}

	for _, rm := range messages {
		text, opts := buildMessage(rm)

		log.Debugf("telegram message:\n%q", text)

		err := c.Send(text, opts)
		if err != nil {
			return errors.Wrapf(err, "failed to send message:\n%s", text)
		}
	}

	return nil
}

func (b *Bot) handler(c telebot.Context) error {
	ctx, cancel := context.WithCancel(logging.WithTrackingID(context.Background()))
	defer cancel()

	return b.handle(ctx, c)
}

func (b *Bot) Start() {
	b.baseBot.Handle(telebot.OnText, b.handler)
	b.baseBot.Handle(telebot.OnCallback, b.handler)

	cmds := menuCommands(b.registry)
	if len(cmds) > 0 {
		err := b.baseBot.SetCommands(cmds)
		if err != nil {
			logrus.Errorf("failed to publish %d commands to the bot menu: %v", len(cmds), err)
		} else {
			logrus.Infof("published %d commands to the bot menu", len(cmds))
		}
	}

	b.baseBot.Start()
}

func (b *Bot) Stop() {
	logrus.Info("will stop telegram bot")
	b.baseBot.Stop()
	logrus.Info("stopped telegram bot")
}
