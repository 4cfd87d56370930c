// Package bot is the Telegram twin of the WhatsApp endpoint: a customer
// sends the phone number their order was placed under and gets the same
// bilingual status text back.
package bot

import (
	"context"
	"strings"
	"time"

	"tailor-system/config"
	"tailor-system/logger"
	"tailor-system/services"
	"tailor-system/store"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const lookupTimeout = 10 * time.Second

type Bot struct {
	api    *tgbotapi.BotAPI
	cfg    *config.Config
	stores store.Stores
	lg     *logger.Logger
}

func New(cfg *config.Config, stores store.Stores) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, err
	}
	return &Bot{api: api, cfg: cfg, stores: stores, lg: logger.New("telegram-bot")}, nil
}

func (b *Bot) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	for update := range b.api.GetUpdatesChan(u) {
		if update.Message == nil {
			continue
		}
		b.handleMessage(update.Message)
	}
}

const promptText = "🧵 S Kumaran Tailors\n\n" +
	"உங்கள் ஆர்டர் நிலையை அறிய, ஆர்டர் செய்த தொலைபேசி எண்ணை அனுப்புங்கள்.\n" +
	"Send the phone number your order was placed under to check its status.\n\n" +
	"எ.கா / e.g. +91 98765 43210"

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	text := strings.TrimSpace(msg.Text)
	if msg.Contact != nil && msg.Contact.PhoneNumber != "" {
		text = msg.Contact.PhoneNumber
	}

	phone, ok := NormalizePhone(text)
	if !ok {
		b.reply(msg.Chat.ID, promptText)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	if err := b.stores.Users.IncrementQueryCount(ctx, phone); err != nil {
		b.lg.Error("increment_query_count", err, map[string]any{"phone": phone})
	}
	orders, err := b.stores.Orders.GetOrdersByPhone(ctx, phone)
	if err != nil {
		b.lg.Error("orders_by_phone", err, map[string]any{"phone": phone})
		orders = nil
	}

	b.reply(msg.Chat.ID, services.BuildStatusMessage(services.StatusMessageParams{
		Phone:        phone,
		Orders:       orders,
		SiteURL:      b.cfg.Shop.SiteURL,
		ContactPhone: b.cfg.Shop.ContactPhone,
	}))
}

func (b *Bot) reply(chatID int64, text string) {
	m := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(m); err != nil {
		b.lg.Error("send_message", err, map[string]any{"chat_id": chatID})
	}
}

// NormalizePhone strips separators and puts the number into the +91 E.164
// form orders are stored under. Returns false for anything that does not
// look like a phone number.
func NormalizePhone(s string) (string, bool) {
	var digits strings.Builder
	plus := strings.HasPrefix(strings.TrimSpace(s), "+")
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '+':
			// separators
		default:
			return "", false
		}
	}
	d := digits.String()
	switch {
	case len(d) == 10:
		return "+91" + d, true
	case len(d) == 12 && strings.HasPrefix(d, "91"):
		return "+" + d, true
	case plus && len(d) >= 10:
		return "+" + d, true
	default:
		return "", false
	}
}
