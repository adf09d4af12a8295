package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier pushes booking activity to the venue staff chat. With an
// empty token it stays disabled and every notification is a logged no-op.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking, s *domain.Session, a *domain.Activity) {
	text := fmt.Sprintf(
		"*Booking confirmed*\n\n"+
			"Activity: %s\nStarts (UTC): %s\nParty size: %d\nConfirmation: %s",
		a.Name, s.StartTime.Format("02.01.2006 15:04"), b.PartySize, b.BookingNumber,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking, s *domain.Session, a *domain.Activity) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\n"+
			"Activity: %s\nStarts (UTC): %s\nParty size: %d\nConfirmation: %s",
		a.Name, s.StartTime.Format("02.01.2006 15:04"), b.PartySize, b.BookingNumber,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.String("error", err.Error()),
		)
	}
}
