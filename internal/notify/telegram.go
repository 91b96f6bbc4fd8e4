// Package notify delivers detected value bets to Telegram.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mvdberg/valuebet/internal/pkg/config"
	"github.com/mvdberg/valuebet/internal/pkg/models"
	"github.com/mvdberg/valuebet/internal/pkg/storage"
)

// Min interval between messages to the same chat; Telegram rate-limits
// around 30 messages per minute.
const sendInterval = 2 * time.Second

// TelegramNotifier sends one message per value bet, suppressing repeats of
// the same opportunity through the cooldown store. A nil notifier is safe
// and sends nothing.
type TelegramNotifier struct {
	bot         *tgbotapi.BotAPI
	chatID      int64
	cooldown    *storage.CooldownStore // optional
	cooldownTTL time.Duration

	mu       sync.Mutex
	lastSend time.Time
}

func NewTelegramNotifier(cfg *config.TelegramConfig, cooldown *storage.CooldownStore) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	bot.Debug = false

	if _, err := bot.GetMe(); err != nil {
		return nil, fmt.Errorf("failed to get bot info: %w", err)
	}

	slog.Info("telegram notifier initialized", "chat_id", cfg.ChatID)
	return &TelegramNotifier{
		bot:         bot,
		chatID:      cfg.ChatID,
		cooldown:    cooldown,
		cooldownTTL: time.Duration(cfg.CooldownMinutes) * time.Minute,
	}, nil
}

// NotifyValueBets sends an alert for each bet not on cooldown. Bets arrive
// best edge first and are sent in that order.
func (n *TelegramNotifier) NotifyValueBets(ctx context.Context, bets []models.ValueBet) {
	if n == nil {
		return
	}

	sent := 0
	for _, b := range bets {
		if ctx.Err() != nil {
			return
		}
		if !n.allow(ctx, b) {
			continue
		}
		if err := n.send(formatValueBet(b)); err != nil {
			slog.Warn("telegram send failed", "fixture", b.Home+" vs "+b.Away, "error", err)
			continue
		}
		sent++
	}
	slog.Info("telegram alerts sent", "sent", sent, "total", len(bets))
}

func (n *TelegramNotifier) allow(ctx context.Context, b models.ValueBet) bool {
	if n.cooldown == nil {
		return true
	}
	key := cooldownKey(b)
	ok, err := n.cooldown.Allow(ctx, key, n.cooldownTTL)
	if err != nil {
		// On a cooldown store outage alerting beats silence.
		slog.Warn("cooldown check failed, alerting anyway", "key", key, "error", err)
		return true
	}
	if !ok {
		slog.Debug("alert on cooldown", "key", key)
	}
	return ok
}

func cooldownKey(b models.ValueBet) string {
	return strings.Join([]string{b.League, b.Home, b.Away, b.Market, b.Outcome, b.Bookmaker}, "|")
}

func (n *TelegramNotifier) send(text string) error {
	n.mu.Lock()
	if wait := sendInterval - time.Since(n.lastSend); wait > 0 {
		time.Sleep(wait)
	}
	n.lastSend = time.Now()
	n.mu.Unlock()

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	_, err := n.bot.Send(msg)
	return err
}

func formatValueBet(b models.ValueBet) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "💰 <b>Value Bet</b>\n\n")
	fmt.Fprintf(&sb, "<b>%s vs %s</b>\n", b.Home, b.Away)
	fmt.Fprintf(&sb, "League: %s\n", b.League)
	fmt.Fprintf(&sb, "Kickoff: %s\n\n", b.Kickoff)
	fmt.Fprintf(&sb, "Market: %s / %s\n", strings.ToUpper(b.Market), b.Outcome)
	fmt.Fprintf(&sb, "Bookmaker: %s @ %.3f\n", strings.ToUpper(b.Bookmaker), b.SoftOdds)
	fmt.Fprintf(&sb, "Anchor: %.3f (fair prob %.1f%%)\n\n", b.AnchorOdds, b.AnchorProb*100)
	fmt.Fprintf(&sb, "Edge: <b>%.2f%%</b>\n", b.EdgePercentage)
	fmt.Fprintf(&sb, "Stake: €%.2f | EV: €%.2f", b.RecommendedStake, b.ExpectedValue)
	return sb.String()
}
