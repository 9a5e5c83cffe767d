package integration

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	landingdomain "github.com/klassifikator/backend/internal/domain/landing"
	orderdomain "github.com/klassifikator/backend/internal/domain/order"
	"github.com/klassifikator/backend/internal/domain/shared"
	"github.com/klassifikator/backend/internal/infrastructure/config"
)

// TelegramSender delivers one message through one bot
type TelegramSender interface {
	Send(ctx context.Context, botToken, chatID, text string) error
}

// OrganizationProvider resolves organizations from the landing service
type OrganizationProvider interface {
	Organization(ctx context.Context, id int64) (*landingdomain.Organization, error)
}

// LandingProvider resolves landings from the landing service
type LandingProvider interface {
	Landing(ctx context.Context, id int64) (*landingdomain.Landing, error)
}

const testMessage = "✅ Тест уведомлений Klassifikator\n\nСистема уведомлений работает!"

// NotificationService fans order notifications out to the platform bot and
// the organization's own bot. The two sends are independent; either one
// failing never blocks the other, and failures are only logged.
type NotificationService struct {
	telegram TelegramSender
	cfg      *config.TelegramConfig
	orgs     OrganizationProvider
	landings LandingProvider
	logger   *zap.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(
	telegram TelegramSender,
	cfg *config.TelegramConfig,
	orgs OrganizationProvider,
	landings LandingProvider,
	logger *zap.Logger,
) *NotificationService {
	return &NotificationService{
		telegram: telegram,
		cfg:      cfg,
		orgs:     orgs,
		landings: landings,
		logger:   logger,
	}
}

// NotifyNewOrder sends the new-order message to every configured bot
func (s *NotificationService) NotifyNewOrder(ctx context.Context, o *orderdomain.Order) error {
	org, err := s.orgs.Organization(ctx, o.OrganizationID)
	if err != nil {
		return err
	}

	domain := ""
	if l, err := s.landings.Landing(ctx, o.LandingID); err == nil {
		domain = l.Domain
	} else {
		s.logger.Warn("failed to resolve landing for notification",
			zap.Int64("landing_id", o.LandingID), zap.Error(err))
	}

	text := buildOrderMessage(org, domain, o)

	if s.cfg.Enabled && s.cfg.BotToken != "" && s.cfg.ChatID != "" {
		if err := s.telegram.Send(ctx, s.cfg.BotToken, s.cfg.ChatID, text); err != nil {
			s.logger.Warn("platform bot notification failed",
				zap.Int64("order_id", o.ID), zap.Error(err))
		}
	}

	if org.HasTelegramBot() {
		if err := s.telegram.Send(ctx, org.TelegramBotToken, org.TelegramChatID, text); err != nil {
			s.logger.Warn("organization bot notification failed",
				zap.Int64("order_id", o.ID),
				zap.Int64("organization_id", org.ID),
				zap.Error(err))
		}
	}

	return nil
}

// SendTestMessage verifies an organization's bot configuration
func (s *NotificationService) SendTestMessage(ctx context.Context, organizationID int64) error {
	org, err := s.orgs.Organization(ctx, organizationID)
	if err != nil {
		return err
	}
	if !org.HasTelegramBot() {
		return shared.NewDomainError("INVALID_STATE", "Organization has no Telegram bot configured")
	}

	return s.telegram.Send(ctx, org.TelegramBotToken, org.TelegramChatID, testMessage)
}

func buildOrderMessage(org *landingdomain.Organization, domain string, o *orderdomain.Order) string {
	var b strings.Builder
	b.WriteString("🛒 *НОВЫЙ ЗАКАЗ*\n\n")
	fmt.Fprintf(&b, "🏢 Организация: %s\n", org.Name)
	if domain != "" {
		fmt.Fprintf(&b, "🌐 Домен: %s\n", domain)
	}
	fmt.Fprintf(&b, "📋 Заказ #%d\n", o.ID)
	fmt.Fprintf(&b, "👤 Клиент: %s\n", o.CustomerName)
	fmt.Fprintf(&b, "📞 Телефон: %s\n", o.CustomerPhone)
	if o.CustomerEmail != "" {
		fmt.Fprintf(&b, "✉️ Email: %s\n", o.CustomerEmail)
	}
	if o.DeliveryAddress != "" {
		fmt.Fprintf(&b, "🚚 Адрес: %s\n", o.DeliveryAddress)
	}
	fmt.Fprintf(&b, "💰 Сумма: %s руб\n", o.TotalAmount.StringFixed(0))

	if len(o.Items) > 0 {
		b.WriteString("\n📦 *Товары:*\n")
		for _, item := range o.Items {
			fmt.Fprintf(&b, "  • %s × %d = %s руб\n",
				item.ProductName, item.Quantity, item.Subtotal.StringFixed(0))
		}
	}

	if o.Comment != "" {
		fmt.Fprintf(&b, "\n💬 Комментарий: %s\n", o.Comment)
	}

	fmt.Fprintf(&b, "\n🕐 %s", time.Now().Format("02.01.2006 15:04"))
	return b.String()
}
