package integration

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	landingdomain "github.com/klassifikator/backend/internal/domain/landing"
	orderdomain "github.com/klassifikator/backend/internal/domain/order"
	"github.com/klassifikator/backend/internal/infrastructure/config"
)

type recordedSend struct {
	botToken string
	chatID   string
	text     string
}

type fakeTelegram struct {
	sends []recordedSend
	err   error
}

func (f *fakeTelegram) Send(ctx context.Context, botToken, chatID, text string) error {
	f.sends = append(f.sends, recordedSend{botToken, chatID, text})
	return f.err
}

type staticOrgProvider struct{ org *landingdomain.Organization }

func (p staticOrgProvider) Organization(ctx context.Context, id int64) (*landingdomain.Organization, error) {
	return p.org, nil
}

type staticLandingProvider struct{ landing *landingdomain.Landing }

func (p staticLandingProvider) Landing(ctx context.Context, id int64) (*landingdomain.Landing, error) {
	return p.landing, nil
}

func notifyFixture(tg *fakeTelegram, org *landingdomain.Organization, enabled bool) *NotificationService {
	cfg := &config.TelegramConfig{
		Enabled:  enabled,
		BotToken: "platform-token",
		ChatID:   "platform-chat",
	}
	return NewNotificationService(tg, cfg, staticOrgProvider{org},
		staticLandingProvider{&landingdomain.Landing{Domain: "avtoservis.volzhck.ru"}}, zap.NewNop())
}

func sampleOrder() *orderdomain.Order {
	o, _ := orderdomain.NewOrder(5, 9, "Иван Петров", "+7 900 123-45-67")
	o.ID = 42
	o.Comment = "Позвонить заранее"
	_ = o.AddItem(1, "Замена масла", decimal.NewFromInt(1500), 2)
	return o
}

func TestNotifyNewOrder_SendsToBothBots(t *testing.T) {
	tg := &fakeTelegram{}
	org := &landingdomain.Organization{
		Name:             "Автосервис",
		TelegramBotToken: "org-token",
		TelegramChatID:   "org-chat",
	}
	svc := notifyFixture(tg, org, true)

	err := svc.NotifyNewOrder(context.Background(), sampleOrder())

	assert.NoError(t, err)
	assert.Len(t, tg.sends, 2)
	assert.Equal(t, "platform-token", tg.sends[0].botToken)
	assert.Equal(t, "org-token", tg.sends[1].botToken)
}

func TestNotifyNewOrder_SendFailureIsSwallowed(t *testing.T) {
	tg := &fakeTelegram{err: assert.AnError}
	org := &landingdomain.Organization{
		Name:             "Автосервис",
		TelegramBotToken: "org-token",
		TelegramChatID:   "org-chat",
	}
	svc := notifyFixture(tg, org, true)

	err := svc.NotifyNewOrder(context.Background(), sampleOrder())

	assert.NoError(t, err)
	assert.Len(t, tg.sends, 2)
}

func TestNotifyNewOrder_SkipsUnconfiguredBots(t *testing.T) {
	tg := &fakeTelegram{}
	svc := notifyFixture(tg, &landingdomain.Organization{Name: "Автосервис"}, false)

	err := svc.NotifyNewOrder(context.Background(), sampleOrder())

	assert.NoError(t, err)
	assert.Empty(t, tg.sends)
}

func TestBuildOrderMessage(t *testing.T) {
	org := &landingdomain.Organization{Name: "Автосервис"}
	text := buildOrderMessage(org, "avtoservis.volzhck.ru", sampleOrder())

	assert.Contains(t, text, "🛒 *НОВЫЙ ЗАКАЗ*")
	assert.Contains(t, text, "🏢 Организация: Автосервис")
	assert.Contains(t, text, "🌐 Домен: avtoservis.volzhck.ru")
	assert.Contains(t, text, "📋 Заказ #42")
	assert.Contains(t, text, "👤 Клиент: Иван Петров")
	assert.Contains(t, text, "💰 Сумма: 3000 руб")
	assert.Contains(t, text, "  • Замена масла × 2 = 3000 руб")
	assert.Contains(t, text, "💬 Комментарий: Позвонить заранее")
	assert.NotContains(t, text, "✉️ Email")
}

func TestSendTestMessage_RequiresBot(t *testing.T) {
	tg := &fakeTelegram{}
	svc := notifyFixture(tg, &landingdomain.Organization{Name: "Автосервис"}, true)

	err := svc.SendTestMessage(context.Background(), 5)

	assert.Error(t, err)
	assert.Empty(t, tg.sends)
}

func TestSendTestMessage_Success(t *testing.T) {
	tg := &fakeTelegram{}
	org := &landingdomain.Organization{
		Name:             "Автосервис",
		TelegramBotToken: "org-token",
		TelegramChatID:   "org-chat",
	}
	svc := notifyFixture(tg, org, true)

	err := svc.SendTestMessage(context.Background(), 5)

	assert.NoError(t, err)
	assert.Len(t, tg.sends, 1)
	assert.Contains(t, tg.sends[0].text, "Тест уведомлений Klassifikator")
}
