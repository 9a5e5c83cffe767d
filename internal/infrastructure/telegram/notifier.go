// Package telegram sends bot messages through the Telegram Bot API.
package telegram

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/klassifikator/backend/internal/infrastructure/config"
)

// Client posts messages via the Bot API sendMessage method
type Client struct {
	http   *resty.Client
	apiURL string
	logger *zap.Logger
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// NewClient creates a new Telegram client
func NewClient(cfg *config.TelegramConfig, httpClient *resty.Client, logger *zap.Logger) *Client {
	return &Client{
		http:   httpClient,
		apiURL: cfg.APIURL,
		logger: logger,
	}
}

// Send delivers a Markdown message to one chat through the given bot
func (c *Client) Send(ctx context.Context, botToken, chatID, text string) error {
	if botToken == "" || chatID == "" {
		return errors.New("telegram bot token and chat id are required")
	}

	var result sendMessageResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(sendMessageRequest{
			ChatID:    chatID,
			Text:      text,
			ParseMode: "Markdown",
		}).
		SetResult(&result).
		SetError(&result).
		Post(c.apiURL + botToken + "/sendMessage")
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}

	if resp.IsError() || !result.OK {
		c.logger.Warn("telegram rejected message",
			zap.Int("status", resp.StatusCode()),
			zap.String("description", result.Description))
		return fmt.Errorf("telegram rejected message: status %d: %s", resp.StatusCode(), result.Description)
	}

	return nil
}
