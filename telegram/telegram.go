// Copyright (c) 2026 Coinbase Agent Authors

// Package telegram sends trade notifications to a telegram chat. This is a
// one-way channel; incoming messages are ignored.
package telegram

import (
	"context"
	"fmt"
	"os"

	"github.com/go-telegram/bot"
)

type Secrets struct {
	BotToken string `json:"bot_token"`
	ChatID   int64  `json:"chat_id"`
}

func (s *Secrets) Check() error {
	if s == nil {
		return fmt.Errorf("telegram secrets cannot be nil: %w", os.ErrInvalid)
	}
	if len(s.BotToken) == 0 {
		return fmt.Errorf("telegram bot token cannot be empty: %w", os.ErrInvalid)
	}
	if s.ChatID == 0 {
		return fmt.Errorf("telegram chat id cannot be zero: %w", os.ErrInvalid)
	}
	return nil
}

type Client struct {
	bot    *bot.Bot
	chatID int64
}

func New(secrets *Secrets) (*Client, error) {
	if err := secrets.Check(); err != nil {
		return nil, err
	}
	b, err := bot.New(secrets.BotToken)
	if err != nil {
		return nil, err
	}
	return &Client{bot: b, chatID: secrets.ChatID}, nil
}

func (c *Client) SendMessage(ctx context.Context, text string) error {
	_, err := c.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: c.chatID,
		Text:   text,
	})
	return err
}
