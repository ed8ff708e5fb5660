package otp

import (
	"context"

	"github.com/bizmandi/storefront/pkg/logger"
)

// ConsoleProvider logs messages instead of sending them. Used in
// development when no SMS gateway is configured.
type ConsoleProvider struct {
	log logger.Logger
}

// NewConsoleProvider creates a provider that only logs
func NewConsoleProvider(log logger.Logger) *ConsoleProvider {
	return &ConsoleProvider{log: log}
}

// SendSMS logs the message and reports success
func (p *ConsoleProvider) SendSMS(ctx context.Context, to, from, body string) (*SendResult, error) {
	p.log.Info("sms (console provider)", "to", to, "body", body)
	return &SendResult{SID: "console", Status: "sent"}, nil
}
