package application

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"gamelink-finder/internal/domain"
	"gamelink-finder/internal/ports/output"

	"github.com/sirupsen/logrus"
)

const (
	maxMessagesPerRequest = 5
	maxMessageLength      = 5000
)

// Replier sends messages back to whoever raised the event being handled
type Replier interface {
	Send(messages ...domain.LineOutgoingMessage) error
}

// Responder struct - replies to the sender of one webhook event. The first batch goes
// out with the reply token, later batches (or a batch whose token has expired) are pushed.
type Responder struct {
	client     output.LineClient
	replyToken string
	to         string

	mu      sync.Mutex
	replied bool
}

// NewResponder creates a responder for the source of an event
func NewResponder(client output.LineClient, event domain.LineWebhookEvent) *Responder {
	return &Responder{
		client:     client,
		replyToken: event.ReplyToken,
		to:         event.Source.PushTarget(),
	}
}

// Send delivers messages in batches of at most five
func (r *Responder) Send(messages ...domain.LineOutgoingMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	messages = splitLongMessages(messages)
	for start := 0; start < len(messages); start += maxMessagesPerRequest {
		end := start + maxMessagesPerRequest
		if end > len(messages) {
			end = len(messages)
		}
		if err := r.sendBatch(messages[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (r *Responder) sendBatch(batch []domain.LineOutgoingMessage) error {
	if !r.replied && r.replyToken != "" {
		r.replied = true
		_, err := r.client.ReplyMessage(domain.LineReplyMessageRequest{
			ReplyToken: r.replyToken,
			Messages:   batch,
		})
		if err == nil {
			return nil
		}
		logrus.Warnf("Reply failed, falling back to push: %v", err)
	}

	if r.to == "" {
		return fmt.Errorf("no push target for reply")
	}
	if _, err := r.client.PushMessage(domain.LinePushMessageRequest{
		To:       r.to,
		Messages: batch,
	}); err != nil {
		return fmt.Errorf("failed to send reply: %w", err)
	}
	return nil
}

// splitLongMessages cuts text messages over the platform limit on line boundaries.
// Choices stay on the last part.
func splitLongMessages(messages []domain.LineOutgoingMessage) []domain.LineOutgoingMessage {
	out := make([]domain.LineOutgoingMessage, 0, len(messages))
	for _, msg := range messages {
		if msg.Type != domain.LineMessageTypeText || utf8.RuneCountInString(msg.Text) <= maxMessageLength {
			out = append(out, msg)
			continue
		}
		parts := splitText(msg.Text, maxMessageLength)
		for i, part := range parts {
			piece := domain.TextMessage(part)
			if i == len(parts)-1 {
				piece.Choices = msg.Choices
			}
			out = append(out, piece)
		}
	}
	return out
}

func splitText(text string, limit int) []string {
	runes := []rune(text)
	var parts []string
	for len(runes) > limit {
		cut := limit
		for i := limit; i > limit/2; i-- {
			if runes[i-1] == '\n' {
				cut = i
				break
			}
		}
		parts = append(parts, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}
	return parts
}
