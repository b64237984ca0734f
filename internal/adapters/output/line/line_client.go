package line

import (
	"fmt"

	"currency-assistant/internal/domain"
	"currency-assistant/internal/ports/output"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/sirupsen/logrus"
)

// LINE limits for quick reply buttons
const (
	maxQuickReplyItems = 13
	maxQuickReplyLabel = 20
)

// Compile-time check to ensure LineClientAdapter implements output.LineClient
var _ output.LineClient = (*LineClientAdapter)(nil)

// LineClientAdapter struct - Output adapter for LINE messaging platform
type LineClientAdapter struct {
	client *messaging_api.MessagingApiAPI
}

// NewLineClientAdapter func - Creates new LINE client adapter
func NewLineClientAdapter(channelToken string, options ...messaging_api.MessagingApiAPIOption) (*LineClientAdapter, error) {
	client, err := messaging_api.NewMessagingApiAPI(channelToken, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create LINE messaging API client: %w", err)
	}

	return &LineClientAdapter{
		client: client,
	}, nil
}

// ReplyMessage - Sends reply messages to LINE user via reply token
func (a *LineClientAdapter) ReplyMessage(request domain.LineReplyMessageRequest) (*domain.LineMessageResponse, error) {
	messages := convertToLineMessages(request.Messages)
	if len(messages) == 0 {
		return nil, fmt.Errorf("no valid messages to send")
	}

	req := &messaging_api.ReplyMessageRequest{
		ReplyToken: request.ReplyToken,
		Messages:   messages,
	}

	_, err := a.client.ReplyMessage(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send reply message: %w", err)
	}

	logrus.Debugf("Sent reply message with token: %s", request.ReplyToken)

	return &domain.LineMessageResponse{
		Status:  "success",
		Message: "Reply message sent successfully",
	}, nil
}

// PushMessage - Sends push messages to LINE user directly
func (a *LineClientAdapter) PushMessage(request domain.LinePushMessageRequest) (*domain.LineMessageResponse, error) {
	messages := convertToLineMessages(request.Messages)
	if len(messages) == 0 {
		return nil, fmt.Errorf("no valid messages to send")
	}

	req := &messaging_api.PushMessageRequest{
		To:       request.To,
		Messages: messages,
	}

	_, err := a.client.PushMessage(req, "")
	if err != nil {
		return nil, fmt.Errorf("failed to send push message: %w", err)
	}

	logrus.Debugf("Sent push message to: %s", request.To)

	return &domain.LineMessageResponse{
		Status:  "success",
		Message: "Push message sent successfully",
	}, nil
}

func convertToLineMessages(outgoing []domain.LineOutgoingMessage) []messaging_api.MessageInterface {
	messages := make([]messaging_api.MessageInterface, 0, len(outgoing))
	for _, msg := range outgoing {
		lineMsg, err := convertToLineMessage(msg)
		if err != nil {
			logrus.Errorf("Failed to convert message: %v", err)
			continue
		}
		messages = append(messages, lineMsg)
	}
	return messages
}

// convertToLineMessage - Helper function to convert domain message to LINE SDK message
func convertToLineMessage(msg domain.LineOutgoingMessage) (messaging_api.MessageInterface, error) {
	switch msg.Type {
	case domain.LineMessageTypeText:
		return &messaging_api.TextMessage{
			Text:       msg.Text,
			QuickReply: buildQuickReply(msg.QuickReplies),
		}, nil

	case domain.LineMessageTypeSticker:
		return &messaging_api.StickerMessage{
			PackageId:  msg.PackageID,
			StickerId:  msg.StickerID,
			QuickReply: buildQuickReply(msg.QuickReplies),
		}, nil

	default:
		return nil, fmt.Errorf("unsupported message type: %s", msg.Type)
	}
}

// buildQuickReply turns suggested inputs into message actions that send the
// label text back when tapped
func buildQuickReply(options []string) *messaging_api.QuickReply {
	if len(options) == 0 {
		return nil
	}
	if len(options) > maxQuickReplyItems {
		options = options[:maxQuickReplyItems]
	}

	items := make([]messaging_api.QuickReplyItem, 0, len(options))
	for _, option := range options {
		items = append(items, messaging_api.QuickReplyItem{
			Type: "action",
			Action: &messaging_api.MessageAction{
				Label: truncateLabel(option),
				Text:  option,
			},
		})
	}
	return &messaging_api.QuickReply{Items: items}
}

func truncateLabel(label string) string {
	runes := []rune(label)
	if len(runes) <= maxQuickReplyLabel {
		return label
	}
	return string(runes[:maxQuickReplyLabel])
}
