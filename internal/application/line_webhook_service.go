package application

import (
	"context"
	"errors"
	"fmt"

	"currency-assistant/internal/domain"
	"currency-assistant/internal/ports/input"
	"currency-assistant/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure LineWebhookService implements input.LineWebhookService
var _ input.LineWebhookService = (*LineWebhookService)(nil)

// LineWebhookService struct - Application service implementing LINE webhook use cases
type LineWebhookService struct {
	lineClient output.LineClient
	engine     input.ConversationEngine
}

// NewLineWebhookService func - Creates new LINE webhook service
func NewLineWebhookService(lineClient output.LineClient, engine input.ConversationEngine) *LineWebhookService {
	return &LineWebhookService{
		lineClient: lineClient,
		engine:     engine,
	}
}

// HandleWebhook func - Use case: Handle incoming webhook events from LINE.
// A failing event is logged and does not stop the remaining ones.
func (s *LineWebhookService) HandleWebhook(ctx context.Context, request domain.LineWebhookRequest) error {
	var errs []error

	for _, event := range request.Events {
		logrus.Infof("Received LINE event: id=%s, type=%s, source=%s, userID=%s, redelivery=%t",
			event.ID, event.Type, event.Source.Type, event.Source.UserID, event.IsRedelivery)

		if event.Source.UserID == "" {
			logrus.Infof("Ignoring event without user: id=%s", event.ID)
			continue
		}

		var err error
		switch event.Type {
		case domain.LineEventTypeMessage:
			err = s.handleMessageEvent(ctx, event)
			if err != nil {
				logrus.Errorf("Failed to handle message event: %v", err)
			}

		case domain.LineEventTypeFollow:
			err = s.handleFollowEvent(event)
			if err != nil {
				logrus.Errorf("Failed to handle follow event: %v", err)
			}

		case domain.LineEventTypeUnfollow:
			err = s.handleUnfollowEvent(event)
			if err != nil {
				logrus.Errorf("Failed to handle unfollow event: %v", err)
			}

		default:
			logrus.Infof("Unhandled event type: %s", event.Type)
		}

		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// handleMessageEvent - feeds text into the conversation engine and replies with its answer
func (s *LineWebhookService) handleMessageEvent(ctx context.Context, event domain.LineWebhookEvent) error {
	if event.Message == nil {
		return nil
	}

	// Only handle text messages
	if event.Message.Type != domain.LineMessageTypeText {
		logrus.Infof("Ignoring non-text message: type=%s", event.Message.Type)
		return nil
	}

	reply := s.engine.HandleMessage(ctx, event.Source.UserID, event.Message.Text)
	if reply.Text == "" || event.ReplyToken == "" {
		return nil
	}

	replyReq := domain.LineReplyMessageRequest{
		ReplyToken: event.ReplyToken,
		Messages:   []domain.LineOutgoingMessage{toOutgoingMessage(reply)},
	}

	if _, err := s.lineClient.ReplyMessage(replyReq); err != nil {
		return fmt.Errorf("failed to send reply: %w", err)
	}

	return nil
}

// handleFollowEvent - greets a new follower with the command overview
func (s *LineWebhookService) handleFollowEvent(event domain.LineWebhookEvent) error {
	logrus.Infof("User followed: userID=%s", event.Source.UserID)

	welcomeMsg := domain.LinePushMessageRequest{
		To:       event.Source.UserID,
		Messages: []domain.LineOutgoingMessage{toOutgoingMessage(s.engine.Greeting(event.Source.UserID))},
	}

	if _, err := s.lineClient.PushMessage(welcomeMsg); err != nil {
		return fmt.Errorf("failed to send welcome message: %w", err)
	}

	return nil
}

// handleUnfollowEvent - forgets the flow of a user who blocked the bot
func (s *LineWebhookService) handleUnfollowEvent(event domain.LineWebhookEvent) error {
	logrus.Infof("User unfollowed: userID=%s", event.Source.UserID)
	return s.engine.Reset(event.Source.UserID)
}

func toOutgoingMessage(reply domain.Reply) domain.LineOutgoingMessage {
	return domain.LineOutgoingMessage{
		Type:         domain.LineMessageTypeText,
		Text:         reply.Text,
		QuickReplies: reply.QuickReplies,
	}
}
