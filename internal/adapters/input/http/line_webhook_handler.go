package http

import (
	"bytes"
	"net/http"

	"currency-assistant/internal/domain"
	"currency-assistant/internal/ports/input"

	"github.com/gofiber/fiber/v2"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
	"github.com/sirupsen/logrus"
)

// LineWebhookHandler struct - Primary/Driving adapter for LINE webhook
type LineWebhookHandler struct {
	service       input.LineWebhookService
	channelSecret string
}

// NewLineWebhookHandler func - Creates new LINE webhook handler
func NewLineWebhookHandler(service input.LineWebhookService, channelSecret string) *LineWebhookHandler {
	return &LineWebhookHandler{
		service:       service,
		channelSecret: channelSecret,
	}
}

// HandleWebhook func - Verifies the signature and hands the events to the bot
// @Summary LINE Webhook
// @Description Verifies the signature and hands the events to the bot
// @Tags LINE
// @Accept application/json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /webhook/line [post]
func (h *LineWebhookHandler) HandleWebhook(c *fiber.Ctx) error {
	// The SDK verifies signatures on a net/http request
	httpReq, err := http.NewRequestWithContext(c.UserContext(), http.MethodPost, "/webhook/line", bytes.NewReader(c.Body()))
	if err != nil {
		logrus.Errorf("Failed to create http request: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Internal error",
		})
	}
	c.Request().Header.VisitAll(func(key, value []byte) {
		httpReq.Header.Set(string(key), string(value))
	})

	cb, err := webhook.ParseRequest(h.channelSecret, httpReq)
	if err != nil {
		logrus.Errorf("Failed to parse webhook request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid signature or request",
		})
	}

	request := domain.LineWebhookRequest{
		Events: make([]domain.LineWebhookEvent, 0, len(cb.Events)),
	}
	for _, event := range cb.Events {
		if converted, ok := toLineEvent(event); ok {
			request.Events = append(request.Events, converted)
		}
	}

	if err := h.service.HandleWebhook(c.UserContext(), request); err != nil {
		logrus.Errorf("Failed to handle webhook: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Failed to process webhook",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
	})
}

// toLineEvent keeps the events the bot reacts to: messages, follows and unfollows
func toLineEvent(event webhook.EventInterface) (domain.LineWebhookEvent, bool) {
	switch e := event.(type) {
	case webhook.MessageEvent:
		return domain.LineWebhookEvent{
			ID:           e.WebhookEventId,
			Type:         domain.LineEventTypeMessage,
			ReplyToken:   e.ReplyToken,
			IsRedelivery: isRedelivery(e.DeliveryContext),
			Source:       toLineSource(e.Source),
			Message:      toLineMessage(e.Message),
		}, true
	case webhook.FollowEvent:
		return domain.LineWebhookEvent{
			ID:           e.WebhookEventId,
			Type:         domain.LineEventTypeFollow,
			ReplyToken:   e.ReplyToken,
			IsRedelivery: isRedelivery(e.DeliveryContext),
			Source:       toLineSource(e.Source),
		}, true
	case webhook.UnfollowEvent:
		return domain.LineWebhookEvent{
			ID:           e.WebhookEventId,
			Type:         domain.LineEventTypeUnfollow,
			IsRedelivery: isRedelivery(e.DeliveryContext),
			Source:       toLineSource(e.Source),
		}, true
	default:
		logrus.Debugf("Skipping LINE event %T", event)
		return domain.LineWebhookEvent{}, false
	}
}

// toLineMessage keeps the text of text messages; other kinds only carry their type
func toLineMessage(content webhook.MessageContentInterface) *domain.LineMessage {
	switch m := content.(type) {
	case webhook.TextMessageContent:
		return &domain.LineMessage{ID: m.Id, Type: domain.LineMessageTypeText, Text: m.Text}
	case nil:
		return nil
	default:
		return &domain.LineMessage{Type: domain.LineMessageType(content.GetType())}
	}
}

// toLineSource resolves the chatting user; group and room ids are not needed by the bot
func toLineSource(source webhook.SourceInterface) domain.LineSource {
	switch s := source.(type) {
	case webhook.UserSource:
		return domain.LineSource{Type: domain.LineSourceTypeUser, UserID: s.UserId}
	case webhook.GroupSource:
		return domain.LineSource{Type: domain.LineSourceTypeGroup, UserID: s.UserId}
	case webhook.RoomSource:
		return domain.LineSource{Type: domain.LineSourceTypeRoom, UserID: s.UserId}
	default:
		return domain.LineSource{}
	}
}

func isRedelivery(delivery *webhook.DeliveryContext) bool {
	return delivery != nil && delivery.IsRedelivery
}
