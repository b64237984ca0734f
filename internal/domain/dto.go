package domain

import "github.com/shopspring/decimal"

// DTOs (Data Transfer Objects) - Domain layer request/response structures

type (
	// CurrencyRequest struct - Domain request DTO for management operations
	CurrencyRequest struct {
		CurrencyName string
		Rate         decimal.Decimal
	}

	// CurrencyResponse struct - Domain response DTO for a single currency
	CurrencyResponse struct {
		CurrencyName string
		Rate         decimal.Decimal
	}

	// ConvertRequest struct - Domain request DTO for conversion
	ConvertRequest struct {
		CurrencyName string
		Amount       decimal.Decimal
	}

	// ConvertResponse struct - Domain response DTO for conversion
	ConvertResponse struct {
		CurrencyName    string
		Amount          decimal.Decimal
		ConvertedAmount decimal.Decimal
	}

	// LineWebhookRequest struct - Domain LINE webhook request DTO
	LineWebhookRequest struct {
		Events []LineWebhookEvent
	}

	// LineReplyMessageRequest struct - Domain LINE reply message request DTO
	LineReplyMessageRequest struct {
		ReplyToken string
		Messages   []LineOutgoingMessage
	}

	// LinePushMessageRequest struct - Domain LINE push message request DTO
	LinePushMessageRequest struct {
		To       string
		Messages []LineOutgoingMessage
	}

	// LineOutgoingMessage struct - Domain LINE outgoing message DTO
	LineOutgoingMessage struct {
		Type         LineMessageType
		Text         string
		QuickReplies []string // Rendered as quick reply message actions
		PackageID    string   // For sticker
		StickerID    string   // For sticker
	}

	// LineMessageResponse struct - Domain LINE API response DTO
	LineMessageResponse struct {
		Status  string
		Message string
	}
)

// ToCurrencyResponse func
func (c *Currency) ToCurrencyResponse() CurrencyResponse {
	return CurrencyResponse{
		CurrencyName: c.CurrencyName,
		Rate:         c.Rate,
	}
}
