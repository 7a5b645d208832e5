package domain

import (
	"time"

	"github.com/google/uuid"
)

// DTOs (Data Transfer Objects) - Domain layer request/response structures
type (
	// GameRequest struct - Domain request DTO for a new catalog entry
	GameRequest struct {
		Name      string  `json:"name" validate:"required,max=100"`
		Genre     string  `json:"genre" validate:"required,max=50"`
		SteamLink *string `json:"steam_link" validate:"omitempty,url"`
		GOGLink   *string `json:"gog_link" validate:"omitempty,url"`
		EpicLink  *string `json:"epic_link" validate:"omitempty,url"`
	}

	// QueryGameRequest struct - Domain query request DTO
	QueryGameRequest struct {
		Genre *string
		Limit *int
		Page  *int

		Pagination *Pagination
	}

	// Pagination struct
	Pagination struct {
		Limit  int
		Offset int
	}

	// GameSummary struct - id and name of a catalog entry
	GameSummary struct {
		ID   uuid.UUID `json:"id"`
		Name string    `json:"name"`
	}

	// GameResponse struct - Domain response DTO
	GameResponse struct {
		ID        *uuid.UUID `json:"id,omitempty"`
		Name      string     `json:"name"`
		Genre     string     `json:"genre"`
		SteamLink *string    `json:"steam_link,omitempty"`
		GOGLink   *string    `json:"gog_link,omitempty"`
		EpicLink  *string    `json:"epic_link,omitempty"`
		CreatedAt *time.Time `json:"created_at,omitempty"`
	}

	// GameListResponse struct - Domain list response DTO
	GameListResponse struct {
		Games       []GameSummary
		CurrentPage *int
		PerPage     *int
		TotalItem   *int64
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
		Type      LineMessageType
		Text      string
		PackageID string // For sticker
		StickerID string // For sticker
		Choices   []LineChoice
	}

	// LineChoice struct - A quick reply button. Data set means a postback button,
	// otherwise pressing it sends Text as a message.
	LineChoice struct {
		Label       string
		Data        string
		DisplayText string
		Text        string
	}

	// LineMessageResponse struct - Domain LINE API response DTO
	LineMessageResponse struct {
		Status  string
		Message string
	}
)

// ToResponse converts a catalog entity to its response DTO
func (g *Game) ToResponse() GameResponse {
	return GameResponse{
		ID:        g.ID,
		Name:      g.Name,
		Genre:     g.Genre,
		SteamLink: g.SteamLink,
		GOGLink:   g.GOGLink,
		EpicLink:  g.EpicLink,
		CreatedAt: g.CreatedAt,
	}
}

// TextMessage builds a plain text outgoing message
func TextMessage(text string, choices ...LineChoice) LineOutgoingMessage {
	return LineOutgoingMessage{
		Type:    LineMessageTypeText,
		Text:    text,
		Choices: choices,
	}
}
