package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// Created response
	Created = Status{Code: http.StatusCreated, Message: []string{"Created"}}
	// BadRequest response
	BadRequest = Status{Code: http.StatusBadRequest, Message: []string{"Sorry, Not responding because of incorrect syntax"}}
	// Forbidden response
	Forbidden = Status{Code: http.StatusForbidden, Message: []string{"Sorry, Permission denied"}}
	// NotFound response
	NotFound = Status{Code: http.StatusNotFound, Message: []string{"Sorry, Game not found"}}
	// InternalServerError response
	InternalServerError = Status{Code: http.StatusInternalServerError, Message: []string{"Internal Server Error"}}
)

// ResponseBody struct - Generic HTTP response wrapper
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`

	CurrentPage *int   `json:"current_page,omitempty"`
	PerPage     *int   `json:"per_page,omitempty"`
	TotalItem   *int64 `json:"total_item,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

type (
	// GameResponse struct - HTTP response DTO for a single catalog entry
	GameResponse struct {
		ID        *uuid.UUID `json:"id,omitempty" mapstructure:"id"`
		Name      string     `json:"name" mapstructure:"name"`
		Genre     string     `json:"genre" mapstructure:"genre"`
		SteamLink *string    `json:"steam_link,omitempty" mapstructure:"steam_link"`
		GOGLink   *string    `json:"gog_link,omitempty" mapstructure:"gog_link"`
		EpicLink  *string    `json:"epic_link,omitempty" mapstructure:"epic_link"`
		CreatedAt *time.Time `json:"created_at,omitempty" mapstructure:"created_at"`
	}

	// GameSummaryResponse struct - HTTP response DTO for one row of a game list
	GameSummaryResponse struct {
		ID   uuid.UUID `json:"id" mapstructure:"id"`
		Name string    `json:"name" mapstructure:"name"`
	}
)

// withStatus copies a canned status and replaces its message with err
func withStatus(status Status, err error) ResponseBody {
	status.Message = []string{err.Error()}
	return ResponseBody{Status: status}
}
