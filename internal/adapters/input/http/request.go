package http

type (
	// GameRequest struct - HTTP request DTO for a new catalog entry
	GameRequest struct {
		Name      string  `json:"name" validate:"required,max=100" form:"name"`
		Genre     string  `json:"genre" validate:"required,max=50" form:"genre"`
		SteamLink *string `json:"steam_link" validate:"omitempty,url" form:"steam_link"`
		GOGLink   *string `json:"gog_link" validate:"omitempty,url" form:"gog_link"`
		EpicLink  *string `json:"epic_link" validate:"omitempty,url" form:"epic_link"`
	}

	// QueryGameRequest struct - HTTP query request DTO
	QueryGameRequest struct {
		Genre *string `json:"genre" form:"genre" query:"genre"`
		Limit *int    `json:"limit,omitempty" validate:"omitempty,gte=1,lte=100" form:"limit" query:"limit"`
		Page  *int    `json:"page,omitempty" validate:"omitempty,gte=1" form:"page" query:"page"`
	}
)
