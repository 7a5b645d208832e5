package http

import (
	"crypto/subtle"
	"errors"

	"gamelink-finder/internal/domain"
	"gamelink-finder/internal/ports/input"
	"gamelink-finder/pkg/validator"

	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AdminKeyHeader carries the catalog editor key on write requests
const AdminKeyHeader = "X-Admin-Key"

// HTTPHandler struct - Primary/Driving adapter for the catalog HTTP API
type HTTPHandler struct {
	srv       input.CatalogService
	db        *gorm.DB
	validator validator.Validator
	adminKey  string
}

// New func - Creates new HTTP handler. An empty adminKey disables catalog writes.
func New(srv input.CatalogService, db *gorm.DB, adminKey string) *HTTPHandler {
	return &HTTPHandler{
		srv:       srv,
		db:        db,
		validator: validator.New(),
		adminKey:  adminKey,
	}
}

// HealthCheck func
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	sqlDB, err := hdl.db.DB()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	err = sqlDB.PingContext(c.UserContext())
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// CreateGame godoc
// @Summary Add a game to the catalog
// @Description Add a game with its curated store links
// @Tags Catalog
// @Accept application/json
// @Produce json
// @Param X-Admin-Key header string true "catalog editor key"
// @Param CreateGame body GameRequest true "CreateGame"
// @Success 201 {object} ResponseBody
// @Failure 400 {object} ResponseBody
// @Failure 403 {object} ResponseBody
// @Router /v1/api/games [post]
func (hdl *HTTPHandler) CreateGame(c *fiber.Ctx) error {
	if !adminKeyMatches(c.Get(AdminKeyHeader), hdl.adminKey) {
		logrus.Warnf("Rejected catalog write from %s: %v", c.IP(), domain.ErrPermissionDenied)
		return c.Status(fiber.StatusForbidden).JSON(ResponseBody{Status: Forbidden})
	}

	var request GameRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(withStatus(BadRequest, err))
	}

	// Convert HTTP request to domain request
	domainReq := domain.GameRequest{
		Name:      request.Name,
		Genre:     request.Genre,
		SteamLink: request.SteamLink,
		GOGLink:   request.GOGLink,
		EpicLink:  request.EpicLink,
	}
	response, err := hdl.srv.AddGame(c.UserContext(), domainReq)
	if errors.Is(err, domain.ErrInvalidRequest) {
		return c.Status(fiber.StatusBadRequest).JSON(withStatus(BadRequest, err))
	}
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(withStatus(InternalServerError, err))
	}
	return c.Status(fiber.StatusCreated).JSON(ResponseBody{Status: Created, Data: toGameResponse(response)})
}

// GetGame godoc
// @Summary Get a game
// @Description Get one catalog entry with its store links
// @Tags Catalog
// @Produce json
// @Param id path string true "uuid"
// @Success 200 {object} ResponseBody
// @Failure 404 {object} ResponseBody
// @Router /v1/api/games/{id} [get]
func (hdl *HTTPHandler) GetGame(c *fiber.Ctx) error {
	uid, err := uuid.Parse(c.Params("id"))
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	response, err := hdl.srv.GetGame(c.UserContext(), uid)
	if errors.Is(err, domain.ErrGameNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(ResponseBody{Status: NotFound})
	}
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toGameResponse(response)})
}

// GetGames godoc
// @Summary List games
// @Description List catalog games, optionally of one genre, with pagination
// @Tags Catalog
// @Produce json
// @Param genre query string false "genre"
// @Param page query int false "page"
// @Param limit query int false "limit"
// @Success 200 {object} ResponseBody
// @Router /v1/api/games [get]
func (hdl *HTTPHandler) GetGames(c *fiber.Ctx) error {
	condition := QueryGameRequest{}
	if err := c.QueryParser(&condition); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(condition); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(withStatus(BadRequest, err))
	}

	// Convert HTTP query request to domain query request
	result, err := hdl.srv.ListGames(c.UserContext(), domain.QueryGameRequest{
		Genre: condition.Genre,
		Limit: condition.Limit,
		Page:  condition.Page,
	})
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	data := make([]GameSummaryResponse, 0, len(result.Games))
	for _, game := range result.Games {
		data = append(data, GameSummaryResponse{ID: game.ID, Name: game.Name})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{
		Status:      Success,
		Data:        data,
		CurrentPage: result.CurrentPage,
		PerPage:     result.PerPage,
		TotalItem:   result.TotalItem,
	})
}

// GetGenres godoc
// @Summary List genres
// @Description List the distinct genres of the catalog
// @Tags Catalog
// @Produce json
// @Success 200 {object} ResponseBody
// @Router /v1/api/genres [get]
func (hdl *HTTPHandler) GetGenres(c *fiber.Ctx) error {
	genres, err := hdl.srv.ListGenres(c.UserContext())
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	if genres == nil {
		genres = []string{}
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: genres})
}

func toGameResponse(game *domain.GameResponse) GameResponse {
	return GameResponse{
		ID:        game.ID,
		Name:      game.Name,
		Genre:     game.Genre,
		SteamLink: game.SteamLink,
		GOGLink:   game.GOGLink,
		EpicLink:  game.EpicLink,
		CreatedAt: game.CreatedAt,
	}
}

// adminKeyMatches compares in constant time. An empty configured key matches nothing.
func adminKeyMatches(given, configured string) bool {
	if configured == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(given), []byte(configured)) == 1
}
