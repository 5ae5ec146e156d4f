package controller

import (
	"mentorhub/core/constants"
	"mentorhub/core/controller"
	"mentorhub/core/errors"
	"mentorhub/core/utils"
	"mentorhub/modules/event/dto"
	"mentorhub/modules/event/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type EventController struct {
	controller.BaseController
	service service.EventServiceInterface
}

func NewEventController(svc service.EventServiceInterface) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		service:        svc,
	}
}

// ListEvents handles GET /events
// @Summary List mentoring events
// @Tags Event
// @Produce json
// @Param status query string false "Filter by status"
// @Param search query string false "Search company, coach or date"
// @Param sort_by query string false "Sort field (date, company, status, created_at)"
// @Param sort_dir query string false "asc or desc"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} controller.SuccessResponse
// @Router /events [get]
func (c *EventController) ListEvents(ctx echo.Context) error {
	var query dto.ListEventsQuery
	if err := ctx.Bind(&query); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid query parameters")
	}
	query.SortDesc = ctx.QueryParam("sort_dir") == "desc"

	resp, appErr := c.service.ListEvents(ctx.Request().Context(), &query)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Events retrieved")
}

// GetEvent handles GET /events/:id
// @Summary Get a single event
// @Tags Event
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Router /events/{id} [get]
func (c *EventController) GetEvent(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	resp, appErr := c.service.GetEvent(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Event retrieved")
}

// GetEventBySlug handles GET /e/:slug
// @Summary Get an event by its share slug
// @Tags Event
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} dto.EventResponse
// @Router /e/{slug} [get]
func (c *EventController) GetEventBySlug(ctx echo.Context) error {
	resp, appErr := c.service.GetEventBySlug(ctx.Request().Context(), ctx.Param("slug"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Event retrieved")
}

// GetMutable handles GET /events/:id/mutable
// @Summary Get the mutable fields of an event
// @Description Returns status and mentor sets only, for merge after a request
// @Tags Event
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventMutableResponse
// @Router /events/{id}/mutable [get]
func (c *EventController) GetMutable(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	resp, appErr := c.service.GetMutable(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Event state retrieved")
}

// CreateEvent handles POST /private/events
// @Summary Create a mentoring event
// @Tags Event
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event details"
// @Success 200 {object} dto.EventResponse
// @Security BearerAuth
// @Router /private/events [post]
func (c *EventController) CreateEvent(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Missing token data")
	}

	var req dto.CreateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	resp, appErr := c.service.CreateEvent(ctx.Request().Context(), claims.UserID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Event created")
}
