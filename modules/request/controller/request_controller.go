package controller

import (
	"mentorhub/core/constants"
	"mentorhub/core/controller"
	"mentorhub/core/errors"
	"mentorhub/core/utils"
	authentity "mentorhub/modules/auth/entity"
	"mentorhub/modules/request/dto"
	"mentorhub/modules/request/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type RequestController struct {
	controller.BaseController
	service service.RequestServiceInterface
}

func NewRequestController(svc service.RequestServiceInterface) *RequestController {
	return &RequestController{
		BaseController: controller.NewBaseController(),
		service:        svc,
	}
}

func (c *RequestController) claims(ctx echo.Context) (*utils.TokenClaims, error) {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return nil, c.Unauthorized(errors.ErrUnauthorized, "Missing token data")
	}
	return claims, nil
}

// PrepareConfirmation handles POST /private/events/:id/confirmations
// @Summary Prepare a mentor request confirmation
// @Description Returns a one-shot token and localized dialog copy
// @Tags Request
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.PrepareConfirmationRequest true "Kind and locale"
// @Success 200 {object} dto.ConfirmationResponse
// @Security BearerAuth
// @Router /private/events/{id}/confirmations [post]
func (c *RequestController) PrepareConfirmation(ctx echo.Context) error {
	claims, err := c.claims(ctx)
	if err != nil {
		return err
	}
	eventID, parseErr := uuid.Parse(ctx.Param("id"))
	if parseErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	var req dto.PrepareConfirmationRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	resp, appErr := c.service.PrepareConfirmation(ctx.Request().Context(), claims.UserID, authentity.Role(claims.Role), eventID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Confirmation prepared")
}

// Submit handles POST /private/requests
// @Summary Submit a prepared mentor request
// @Description Consumes the confirmation token; a token can be spent once
// @Tags Request
// @Accept json
// @Produce json
// @Param request body dto.SubmitRequest true "Confirmation token"
// @Success 200 {object} eventdto.EventMutableResponse
// @Security BearerAuth
// @Router /private/requests [post]
func (c *RequestController) Submit(ctx echo.Context) error {
	claims, err := c.claims(ctx)
	if err != nil {
		return err
	}

	var req dto.SubmitRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.Token == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Token is required")
	}

	resp, appErr := c.service.Submit(ctx.Request().Context(), claims.UserID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Request submitted")
}

// Capabilities handles GET /private/events/:id/capabilities
// @Summary Capabilities of the caller on an event
// @Tags Request
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.CapabilitiesResponse
// @Security BearerAuth
// @Router /private/events/{id}/capabilities [get]
func (c *RequestController) Capabilities(ctx echo.Context) error {
	claims, err := c.claims(ctx)
	if err != nil {
		return err
	}
	eventID, parseErr := uuid.Parse(ctx.Param("id"))
	if parseErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	resp, appErr := c.service.Capabilities(ctx.Request().Context(), claims.UserID, authentity.Role(claims.Role), eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Capabilities retrieved")
}

// AcceptPrimary handles POST /private/events/:id/accept
// @Summary Accept a requesting primary mentor
// @Tags Request
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.CoachTransitionRequest true "Mentor to accept"
// @Success 200 {object} eventdto.EventMutableResponse
// @Security BearerAuth
// @Router /private/events/{id}/accept [post]
func (c *RequestController) AcceptPrimary(ctx echo.Context) error {
	claims, err := c.claims(ctx)
	if err != nil {
		return err
	}
	eventID, parseErr := uuid.Parse(ctx.Param("id"))
	if parseErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	var req dto.CoachTransitionRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.MentorID == uuid.Nil {
		return c.BadRequest(errors.ErrInvalidInput, "Mentor id is required")
	}

	resp, appErr := c.service.AcceptPrimary(ctx.Request().Context(), claims.UserID, eventID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Mentor accepted")
}

// SeekBackup handles POST /private/events/:id/seek-backup
// @Summary Reopen an event for backup requests
// @Tags Request
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} eventdto.EventMutableResponse
// @Security BearerAuth
// @Router /private/events/{id}/seek-backup [post]
func (c *RequestController) SeekBackup(ctx echo.Context) error {
	claims, err := c.claims(ctx)
	if err != nil {
		return err
	}
	eventID, parseErr := uuid.Parse(ctx.Param("id"))
	if parseErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	resp, appErr := c.service.SeekBackup(ctx.Request().Context(), claims.UserID, eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Event now seeking backup")
}

// Close handles POST /private/events/:id/close
// @Summary Close an event
// @Tags Request
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} eventdto.EventMutableResponse
// @Security BearerAuth
// @Router /private/events/{id}/close [post]
func (c *RequestController) Close(ctx echo.Context) error {
	claims, err := c.claims(ctx)
	if err != nil {
		return err
	}
	eventID, parseErr := uuid.Parse(ctx.Param("id"))
	if parseErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	resp, appErr := c.service.Close(ctx.Request().Context(), claims.UserID, eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Event closed")
}
