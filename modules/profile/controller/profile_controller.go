package controller

import (
	"mentorhub/core/constants"
	"mentorhub/core/controller"
	"mentorhub/core/errors"
	"mentorhub/core/utils"
	"mentorhub/modules/profile/dto"
	"mentorhub/modules/profile/service"

	"github.com/labstack/echo/v4"
)

type ProfileController struct {
	controller.BaseController
	service service.ProfileServiceInterface
}

func NewProfileController(svc service.ProfileServiceInterface) *ProfileController {
	return &ProfileController{
		BaseController: controller.NewBaseController(),
		service:        svc,
	}
}

// Lookup handles POST /private/profiles/lookup
// @Summary Batch lookup of display names
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body dto.LookupRequest true "Profile IDs"
// @Success 200 {object} dto.LookupResponse
// @Security BearerAuth
// @Router /private/profiles/lookup [post]
func (c *ProfileController) Lookup(ctx echo.Context) error {
	var req dto.LookupRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	resp, appErr := c.service.Lookup(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Profiles retrieved")
}

// GetMe handles GET /private/me
// @Summary Current user's profile
// @Tags Profile
// @Produce json
// @Success 200 {object} dto.MeResponse
// @Security BearerAuth
// @Router /private/me [get]
func (c *ProfileController) GetMe(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Missing token data")
	}

	resp, appErr := c.service.GetMe(ctx.Request().Context(), claims.UserID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Profile retrieved")
}

// AvatarUpload handles POST /private/me/avatar
// @Summary Request a presigned avatar upload
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body dto.AvatarUploadRequest true "Content type"
// @Success 200 {object} dto.AvatarUploadResponse
// @Security BearerAuth
// @Router /private/me/avatar [post]
func (c *ProfileController) AvatarUpload(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Missing token data")
	}

	var req dto.AvatarUploadRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	resp, appErr := c.service.AvatarUpload(ctx.Request().Context(), claims.UserID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Upload prepared")
}
