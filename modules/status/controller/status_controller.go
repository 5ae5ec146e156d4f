package controller

import (
	"mentorhub/core/constants"
	"mentorhub/core/controller"
	"mentorhub/modules/status/service"

	"github.com/labstack/echo/v4"
)

type StatusController struct {
	controller.BaseController
}

func NewStatusController() *StatusController {
	return &StatusController{
		BaseController: controller.NewBaseController(),
	}
}

// GetLegend handles GET /statuses
// @Summary Status legend
// @Description Returns every event status with its localized label and badge style
// @Tags Status
// @Produce json
// @Param locale query string false "Locale (en or de)"
// @Param theme query string false "Theme (light or dark)"
// @Success 200 {object} controller.SuccessResponse
// @Router /statuses [get]
func (c *StatusController) GetLegend(ctx echo.Context) error {
	locale := ctx.QueryParam("locale")
	if locale == "" {
		locale = constants.LocaleEN
	}
	theme := ctx.QueryParam("theme")
	if theme == "" {
		theme = constants.ThemeLight
	}

	return c.SuccessResponse(ctx, service.Legend(locale, theme), "Status legend retrieved")
}
