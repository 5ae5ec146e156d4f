package controller

import (
	"strconv"
	"time"

	"mentorhub/core/controller"
	"mentorhub/core/errors"
	"mentorhub/modules/calendar/service"

	"github.com/labstack/echo/v4"
)

type CalendarController struct {
	controller.BaseController
	service service.CalendarServiceInterface
}

func NewCalendarController(svc service.CalendarServiceInterface) *CalendarController {
	return &CalendarController{
		BaseController: controller.NewBaseController(),
		service:        svc,
	}
}

// GetMonth handles GET /calendar
// @Summary Month view with per-day status counts
// @Tags Calendar
// @Produce json
// @Param month query string false "Month as YYYY-MM, defaults to the current month"
// @Success 200 {object} dto.MonthResponse
// @Router /calendar [get]
func (c *CalendarController) GetMonth(ctx echo.Context) error {
	month := ctx.QueryParam("month")
	if month == "" {
		month = time.Now().UTC().Format("2006-01")
	}

	resp, appErr := c.service.Month(ctx.Request().Context(), month)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Calendar month retrieved")
}

// GetDay handles GET /calendar/day/:date
// @Summary Events of one calendar day in the viewer's zone
// @Tags Calendar
// @Produce json
// @Param date path string true "Day as YYYY-MM-DD"
// @Param tz query int false "Viewer offset east of UTC in minutes"
// @Success 200 {object} dto.DayResponse
// @Router /calendar/day/{date} [get]
func (c *CalendarController) GetDay(ctx echo.Context) error {
	tzOffset := 0
	if raw := ctx.QueryParam("tz"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "tz must be an offset in minutes")
		}
		tzOffset = n
	}

	resp, appErr := c.service.Day(ctx.Request().Context(), ctx.Param("date"), tzOffset)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Calendar day retrieved")
}
