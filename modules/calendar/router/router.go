package router

import (
	"mentorhub/modules/calendar/controller"

	"github.com/labstack/echo/v4"
)

type CalendarRouter struct {
	Controller *controller.CalendarController
}

func NewCalendarRouter(ctrl *controller.CalendarController) *CalendarRouter {
	return &CalendarRouter{Controller: ctrl}
}

func (r *CalendarRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	v1.GET("/calendar", r.Controller.GetMonth)
	v1.GET("/calendar/day/:date", r.Controller.GetDay)
}
