package router

import (
	"mentorhub/modules/status/controller"

	"github.com/labstack/echo/v4"
)

type StatusRouter struct {
	Controller *controller.StatusController
}

func NewStatusRouter(ctrl *controller.StatusController) *StatusRouter {
	return &StatusRouter{Controller: ctrl}
}

// Setup registers the status routes. The legend is public: clients need it
// before sign-in to render the calendar.
func (r *StatusRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	v1.GET("/statuses", r.Controller.GetLegend)
}
