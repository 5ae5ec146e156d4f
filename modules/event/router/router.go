package router

import (
	"mentorhub/core/middleware"
	authentity "mentorhub/modules/auth/entity"
	"mentorhub/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	Controller *controller.EventController
}

func NewEventRouter(ctrl *controller.EventController) *EventRouter {
	return &EventRouter{Controller: ctrl}
}

// Setup registers event routes. The directory and share-link views are
// public; creating events is restricted to coaches.
func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	v1.GET("/events", r.Controller.ListEvents)
	v1.GET("/events/:id", r.Controller.GetEvent)
	v1.GET("/events/:id/mutable", r.Controller.GetMutable)
	e.GET("/e/:slug", r.Controller.GetEventBySlug)

	priv := v1.Group("/private", mw.AuthMiddleware())
	priv.POST("/events", r.Controller.CreateEvent, mw.RequireRole(string(authentity.RoleCoach)))
}
