package router

import (
	"mentorhub/core/middleware"
	authentity "mentorhub/modules/auth/entity"
	"mentorhub/modules/request/controller"

	"github.com/labstack/echo/v4"
)

type RequestRouter struct {
	Controller *controller.RequestController
}

func NewRequestRouter(ctrl *controller.RequestController) *RequestRouter {
	return &RequestRouter{Controller: ctrl}
}

// Setup registers the workflow routes. Everything here requires a session;
// mentor and coach actions are role-gated on top.
func (r *RequestRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	priv := e.Group("/api/v1/private", mw.AuthMiddleware())

	priv.GET("/events/:id/capabilities", r.Controller.Capabilities)

	mentor := mw.RequireRole(string(authentity.RoleMentor))
	priv.POST("/events/:id/confirmations", r.Controller.PrepareConfirmation, mentor)
	priv.POST("/requests", r.Controller.Submit, mentor)

	coach := mw.RequireRole(string(authentity.RoleCoach))
	priv.POST("/events/:id/accept", r.Controller.AcceptPrimary, coach)
	priv.POST("/events/:id/seek-backup", r.Controller.SeekBackup, coach)
	priv.POST("/events/:id/close", r.Controller.Close, coach)
}
