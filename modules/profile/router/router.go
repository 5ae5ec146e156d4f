package router

import (
	"mentorhub/core/middleware"
	"mentorhub/modules/profile/controller"

	"github.com/labstack/echo/v4"
)

type ProfileRouter struct {
	Controller *controller.ProfileController
}

func NewProfileRouter(ctrl *controller.ProfileController) *ProfileRouter {
	return &ProfileRouter{Controller: ctrl}
}

func (r *ProfileRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	priv := e.Group("/api/v1/private", mw.AuthMiddleware())
	priv.POST("/profiles/lookup", r.Controller.Lookup)
	priv.GET("/me", r.Controller.GetMe)
	priv.POST("/me/avatar", r.Controller.AvatarUpload)
}
