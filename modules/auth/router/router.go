package router

import (
	"mentorhub/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	Controller *controller.AuthController
}

func NewAuthRouter(ctrl *controller.AuthController) *AuthRouter {
	return &AuthRouter{Controller: ctrl}
}

func (r *AuthRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	auth := v1.Group("/auth")

	auth.POST("/register", r.Controller.Register)
	auth.POST("/login", r.Controller.Login)
	auth.POST("/refresh", r.Controller.Refresh)
	auth.POST("/logout", r.Controller.Logout)
	auth.GET("/google", r.Controller.GoogleLoginURL)
	auth.POST("/google/callback", r.Controller.GoogleCallback)
}
