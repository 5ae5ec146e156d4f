package auth

import (
	"mentorhub/core/cache"
	"mentorhub/core/database"
	"mentorhub/modules/auth/controller"
	"mentorhub/modules/auth/repository"
	"mentorhub/modules/auth/router"
	"mentorhub/modules/auth/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, c cache.Cache) {
	repo := repository.NewUserRepository(&db)
	svc := service.NewAuthService(repo, c)
	ctrl := controller.NewAuthController(svc)
	router.NewAuthRouter(ctrl).Setup(e)
}
