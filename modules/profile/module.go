package profile

import (
	"mentorhub/core/cache"
	"mentorhub/core/database"
	"mentorhub/core/middleware"
	"mentorhub/core/storage"
	authrepo "mentorhub/modules/auth/repository"
	"mentorhub/modules/profile/controller"
	"mentorhub/modules/profile/router"
	"mentorhub/modules/profile/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, c cache.Cache, st storage.Storage) *service.ProfileService {
	users := authrepo.NewUserRepository(&db)
	svc := service.NewProfileService(users, st)
	ctrl := controller.NewProfileController(svc)
	mw := middleware.NewMiddleware(c)
	router.NewProfileRouter(ctrl).Setup(e, mw)
	return svc
}
