package notification

import (
	"mentorhub/core/cache"
	"mentorhub/core/database"
	"mentorhub/core/middleware"
	"mentorhub/modules/notification/controller"
	"mentorhub/modules/notification/repository"
	"mentorhub/modules/notification/router"
	"mentorhub/modules/notification/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, c cache.Cache) *service.NotificationService {
	repo := repository.NewNotificationRepository(&db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)
	mw := middleware.NewMiddleware(c)
	router.NewNotificationRouter(ctrl).Setup(e, mw)
	return svc
}
