package request

import (
	"mentorhub/core/cache"
	"mentorhub/core/database"
	"mentorhub/core/middleware"
	eventrepo "mentorhub/modules/event/repository"
	"mentorhub/modules/request/controller"
	"mentorhub/modules/request/repository"
	"mentorhub/modules/request/router"
	"mentorhub/modules/request/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, c cache.Cache, notifier service.Notifier) {
	events := eventrepo.NewEventRepository(&db)
	requests := repository.NewRequestRepository(&db)
	svc := service.NewRequestService(events, requests, c, notifier)
	ctrl := controller.NewRequestController(svc)
	mw := middleware.NewMiddleware(c)
	router.NewRequestRouter(ctrl).Setup(e, mw)
}
