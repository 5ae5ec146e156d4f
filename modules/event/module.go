package event

import (
	"mentorhub/core/cache"
	"mentorhub/core/database"
	"mentorhub/core/middleware"
	"mentorhub/modules/event/controller"
	"mentorhub/modules/event/repository"
	"mentorhub/modules/event/router"
	"mentorhub/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init wires the event directory. The resolver is shared with the calendar
// module so both views hit the same coach-name cache.
func Init(e *echo.Echo, db database.Database, c cache.Cache, resolver *service.CoachNameResolver) {
	repo := repository.NewEventRepository(&db)
	svc := service.NewEventService(repo, resolver)
	ctrl := controller.NewEventController(svc)
	mw := middleware.NewMiddleware(c)
	router.NewEventRouter(ctrl).Setup(e, mw)
}
