package calendar

import (
	"mentorhub/core/database"
	"mentorhub/modules/calendar/controller"
	"mentorhub/modules/calendar/router"
	"mentorhub/modules/calendar/service"
	eventrepo "mentorhub/modules/event/repository"
	eventservice "mentorhub/modules/event/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, resolver *eventservice.CoachNameResolver) {
	events := eventrepo.NewEventRepository(&db)
	svc := service.NewCalendarService(events, resolver)
	ctrl := controller.NewCalendarController(svc)
	router.NewCalendarRouter(ctrl).Setup(e)
}
