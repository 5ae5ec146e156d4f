package status

import (
	"mentorhub/modules/status/controller"
	"mentorhub/modules/status/router"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo) {
	ctrl := controller.NewStatusController()
	router.NewStatusRouter(ctrl).Setup(e)
}
